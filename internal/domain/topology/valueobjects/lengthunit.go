package valueobjects

// LengthUnit represents the unit a cable length is recorded in.
type LengthUnit string

const (
	LengthUnitMeter      LengthUnit = "m"
	LengthUnitCentimeter LengthUnit = "cm"
	LengthUnitFoot       LengthUnit = "ft"
	LengthUnitInch       LengthUnit = "in"
)

// metersPer converts one unit to meters. The normalized value is a derived
// ordering aid, not authoritative data.
var metersPer = map[LengthUnit]float64{
	LengthUnitMeter:      1,
	LengthUnitCentimeter: 0.01,
	LengthUnitFoot:       0.3048,
	LengthUnitInch:       0.0254,
}

// String returns the string representation.
func (u LengthUnit) String() string {
	return string(u)
}

// IsValid checks if the unit is valid.
func (u LengthUnit) IsValid() bool {
	_, ok := metersPer[u]
	return ok
}

// Normalize converts a length in this unit to meters.
func (u LengthUnit) Normalize(length float64) float64 {
	return length * metersPer[u]
}

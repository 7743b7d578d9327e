// Package valueobjects provides value objects for the rack domain.
package valueobjects

// Face identifies which side of a rack a device is mounted on.
type Face string

const (
	FaceFront Face = "front"
	FaceRear  Face = "rear"
)

// String returns the string representation.
func (f Face) String() string {
	return string(f)
}

// IsValid checks if the face is valid.
func (f Face) IsValid() bool {
	return f == FaceFront || f == FaceRear
}

// Opposite returns the other face.
func (f Face) Opposite() Face {
	if f == FaceFront {
		return FaceRear
	}
	return FaceFront
}

// Package dto provides data transfer objects for the rack context.
package dto

import (
	"time"

	"patchbay/internal/domain/rack"
)

// RackDTO is the API shape of a rack.
type RackDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	SiteID    uint   `json:"site_id"`
	UHeight   int    `json:"u_height"`
	DescUnits bool   `json:"desc_units"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// DeviceDTO is the API shape of a device.
type DeviceDTO struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	SiteID    uint     `json:"site_id"`
	RackID    uint     `json:"rack_id,omitempty"`
	Position  int      `json:"position,omitempty"`
	Height    int      `json:"height"`
	Face      string   `json:"face,omitempty"`
	FullDepth bool     `json:"full_depth"`
	Tags      []string `json:"tags,omitempty"`
	CreatedAt string   `json:"created_at"`
}

// SiteDTO is the API shape of a site.
type SiteDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	CreatedAt string `json:"created_at"`
}

// ReservationDTO is the API shape of a rack reservation.
type ReservationDTO struct {
	ID          uint   `json:"id"`
	RackID      uint   `json:"rack_id"`
	Units       []int  `json:"units"`
	Owner       string `json:"owner"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// SlotDeviceDTO is the device summary embedded in an elevation slot.
type SlotDeviceDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Position  int    `json:"position"`
	Height    int    `json:"height"`
	Face      string `json:"face"`
	FullDepth bool   `json:"full_depth"`
}

// UnitSlotDTO is one row of a rendered elevation.
type UnitSlotDTO struct {
	Unit     int            `json:"unit"`
	Face     string         `json:"face"`
	Device   *SlotDeviceDTO `json:"device,omitempty"`
	Occupied bool           `json:"occupied"`
	Reserved bool           `json:"reserved"`
	Height   int            `json:"height"`
}

// ToRackDTO converts a rack aggregate.
func ToRackDTO(r *rack.Rack) *RackDTO {
	if r == nil {
		return nil
	}
	return &RackDTO{
		ID:        r.ID(),
		Name:      r.Name(),
		SiteID:    r.SiteID(),
		UHeight:   r.UHeight(),
		DescUnits: r.DescUnits(),
		CreatedAt: r.CreatedAt().Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt().Format(time.RFC3339),
	}
}

// ToDeviceDTO converts a device aggregate.
func ToDeviceDTO(d *rack.Device) *DeviceDTO {
	if d == nil {
		return nil
	}
	return &DeviceDTO{
		ID:        d.ID(),
		Name:      d.Name(),
		SiteID:    d.SiteID(),
		RackID:    d.RackID(),
		Position:  d.Position(),
		Height:    d.Height(),
		Face:      d.Face().String(),
		FullDepth: d.FullDepth(),
		Tags:      d.Tags(),
		CreatedAt: d.CreatedAt().Format(time.RFC3339),
	}
}

// ToSiteDTO converts a site.
func ToSiteDTO(s *rack.Site) *SiteDTO {
	if s == nil {
		return nil
	}
	return &SiteDTO{
		ID:        s.ID(),
		Name:      s.Name(),
		Slug:      s.Slug(),
		CreatedAt: s.CreatedAt().Format(time.RFC3339),
	}
}

// ToReservationDTO converts a reservation.
func ToReservationDTO(r *rack.Reservation) *ReservationDTO {
	if r == nil {
		return nil
	}
	return &ReservationDTO{
		ID:          r.ID(),
		RackID:      r.RackID(),
		Units:       r.Units(),
		Owner:       r.Owner(),
		Description: r.Description(),
		CreatedAt:   r.CreatedAt().Format(time.RFC3339),
	}
}

// ToUnitSlotDTOs converts elevation slots.
func ToUnitSlotDTOs(slots []rack.UnitSlot) []UnitSlotDTO {
	out := make([]UnitSlotDTO, 0, len(slots))
	for _, s := range slots {
		slot := UnitSlotDTO{
			Unit:     s.Unit,
			Face:     s.Face.String(),
			Occupied: s.Occupied,
			Reserved: s.Reserved,
			Height:   s.Height,
		}
		if s.Device != nil {
			slot.Device = &SlotDeviceDTO{
				ID:        s.Device.ID,
				Name:      s.Device.Name,
				Position:  s.Device.Position,
				Height:    s.Device.Height,
				Face:      s.Device.Face.String(),
				FullDepth: s.Device.FullDepth,
			}
		}
		out = append(out, slot)
	}
	return out
}

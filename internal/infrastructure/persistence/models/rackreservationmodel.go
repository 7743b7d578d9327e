package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"patchbay/internal/shared/constants"
)

// RackReservationModel represents the database persistence model for rack
// reservations. Units is a JSON array of unit indices.
type RackReservationModel struct {
	ID          uint           `gorm:"primarykey"`
	RackID      uint           `gorm:"not null;index:idx_reservation_rack_id"`
	Units       datatypes.JSON `gorm:"not null"`
	Owner       string         `gorm:"not null;size:100"`
	Description string         `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (RackReservationModel) TableName() string {
	return constants.TableRackReservations
}

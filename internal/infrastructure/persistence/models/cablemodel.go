package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"patchbay/internal/shared/constants"
)

// CableModel represents the database persistence model for cables. Each end
// is a polymorphic (kind, id) pair; the unique indexes enforce at most one
// cable per termination and side.
type CableModel struct {
	ID               uint    `gorm:"primarykey"`
	TerminationAKind string  `gorm:"not null;size:30;uniqueIndex:idx_cable_term_a"`
	TerminationAID   uint    `gorm:"not null;uniqueIndex:idx_cable_term_a"`
	TerminationALbl  string  `gorm:"column:termination_a_label;size:100"`
	TerminationBKind string  `gorm:"not null;size:30;uniqueIndex:idx_cable_term_b"`
	TerminationBID   uint    `gorm:"not null;uniqueIndex:idx_cable_term_b"`
	TerminationBLbl  string  `gorm:"column:termination_b_label;size:100"`
	Status           string  `gorm:"not null;default:connected;size:20;index:idx_cable_status"`
	Label            string  `gorm:"size:100"`
	Length           float64 `gorm:"not null;default:0"`
	LengthUnit       string  `gorm:"size:10"`
	LengthMeters     float64 `gorm:"not null;default:0;index:idx_cable_length_meters"`
	Tags             datatypes.JSON `gorm:"default:null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (CableModel) TableName() string {
	return constants.TableCables
}

// BeforeCreate hook for GORM.
func (m *CableModel) BeforeCreate(tx *gorm.DB) error {
	if m.Status == "" {
		m.Status = "connected"
	}
	return nil
}

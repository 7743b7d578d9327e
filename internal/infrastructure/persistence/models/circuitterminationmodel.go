package models

import (
	"time"

	"gorm.io/gorm"

	"patchbay/internal/shared/constants"
)

// CircuitTerminationModel represents the database persistence model for
// circuit ends. A circuit holds at most one termination per side.
type CircuitTerminationModel struct {
	ID        uint   `gorm:"primarykey"`
	CircuitID uint   `gorm:"not null;index:idx_ct_circuit_id;uniqueIndex:idx_ct_circuit_side"`
	Side      string `gorm:"not null;size:1;uniqueIndex:idx_ct_circuit_side"`
	SiteID    uint   `gorm:"index:idx_ct_site_id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (CircuitTerminationModel) TableName() string {
	return constants.TableCircuitTerminations
}

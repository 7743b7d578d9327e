package models

import (
	"time"

	"gorm.io/gorm"

	"patchbay/internal/shared/constants"
)

// CircuitModel represents the database persistence model for provider
// circuits.
type CircuitModel struct {
	ID        uint   `gorm:"primarykey"`
	CID       string `gorm:"column:cid;not null;size:100;uniqueIndex:idx_circuit_provider_cid"`
	Provider  string `gorm:"not null;size:100;uniqueIndex:idx_circuit_provider_cid"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (CircuitModel) TableName() string {
	return constants.TableCircuits
}

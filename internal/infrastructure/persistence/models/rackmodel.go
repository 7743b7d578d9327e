package models

import (
	"time"

	"gorm.io/gorm"

	"patchbay/internal/shared/constants"
)

// RackModel represents the database persistence model for racks.
type RackModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:100;uniqueIndex:idx_rack_site_name"`
	SiteID    uint   `gorm:"not null;index:idx_rack_site_id;uniqueIndex:idx_rack_site_name"`
	UHeight   int    `gorm:"not null;default:42"`
	DescUnits bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (RackModel) TableName() string {
	return constants.TableRacks
}

// BeforeCreate hook for GORM.
func (m *RackModel) BeforeCreate(tx *gorm.DB) error {
	if m.UHeight == 0 {
		m.UHeight = 42
	}
	return nil
}

package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"patchbay/internal/shared/constants"
)

// DeviceModel represents the database persistence model for devices. RackID
// and Position are nullable: a device may be stored at a site unracked.
type DeviceModel struct {
	ID        uint           `gorm:"primarykey"`
	Name      string         `gorm:"not null;size:100;index:idx_device_name"`
	SiteID    uint           `gorm:"not null;index:idx_device_site_id"`
	RackID    *uint          `gorm:"index:idx_device_rack_id"`
	Position  *int           `gorm:"default:null"`
	Height    int            `gorm:"not null;default:1"`
	Face      string         `gorm:"size:10"` // front, rear; empty when unracked
	FullDepth bool           `gorm:"not null;default:false"`
	Tags      datatypes.JSON `gorm:"default:null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (DeviceModel) TableName() string {
	return constants.TableDevices
}

// BeforeCreate hook for GORM.
func (m *DeviceModel) BeforeCreate(tx *gorm.DB) error {
	if m.Height == 0 {
		m.Height = 1
	}
	return nil
}

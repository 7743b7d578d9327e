package models

import (
	"time"

	"gorm.io/gorm"

	"patchbay/internal/shared/constants"
)

// PortModel represents the database persistence model for ports of every
// kind. Positions applies to rear ports; RearPortID and RearPortPosition
// apply to front ports.
type PortModel struct {
	ID               uint   `gorm:"primarykey"`
	DeviceID         uint   `gorm:"not null;index:idx_port_device_id;uniqueIndex:idx_port_device_name"`
	Name             string `gorm:"not null;size:100;uniqueIndex:idx_port_device_name"`
	Kind             string `gorm:"not null;size:30;index:idx_port_kind"`
	Positions        int    `gorm:"not null;default:0"`
	RearPortID       *uint  `gorm:"index:idx_port_rear_port_id"`
	RearPortPosition int    `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (PortModel) TableName() string {
	return constants.TablePorts
}

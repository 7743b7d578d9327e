// Package models defines the gorm persistence models.
package models

import (
	"time"

	"gorm.io/gorm"

	"patchbay/internal/shared/constants"
)

// SiteModel represents the database persistence model for sites.
type SiteModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:100"`
	Slug      string `gorm:"not null;size:100;uniqueIndex:idx_site_slug"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (SiteModel) TableName() string {
	return constants.TableSites
}

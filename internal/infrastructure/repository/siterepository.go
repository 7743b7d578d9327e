package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"patchbay/internal/domain/rack"
	"patchbay/internal/infrastructure/persistence/mappers"
	"patchbay/internal/infrastructure/persistence/models"
	"patchbay/internal/shared/db"
	"patchbay/internal/shared/errors"
	"patchbay/internal/shared/logger"
)

// SiteRepositoryImpl implements the rack.SiteRepository interface.
type SiteRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SiteMapper
	logger logger.Interface
}

// NewSiteRepository creates a new site repository instance.
func NewSiteRepository(db *gorm.DB, logger logger.Interface) rack.SiteRepository {
	return &SiteRepositoryImpl{
		db:     db,
		mapper: mappers.NewSiteMapper(),
		logger: logger,
	}
}

// Create creates a new site in the database.
func (r *SiteRepositoryImpl) Create(ctx context.Context, site *rack.Site) error {
	model, err := r.mapper.ToModel(site)
	if err != nil {
		r.logger.Errorw("failed to map site entity to model", "error", err)
		return fmt.Errorf("failed to map site entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint") {
			return errors.NewConflictError("site slug already in use")
		}
		r.logger.Errorw("failed to create site in database", "error", err)
		return fmt.Errorf("failed to create site: %w", err)
	}

	if err := site.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set site ID", "error", err)
		return fmt.Errorf("failed to set site ID: %w", err)
	}

	r.logger.Infow("site created successfully", "id", model.ID, "slug", model.Slug)
	return nil
}

// GetByID retrieves a site by its ID.
func (r *SiteRepositoryImpl) GetByID(ctx context.Context, id uint) (*rack.Site, error) {
	var model models.SiteModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get site by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get site: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetBySlug retrieves a site by its slug.
func (r *SiteRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*rack.Site, error) {
	var model models.SiteModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get site by slug", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to get site: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List returns sites ordered by name.
func (r *SiteRepositoryImpl) List(ctx context.Context, offset, limit int) ([]*rack.Site, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.SiteModel{}).Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count sites", "error", err)
		return nil, 0, fmt.Errorf("failed to count sites: %w", err)
	}

	var siteModels []*models.SiteModel
	err := tx.Order("name ASC").Offset(offset).Limit(limit).Find(&siteModels).Error
	if err != nil {
		r.logger.Errorw("failed to list sites", "error", err)
		return nil, 0, fmt.Errorf("failed to list sites: %w", err)
	}

	entities, err := r.mapper.ToEntities(siteModels)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map sites: %w", err)
	}
	return entities, total, nil
}

// Delete removes a site.
func (r *SiteRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.SiteModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete site", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete site: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return rack.ErrSiteNotFound
	}

	r.logger.Infow("site deleted successfully", "id", id)
	return nil
}

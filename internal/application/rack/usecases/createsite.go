package usecases

import (
	"context"
	"fmt"

	"patchbay/internal/application/rack/dto"
	"patchbay/internal/domain/rack"
	apperrors "patchbay/internal/shared/errors"
	"patchbay/internal/shared/logger"
)

// CreateSiteCommand represents the input for creating a site.
type CreateSiteCommand struct {
	Name string
	Slug string
}

// CreateSiteUseCase handles site creation.
type CreateSiteUseCase struct {
	siteRepo rack.SiteRepository
	logger   logger.Interface
}

// NewCreateSiteUseCase creates a new CreateSiteUseCase.
func NewCreateSiteUseCase(siteRepo rack.SiteRepository, logger logger.Interface) *CreateSiteUseCase {
	return &CreateSiteUseCase{
		siteRepo: siteRepo,
		logger:   logger,
	}
}

// Execute creates a new site.
func (uc *CreateSiteUseCase) Execute(ctx context.Context, cmd CreateSiteCommand) (*dto.SiteDTO, error) {
	uc.logger.Infow("executing create site use case", "name", cmd.Name, "slug", cmd.Slug)

	existing, err := uc.siteRepo.GetBySlug(ctx, cmd.Slug)
	if err != nil {
		uc.logger.Errorw("failed to check site slug", "slug", cmd.Slug, "error", err)
		return nil, fmt.Errorf("failed to check site slug: %w", err)
	}
	if existing != nil {
		uc.logger.Warnw("site slug already in use", "slug", cmd.Slug)
		return nil, apperrors.NewConflictError("site slug already in use", cmd.Slug)
	}

	site, err := rack.NewSite(cmd.Name, cmd.Slug)
	if err != nil {
		uc.logger.Errorw("failed to create site entity", "error", err)
		return nil, apperrors.NewValidationError("invalid site", err.Error())
	}

	if err := uc.siteRepo.Create(ctx, site); err != nil {
		uc.logger.Errorw("failed to persist site", "error", err)
		return nil, fmt.Errorf("failed to save site: %w", err)
	}

	uc.logger.Infow("site created", "id", site.ID(), "slug", cmd.Slug)
	return dto.ToSiteDTO(site), nil
}

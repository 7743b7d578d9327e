package usecases

import (
	"context"
	"fmt"

	"patchbay/internal/application/rack/dto"
	"patchbay/internal/domain/rack"
	apperrors "patchbay/internal/shared/errors"
	"patchbay/internal/shared/logger"
)

// GetSiteQuery represents the input for getting a site.
type GetSiteQuery struct {
	ID uint
}

// GetSiteUseCase handles getting a single site.
type GetSiteUseCase struct {
	siteRepo rack.SiteRepository
	logger   logger.Interface
}

// NewGetSiteUseCase creates a new GetSiteUseCase.
func NewGetSiteUseCase(siteRepo rack.SiteRepository, logger logger.Interface) *GetSiteUseCase {
	return &GetSiteUseCase{
		siteRepo: siteRepo,
		logger:   logger,
	}
}

// Execute retrieves a site by ID.
func (uc *GetSiteUseCase) Execute(ctx context.Context, query GetSiteQuery) (*dto.SiteDTO, error) {
	if query.ID == 0 {
		return nil, apperrors.NewValidationError("site ID is required")
	}

	s, err := uc.siteRepo.GetByID(ctx, query.ID)
	if err != nil {
		uc.logger.Errorw("failed to get site", "id", query.ID, "error", err)
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	if s == nil {
		return nil, apperrors.NewNotFoundError("site", fmt.Sprintf("%d", query.ID))
	}

	return dto.ToSiteDTO(s), nil
}

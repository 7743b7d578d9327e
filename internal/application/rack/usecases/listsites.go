package usecases

import (
	"context"
	"fmt"

	"patchbay/internal/application/rack/dto"
	"patchbay/internal/domain/rack"
	"patchbay/internal/shared/logger"
)

// ListSitesQuery represents the input for listing sites.
type ListSitesQuery struct {
	Page     int
	PageSize int
}

// ListSitesResult represents the output of listing sites.
type ListSitesResult struct {
	Sites []dto.SiteDTO `json:"sites"`
	Total int64         `json:"total"`
}

// ListSitesUseCase handles listing sites.
type ListSitesUseCase struct {
	siteRepo rack.SiteRepository
	logger   logger.Interface
}

// NewListSitesUseCase creates a new ListSitesUseCase.
func NewListSitesUseCase(siteRepo rack.SiteRepository, logger logger.Interface) *ListSitesUseCase {
	return &ListSitesUseCase{
		siteRepo: siteRepo,
		logger:   logger,
	}
}

// Execute lists sites with pagination.
func (uc *ListSitesUseCase) Execute(ctx context.Context, query ListSitesQuery) (*ListSitesResult, error) {
	offset := (query.Page - 1) * query.PageSize
	if offset < 0 {
		offset = 0
	}

	sites, total, err := uc.siteRepo.List(ctx, offset, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list sites", "error", err)
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}

	result := &ListSitesResult{
		Sites: make([]dto.SiteDTO, 0, len(sites)),
		Total: total,
	}
	for _, s := range sites {
		result.Sites = append(result.Sites, *dto.ToSiteDTO(s))
	}
	return result, nil
}

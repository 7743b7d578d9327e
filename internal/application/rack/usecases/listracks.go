package usecases

import (
	"context"
	"fmt"

	"patchbay/internal/application/rack/dto"
	"patchbay/internal/domain/rack"
	"patchbay/internal/shared/logger"
)

// ListRacksQuery represents the input for listing racks.
type ListRacksQuery struct {
	SiteID   uint // 0 lists across all sites
	Page     int
	PageSize int
}

// ListRacksResult represents a page of racks.
type ListRacksResult struct {
	Racks []dto.RackDTO `json:"racks"`
	Total int64         `json:"total"`
}

// ListRacksUseCase handles listing racks.
type ListRacksUseCase struct {
	rackRepo rack.Repository
	logger   logger.Interface
}

// NewListRacksUseCase creates a new ListRacksUseCase.
func NewListRacksUseCase(rackRepo rack.Repository, logger logger.Interface) *ListRacksUseCase {
	return &ListRacksUseCase{
		rackRepo: rackRepo,
		logger:   logger,
	}
}

// Execute lists racks, optionally scoped to one site.
func (uc *ListRacksUseCase) Execute(ctx context.Context, query ListRacksQuery) (*ListRacksResult, error) {
	offset := (query.Page - 1) * query.PageSize
	if offset < 0 {
		offset = 0
	}

	var (
		racks []*rack.Rack
		total int64
		err   error
	)
	if query.SiteID != 0 {
		racks, total, err = uc.rackRepo.ListBySite(ctx, query.SiteID, offset, query.PageSize)
	} else {
		racks, total, err = uc.rackRepo.List(ctx, offset, query.PageSize)
	}
	if err != nil {
		uc.logger.Errorw("failed to list racks", "error", err)
		return nil, fmt.Errorf("failed to list racks: %w", err)
	}

	out := make([]dto.RackDTO, 0, len(racks))
	for _, r := range racks {
		out = append(out, *dto.ToRackDTO(r))
	}
	return &ListRacksResult{Racks: out, Total: total}, nil
}

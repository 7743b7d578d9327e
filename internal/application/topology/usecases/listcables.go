package usecases

import (
	"context"
	"fmt"

	"patchbay/internal/application/topology/dto"
	"patchbay/internal/domain/topology"
	"patchbay/internal/shared/logger"
)

// ListCablesQuery represents the input for listing cables.
type ListCablesQuery struct {
	Page     int
	PageSize int
}

// ListCablesResult represents a page of cables.
type ListCablesResult struct {
	Cables []dto.CableDTO `json:"cables"`
	Total  int64          `json:"total"`
}

// ListCablesUseCase handles listing cables ordered by normalized length.
type ListCablesUseCase struct {
	cableRepo topology.CableRepository
	logger    logger.Interface
}

// NewListCablesUseCase creates a new ListCablesUseCase.
func NewListCablesUseCase(cableRepo topology.CableRepository, logger logger.Interface) *ListCablesUseCase {
	return &ListCablesUseCase{
		cableRepo: cableRepo,
		logger:    logger,
	}
}

// Execute lists cables.
func (uc *ListCablesUseCase) Execute(ctx context.Context, query ListCablesQuery) (*ListCablesResult, error) {
	cables, total, err := uc.cableRepo.List(ctx, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list cables", "error", err)
		return nil, fmt.Errorf("failed to list cables: %w", err)
	}

	out := make([]dto.CableDTO, 0, len(cables))
	for _, c := range cables {
		out = append(out, *dto.ToCableDTO(c))
	}
	return &ListCablesResult{Cables: out, Total: total}, nil
}

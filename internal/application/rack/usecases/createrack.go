package usecases

import (
	"context"
	"fmt"

	"patchbay/internal/application/rack/dto"
	"patchbay/internal/domain/rack"
	apperrors "patchbay/internal/shared/errors"
	"patchbay/internal/shared/logger"
)

// CreateRackCommand represents the input for creating a rack.
type CreateRackCommand struct {
	Name      string
	SiteID    uint
	UHeight   int
	DescUnits bool
}

// CreateRackUseCase handles rack creation.
type CreateRackUseCase struct {
	rackRepo rack.Repository
	siteRepo rack.SiteRepository
	logger   logger.Interface
}

// NewCreateRackUseCase creates a new CreateRackUseCase.
func NewCreateRackUseCase(rackRepo rack.Repository, siteRepo rack.SiteRepository, logger logger.Interface) *CreateRackUseCase {
	return &CreateRackUseCase{
		rackRepo: rackRepo,
		siteRepo: siteRepo,
		logger:   logger,
	}
}

// Execute creates a new rack.
func (uc *CreateRackUseCase) Execute(ctx context.Context, cmd CreateRackCommand) (*dto.RackDTO, error) {
	uc.logger.Infow("executing create rack use case", "name", cmd.Name, "site_id", cmd.SiteID)

	site, err := uc.siteRepo.GetByID(ctx, cmd.SiteID)
	if err != nil {
		uc.logger.Errorw("failed to get site", "id", cmd.SiteID, "error", err)
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	if site == nil {
		return nil, apperrors.NewNotFoundError("site", fmt.Sprintf("%d", cmd.SiteID))
	}

	r, err := rack.NewRack(cmd.Name, cmd.SiteID, cmd.UHeight, cmd.DescUnits)
	if err != nil {
		uc.logger.Errorw("failed to create rack entity", "error", err)
		return nil, apperrors.NewValidationError("invalid rack", err.Error())
	}

	if err := uc.rackRepo.Create(ctx, r); err != nil {
		uc.logger.Errorw("failed to persist rack", "error", err)
		return nil, fmt.Errorf("failed to save rack: %w", err)
	}

	uc.logger.Infow("rack created", "id", r.ID(), "name", cmd.Name)
	return dto.ToRackDTO(r), nil
}

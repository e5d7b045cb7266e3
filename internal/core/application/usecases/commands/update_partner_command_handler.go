package commands

import (
	"context"

	"dispatch/internal/core/domain/model/partner"
)

// UpdatePartnerCommandHandler handles the business logic for partner updates.
type UpdatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewUpdatePartnerCommandHandler creates a handler for partner update
// operations. Requires a PartnerUoWFactory for transactional persistence.
func NewUpdatePartnerCommandHandler(uowFactory PartnerUoWFactory) UpdatePartnerCommandHandler {
	return UpdatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner update command.
// Loads the partner, applies the requested status, replaces the served
// areas after verifying each one exists, sets or clears the shift, and
// overwrites the performance metrics when provided.
func (h *UpdatePartnerCommandHandler) Handle(ctx context.Context, cmd UpdatePartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()

	existing, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	areaRepo := uow.AreaRepository()
	for _, areaID := range cmd.AreaIDs() {
		if _, areaErr := areaRepo.Get(ctx, areaID); areaErr != nil {
			return areaErr
		}
	}

	if cmd.Status() == partner.Active {
		existing.Activate()
	} else {
		existing.Deactivate()
	}

	if err = existing.ReplaceAreas(cmd.AreaIDs()); err != nil {
		return err
	}

	if cmd.Shift() != nil {
		if err = existing.SetShift(*cmd.Shift()); err != nil {
			return err
		}
	} else {
		existing.ClearShift()
	}

	if cmd.Metrics() != nil {
		existing.UpdateMetrics(*cmd.Metrics())
	}

	if err = partnerRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

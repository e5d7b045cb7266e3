package commands

import (
	"context"
)

// DeletePartnerCommandHandler handles the business logic for partner removal.
type DeletePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewDeletePartnerCommandHandler creates a handler for partner removal
// operations.
func NewDeletePartnerCommandHandler(uowFactory PartnerUoWFactory) DeletePartnerCommandHandler {
	return DeletePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner removal command.
// Verifies the partner exists before deleting so unknown partners propagate
// errs.ErrObjectNotFound instead of deleting silently.
func (h *DeletePartnerCommandHandler) Handle(ctx context.Context, cmd DeletePartnerCommand) error {
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

	if _, err := partnerRepo.Get(ctx, cmd.PartnerID()); err != nil {
		return err
	}

	if err := partnerRepo.Delete(ctx, cmd.PartnerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
)

// DeleteAreaCommandHandler handles the business logic for area removal.
type DeleteAreaCommandHandler struct {
	uowFactory AreaUoWFactory
}

// NewDeleteAreaCommandHandler creates a handler for area removal operations.
func NewDeleteAreaCommandHandler(uowFactory AreaUoWFactory) DeleteAreaCommandHandler {
	return DeleteAreaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the area removal command.
// Verifies the area exists before deleting so unknown areas propagate
// errs.ErrObjectNotFound instead of deleting silently.
func (h *DeleteAreaCommandHandler) Handle(ctx context.Context, cmd DeleteAreaCommand) error {
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

	areaRepo := uow.AreaRepository()

	if _, err := areaRepo.Get(ctx, cmd.AreaID()); err != nil {
		return err
	}

	if err := areaRepo.Delete(ctx, cmd.AreaID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

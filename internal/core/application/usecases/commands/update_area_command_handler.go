package commands

import (
	"context"
)

// UpdateAreaCommandHandler handles the business logic for renaming areas.
type UpdateAreaCommandHandler struct {
	uowFactory AreaUoWFactory
}

// NewUpdateAreaCommandHandler creates a handler for area rename operations.
func NewUpdateAreaCommandHandler(uowFactory AreaUoWFactory) UpdateAreaCommandHandler {
	return UpdateAreaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the area rename command.
// Loads the area, applies the new name and persists the change in one
// transaction. Propagates errs.ErrObjectNotFound for unknown areas.
func (h *UpdateAreaCommandHandler) Handle(ctx context.Context, cmd UpdateAreaCommand) error {
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

	existing, err := areaRepo.Get(ctx, cmd.AreaID())
	if err != nil {
		return err
	}

	if err = existing.Rename(cmd.Name()); err != nil {
		return err
	}

	if err = areaRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

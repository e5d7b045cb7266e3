package commands

import (
	"context"

	"dispatch/internal/core/domain/model/area"
)

// CreateAreaCommandHandler handles the business logic for area creation.
type CreateAreaCommandHandler struct {
	uowFactory AreaUoWFactory
}

// NewCreateAreaCommandHandler creates a handler for area creation operations.
// Requires an AreaUoWFactory for transactional persistence.
func NewCreateAreaCommandHandler(uowFactory AreaUoWFactory) CreateAreaCommandHandler {
	return CreateAreaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the area creation command.
// Uses a transaction to ensure the area is properly persisted or rolled
// back on error.
func (h *CreateAreaCommandHandler) Handle(ctx context.Context, cmd CreateAreaCommand) error {
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

	newArea, err := area.NewArea(cmd.AreaID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.AreaRepository().Add(ctx, newArea); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler handles order status progression.
// Delivery releases the assigned partner's capacity and bumps their
// completed order counter, so the handler coordinates the order and
// partner aggregates in one transaction.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderPartnerUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status
// updates. Requires an OrderPartnerUoWFactory for coordinating transactional
// updates across both aggregates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderPartnerUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order status update command.
// Loads the order, applies the transition through the aggregate's state
// machine, and on delivery releases one unit of the partner's load and
// records the completion in the partner's metrics.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = existing.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if cmd.Status() == order.Delivered && existing.Partner() != nil {
		partnerRepo := uow.PartnerRepository()

		assigned, partnerErr := partnerRepo.Get(ctx, *existing.Partner())
		if partnerErr != nil {
			return partnerErr
		}

		if partnerErr = assigned.DecrementLoad(); partnerErr != nil {
			return partnerErr
		}
		assigned.UpdateMetrics(assigned.Metrics().RecordCompleted())

		if partnerErr = partnerRepo.Update(ctx, assigned); partnerErr != nil {
			return partnerErr
		}
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

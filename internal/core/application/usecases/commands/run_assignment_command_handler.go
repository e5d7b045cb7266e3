package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/domain/services"
)

var (
	// ErrNoPendingOrders is returned when a dispatch run finds nothing to
	// process. The run has zero side effects in this case.
	ErrNoPendingOrders = errors.New("no pending orders found")
	// ErrNoActivePartners is returned when no active partner has free
	// capacity. The run has zero side effects in this case.
	ErrNoActivePartners = errors.New("no active partners found")
)

// RunAssignmentResult summarizes one dispatch run. Callers get counts only;
// the per-order outcomes live in the assignment records.
type RunAssignmentResult struct {
	// Processed is the number of pending orders the run attempted.
	Processed int
	// Succeeded is the number of orders matched and committed.
	Succeeded int
	// Failed is the number of orders with a committed failure outcome.
	Failed int
}

// RunAssignmentCommandHandler orchestrates one dispatch run.
//
// The run works on an in-memory snapshot: pending orders and eligible
// partners are fetched once, then matched in a single greedy pass in input
// order. Partner load mutations on the snapshot are visible to later orders
// in the same run, so a partner never exceeds capacity within a run.
//
// Every processed order gets its own transaction through a fresh
// DispatchUoW: the order update, the partner load change and the appended
// outcome record commit or roll back together, and one order's failure
// never affects the others. An order whose transaction fails stays Pending
// in storage and is picked up by the next run.
//
// Concurrent Handle calls are serialized; the engine processes one run at
// a time.
//
// Example:
//
//	handler := NewRunAssignmentCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, NewRunAssignmentCommand())
//	switch {
//	case errors.Is(err, ErrNoPendingOrders):
//	    log.Println("No pending orders")
//	case errors.Is(err, ErrNoActivePartners):
//	    log.Println("No available partners")
//	case err != nil:
//	    log.Printf("Dispatch run failed: %v", err)
//	default:
//	    log.Printf("Dispatched %d orders: %d assigned, %d failed",
//	        result.Processed, result.Succeeded, result.Failed)
//	}
type RunAssignmentCommandHandler struct {
	uowFactory DispatchUoWFactory
	matcher    services.PartnerMatcher
	logger     *slog.Logger

	// mu serializes dispatch runs
	mu *sync.Mutex
}

// NewRunAssignmentCommandHandler creates a handler for dispatch runs with
// the default first-fit selection policy.
// Requires a DispatchUoWFactory for per-order transactional updates.
func NewRunAssignmentCommandHandler(uowFactory DispatchUoWFactory) RunAssignmentCommandHandler {
	return RunAssignmentCommandHandler{
		uowFactory: uowFactory,
		matcher:    services.NewPartnerMatcher(),
		logger:     slog.Default(),
		mu:         &sync.Mutex{},
	}
}

// Handle processes the dispatch run command.
//
// Fetches all pending orders and all active partners with free capacity,
// short-circuits empty inputs with ErrNoPendingOrders/ErrNoActivePartners,
// then runs the matching pass. Returns the run summary; the summary is
// valid even when an error is returned.
func (h RunAssignmentCommandHandler) Handle(
	ctx context.Context,
	command RunAssignmentCommand,
) (RunAssignmentResult, error) {
	if err := command.Validate(); err != nil {
		return RunAssignmentResult{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	orders, partners, err := h.fetchSnapshot(ctx)
	if err != nil {
		return RunAssignmentResult{}, err
	}

	if len(orders) == 0 {
		return RunAssignmentResult{}, ErrNoPendingOrders
	}
	if len(partners) == 0 {
		return RunAssignmentResult{}, ErrNoActivePartners
	}

	result := RunAssignmentResult{}
	for _, o := range orders {
		result.Processed++

		matched, matchErr := h.matcher.Match(o, partners)
		switch {
		case errors.Is(matchErr, services.ErrPartnerNotFound):
			if err = h.persistFailure(ctx, o); err != nil {
				h.logger.Error("failed to persist dispatch outcome, order stays pending",
					"orderId", o.ID().String(), "error", err)
				continue
			}
			result.Failed++
		case matchErr != nil:
			return result, matchErr
		default:
			if err = h.persistSuccess(ctx, o, matched); err != nil {
				h.logger.Error("failed to persist dispatch outcome, order stays pending",
					"orderId", o.ID().String(), "partnerId", matched.ID().String(), "error", err)
				// the load increment never committed, release the snapshot
				// slot so later orders see the partner's real capacity
				_ = matched.DecrementLoad()
				continue
			}
			result.Succeeded++
		}
	}

	return result, nil
}

// fetchSnapshot reads the run's working set: pending orders in creation
// order and active partners with free capacity. The read happens in its own
// short transaction; the snapshot is then matched entirely in memory.
func (h RunAssignmentCommandHandler) fetchSnapshot(
	ctx context.Context,
) ([]*order.Order, []*partner.Partner, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllInPendingStatus(ctx)
	if err != nil {
		return nil, nil, err
	}

	partners, err := uow.PartnerRepository().GetAllActiveWithCapacity(ctx)
	if err != nil {
		return nil, nil, err
	}

	return orders, partners, nil
}

// persistSuccess commits one successful match: the assigned order, the
// partner's incremented load and the Success outcome record in a single
// transaction.
func (h RunAssignmentCommandHandler) persistSuccess(
	ctx context.Context,
	o *order.Order,
	p *partner.Partner,
) error {
	record, err := assignment.NewSuccess(kernel.NewUUID(), o.ID(), p.ID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}
	if err = uow.PartnerRepository().Update(ctx, p); err != nil {
		return err
	}
	if err = uow.AssignmentRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// persistFailure commits one Failed outcome record in its own transaction.
// The order itself is untouched and stays Pending.
func (h RunAssignmentCommandHandler) persistFailure(ctx context.Context, o *order.Order) error {
	record, err := assignment.NewFailure(kernel.NewUUID(), o.ID(), assignment.ReasonNoSuitablePartner)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AssignmentRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

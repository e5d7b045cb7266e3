// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PartnerRepoFactory provides access to the partner repository within a transaction.
	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	// AreaRepoFactory provides access to the area repository within a transaction.
	AreaRepoFactory interface {
		AreaRepository() ports.AreaRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// AreaUoW manages transactions for area-only operations.
	AreaUoW interface {
		TxManager
		AreaRepoFactory
	}

	// AreaUoWFactory creates new area unit of work instances.
	AreaUoWFactory interface {
		Create() AreaUoW
	}

	// OrderUoW manages transactions for order operations.
	// Includes the area repository because order creation validates the
	// referenced area.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		AreaRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PartnerUoW manages transactions for partner operations.
	// Includes the area repository because partner registration validates
	// the served areas.
	PartnerUoW interface {
		TxManager
		PartnerRepoFactory
		AreaRepoFactory
	}

	// PartnerUoWFactory creates new partner unit of work instances.
	PartnerUoWFactory interface {
		Create() PartnerUoW
	}

	// OrderPartnerUoW manages transactions that touch an order and its
	// assigned partner together, such as status updates that release
	// partner capacity.
	OrderPartnerUoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
	}

	// OrderPartnerUoWFactory creates new order/partner unit of work instances.
	OrderPartnerUoWFactory interface {
		Create() OrderPartnerUoW
	}

	// DispatchUoW manages transactions for one dispatch effect: the order
	// update, the partner load change and the outcome record commit or
	// roll back together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   partnerRepo := uow.PartnerRepository()
	//   assignmentRepo := uow.AssignmentRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
		AssignmentRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	// The dispatch engine requests a fresh instance per processed order so
	// each order's effects are isolated.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/ports"
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

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DealerRepoFactory provides access to dealer repository within a transaction.
	DealerRepoFactory interface {
		DealerRepository() ports.DealerRepository
	}

	// ClientRepoFactory provides access to client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// CoverageRepoFactory provides access to coverage area repository within a transaction.
	CoverageRepoFactory interface {
		CoverageAreaRepository() ports.CoverageAreaRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order creation, which reads
	// the client aggregate before writing the order.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		ClientRepoFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// DispatchUoW manages transactions for the dispatch workflow, which
	// coordinates order, dealer, client and coverage reads under one
	// transaction boundary.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   dealerRepo := uow.DealerRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		DealerRepoFactory
		ClientRepoFactory
		CoverageRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// SyncUoW manages the primary-store read side of a replication batch.
	SyncUoW interface {
		TxManager
		OrderRepoFactory
		ClientRepoFactory
	}

	// SyncUoWFactory creates new replication unit of work instances.
	SyncUoWFactory interface {
		Create() SyncUoW
	}

	// CompanyRepoFactory provides access to company repository within a transaction.
	CompanyRepoFactory interface {
		CompanyRepository() ports.CompanyRepository
	}

	// StatsUoW manages transactions for the company counters recompute,
	// which reads completed orders, clients and coverage areas and
	// overwrites the derived counters on each company.
	StatsUoW interface {
		TxManager
		OrderRepoFactory
		ClientRepoFactory
		CompanyRepoFactory
		CoverageRepoFactory
	}

	// StatsUoWFactory creates new stats recompute unit of work instances.
	StatsUoWFactory interface {
		Create() StatsUoW
	}

	// RoutesUoW manages transactions for the dealer frequent-route
	// recompute, which reads completed orders and overwrites the derived
	// route on each dealer.
	RoutesUoW interface {
		TxManager
		OrderRepoFactory
		DealerRepoFactory
	}

	// RoutesUoWFactory creates new route recompute unit of work instances.
	RoutesUoWFactory interface {
		Create() RoutesUoW
	}
)

package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and gives out repositories bound to the
// current transaction. Client code must explicitly manage the transaction
// lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// DealerRepository returns a DealerRepository bound to the current transaction.
	DealerRepository() DealerRepository

	// ClientRepository returns a ClientRepository bound to the current transaction.
	ClientRepository() ClientRepository

	// CompanyRepository returns a CompanyRepository bound to the current transaction.
	CompanyRepository() CompanyRepository

	// CoverageAreaRepository returns a CoverageAreaRepository bound to the current transaction.
	CoverageAreaRepository() CoverageAreaRepository
}

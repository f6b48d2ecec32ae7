package ports

import (
	"context"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/dealer"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
)

// DealerRepository defines the persistence contract for dealer aggregates.
type DealerRepository interface {
	// Add persists a new dealer aggregate to storage.
	Add(ctx context.Context, aggregate *dealer.Dealer) error

	// Update persists changes to an existing dealer aggregate.
	Update(ctx context.Context, aggregate *dealer.Dealer) error

	// Get retrieves a dealer aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such dealer exists.
	Get(ctx context.Context, id kernel.UUID) (*dealer.Dealer, error)

	// GetForUpdate retrieves a dealer like Get but locks its row for the
	// duration of the surrounding transaction. Dispatch takes this lock
	// before checking for an active order: an idle dealer has no order row
	// to lock, so the dealer row itself is what serializes concurrent
	// assignments.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*dealer.Dealer, error)

	// GetAll retrieves every registered dealer.
	GetAll(ctx context.Context) ([]*dealer.Dealer, error)
}

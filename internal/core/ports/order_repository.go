package ports

import (
	"context"
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/order"
)

// ErrStaleOrder is returned by OrderRepository.Update when the stored status
// no longer matches the status the aggregate was loaded with. The caller
// lost a race with a concurrent transition and must reload before retrying.
var ErrStaleOrder = errors.New("order status changed concurrently")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// guarded on the status observed at load time; Update returns
	// ErrStaleOrder when another writer changed the status in between.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetActiveByDealer retrieves the dealer's order in InProgress status,
	// if any. Inside a transaction the matched row, when one exists, is
	// locked FOR UPDATE until commit. Returns nil without error when the
	// dealer has no active order.
	GetActiveByDealer(ctx context.Context, dealerID kernel.UUID) (*order.Order, error)

	// GetAllPending retrieves all orders awaiting dispatch.
	GetAllPending(ctx context.Context) ([]*order.Order, error)

	// GetAllInProgress retrieves all orders currently being delivered.
	GetAllInProgress(ctx context.Context) ([]*order.Order, error)

	// GetAllCompleted retrieves all orders in a terminal status, Delivered
	// or Failed. Used by the batch recompute jobs.
	GetAllCompleted(ctx context.Context) ([]*order.Order, error)
}

package ports

import (
	"context"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/client"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/order"
)

// ReplicaStore defines the contract for the secondary document store that
// mirrors orders and clients for analytical reads.
//
// Inserts are keyed by business id and idempotent: replaying an entity that
// is already present reports inserted=false instead of failing, so a sync
// batch can be retried safely.
type ReplicaStore interface {
	// EnsureIndexes creates the unique business-id indexes the idempotent
	// inserts rely on. Safe to call repeatedly.
	EnsureIndexes(ctx context.Context) error

	// InsertOrderIfAbsent copies the order into the replica unless a
	// document with the same business id already exists.
	InsertOrderIfAbsent(ctx context.Context, aggregate *order.Order) (inserted bool, err error)

	// InsertClientIfAbsent copies the client into the replica unless a
	// document with the same business id already exists.
	InsertClientIfAbsent(ctx context.Context, aggregate *client.Client) (inserted bool, err error)
}

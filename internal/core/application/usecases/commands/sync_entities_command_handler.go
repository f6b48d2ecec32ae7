package commands

import (
	"context"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/ports"
)

// SyncReport summarizes the outcome of one replication batch.
// Totals are counted per entity, not per entity kind.
type SyncReport struct {
	Synced  int
	Skipped int
	Failed  int
}

// SyncEntitiesCommandHandler copies finalized orders and clients into the
// secondary document store. Only terminal orders (Delivered or Failed) are
// replicated: their snapshot is immutable, so the insert-if-absent write
// never freezes a record that could still change in the primary store.
// Inserts are keyed by business id, so replaying an already replicated
// entity counts as skipped rather than failing. One bad row never aborts
// the batch: the failure is counted and the batch moves on.
type SyncEntitiesCommandHandler struct {
	uowFactory SyncUoWFactory
	replica    ports.ReplicaStore
}

// NewSyncEntitiesCommandHandler creates a handler for replication batches.
func NewSyncEntitiesCommandHandler(uowFactory SyncUoWFactory, replica ports.ReplicaStore) SyncEntitiesCommandHandler {
	return SyncEntitiesCommandHandler{
		uowFactory: uowFactory,
		replica:    replica,
	}
}

// Handle processes one replication batch and returns the per-entity tally.
// The primary store is read inside a transaction for a consistent snapshot;
// replica writes happen outside it and are individually idempotent.
func (h SyncEntitiesCommandHandler) Handle(ctx context.Context, command SyncEntitiesCommand) (SyncReport, error) {
	if err := command.Validate(); err != nil {
		return SyncReport{}, err
	}

	if err := h.replica.EnsureIndexes(ctx); err != nil {
		return SyncReport{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SyncReport{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	completed, err := uow.OrderRepository().GetAllCompleted(ctx)
	if err != nil {
		return SyncReport{}, err
	}

	clients, err := uow.ClientRepository().GetAll(ctx)
	if err != nil {
		return SyncReport{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SyncReport{}, err
	}

	var report SyncReport

	for _, o := range completed {
		inserted, err := h.replica.InsertOrderIfAbsent(ctx, o)
		report.tally(inserted, err)
	}

	for _, c := range clients {
		inserted, err := h.replica.InsertClientIfAbsent(ctx, c)
		report.tally(inserted, err)
	}

	return report, nil
}

func (r *SyncReport) tally(inserted bool, err error) {
	switch {
	case err != nil:
		r.Failed++
	case inserted:
		r.Synced++
	default:
		r.Skipped++
	}
}

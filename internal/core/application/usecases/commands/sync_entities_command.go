package commands

import (
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/guard"
)

// SyncEntitiesCommand triggers a replication batch that copies orders and
// clients from the primary store into the secondary document store.
//
// Example:
//
//	cmd := NewSyncEntitiesCommand()
//	handler := NewSyncEntitiesCommandHandler(uowFactory, replicaStore)
//
//	// Run periodically from a scheduled job
//	report, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Replication batch failed: %v", err)
//	}
type SyncEntitiesCommand struct {
	guard guard.ConstructorGuard
}

var ErrSyncEntitiesCommandIsNotConstructed = errors.New(
	"SyncEntitiesCommand must be created via NewSyncEntitiesCommand constructor",
)

// NewSyncEntitiesCommand creates a command to trigger a replication batch.
// This is a parameterless command that processes all replicable entities.
func NewSyncEntitiesCommand() SyncEntitiesCommand {
	command := SyncEntitiesCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
func (c *SyncEntitiesCommand) Validate() error {
	return c.guard.Validate(ErrSyncEntitiesCommandIsNotConstructed)
}

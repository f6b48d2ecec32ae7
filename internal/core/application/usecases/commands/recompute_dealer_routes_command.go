package commands

import (
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/guard"
)

// RecomputeDealerRoutesCommand triggers a batch recomputation of each
// dealer's most-frequent historical route from completed orders. Like the
// stats recompute, it only overwrites a derived field.
type RecomputeDealerRoutesCommand struct {
	guard guard.ConstructorGuard
}

var ErrRecomputeDealerRoutesCommandIsNotConstructed = errors.New(
	"RecomputeDealerRoutesCommand must be created via NewRecomputeDealerRoutesCommand constructor",
)

// NewRecomputeDealerRoutesCommand creates a command to trigger a route
// recomputation batch over all dealers.
func NewRecomputeDealerRoutesCommand() RecomputeDealerRoutesCommand {
	return RecomputeDealerRoutesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *RecomputeDealerRoutesCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeDealerRoutesCommandIsNotConstructed)
}

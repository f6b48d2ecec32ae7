package commands

import (
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/guard"
)

// RecomputeCompanyStatsCommand triggers a batch recomputation of the derived
// company counters: deliveries, failed deliveries and total sales. The batch
// only ever overwrites derived fields, so it may run concurrently with live
// dispatch traffic.
type RecomputeCompanyStatsCommand struct {
	guard guard.ConstructorGuard
}

var ErrRecomputeCompanyStatsCommandIsNotConstructed = errors.New(
	"RecomputeCompanyStatsCommand must be created via NewRecomputeCompanyStatsCommand constructor",
)

// NewRecomputeCompanyStatsCommand creates a command to trigger a stats
// recomputation batch over all companies.
func NewRecomputeCompanyStatsCommand() RecomputeCompanyStatsCommand {
	return RecomputeCompanyStatsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *RecomputeCompanyStatsCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeCompanyStatsCommandIsNotConstructed)
}

package commands

import (
	"context"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
)

// RecomputeDealerRoutesCommandHandler rebuilds each dealer's most-frequent
// route from the estimated routes of their completed orders. Routes are
// compared by their WKT text; on a frequency tie the lexicographically
// smaller text wins so reruns are deterministic. Dealers with no routed
// completed orders are left untouched.
type RecomputeDealerRoutesCommandHandler struct {
	uowFactory RoutesUoWFactory
}

// NewRecomputeDealerRoutesCommandHandler creates a handler for route
// recomputation batches.
func NewRecomputeDealerRoutesCommandHandler(uowFactory RoutesUoWFactory) RecomputeDealerRoutesCommandHandler {
	return RecomputeDealerRoutesCommandHandler{uowFactory: uowFactory}
}

// Handle executes the recomputation batch in a single transaction.
func (h RecomputeDealerRoutesCommandHandler) Handle(ctx context.Context, command RecomputeDealerRoutesCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	completed, err := uow.OrderRepository().GetAllCompleted(ctx)
	if err != nil {
		return err
	}

	// dealer id -> route WKT -> occurrence count
	routeCounts := make(map[string]map[string]int)
	for _, o := range completed {
		dealerID := o.Dealer()
		route := o.EstimatedRoute()
		if dealerID == nil || route == nil {
			continue
		}

		text, formatErr := kernel.FormatLineString(*route)
		if formatErr != nil {
			return formatErr
		}

		key := dealerID.String()
		if routeCounts[key] == nil {
			routeCounts[key] = make(map[string]int)
		}
		routeCounts[key][text]++
	}

	dealers, err := uow.DealerRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	for _, d := range dealers {
		counts := routeCounts[d.ID().String()]
		if len(counts) == 0 {
			continue
		}

		route, parseErr := kernel.ParseLineString(mostFrequentRoute(counts))
		if parseErr != nil {
			return parseErr
		}

		if err = d.ReplaceFrequentRoute(route); err != nil {
			return err
		}
		if err = uow.DealerRepository().Update(ctx, d); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func mostFrequentRoute(counts map[string]int) string {
	var best string
	bestCount := 0
	for text, count := range counts {
		if count > bestCount || (count == bestCount && (best == "" || text < best)) {
			best = text
			bestCount = count
		}
	}
	return best
}

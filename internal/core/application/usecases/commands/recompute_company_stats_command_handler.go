package commands

import (
	"context"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/client"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/company"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/order"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/services"
)

// RecomputeCompanyStatsCommandHandler rebuilds the derived counters of every
// company from completed orders.
//
// An order is attributed to a company when the placing client's position
// falls inside one of the company's coverage areas. Delivered orders count
// toward deliveries and total sales, failed orders toward failed deliveries.
// A company with no coverage areas keeps zero counters.
type RecomputeCompanyStatsCommandHandler struct {
	uowFactory StatsUoWFactory
	matcher    services.CoverageMatcher
}

// NewRecomputeCompanyStatsCommandHandler creates a handler for stats
// recomputation batches.
func NewRecomputeCompanyStatsCommandHandler(uowFactory StatsUoWFactory) RecomputeCompanyStatsCommandHandler {
	return RecomputeCompanyStatsCommandHandler{
		uowFactory: uowFactory,
		matcher:    services.NewCoverageMatcher(),
	}
}

// Handle executes the recomputation batch in a single transaction.
func (h RecomputeCompanyStatsCommandHandler) Handle(ctx context.Context, command RecomputeCompanyStatsCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	companies, err := uow.CompanyRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	completed, err := uow.OrderRepository().GetAllCompleted(ctx)
	if err != nil {
		return err
	}

	clients, err := uow.ClientRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	clientsByID := make(map[string]*client.Client, len(clients))
	for _, c := range clients {
		clientsByID[c.ID().String()] = c
	}

	for _, c := range companies {
		stats, statsErr := h.computeStats(ctx, uow, c, completed, clientsByID)
		if statsErr != nil {
			return statsErr
		}

		if err = c.ReplaceStats(stats); err != nil {
			return err
		}
		if err = uow.CompanyRepository().Update(ctx, c); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h RecomputeCompanyStatsCommandHandler) computeStats(
	ctx context.Context,
	uow StatsUoW,
	c *company.Company,
	completed []*order.Order,
	clientsByID map[string]*client.Client,
) (company.Stats, error) {
	areas, err := uow.CoverageAreaRepository().GetByCompany(ctx, c.ID())
	if err != nil {
		return company.Stats{}, err
	}
	if len(areas) == 0 {
		return company.Stats{}, nil
	}

	var stats company.Stats
	for _, o := range completed {
		placedBy, ok := clientsByID[o.ClientID().String()]
		if !ok {
			continue
		}

		covered, coverErr := h.matcher.IsClientCovered(placedBy.Location(), areas)
		if coverErr != nil {
			return company.Stats{}, coverErr
		}
		if !covered {
			continue
		}

		switch o.Status() {
		case order.Delivered:
			stats.Deliveries++
			stats.TotalSales += o.TotalPrice()
		case order.Failed:
			stats.FailedDeliveries++
		}
	}

	return stats, nil
}

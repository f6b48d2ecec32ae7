package jobs

import (
	"context"
	"log/slog"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DealerRouteJob manages the scheduled recomputation of each dealer's
// most-frequent historical route.
type DealerRouteJob struct {
	handler  commands.RecomputeDealerRoutesCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDealerRouteJob creates a new job for dealer route recomputation running
// on the given six-field cron schedule.
func NewDealerRouteJob(handler commands.RecomputeDealerRoutesCommandHandler, schedule string, logger *slog.Logger) *DealerRouteJob {
	return &DealerRouteJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "dealer_route_job"),
	}
}

// Start begins the recomputation batch on its schedule.
func (j *DealerRouteJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewRecomputeDealerRoutesCommand()

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Dealer route recompute failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Dealer route recompute finished")
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dealer route job started", "schedule", j.schedule)
	return nil
}

// Stop stops the dealer route job.
func (j *DealerRouteJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dealer route job stopped")
}

package jobs

import (
	"context"
	"log/slog"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CompanyStatsJob manages the scheduled recomputation of the derived company
// counters. The batch overwrites derived fields only, so it runs safely next
// to live dispatch traffic.
type CompanyStatsJob struct {
	handler  commands.RecomputeCompanyStatsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCompanyStatsJob creates a new job for company stats recomputation
// running on the given six-field cron schedule.
func NewCompanyStatsJob(handler commands.RecomputeCompanyStatsCommandHandler, schedule string, logger *slog.Logger) *CompanyStatsJob {
	return &CompanyStatsJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "company_stats_job"),
	}
}

// Start begins the recomputation batch on its schedule.
func (j *CompanyStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewRecomputeCompanyStatsCommand()

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Company stats recompute failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Company stats recompute finished")
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Company stats job started", "schedule", j.schedule)
	return nil
}

// Stop stops the company stats job.
func (j *CompanyStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Company stats job stopped")
}

package jobs

import (
	"context"
	"log/slog"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReplicationSyncJob manages the scheduled replication batch that copies
// orders and clients into the secondary document store.
type ReplicationSyncJob struct {
	handler  commands.SyncEntitiesCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReplicationSyncJob creates a new job for replication batches running on
// the given six-field cron schedule.
func NewReplicationSyncJob(handler commands.SyncEntitiesCommandHandler, schedule string, logger *slog.Logger) *ReplicationSyncJob {
	return &ReplicationSyncJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "replication_sync_job"),
	}
}

// Start begins the replication batch on its schedule.
func (j *ReplicationSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewSyncEntitiesCommand()

		report, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Replication batch failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Replication batch finished",
			"synced", report.Synced,
			"skipped", report.Skipped,
			"failed", report.Failed,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Replication sync job started", "schedule", j.schedule)
	return nil
}

// Stop stops the replication sync job.
func (j *ReplicationSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Replication sync job stopped")
}

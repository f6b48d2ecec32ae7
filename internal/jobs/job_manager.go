package jobs

import (
	"fmt"
	"log/slog"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/application/usecases/commands"
)

// Schedules holds the six-field cron expressions for every background job.
type Schedules struct {
	ReplicationSync string
	CompanyStats    string
	DealerRoutes    string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	replicationSyncJob *ReplicationSyncJob
	companyStatsJob    *CompanyStatsJob
	dealerRouteJob     *DealerRouteJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	syncHandler commands.SyncEntitiesCommandHandler,
	statsHandler commands.RecomputeCompanyStatsCommandHandler,
	routesHandler commands.RecomputeDealerRoutesCommandHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		replicationSyncJob: NewReplicationSyncJob(syncHandler, schedules.ReplicationSync, logger),
		companyStatsJob:    NewCompanyStatsJob(statsHandler, schedules.CompanyStats, logger),
		dealerRouteJob:     NewDealerRouteJob(routesHandler, schedules.DealerRoutes, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.replicationSyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start replication sync job: %w", err)
	}

	if err := jm.companyStatsJob.Start(); err != nil {
		jm.replicationSyncJob.Stop()
		return fmt.Errorf("failed to start company stats job: %w", err)
	}

	if err := jm.dealerRouteJob.Start(); err != nil {
		jm.companyStatsJob.Stop()
		jm.replicationSyncJob.Stop()
		return fmt.Errorf("failed to start dealer route job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dealerRouteJob.Stop()
	jm.companyStatsJob.Stop()
	jm.replicationSyncJob.Stop()
}

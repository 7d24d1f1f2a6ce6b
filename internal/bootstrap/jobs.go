package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/QuestBoard_Go/internal/activity"
	"github.com/osse101/QuestBoard_Go/internal/config"
	"github.com/osse101/QuestBoard_Go/internal/worker"
)

// StartJobs registers the periodic jobs, warms the mission catalog and starts the scheduler
func StartJobs(ctx context.Context, cfg *config.Config, svcs *Services, clock clockwork.Clock) (*worker.Scheduler, error) {
	sched, err := worker.NewScheduler(clock, JobTimeout)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateSchedule, err)
	}

	if err := RegisterJobs(sched, cfg, svcs); err != nil {
		return nil, err
	}

	warmCtx, cancel := context.WithTimeout(ctx, CatalogWarmTimeout)
	defer cancel()
	if err := svcs.Mission.RefreshCatalog(warmCtx); err != nil {
		slog.Warn(LogMsgCatalogWarmFailed, "error", err)
	}

	sched.Start()
	return sched, nil
}

// RegisterJobs adds the catalog refresh and activity cleanup jobs to sched
func RegisterJobs(sched *worker.Scheduler, cfg *config.Config, svcs *Services) error {
	if err := sched.Every(worker.JobNameCatalogRefresh, cfg.CatalogRefreshInterval,
		worker.JobFunc(svcs.Mission.RefreshCatalog)); err != nil {
		return fmt.Errorf(ErrMsgRegisterJobs, err)
	}

	cleanup := activity.NewCleanupJob(svcs.Activity, cfg.ActivityRetentionDays)
	if err := sched.Every(worker.JobNameActivityCleanup, cfg.ActivityCleanupEvery, cleanup); err != nil {
		return fmt.Errorf(ErrMsgRegisterJobs, err)
	}

	slog.Info(LogMsgJobsRegistered,
		"catalog_refresh_every", cfg.CatalogRefreshInterval,
		"activity_cleanup_every", cfg.ActivityCleanupEvery,
		"activity_retention_days", cfg.ActivityRetentionDays)
	return nil
}

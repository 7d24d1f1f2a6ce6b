package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/QuestBoard_Go/internal/database"
	"github.com/osse101/QuestBoard_Go/internal/server"
	"github.com/osse101/QuestBoard_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     *server.Server
	Scheduler  *worker.Scheduler
	CloseCache func() error
	DBPool     database.Pool
}

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server (stop accepting new requests, finish in-flight ones)
// 2. Scheduler (cancel and wait for running jobs)
// 3. Cache and database connections
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		if err := components.Scheduler.Shutdown(ctx); err != nil {
			slog.Error(LogMsgSchedulerShutdownFail, "error", err)
		}
	}

	if components.CloseCache != nil {
		if err := components.CloseCache(); err != nil {
			slog.Error(LogMsgCacheCloseFailed, "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}

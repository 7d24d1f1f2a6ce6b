package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/QuestBoard_Go/internal/bootstrap"
	"github.com/osse101/QuestBoard_Go/internal/config"
	"github.com/osse101/QuestBoard_Go/internal/database"
	"github.com/osse101/QuestBoard_Go/internal/server"
	"github.com/osse101/QuestBoard_Go/migrations"
)

// @title QuestBoard API
// @version 1.0
// @description Missions, inventory and progression for the QuestBoard game.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	warnings, err := cfg.ValidateEnvWithWarnings()
	if err != nil {
		if !cfg.IsDev() {
			return err
		}
		slog.Warn("Environment check failed, continuing in dev mode", "error", err)
	}
	for _, warning := range warnings {
		slog.Warn("Environment check", "warning", warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := clockwork.NewRealClock()

	dbPool, err := database.NewPool(cfg.DBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(ctx, dbPool, migrations.FS); err != nil {
		dbPool.Close()
		return err
	}

	appCache, closeCache, err := bootstrap.NewCache(ctx, cfg, clock)
	if err != nil {
		dbPool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	svcs, err := bootstrap.InitializeServices(cfg, repos, appCache, clock)
	if err != nil {
		_ = closeCache()
		dbPool.Close()
		return err
	}

	sched, err := bootstrap.StartJobs(ctx, cfg, svcs, clock)
	if err != nil {
		_ = closeCache()
		dbPool.Close()
		return err
	}

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		CORSOrigins:     cfg.CORSOrigins,
		MaxRequestBytes: cfg.MaxRequestBytes,
		TrustedProxies:  cfg.TrustedProxies,
		DevMode:         cfg.IsDev(),
	}, server.Dependencies{
		DBPool:    dbPool,
		Tokens:    svcs.Tokens,
		Missions:  svcs.Mission,
		Inventory: svcs.Inventory,
		Users:     svcs.User,
		Activity:  svcs.Activity,
		Clock:     clock,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		runErr = err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		CloseCache: closeCache,
		DBPool:     dbPool,
	})
	return runErr
}

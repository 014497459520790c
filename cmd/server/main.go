// Package main is the entry point for the course tracking API server. It
// loads configuration, wires the application's dependencies, optionally runs
// database migrations, and serves HTTP until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/coursetrack/coursetrack-api/internal/config"
	"github.com/coursetrack/coursetrack-api/internal/platform/logger"
)

func main() {
	migrate := flag.Bool("migrate", false, "run pending database migrations before starting")
	migrateOnly := flag.Bool("migrate-only", false, "run pending database migrations and exit")
	flag.Parse()

	if err := run(*migrate || *migrateOnly, *migrateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration, builds the application, and serves until the
// process receives SIGINT or SIGTERM.
func run(migrate, migrateOnly bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.Close()

	if migrate {
		if err := app.RunMigrations(ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		if migrateOnly {
			log.Info("migrations complete, exiting")
			return nil
		}
	}

	log.Info("starting server",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	return app.Run(ctx)
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/onchainsentry/internal/app"
	"github.com/gabapcia/onchainsentry/internal/config"
	"github.com/gabapcia/onchainsentry/internal/handlers/cli"
	"github.com/gabapcia/onchainsentry/internal/pkg/logger"
	"github.com/gabapcia/onchainsentry/internal/pkg/telemetry"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			_ = shutdown(ctx)
		}()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	svc, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}

	return cli.Run(ctx, svc)
}

// Command addrwatch watches EVM addresses and reports every transaction they
// send or receive.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/addrwatch/internal/config"
	"github.com/gabapcia/addrwatch/internal/handlers/cli"
	"github.com/gabapcia/addrwatch/internal/pkg/logger"
	"github.com/gabapcia/addrwatch/internal/pkg/telemetry"
)

const telemetryShutdownTimeout = 5 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	var tel *telemetry.Telemetry
	if cfg.Telemetry.Enabled {
		if tel, err = telemetry.Init(ctx, cfg.Telemetry.ServiceName); err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}

		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
			defer cancel()

			_ = tel.Shutdown(shutdownCtx)
		}()
	}

	loggerOpts := []logger.Option{logger.WithLevel(cfg.LogLevel)}
	if lp := tel.LoggerProvider(); lp != nil {
		loggerOpts = append(loggerOpts, logger.WithLoggerProvider(lp))
	}

	log, err := logger.New(loggerOpts...)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	w := &wiring{cfg: cfg, logger: log}
	return cli.Run(ctx, os.Args, cli.Dependencies{
		Registry: w.registry,
		Pipeline: w.pipeline,
	})
}

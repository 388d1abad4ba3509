package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// ErrPipelineStopped is returned by the start command when the monitor exits
// on its own, for instance after losing the block subscription.
var ErrPipelineStopped = errors.New("monitor stopped unexpectedly")

// startPipelineCommand returns a CLI command that runs the monitor.
//
// Usage example:
//
//	addrwatch start
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM).
func startPipelineCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts watching the configured addresses and delivering notifications.",
		Usage:       "Runs the monitor. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			p, err := deps.Pipeline(ctx)
			if err != nil {
				return err
			}

			defer p.Close()

			if err := p.Start(ctx); err != nil {
				return err
			}

			select {
			case <-ctx.Done():
				return nil
			case <-p.Done():
				if ctx.Err() != nil {
					return nil
				}
				return ErrPipelineStopped
			}
		},
	}
}

package cli

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"
)

// ErrRegistryUnavailable is returned by wallet commands when no registry
// backend is configured.
var ErrRegistryUnavailable = errors.New("wallet registry unavailable: REDIS_ADDR is not set")

// Registry is the wallet registry used by the watch, unwatch and list commands.
type Registry interface {
	StartWatching(ctx context.Context, network, address string) error
	StopWatching(ctx context.Context, network, address string) error
	ListWatching(ctx context.Context, network string) ([]string, error)
}

// Pipeline is the monitor run by the start command.
type Pipeline interface {
	Start(ctx context.Context) error
	Done() <-chan struct{}
	Close()
}

// Dependencies builds the services on demand, so that each command only
// connects to what it uses. A nil Registry makes the wallet commands fail
// with ErrRegistryUnavailable.
type Dependencies struct {
	Registry func(ctx context.Context) (Registry, error)
	Pipeline func(ctx context.Context) (Pipeline, error)
}

func (d Dependencies) registry(ctx context.Context) (Registry, error) {
	if d.Registry == nil {
		return nil, ErrRegistryUnavailable
	}
	return d.Registry(ctx)
}

// newApp builds the root command.
func newApp(deps Dependencies) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "addrwatch",
		Description:           "Watches EVM addresses and reports every transaction they send or receive.",
		Usage:                 "addrwatch [command] [flags]",
		Commands: []*cli.Command{
			startPipelineCommand(deps),
			startWatchingWalletCommand(deps),
			stopWatchingWalletCommand(deps),
			listWatchedWalletsCommand(deps),
		},
	}
}

// Run executes the addrwatch CLI with args, usually os.Args.
//
// Commands:
//
//   - `start`: runs the monitor until SIGINT or SIGTERM.
//   - `watch`: registers a wallet for monitoring.
//   - `unwatch`: unregisters a wallet.
//   - `list`: prints the registered wallets of a network.
func Run(ctx context.Context, args []string, deps Dependencies) error {
	return newApp(deps).Run(ctx, args)
}

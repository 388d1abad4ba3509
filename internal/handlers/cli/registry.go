package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func networkFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "network",
		Usage:   "Blockchain network name (e.g., ethereum, sepolia)",
		Value:   "ethereum",
		Sources: cli.EnvVars("NETWORK"),
	}
}

// startWatchingWalletCommand returns a CLI command that registers a wallet
// address for activity monitoring on a network.
//
// Usage example:
//
//	addrwatch watch --network ethereum --address 0xABC123...
func startWatchingWalletCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Register a wallet to be monitored for transaction activity on a specific network.",
		Usage:       "Registers a wallet address for watching. Takes effect on the next start.",
		Flags: []cli.Flag{
			networkFlag(),
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to start watching",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			wr, err := deps.registry(ctx)
			if err != nil {
				return err
			}

			return wr.StartWatching(ctx, c.String("network"), c.String("address"))
		},
	}
}

// stopWatchingWalletCommand returns a CLI command that unregisters a wallet
// address on a network.
//
// Usage example:
//
//	addrwatch unwatch --network ethereum --address 0xABC123...
func stopWatchingWalletCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "unwatch",
		Description: "Unregister a wallet from being monitored on a specific network.",
		Usage:       "Stops watching a wallet address. Takes effect on the next start.",
		Flags: []cli.Flag{
			networkFlag(),
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to stop watching",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			wr, err := deps.registry(ctx)
			if err != nil {
				return err
			}

			return wr.StopWatching(ctx, c.String("network"), c.String("address"))
		},
	}
}

// listWatchedWalletsCommand returns a CLI command that prints the registered
// wallets of a network, one per line.
func listWatchedWalletsCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "List the wallets registered for monitoring on a specific network.",
		Usage:       "Prints the registered wallet addresses.",
		Flags:       []cli.Flag{networkFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			wr, err := deps.registry(ctx)
			if err != nil {
				return err
			}

			network := c.String("network")
			addresses, err := wr.ListWatching(ctx, network)
			if err != nil {
				return err
			}

			w := c.Root().Writer
			if len(addresses) == 0 {
				_, err := fmt.Fprintf(w, "no wallets registered on %s\n", network)
				return err
			}

			for _, address := range addresses {
				if _, err := fmt.Fprintln(w, address); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

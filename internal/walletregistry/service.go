// Package walletregistry keeps the persistent list of addresses that the
// monitor loads at startup next to the ones from WATCH_ADDRESS.
package walletregistry

import "context"

// Service manages the registered addresses of each network.
type Service interface {
	// StartWatching registers address on network. Registering twice is a no-op.
	StartWatching(ctx context.Context, network, address string) error

	// StopWatching removes address from network. Unknown addresses are ignored.
	StopWatching(ctx context.Context, network, address string) error

	// ListWatching returns the registered addresses of network, sorted.
	ListWatching(ctx context.Context, network string) ([]string, error)
}

type service struct {
	walletStorage WalletStorage
}

var _ Service = (*service)(nil)

// New returns a Service backed by ws.
func New(ws WalletStorage) *service {
	return &service{walletStorage: ws}
}

package walletregistry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/addrwatch/internal/pkg/validator"
)

// ErrInvalidNetwork is returned when ListWatching receives an empty network.
var ErrInvalidNetwork = errors.New("network is required")

// WalletIdentifier uniquely identifies a wallet to be monitored,
// using a combination of blockchain network and address.
//
// Address is stored lower-cased so that checksummed and plain inputs map to
// the same registry entry.
type WalletIdentifier struct {
	Network string `validate:"required"`          // Blockchain network (e.g., "ethereum", "sepolia")
	Address string `validate:"required,eth_addr"` // 0x-prefixed 20-byte hex address
}

// WalletStorage defines the persistence interface for the registry.
type WalletStorage interface {
	// RegisterWallet adds the given WalletIdentifier to the list of watched wallets.
	//
	// This method should be idempotent and safe to call multiple times with the same ID.
	RegisterWallet(ctx context.Context, id WalletIdentifier) error

	// UnregisterWallet removes the given WalletIdentifier from the list of watched wallets.
	// Removing an unknown wallet is not an error.
	UnregisterWallet(ctx context.Context, id WalletIdentifier) error

	// ListWallets returns every address registered for network.
	ListWallets(ctx context.Context, network string) ([]string, error)
}

// buildWalletIdentifier constructs and validates a WalletIdentifier using the
// given network and address. It returns an error if validation fails.
func buildWalletIdentifier(network, address string) (WalletIdentifier, error) {
	id := WalletIdentifier{
		Network: strings.TrimSpace(network),
		Address: strings.ToLower(strings.TrimSpace(address)),
	}

	return id, validator.Validate(id)
}

// StartWatching registers a wallet for monitoring based on its network and address.
func (s *service) StartWatching(ctx context.Context, network, address string) error {
	id, err := buildWalletIdentifier(network, address)
	if err != nil {
		return err
	}

	if err := s.walletStorage.RegisterWallet(ctx, id); err != nil {
		return fmt.Errorf("register %s on %s: %w", id.Address, id.Network, err)
	}
	return nil
}

// StopWatching unregisters a wallet from monitoring based on its network and address.
func (s *service) StopWatching(ctx context.Context, network, address string) error {
	id, err := buildWalletIdentifier(network, address)
	if err != nil {
		return err
	}

	if err := s.walletStorage.UnregisterWallet(ctx, id); err != nil {
		return fmt.Errorf("unregister %s on %s: %w", id.Address, id.Network, err)
	}
	return nil
}

// ListWatching returns the addresses registered for network.
func (s *service) ListWatching(ctx context.Context, network string) ([]string, error) {
	network = strings.TrimSpace(network)
	if network == "" {
		return nil, ErrInvalidNetwork
	}

	addresses, err := s.walletStorage.ListWallets(ctx, network)
	if err != nil {
		return nil, fmt.Errorf("list wallets on %s: %w", network, err)
	}
	return addresses, nil
}

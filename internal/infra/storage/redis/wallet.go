package redis

import (
	"context"
	"fmt"
	"slices"

	"github.com/gabapcia/addrwatch/internal/walletregistry"
)

// walletStoragePrefix defines the base key prefix used for storing
// watched wallet addresses in Redis.
const walletStoragePrefix = "wallet"

// walletStorageKey returns the Redis key under which watched wallet addresses
// are stored for the specified blockchain network.
//
// Format: "wallet:storage:{network}"
func walletStorageKey(network string) string {
	return fmt.Sprintf("%s:storage:%s", walletStoragePrefix, network)
}

// RegisterWallet adds the address to the set of its network. Adding an
// address twice is a no-op.
func (c *client) RegisterWallet(ctx context.Context, id walletregistry.WalletIdentifier) error {
	return c.conn.SAdd(ctx, walletStorageKey(id.Network), id.Address).Err()
}

// UnregisterWallet removes the address from the set of its network.
func (c *client) UnregisterWallet(ctx context.Context, id walletregistry.WalletIdentifier) error {
	return c.conn.SRem(ctx, walletStorageKey(id.Network), id.Address).Err()
}

// ListWallets returns the addresses registered for network, sorted.
func (c *client) ListWallets(ctx context.Context, network string) ([]string, error) {
	addresses, err := c.conn.SMembers(ctx, walletStorageKey(network)).Result()
	if err != nil {
		return nil, err
	}

	slices.Sort(addresses)
	return addresses, nil
}

// Compile-time assertion to ensure *client satisfies the walletregistry.WalletStorage interface
var _ walletregistry.WalletStorage = new(client)

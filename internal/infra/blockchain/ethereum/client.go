// Package ethereum reads Ethereum-compatible nodes through the JSON-RPC
// HTTP API. New blocks are discovered by polling eth_blockNumber.
package ethereum

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/addrwatch/internal/dispatch"
	"github.com/gabapcia/addrwatch/internal/pkg/logger"
	"github.com/gabapcia/addrwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/addrwatch/internal/pkg/types"
	"github.com/gabapcia/addrwatch/internal/txwatch"
)

// DefaultPollInterval is the average Ethereum block time.
const DefaultPollInterval = 12 * time.Second

// Option configures the client.
type Option func(*client)

// client implements txwatch.ChainReader and dispatch.ChainSource on top of a
// JSON-RPC connection.
type client struct {
	conn         jsonrpc.Client
	pollInterval time.Duration
	logger       *logger.Logger
}

var (
	_ txwatch.ChainReader  = (*client)(nil)
	_ dispatch.ChainSource = (*client)(nil)
)

// NewClient creates an Ethereum reader using the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	c := &client{
		conn:         conn,
		pollInterval: DefaultPollInterval,
		logger:       logger.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithPollInterval sets how often SubscribeNewBlocks asks for the latest
// height. Non-positive values are ignored.
func WithPollInterval(d time.Duration) Option {
	return func(c *client) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// WithLogger sets the logger used to report polling failures.
func WithLogger(l *logger.Logger) Option {
	return func(c *client) {
		if l != nil {
			c.logger = l
		}
	}
}

// quantity calls a method whose result is a single quantity.
func (c *client) quantity(ctx context.Context, method string) (uint64, error) {
	var result types.Hex
	if err := c.conn.Call(ctx, &result, method); err != nil {
		return 0, err
	}

	n, err := result.Uint64()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", method, err)
	}

	return n, nil
}

// BlockNumber returns the height of the most recent block.
func (c *client) BlockNumber(ctx context.Context) (uint64, error) {
	return c.quantity(ctx, "eth_blockNumber")
}

// ChainID returns the chain id of the connected network.
func (c *client) ChainID(ctx context.Context) (uint64, error) {
	return c.quantity(ctx, "eth_chainId")
}

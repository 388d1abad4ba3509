// Package ethclient reads Ethereum-compatible nodes through go-ethereum's
// RPC client. New blocks are delivered by a newHeads subscription, which
// requires a websocket or IPC endpoint.
package ethclient

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	gethclient "github.com/ethereum/go-ethereum/ethclient"

	"github.com/gabapcia/addrwatch/internal/dispatch"
	"github.com/gabapcia/addrwatch/internal/pkg/logger"
	"github.com/gabapcia/addrwatch/internal/txwatch"
)

// backend is the part of *ethclient.Client used by this package.
type backend interface {
	BlockNumber(ctx context.Context) (uint64, error)
	BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
	SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error)
	ChainID(ctx context.Context) (*big.Int, error)
	Close()
}

var _ backend = (*gethclient.Client)(nil)

// Option configures the client.
type Option func(*client)

// WithLogger sets the logger used to report subscription failures.
func WithLogger(l *logger.Logger) Option {
	return func(c *client) {
		if l != nil {
			c.logger = l
		}
	}
}

// client implements txwatch.ChainReader and dispatch.ChainSource.
type client struct {
	conn    backend
	chainID *big.Int
	signer  types.Signer
	logger  *logger.Logger
}

var (
	_ txwatch.ChainReader  = (*client)(nil)
	_ dispatch.ChainSource = (*client)(nil)
)

func newClient(conn backend, chainID *big.Int, opts ...Option) *client {
	c := &client{
		conn:    conn,
		chainID: chainID,
		signer:  types.LatestSignerForChainID(chainID),
		logger:  logger.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Dial connects to rawURL and reads the chain id, which is needed to recover
// transaction senders.
func Dial(ctx context.Context, rawURL string, opts ...Option) (*client, error) {
	conn, err := gethclient.DialContext(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	chainID, err := conn.ChainID(ctx)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("read chain id: %w", err)
	}

	return newClient(conn, chainID, opts...), nil
}

// Close releases the underlying connection.
func (c *client) Close() {
	c.conn.Close()
}

// ChainID returns the chain id read at dial time.
func (c *client) ChainID(context.Context) (uint64, error) {
	return c.chainID.Uint64(), nil
}

// BlockNumber returns the height of the most recent block.
func (c *client) BlockNumber(ctx context.Context) (uint64, error) {
	return c.conn.BlockNumber(ctx)
}

// BlockByNumber fetches the block and keeps only its header data and
// transaction hashes.
func (c *client) BlockByNumber(ctx context.Context, number uint64) (txwatch.Block, error) {
	block, err := c.conn.BlockByNumber(ctx, new(big.Int).SetUint64(number))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return txwatch.Block{}, fmt.Errorf("%w: %d", txwatch.ErrBlockNotFound, number)
		}
		return txwatch.Block{}, err
	}

	txs := block.Transactions()
	hashes := make([]string, len(txs))
	for i, tx := range txs {
		hashes[i] = tx.Hash().Hex()
	}

	return txwatch.Block{
		Number:            block.NumberU64(),
		Hash:              block.Hash().Hex(),
		Timestamp:         blockTime(block.Time()),
		TransactionHashes: hashes,
	}, nil
}

// TransactionByHash fetches a transaction and recovers its sender.
func (c *client) TransactionByHash(ctx context.Context, hash string) (txwatch.RawTransaction, error) {
	tx, _, err := c.conn.TransactionByHash(ctx, common.HexToHash(hash))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return txwatch.RawTransaction{}, fmt.Errorf("%w: %s", txwatch.ErrTransactionNotFound, hash)
		}
		return txwatch.RawTransaction{}, err
	}

	return c.toRawTransaction(tx)
}

func (c *client) toRawTransaction(tx *types.Transaction) (txwatch.RawTransaction, error) {
	from, err := types.Sender(c.signer, tx)
	if err != nil {
		return txwatch.RawTransaction{}, fmt.Errorf("recover sender of %s: %w", tx.Hash().Hex(), err)
	}

	raw := txwatch.RawTransaction{
		Hash:     tx.Hash().Hex(),
		From:     strings.ToLower(from.Hex()),
		Value:    new(big.Int).Set(tx.Value()),
		GasPrice: new(big.Int).Set(tx.GasPrice()),
		GasLimit: tx.Gas(),
	}

	if to := tx.To(); to != nil {
		raw.To = strings.ToLower(to.Hex())
	}

	return raw, nil
}

func blockTime(seconds uint64) time.Time {
	return time.Unix(int64(seconds), 0).UTC()
}

package ethereum

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/addrwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/addrwatch/internal/pkg/types"
	"github.com/gabapcia/addrwatch/internal/txwatch"
)

type (
	// blockResponse is the subset of eth_getBlockByNumber used by the
	// scanner, requested without full transaction objects.
	blockResponse struct {
		Hash         string    `json:"hash"`
		Number       types.Hex `json:"number"`
		Timestamp    types.Hex `json:"timestamp"`
		Transactions []string  `json:"transactions"`
	}

	// transactionResponse is the subset of eth_getTransactionByHash used by
	// the scanner.
	transactionResponse struct {
		Hash     string     `json:"hash"`
		From     string     `json:"from"`
		To       *string    `json:"to"`
		Value    types.Hex  `json:"value"`
		Gas      types.Hex  `json:"gas"`
		GasPrice *types.Hex `json:"gasPrice"`
	}
)

func (b blockResponse) toBlock() (txwatch.Block, error) {
	number, err := b.Number.Uint64()
	if err != nil {
		return txwatch.Block{}, fmt.Errorf("block number: %w", err)
	}

	timestamp, err := b.Timestamp.Uint64()
	if err != nil {
		return txwatch.Block{}, fmt.Errorf("block timestamp: %w", err)
	}

	return txwatch.Block{
		Number:            number,
		Hash:              b.Hash,
		Timestamp:         time.Unix(int64(timestamp), 0).UTC(),
		TransactionHashes: b.Transactions,
	}, nil
}

func (t transactionResponse) toRawTransaction() (txwatch.RawTransaction, error) {
	value, err := t.Value.Big()
	if err != nil {
		return txwatch.RawTransaction{}, fmt.Errorf("transaction value: %w", err)
	}

	gasLimit, err := t.Gas.Uint64()
	if err != nil {
		return txwatch.RawTransaction{}, fmt.Errorf("transaction gas: %w", err)
	}

	tx := txwatch.RawTransaction{
		Hash:     t.Hash,
		From:     strings.ToLower(t.From),
		Value:    value,
		GasLimit: gasLimit,
	}

	if t.To != nil {
		tx.To = strings.ToLower(*t.To)
	}

	if t.GasPrice != nil {
		if tx.GasPrice, err = t.GasPrice.Big(); err != nil {
			return txwatch.RawTransaction{}, fmt.Errorf("transaction gas price: %w", err)
		}
	}

	return tx, nil
}

// BlockByNumber fetches the block header and its transaction hashes.
func (c *client) BlockByNumber(ctx context.Context, number uint64) (txwatch.Block, error) {
	var res blockResponse
	if err := c.conn.Call(ctx, &res, "eth_getBlockByNumber", types.HexFromUint64(number), false); err != nil {
		if errors.Is(err, jsonrpc.ErrNullResult) {
			return txwatch.Block{}, fmt.Errorf("%w: %d", txwatch.ErrBlockNotFound, number)
		}
		return txwatch.Block{}, err
	}

	return res.toBlock()
}

// TransactionByHash fetches the details of a single transaction. Block
// number and time are left for the caller to fill from the block.
func (c *client) TransactionByHash(ctx context.Context, hash string) (txwatch.RawTransaction, error) {
	var res transactionResponse
	if err := c.conn.Call(ctx, &res, "eth_getTransactionByHash", hash); err != nil {
		if errors.Is(err, jsonrpc.ErrNullResult) {
			return txwatch.RawTransaction{}, fmt.Errorf("%w: %s", txwatch.ErrTransactionNotFound, hash)
		}
		return txwatch.RawTransaction{}, err
	}

	return res.toRawTransaction()
}

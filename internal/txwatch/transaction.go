// Package txwatch turns blocks into the list of transactions that touch a
// watch list. It owns the scanning pipeline: block retrieval through a
// ChainReader, concurrent transaction fetches, relevance filtering, direction
// classification and unit normalization.
package txwatch

import (
	"errors"
	"fmt"
	"math/big"
	"time"
)

var (
	// ErrBlockNotFound is returned by a ChainReader when the requested block
	// is not visible on the node yet.
	ErrBlockNotFound = errors.New("block not found")

	// ErrTransactionNotFound is returned by a ChainReader when a transaction
	// hash cannot be resolved.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrBlockUnavailable marks a block that could not be read. Callers should
	// skip it and wait for the next block.
	ErrBlockUnavailable = errors.New("block unavailable")
)

// Direction tells how a transaction relates to the watch list as a whole.
type Direction string

const (
	Inbound      Direction = "in"   // only the recipient is watched
	Outbound     Direction = "out"  // the sender is watched, the recipient is not or is absent
	SelfTransfer Direction = "self" // both sides are watched
)

func (d Direction) String() string {
	return string(d)
}

// RawTransaction is a transaction as supplied by the ChainReader.
type RawTransaction struct {
	Hash        string
	From        string
	To          string   // empty for contract creation
	Value       *big.Int // smallest unit
	GasPrice    *big.Int // smallest unit, nil when the transaction type omits it
	GasLimit    uint64
	BlockNumber uint64
	Timestamp   time.Time // block time
}

// IsContractCreation reports whether the transaction has no recipient.
func (tx RawTransaction) IsContractCreation() bool {
	return tx.To == ""
}

// Block is the header data of a block plus the hashes of its transactions,
// in block order.
type Block struct {
	Number            uint64
	Hash              string
	Timestamp         time.Time
	TransactionHashes []string
}

// ClassifiedTransaction is a relevant transaction ready for delivery.
// Values are deep copies; sinks may keep them.
type ClassifiedTransaction struct {
	RawTransaction
	Direction         Direction
	FormattedValue    string // value in the display unit, e.g. "1.5"
	FormattedGasPrice string // gas price in the display unit, "0.0" when absent
}

// TransactionFetchError records a transaction of the block that could not be
// read and was left out of the result.
type TransactionFetchError struct {
	Index int    // position in the block
	Hash  string // transaction hash
	Err   error
}

func (e *TransactionFetchError) Error() string {
	return fmt.Sprintf("transaction %d (%s): %v", e.Index, e.Hash, e.Err)
}

func (e *TransactionFetchError) Unwrap() error {
	return e.Err
}

// BlockScanResult is the outcome of scanning one block.
type BlockScanResult struct {
	BlockNumber  uint64
	BlockHash    string
	Timestamp    time.Time
	Transactions []ClassifiedTransaction  // relevant transactions, block order
	Skipped      []*TransactionFetchError // transactions that could not be fetched, block order
}

// Len returns the number of relevant transactions.
func (r BlockScanResult) Len() int {
	return len(r.Transactions)
}

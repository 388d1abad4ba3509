package txwatch

import "context"

// ChainReader is the read side of a node used by the Scanner.
type ChainReader interface {
	// BlockByNumber returns the block header and transaction hashes.
	// It returns ErrBlockNotFound when the block does not exist yet.
	BlockByNumber(ctx context.Context, number uint64) (Block, error)

	// TransactionByHash returns the transaction details.
	// It returns ErrTransactionNotFound when the hash is unknown.
	TransactionByHash(ctx context.Context, hash string) (RawTransaction, error)
}

// AddressSet answers watch list membership. watchlist.WatchSet implements it.
type AddressSet interface {
	Contains(address string) bool
}

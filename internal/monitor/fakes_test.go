package monitor

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/gabapcia/addrwatch/internal/txwatch"
)

var errNodeDown = errors.New("dial tcp: connection refused")

// fakeChain serves a fixed set of blocks. BlockNumber fails probeFailures
// times before succeeding.
type fakeChain struct {
	mu            sync.Mutex
	height        uint64
	probeFailures int
	probes        int
	blocks        map[uint64]txwatch.Block
	txs           map[string]txwatch.RawTransaction
	signals       chan uint64
}

func newFakeChain(height uint64) *fakeChain {
	return &fakeChain{
		height:  height,
		blocks:  map[uint64]txwatch.Block{},
		txs:     map[string]txwatch.RawTransaction{},
		signals: make(chan uint64, 4),
	}
}

func (f *fakeChain) addBlock(number uint64, txs ...txwatch.RawTransaction) {
	f.mu.Lock()
	defer f.mu.Unlock()

	block := txwatch.Block{Number: number, Hash: "0xblock", Timestamp: time.Unix(1_700_000_000, 0)}
	for _, tx := range txs {
		block.TransactionHashes = append(block.TransactionHashes, tx.Hash)
		f.txs[tx.Hash] = tx
	}
	f.blocks[number] = block
}

func (f *fakeChain) announce(number uint64) {
	f.mu.Lock()
	f.height = number
	f.mu.Unlock()

	f.signals <- number
}

func (f *fakeChain) BlockNumber(context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.probes++
	if f.probes <= f.probeFailures {
		return 0, errNodeDown
	}
	return f.height, nil
}

func (f *fakeChain) SubscribeNewBlocks(ctx context.Context) (<-chan uint64, error) {
	out := make(chan uint64)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case n := <-f.signals:
				select {
				case out <- n:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (f *fakeChain) BlockByNumber(_ context.Context, number uint64) (txwatch.Block, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	block, ok := f.blocks[number]
	if !ok {
		return txwatch.Block{}, txwatch.ErrBlockNotFound
	}
	return block, nil
}

func (f *fakeChain) TransactionByHash(_ context.Context, hash string) (txwatch.RawTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	tx, ok := f.txs[hash]
	if !ok {
		return txwatch.RawTransaction{}, txwatch.ErrTransactionNotFound
	}
	return tx, nil
}

func (f *fakeChain) ChainID(context.Context) (uint64, error) {
	return 1, nil
}

type summary struct {
	block uint64
	count int
}

// recordingSink keeps every event and message it receives.
type recordingSink struct {
	mu        sync.Mutex
	txs       []txwatch.ClassifiedTransaction
	summaries chan summary
	messages  []string
	msgErr    error
}

func newRecordingSink() *recordingSink {
	return &recordingSink{summaries: make(chan summary, 8)}
}

func (r *recordingSink) OnTransaction(_ context.Context, tx txwatch.ClassifiedTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.txs = append(r.txs, tx)
	return nil
}

func (r *recordingSink) OnBlockSummary(_ context.Context, blockNumber uint64, matchCount int) error {
	r.summaries <- summary{block: blockNumber, count: matchCount}
	return nil
}

func (r *recordingSink) SendMessage(_ context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, text)
	return r.msgErr
}

func (r *recordingSink) transactions() []txwatch.ClassifiedTransaction {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]txwatch.ClassifiedTransaction(nil), r.txs...)
}

func (r *recordingSink) sentMessages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.messages...)
}

func transfer(hash, from, to string) txwatch.RawTransaction {
	return txwatch.RawTransaction{
		Hash:     hash,
		From:     from,
		To:       to,
		Value:    big.NewInt(1_000_000_000_000_000_000),
		GasPrice: big.NewInt(1),
		GasLimit: 21000,
	}
}

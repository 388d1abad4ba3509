package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gabapcia/addrwatch/internal/txwatch"
)

// fakeChain serves a configurable height and a test controlled subscription.
type fakeChain struct {
	height       atomic.Uint64
	probeErr     error
	subscribeErr error
	signals      chan uint64

	mu              sync.Mutex
	probes          int
	subscriptionCtx context.Context
}

func newFakeChain(height uint64) *fakeChain {
	c := &fakeChain{signals: make(chan uint64)}
	c.height.Store(height)
	return c
}

func (c *fakeChain) BlockNumber(context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.probes++
	if c.probeErr != nil {
		return 0, c.probeErr
	}
	return c.height.Load(), nil
}

func (c *fakeChain) SubscribeNewBlocks(ctx context.Context) (<-chan uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.subscribeErr != nil {
		return nil, c.subscribeErr
	}
	c.subscriptionCtx = ctx
	return c.signals, nil
}

func (c *fakeChain) setProbeErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.probeErr = err
}

// announce moves the chain to height and signals it.
func (c *fakeChain) announce(height uint64) {
	c.height.Store(height)
	c.signals <- height
}

// fakeScanner returns one matching transaction per block unless told
// otherwise. When gate is set, every scan waits for a value on it.
type fakeScanner struct {
	gate    chan struct{}
	started chan uint64
	scanned chan uint64
	results map[uint64]txwatch.BlockScanResult
	errs    map[uint64]error
}

func newFakeScanner() *fakeScanner {
	return &fakeScanner{
		started: make(chan uint64, 16),
		scanned: make(chan uint64, 16),
		results: map[uint64]txwatch.BlockScanResult{},
		errs:    map[uint64]error{},
	}
}

func (s *fakeScanner) Scan(ctx context.Context, blockNumber uint64) (txwatch.BlockScanResult, error) {
	s.started <- blockNumber
	if s.gate != nil {
		<-s.gate
	}
	defer func() { s.scanned <- blockNumber }()

	if err, ok := s.errs[blockNumber]; ok {
		return txwatch.BlockScanResult{BlockNumber: blockNumber}, err
	}

	if result, ok := s.results[blockNumber]; ok {
		return result, nil
	}

	return txwatch.BlockScanResult{
		BlockNumber: blockNumber,
		Transactions: []txwatch.ClassifiedTransaction{
			classified(blockNumber, 0),
		},
	}, nil
}

func classified(blockNumber uint64, index int) txwatch.ClassifiedTransaction {
	return txwatch.ClassifiedTransaction{
		RawTransaction: txwatch.RawTransaction{
			Hash:        fmt.Sprintf("0x%d-%d", blockNumber, index),
			BlockNumber: blockNumber,
		},
		Direction:      txwatch.Inbound,
		FormattedValue: "1.0",
	}
}

// event is one call received by recordingHandler.
type event struct {
	kind   string // "tx" or "summary"
	block  uint64
	hash   string
	amount int
}

type recordingHandler struct {
	mu      sync.Mutex
	events  []event
	txErr   error
	sumErr  error
	summary chan uint64
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{summary: make(chan uint64, 16)}
}

func (h *recordingHandler) OnTransaction(_ context.Context, tx txwatch.ClassifiedTransaction) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.events = append(h.events, event{kind: "tx", block: tx.BlockNumber, hash: tx.Hash})
	return h.txErr
}

func (h *recordingHandler) OnBlockSummary(_ context.Context, blockNumber uint64, matchCount int) error {
	h.mu.Lock()
	h.events = append(h.events, event{kind: "summary", block: blockNumber, amount: matchCount})
	err := h.sumErr
	h.mu.Unlock()

	h.summary <- blockNumber
	return err
}

func (h *recordingHandler) snapshot() []event {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]event(nil), h.events...)
}

var errNodeDown = errors.New("node down")

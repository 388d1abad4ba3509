// Package dispatch runs the watch loop: it subscribes to new block signals,
// scans one block at a time and hands the matching transactions to an
// EventHandler in block order.
//
// Signals that arrive while a scan is in flight are coalesced into a single
// pending height. The loop re-reads the chain height before every scan, so a
// burst of signals results in one scan of the latest block.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/metric"

	"github.com/gabapcia/addrwatch/internal/pkg/logger"
	"github.com/gabapcia/addrwatch/internal/pkg/x/chflow"
	"github.com/gabapcia/addrwatch/internal/txwatch"
)

var (
	// ErrAlreadyStarted is returned by Start on a loop that is already running.
	ErrAlreadyStarted = errors.New("dispatch loop already started")

	// ErrStopped is returned by Start after Stop.
	ErrStopped = errors.New("dispatch loop stopped")
)

// ConnectionError reports that the node could not be reached while starting.
// The loop stays Idle and Start may be called again.
type ConnectionError struct {
	Op  string // "probe" or "subscribe"
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ChainSource provides the chain height and new block signals.
type ChainSource interface {
	// BlockNumber returns the latest block height.
	BlockNumber(ctx context.Context) (uint64, error)

	// SubscribeNewBlocks delivers the height of every new block until ctx is
	// cancelled, then closes the channel.
	SubscribeNewBlocks(ctx context.Context) (<-chan uint64, error)
}

// BlockScanner produces the relevant transactions of a block.
type BlockScanner interface {
	Scan(ctx context.Context, blockNumber uint64) (txwatch.BlockScanResult, error)
}

// EventHandler receives the output of the loop. For every scanned block,
// OnTransaction is called once per transaction in block order, followed by a
// single OnBlockSummary call. Errors are logged and do not stop the loop.
type EventHandler interface {
	OnTransaction(ctx context.Context, tx txwatch.ClassifiedTransaction) error
	OnBlockSummary(ctx context.Context, blockNumber uint64, matchCount int) error
}

// Loop is the dispatch state machine.
type Loop struct {
	chain   ChainSource
	scanner BlockScanner
	logger  *logger.Logger
	metrics loopMetrics

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	done   chan struct{}
	wg     sync.WaitGroup

	pending *pendingSlot

	// owned by the run goroutine
	lastScanned uint64
	hasScanned  bool
}

type config struct {
	logger        *logger.Logger
	meterProvider metric.MeterProvider
}

// Option configures a Loop.
type Option func(*config)

// WithLogger sets the logger of the loop.
func WithLogger(l *logger.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithMeterProvider overrides the global OpenTelemetry meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// New creates an Idle loop.
func New(chain ChainSource, scanner BlockScanner, opts ...Option) *Loop {
	cfg := config{
		logger: logger.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Loop{
		chain:   chain,
		scanner: scanner,
		logger:  cfg.logger,
		metrics: newLoopMetrics(cfg.meterProvider),
		state:   Idle,
		pending: newPendingSlot(),
	}
}

// State returns the current lifecycle stage.
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.state
}

// Done is closed when the loop has exited, either through Stop, the
// cancellation of the context given to Start, or the end of the block
// subscription. It returns nil before a successful Start.
func (l *Loop) Done() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.done
}

// transition moves the loop to next unless it has been stopped meanwhile.
func (l *Loop) transition(next State) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != Stopped {
		l.state = next
	}
}

// Start probes the node, subscribes to new blocks and launches the loop.
//
// It fails with a *ConnectionError when the node cannot be reached, leaving
// the loop Idle so the caller may retry. The loop runs until Stop is called
// or ctx is cancelled.
func (l *Loop) Start(ctx context.Context, handler EventHandler) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.state {
	case Idle:
	case Stopped:
		return ErrStopped
	default:
		return ErrAlreadyStarted
	}

	height, err := l.chain.BlockNumber(ctx)
	if err != nil {
		return &ConnectionError{Op: "probe", Err: err}
	}

	l.state = Connected
	l.logger.Debug(ctx, "chain reachable", "height", height)

	runCtx, cancel := context.WithCancel(ctx)

	signals, err := l.chain.SubscribeNewBlocks(runCtx)
	if err != nil {
		cancel()
		l.state = Idle
		return &ConnectionError{Op: "subscribe", Err: err}
	}

	l.state = Watching
	l.cancel = cancel
	l.done = make(chan struct{})

	l.startForwardSignals(runCtx, cancel, signals)
	l.startRun(runCtx, handler, l.done)

	l.logger.Info(ctx, "watching for new blocks", "height", height)
	return nil
}

// Stop cancels the subscription and waits for the loop to exit. A scan in
// flight is allowed to finish and its events are delivered. Stop is
// idempotent and may be called in any state.
func (l *Loop) Stop() {
	l.mu.Lock()
	if l.state == Stopped {
		l.mu.Unlock()
		return
	}

	l.state = Stopped
	cancel := l.cancel
	l.cancel = nil
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	l.wg.Wait()
}

// forwardSignals moves heights from the subscription into the pending slot.
// A closed subscription ends the loop.
func (l *Loop) forwardSignals(ctx context.Context, cancel context.CancelFunc, signals <-chan uint64) {
	for {
		height, ok := chflow.Receive(ctx, signals)
		if !ok {
			if ctx.Err() == nil {
				l.logger.Error(ctx, "new block subscription closed")
				cancel()
			}
			return
		}

		if superseded, dropped := l.pending.Offer(height); dropped {
			l.metrics.signalsSuperseded.Add(ctx, 1)
			l.logger.Debug(ctx, "block signal superseded", "height", superseded)
		}
	}
}

func (l *Loop) startForwardSignals(ctx context.Context, cancel context.CancelFunc, signals <-chan uint64) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.forwardSignals(ctx, cancel, signals)
	}()
}

// run consumes the pending slot until ctx is cancelled.
func (l *Loop) run(ctx context.Context, handler EventHandler) {
	for {
		if _, ok := chflow.Receive(ctx, l.pending.Ready()); !ok {
			return
		}

		// Both cases may be ready after Stop; never begin a new scan then.
		if ctx.Err() != nil {
			return
		}

		hint, ok := l.pending.Take()
		if !ok {
			continue
		}

		l.processBlock(ctx, handler, hint)
	}
}

func (l *Loop) startRun(ctx context.Context, handler EventHandler, done chan struct{}) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer close(done)
		defer l.transition(Stopped)

		l.run(ctx, handler)
	}()
}

// processBlock scans the latest block and emits its events. hint is the
// height carried by the signal, used when the node cannot be queried.
func (l *Loop) processBlock(ctx context.Context, handler EventHandler, hint uint64) {
	// Once a scan begins it runs to completion, even if Stop is called.
	scanCtx := context.WithoutCancel(ctx)

	latest, err := l.chain.BlockNumber(scanCtx)
	if err != nil {
		l.logger.Warn(ctx, "failed to read latest height, using signal height", "height", hint, "error", err)
		latest = hint
	}
	latest = max(latest, hint)

	if l.hasScanned && latest <= l.lastScanned {
		l.logger.Debug(ctx, "block already scanned", "height", latest)
		return
	}

	l.transition(Scanning)
	defer l.transition(Watching)

	result, err := l.scanner.Scan(scanCtx, latest)
	if err != nil {
		if errors.Is(err, txwatch.ErrBlockUnavailable) {
			l.logger.Warn(ctx, "block skipped", "height", latest, "error", err)
		} else {
			l.logger.Error(ctx, "block scan failed", "height", latest, "error", err)
		}
		l.metrics.blocksSkipped.Add(ctx, 1)
		return
	}

	l.lastScanned, l.hasScanned = latest, true

	for _, tx := range result.Transactions {
		if err := handler.OnTransaction(scanCtx, tx); err != nil {
			l.metrics.handlerErrors.Add(ctx, 1)
			l.logger.Error(ctx, "failed to deliver transaction", "height", latest, "hash", tx.Hash, "error", err)
		}
	}

	if err := handler.OnBlockSummary(scanCtx, latest, result.Len()); err != nil {
		l.metrics.handlerErrors.Add(ctx, 1)
		l.logger.Error(ctx, "failed to deliver block summary", "height", latest, "error", err)
	}

	l.logger.Debug(ctx, "block scanned",
		"height", latest,
		"matches", result.Len(),
		"skipped", len(result.Skipped),
	)
}

// Package monitor assembles the watch pipeline: it builds the watch list from
// configuration and the wallet registry, wires the scanner into the dispatch
// loop and announces startup and shutdown to the notifiers.
package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/addrwatch/internal/dispatch"
	"github.com/gabapcia/addrwatch/internal/notify"
	"github.com/gabapcia/addrwatch/internal/pkg/logger"
	"github.com/gabapcia/addrwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/addrwatch/internal/txwatch"
	"github.com/gabapcia/addrwatch/internal/watchlist"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// shutdownMessageTimeout bounds the delivery of the shutdown notice.
const shutdownMessageTimeout = 5 * time.Second

// Service is the monitor lifecycle.
type Service interface {
	// Start builds the watch list, connects to the node and starts the
	// dispatch loop. Connection failures are retried with the configured
	// policy before being returned.
	Start(ctx context.Context) error

	// Done is closed when the dispatch loop exits. It is nil before Start.
	Done() <-chan struct{}

	// Close stops the loop, waits for the block in flight and sends the
	// shutdown notice. It is safe to call Close even if Start failed.
	Close()
}

// Chain is the node access needed by the monitor.
type Chain interface {
	txwatch.ChainReader
	dispatch.ChainSource
	ChainID(ctx context.Context) (uint64, error)
}

// Sink receives the events of the loop and the lifecycle notices.
// *notify.Fanout implements it.
type Sink interface {
	dispatch.EventHandler
	SendMessage(ctx context.Context, text string) error
}

// Registry lists the addresses registered at runtime.
// walletregistry.Service implements it.
type Registry interface {
	ListWatching(ctx context.Context, network string) ([]string, error)
}

// service is the internal implementation of the monitor Service interface.
type service struct {
	mu        sync.Mutex // protects lifecycle state
	isStarted bool       // ensures Start is called only once
	loop      *dispatch.Loop

	chain Chain
	sink  Sink
	cfg   config
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = new(service)

// New creates a monitor reading from chain and delivering to sink.
func New(chain Chain, sink Sink, opts ...Option) *service {
	cfg := config{
		network:    "ethereum",
		logger:     logger.NewNop(),
		startRetry: retry.New(retry.WithAttempts(1)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		chain: chain,
		sink:  sink,
		cfg:   cfg,
	}
}

// watchAddresses merges the static addresses with the registry entries.
func (s *service) watchAddresses(ctx context.Context) ([]string, error) {
	addresses := append([]string(nil), s.cfg.addresses...)
	if s.cfg.registry == nil {
		return addresses, nil
	}

	registered, err := s.cfg.registry.ListWatching(ctx, s.cfg.network)
	if err != nil {
		return nil, err
	}

	return append(addresses, registered...), nil
}

// Start implements Service.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	addresses, err := s.watchAddresses(ctx)
	if err != nil {
		return err
	}

	watch, err := watchlist.Build(addresses)
	if err != nil {
		return err
	}

	scannerOpts := append([]txwatch.Option{txwatch.WithLogger(s.cfg.logger)}, s.cfg.scannerOpts...)
	scanner := txwatch.NewScanner(s.chain, watch, scannerOpts...)

	loopOpts := append([]dispatch.Option{dispatch.WithLogger(s.cfg.logger)}, s.cfg.loopOpts...)
	loop := dispatch.New(s.chain, scanner, loopOpts...)

	err = s.cfg.startRetry.Execute(ctx, func() error {
		return loop.Start(ctx, s.sink)
	})
	if err != nil {
		return err
	}

	s.logConnection(ctx, watch)

	if err := s.sink.SendMessage(ctx, notify.StartupText(s.cfg.network, watch.Addresses())); err != nil {
		s.cfg.logger.Warn(ctx, "failed to send startup message", "error", err)
	}

	s.loop = loop
	s.isStarted = true
	return nil
}

func (s *service) logConnection(ctx context.Context, watch watchlist.WatchSet) {
	kv := []any{
		"network", s.cfg.network,
		"addresses", watch.Addresses(),
	}

	if chainID, err := s.chain.ChainID(ctx); err != nil {
		s.cfg.logger.Warn(ctx, "failed to read chain id", "error", err)
	} else {
		kv = append(kv, "chain_id", chainID)
	}

	if height, err := s.chain.BlockNumber(ctx); err == nil {
		kv = append(kv, "height", height)
	}

	s.cfg.logger.Info(ctx, "monitor started", kv...)
}

// Done implements Service.
func (s *service) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loop == nil {
		return nil
	}
	return s.loop.Done()
}

// Close implements Service.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loop == nil {
		return
	}

	s.loop.Stop()
	s.loop = nil

	ctx, cancel := context.WithTimeout(context.Background(), shutdownMessageTimeout)
	defer cancel()

	if err := s.sink.SendMessage(ctx, notify.ShutdownText(s.cfg.network)); err != nil {
		s.cfg.logger.Warn(ctx, "failed to send shutdown message", "error", err)
	}

	s.cfg.logger.Info(ctx, "monitor stopped", "network", s.cfg.network)
}

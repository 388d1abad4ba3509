package txwatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/gabapcia/addrwatch/internal/pkg/logger"
	"github.com/gabapcia/addrwatch/internal/pkg/resilience/retry"
)

const defaultFetchConcurrency = 8

// config holds the optional settings of a Scanner.
type config struct {
	logger           *logger.Logger
	fetchConcurrency int
	retry            retry.Retry
	callTimeout      time.Duration
	decimals         int32
	meterProvider    metric.MeterProvider
	tracerProvider   trace.TracerProvider
}

// Option configures a Scanner.
type Option func(*config)

// WithLogger sets the logger used to report skipped transactions.
func WithLogger(l *logger.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithFetchConcurrency bounds the number of transaction fetches in flight
// for one block. Values below 1 are ignored. Default: 8.
func WithFetchConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.fetchConcurrency = n
		}
	}
}

// WithRetry sets the retry policy applied to every ChainReader call.
// ErrTransactionNotFound is never retried. Default: a single attempt.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithCallTimeout bounds each ChainReader call. Zero, the default, means
// calls are only bound by the context passed to Scan.
func WithCallTimeout(d time.Duration) Option {
	return func(c *config) {
		c.callTimeout = d
	}
}

// WithDecimals sets the number of decimals of the display unit. Default: 18.
func WithDecimals(d int32) Option {
	return func(c *config) {
		c.decimals = d
	}
}

// WithMeterProvider overrides the global OpenTelemetry meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}

// Scanner reads blocks and keeps the transactions relevant to a watch list.
// A Scanner holds no state between scans and is safe for concurrent use.
type Scanner struct {
	reader    ChainReader
	watch     AddressSet
	formatter Formatter

	logger           *logger.Logger
	fetchConcurrency int
	retry            retry.Retry
	callTimeout      time.Duration

	tracer  trace.Tracer
	metrics scannerMetrics
}

// NewScanner creates a Scanner reading from reader and matching against watch.
func NewScanner(reader ChainReader, watch AddressSet, opts ...Option) *Scanner {
	cfg := config{
		logger:           logger.NewNop(),
		fetchConcurrency: defaultFetchConcurrency,
		retry:            retry.New(retry.WithAttempts(1)),
		decimals:         DefaultDecimals,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.tracerProvider == nil {
		cfg.tracerProvider = otel.GetTracerProvider()
	}

	return &Scanner{
		reader:           reader,
		watch:            watch,
		formatter:        NewFormatter(cfg.decimals),
		logger:           cfg.logger,
		fetchConcurrency: cfg.fetchConcurrency,
		retry:            cfg.retry,
		callTimeout:      cfg.callTimeout,
		tracer:           cfg.tracerProvider.Tracer(instrumentationName),
		metrics:          newScannerMetrics(cfg.meterProvider),
	}
}

// Scan reads block blockNumber and returns its relevant transactions in
// block order.
//
// A block that cannot be read yields an empty result and an error wrapping
// ErrBlockUnavailable. Transactions that cannot be fetched are reported in
// Skipped and do not fail the scan.
func (s *Scanner) Scan(ctx context.Context, blockNumber uint64) (BlockScanResult, error) {
	ctx, span := s.tracer.Start(ctx, "txwatch.Scan", trace.WithAttributes(
		attribute.Int64("block.number", int64(blockNumber)),
	))
	defer span.End()

	startedAt := time.Now()
	result := BlockScanResult{BlockNumber: blockNumber}

	block, err := s.fetchBlock(ctx, blockNumber)
	if err != nil {
		s.metrics.blocksUnavailable.Add(ctx, 1)
		span.RecordError(err)
		span.SetStatus(codes.Error, "block unavailable")
		return result, fmt.Errorf("%w: block %d: %w", ErrBlockUnavailable, blockNumber, err)
	}

	result.BlockHash = block.Hash
	result.Timestamp = block.Timestamp

	transactions, skipped := s.fetchTransactions(ctx, block)
	for _, tx := range transactions {
		if tx == nil || !IsRelevant(*tx, s.watch) {
			continue
		}

		result.Transactions = append(result.Transactions, s.formatter.Normalize(*tx, Classify(*tx, s.watch)))
	}
	result.Skipped = skipped

	for _, fetchErr := range skipped {
		s.logger.Warn(ctx, "transaction skipped",
			"block", blockNumber,
			"index", fetchErr.Index,
			"hash", fetchErr.Hash,
			"error", fetchErr.Err,
		)
	}

	span.SetAttributes(
		attribute.Int("block.transactions", len(block.TransactionHashes)),
		attribute.Int("block.matches", len(result.Transactions)),
		attribute.Int("block.skipped", len(skipped)),
	)

	s.metrics.blocksScanned.Add(ctx, 1)
	s.metrics.transactionsMatched.Add(ctx, int64(len(result.Transactions)))
	s.metrics.transactionsSkipped.Add(ctx, int64(len(skipped)))
	s.metrics.scanDuration.Record(ctx, time.Since(startedAt).Seconds())

	return result, nil
}

// fetchBlock reads the block through the retry policy.
func (s *Scanner) fetchBlock(ctx context.Context, blockNumber uint64) (Block, error) {
	var block Block
	err := s.retry.Execute(ctx, func() error {
		callCtx, cancel := s.callContext(ctx)
		defer cancel()

		b, err := s.reader.BlockByNumber(callCtx, blockNumber)
		if err != nil {
			return err
		}

		block = b
		return nil
	})

	return block, err
}

// fetchTransactions reads every transaction of block concurrently. The
// returned slice is indexed like block.TransactionHashes; entries that failed
// are nil and described in the second return value.
func (s *Scanner) fetchTransactions(ctx context.Context, block Block) ([]*RawTransaction, []*TransactionFetchError) {
	hashes := block.TransactionHashes
	if len(hashes) == 0 {
		return nil, nil
	}

	transactions := make([]*RawTransaction, len(hashes))
	failures := make([]error, len(hashes))

	var g errgroup.Group
	g.SetLimit(s.fetchConcurrency)

	for i, hash := range hashes {
		g.Go(func() error {
			tx, err := s.fetchTransaction(ctx, hash)
			if err != nil {
				failures[i] = err
				return nil
			}

			tx.BlockNumber = block.Number
			tx.Timestamp = block.Timestamp
			transactions[i] = &tx
			return nil
		})
	}

	_ = g.Wait()

	var skipped []*TransactionFetchError
	for i, err := range failures {
		if err != nil {
			skipped = append(skipped, &TransactionFetchError{Index: i, Hash: hashes[i], Err: err})
		}
	}

	return transactions, skipped
}

// fetchTransaction reads one transaction through the retry policy. A missing
// transaction ends the retries immediately.
func (s *Scanner) fetchTransaction(ctx context.Context, hash string) (RawTransaction, error) {
	var (
		tx       RawTransaction
		notFound error
	)

	err := s.retry.Execute(ctx, func() error {
		callCtx, cancel := s.callContext(ctx)
		defer cancel()

		t, err := s.reader.TransactionByHash(callCtx, hash)
		if errors.Is(err, ErrTransactionNotFound) {
			notFound = err
			return nil
		}
		if err != nil {
			return err
		}

		tx = t
		return nil
	})
	if err != nil {
		return RawTransaction{}, err
	}

	if notFound != nil {
		return RawTransaction{}, notFound
	}

	return tx, nil
}

// callContext derives the context of a single ChainReader call.
func (s *Scanner) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.callTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.callTimeout)
}

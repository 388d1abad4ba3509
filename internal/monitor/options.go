package monitor

import (
	"errors"

	"github.com/gabapcia/addrwatch/internal/dispatch"
	"github.com/gabapcia/addrwatch/internal/pkg/logger"
	"github.com/gabapcia/addrwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/addrwatch/internal/txwatch"
)

type config struct {
	network     string
	addresses   []string
	registry    Registry
	logger      *logger.Logger
	startRetry  retry.Retry
	scannerOpts []txwatch.Option
	loopOpts    []dispatch.Option
}

// Option configures the monitor.
type Option func(*config)

// WithNetwork sets the network name used for registry lookups and messages.
func WithNetwork(network string) Option {
	return func(c *config) {
		c.network = network
	}
}

// WithAddresses sets the statically configured watch addresses.
func WithAddresses(addresses ...string) Option {
	return func(c *config) {
		c.addresses = append(c.addresses, addresses...)
	}
}

// WithRegistry adds the addresses registered for the network to the watch
// list at startup.
func WithRegistry(r Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

// WithLogger sets the logger shared with the scanner and the loop.
func WithLogger(l *logger.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStartRetry sets the policy used when the node cannot be reached at
// startup. Only *dispatch.ConnectionError failures are retried.
func WithStartRetry(attempts uint, opts ...retry.Option) Option {
	return func(c *config) {
		opts = append([]retry.Option{
			retry.WithAttempts(attempts),
			retry.WithRetryIf(isConnectionError),
		}, opts...)
		c.startRetry = retry.New(opts...)
	}
}

// WithScannerOptions forwards options to the block scanner.
func WithScannerOptions(opts ...txwatch.Option) Option {
	return func(c *config) {
		c.scannerOpts = append(c.scannerOpts, opts...)
	}
}

// WithLoopOptions forwards options to the dispatch loop.
func WithLoopOptions(opts ...dispatch.Option) Option {
	return func(c *config) {
		c.loopOpts = append(c.loopOpts, opts...)
	}
}

func isConnectionError(err error) bool {
	var connErr *dispatch.ConnectionError
	return errors.As(err, &connErr)
}

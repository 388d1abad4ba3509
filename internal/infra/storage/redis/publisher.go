package redis

import (
	"context"
	"fmt"

	"github.com/gabapcia/addrwatch/internal/notify"
	"github.com/gabapcia/addrwatch/internal/txwatch"
)

// DefaultChannel is the pub/sub channel used when none is configured.
const DefaultChannel = "addrwatch:events"

type publisherConfig struct {
	network string
	symbol  string
}

// PublisherOption configures the publisher.
type PublisherOption func(*publisherConfig)

// WithNetwork sets the network written in every event. Default: ethereum.
func WithNetwork(network string) PublisherOption {
	return func(c *publisherConfig) {
		c.network = network
	}
}

// WithSymbol sets the display unit written in transaction events. Default: ETH.
func WithSymbol(symbol string) PublisherOption {
	return func(c *publisherConfig) {
		c.symbol = symbol
	}
}

// publisher sends every event as a JSON message on a pub/sub channel.
type publisher struct {
	conn    commander
	channel string
	network string
	symbol  string
}

var _ notify.Notifier = (*publisher)(nil)

// NewPublisher creates a notifier publishing on channel through c.
func (c *client) NewPublisher(channel string, opts ...PublisherOption) *publisher {
	if channel == "" {
		channel = DefaultChannel
	}

	cfg := publisherConfig{
		network: "ethereum",
		symbol:  "ETH",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &publisher{
		conn:    c.conn,
		channel: channel,
		network: cfg.network,
		symbol:  cfg.symbol,
	}
}

func (p *publisher) publish(ctx context.Context, event notify.Event) error {
	payload, err := event.Marshal()
	if err != nil {
		return err
	}

	if err := p.conn.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}

	return nil
}

// NotifyTransaction implements notify.Notifier.
func (p *publisher) NotifyTransaction(ctx context.Context, tx txwatch.ClassifiedTransaction) error {
	return p.publish(ctx, notify.NewTransactionEvent(p.network, p.symbol, tx))
}

// NotifyBlockSummary implements notify.Notifier.
func (p *publisher) NotifyBlockSummary(ctx context.Context, blockNumber uint64, matchCount int) error {
	return p.publish(ctx, notify.NewBlockSummaryEvent(p.network, blockNumber, matchCount))
}

// SendMessage implements notify.Notifier.
func (p *publisher) SendMessage(ctx context.Context, text string) error {
	return p.publish(ctx, notify.NewMessageEvent(p.network, text))
}

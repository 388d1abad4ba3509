// Package kafka publishes watch events as JSON messages on a Kafka topic.
package kafka

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/gabapcia/addrwatch/internal/notify"
	"github.com/gabapcia/addrwatch/internal/txwatch"
)

// DefaultTopic is used when no topic is configured.
const DefaultTopic = "addrwatch.transactions"

// messageWriter is the subset of kafka.Writer used by the publisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type config struct {
	network string
	symbol  string
	writer  messageWriter
}

// Option configures the Kafka publisher.
type Option func(*config)

// WithNetwork sets the network written in every event. Default: ethereum.
func WithNetwork(network string) Option {
	return func(c *config) {
		c.network = network
	}
}

// WithSymbol sets the display unit written in transaction events. Default: ETH.
func WithSymbol(symbol string) Option {
	return func(c *config) {
		c.symbol = symbol
	}
}

// withWriter replaces the kafka writer. Used by tests.
func withWriter(w messageWriter) Option {
	return func(c *config) {
		c.writer = w
	}
}

// publisher writes one message per event. Transactions and block summaries
// are both keyed by block number, so every event of a block lands on the
// same partition in emission order.
type publisher struct {
	network string
	symbol  string
	writer  messageWriter
}

var _ notify.Notifier = (*publisher)(nil)

// New creates a publisher writing to topic on brokers.
func New(brokers []string, topic string, opts ...Option) *publisher {
	if topic == "" {
		topic = DefaultTopic
	}

	cfg := config{
		network: "ethereum",
		symbol:  "ETH",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.writer == nil {
		cfg.writer = &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			RequiredAcks:           kafka.RequireAll,
			BatchTimeout:           10 * time.Millisecond,
		}
	}

	return &publisher{
		network: cfg.network,
		symbol:  cfg.symbol,
		writer:  cfg.writer,
	}
}

func (p *publisher) publish(ctx context.Context, key string, event notify.Event) error {
	payload, err := event.Marshal()
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
			{Key: "network", Value: []byte(p.network)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}

	return nil
}

func blockKey(blockNumber uint64) string {
	return strconv.FormatUint(blockNumber, 10)
}

// NotifyTransaction implements notify.Notifier.
func (p *publisher) NotifyTransaction(ctx context.Context, tx txwatch.ClassifiedTransaction) error {
	return p.publish(ctx, blockKey(tx.BlockNumber), notify.NewTransactionEvent(p.network, p.symbol, tx))
}

// NotifyBlockSummary implements notify.Notifier.
func (p *publisher) NotifyBlockSummary(ctx context.Context, blockNumber uint64, matchCount int) error {
	return p.publish(ctx, blockKey(blockNumber), notify.NewBlockSummaryEvent(p.network, blockNumber, matchCount))
}

// SendMessage implements notify.Notifier.
func (p *publisher) SendMessage(ctx context.Context, text string) error {
	return p.publish(ctx, "message", notify.NewMessageEvent(p.network, text))
}

// Close flushes pending messages and closes the writer.
func (p *publisher) Close() error {
	return p.writer.Close()
}

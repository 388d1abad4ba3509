// Package telegram delivers watch events to a Telegram chat through the Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/gabapcia/addrwatch/internal/notify"
	"github.com/gabapcia/addrwatch/internal/pkg/logger"
	transporthttp "github.com/gabapcia/addrwatch/internal/pkg/transport/http"
	"github.com/gabapcia/addrwatch/internal/txwatch"
)

// DefaultAPIURL is the public Bot API endpoint.
const DefaultAPIURL = "https://api.telegram.org"

// ErrAPI is returned when the Bot API rejects a request.
var ErrAPI = errors.New("telegram api error")

type config struct {
	apiURL         string
	network        string
	symbol         string
	emptySummaries bool
	httpClient     *retryablehttp.Client
	logger         *logger.Logger
}

// Option configures the Telegram notifier.
type Option func(*config)

// WithAPIURL overrides the Bot API endpoint. Default: DefaultAPIURL.
func WithAPIURL(u string) Option {
	return func(c *config) {
		c.apiURL = strings.TrimRight(u, "/")
	}
}

// WithNetwork sets the network name shown in messages. Default: ethereum.
func WithNetwork(network string) Option {
	return func(c *config) {
		c.network = network
	}
}

// WithSymbol sets the unit shown next to amounts. Default: ETH.
func WithSymbol(symbol string) Option {
	return func(c *config) {
		c.symbol = symbol
	}
}

// WithEmptySummaries sends summaries of blocks without matches. Default: false.
func WithEmptySummaries(enabled bool) Option {
	return func(c *config) {
		c.emptySummaries = enabled
	}
}

// WithHTTPClient replaces the retrying HTTP client.
func WithHTTPClient(client *retryablehttp.Client) Option {
	return func(c *config) {
		c.httpClient = client
	}
}

// WithLogger forwards HTTP retry diagnostics to l.
func WithLogger(l *logger.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// notifier posts one message per event to a chat.
type notifier struct {
	endpoint       string
	token          string
	chatID         string
	network        string
	symbol         string
	emptySummaries bool
	httpClient     *retryablehttp.Client
}

var _ notify.Notifier = (*notifier)(nil)

// New creates a Telegram notifier for the bot identified by token.
func New(token, chatID string, opts ...Option) *notifier {
	cfg := config{
		apiURL:  DefaultAPIURL,
		network: "ethereum",
		symbol:  "ETH",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.httpClient == nil {
		httpOpts := []transporthttp.Option{}
		if cfg.logger != nil {
			httpOpts = append(httpOpts, transporthttp.WithLogger(cfg.logger))
		}
		cfg.httpClient = transporthttp.NewClient(httpOpts...)
	}

	return &notifier{
		endpoint:       fmt.Sprintf("%s/bot%s/sendMessage", cfg.apiURL, token),
		token:          token,
		chatID:         chatID,
		network:        cfg.network,
		symbol:         cfg.symbol,
		emptySummaries: cfg.emptySummaries,
		httpClient:     cfg.httpClient,
	}
}

// redactedError hides the bot token, which is part of the request URL, from
// transport error messages.
type redactedError struct {
	err    error
	secret string
}

func (e *redactedError) Error() string {
	msg := "send message: " + e.err.Error()
	if e.secret == "" {
		return msg
	}
	return strings.ReplaceAll(msg, e.secret, "<redacted>")
}

func (e *redactedError) Unwrap() error {
	return e.err
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

// send posts text to the chat.
func (n *notifier) send(ctx context.Context, text string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:                n.chatID,
		Text:                  text,
		DisableWebPagePreview: true,
	})
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := n.httpClient.Do(req)
	if err != nil {
		return &redactedError{err: err, secret: n.token}
	}
	defer res.Body.Close()

	var data apiResponse
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return fmt.Errorf("send message: status %d: %w", res.StatusCode, err)
	}

	if !data.OK {
		return fmt.Errorf("%w: [%d] %s", ErrAPI, data.ErrorCode, data.Description)
	}

	return nil
}

// NotifyTransaction implements notify.Notifier.
func (n *notifier) NotifyTransaction(ctx context.Context, tx txwatch.ClassifiedTransaction) error {
	return n.send(ctx, notify.PlainText(n.network, n.symbol, tx))
}

// NotifyBlockSummary implements notify.Notifier.
func (n *notifier) NotifyBlockSummary(ctx context.Context, blockNumber uint64, matchCount int) error {
	if matchCount == 0 && !n.emptySummaries {
		return nil
	}
	return n.send(ctx, notify.SummaryText(blockNumber, matchCount))
}

// SendMessage implements notify.Notifier.
func (n *notifier) SendMessage(ctx context.Context, text string) error {
	return n.send(ctx, text)
}

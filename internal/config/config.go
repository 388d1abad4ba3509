// Package config loads the runtime configuration from the environment.
//
// A .env file, when present, is loaded first and overrides variables that are
// already set. Variables are then mapped with envconfig and checked with the
// validator package. Load only checks the settings every command shares;
// the monitor settings are checked by Validate when the pipeline is built.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/gabapcia/addrwatch/internal/pkg/validator"
)

// DefaultEnvFile is the dotenv file read by Load when no path is given.
const DefaultEnvFile = ".env"

// Chain reader kinds.
const (
	ReaderAuto      = "auto"
	ReaderJSONRPC   = "jsonrpc"
	ReaderEthclient = "ethclient"
)

// Notification types.
const (
	NotifyConsole  = "console"
	NotifyTelegram = "telegram"
	NotifyKafka    = "kafka"
	NotifyRedis    = "redis"
)

// Error reports a configuration that cannot be used. It is fatal at startup.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return "invalid configuration: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

type (
	// Redis holds the registry and pub/sub connection settings.
	Redis struct {
		Addr     string `envconfig:"ADDR"`
		Username string `envconfig:"USERNAME"`
		Password string `envconfig:"PASSWORD"`
		DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`
		Channel  string `envconfig:"CHANNEL" default:"addrwatch:events"`
	}

	// Kafka holds the message bus sink settings.
	Kafka struct {
		Brokers []string `envconfig:"BROKERS"`
		Topic   string   `envconfig:"TOPIC" default:"addrwatch.transactions"`
	}

	// Telegram holds the bot sink settings.
	Telegram struct {
		BotToken string `envconfig:"BOT_TOKEN"`
		ChatID   string `envconfig:"CHAT_ID"`
		APIURL   string `envconfig:"API_URL" default:"https://api.telegram.org" validate:"url"`
	}

	// Telemetry toggles the OpenTelemetry exporters.
	Telemetry struct {
		Enabled     bool   `envconfig:"ENABLED" default:"false"`
		ServiceName string `envconfig:"SERVICE_NAME" default:"addrwatch" validate:"required"`
	}
)

// Config is the full runtime configuration.
type Config struct {
	RPCURL            string        `envconfig:"RPC_URL" validate:"required,url"`
	ChainReader       string        `envconfig:"CHAIN_READER" default:"auto" validate:"oneof=auto jsonrpc ethclient"`
	Network           string        `envconfig:"NETWORK" default:"ethereum" validate:"required"`
	WatchAddresses    []string      `envconfig:"WATCH_ADDRESS"`
	Notifications     []string      `envconfig:"NOTIFICATION_TYPE" default:"console" validate:"min=1,dive,oneof=console telegram kafka redis"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	PollInterval      time.Duration `envconfig:"POLL_INTERVAL" default:"12s" validate:"gt=0"`
	FetchConcurrency  int           `envconfig:"FETCH_CONCURRENCY" default:"8" validate:"min=1"`
	FetchAttempts     uint          `envconfig:"FETCH_ATTEMPTS" default:"3" validate:"min=1"`
	CallTimeout       time.Duration `envconfig:"CALL_TIMEOUT" default:"0s" validate:"gte=0"`
	StartAttempts     uint          `envconfig:"START_ATTEMPTS" default:"5" validate:"min=1"`
	UnitDecimals      int32         `envconfig:"UNIT_DECIMALS" default:"18" validate:"gte=0,lte=36"`
	UnitSymbol        string        `envconfig:"UNIT_SYMBOL" default:"ETH" validate:"required"`
	NotifyEmptyBlocks bool          `envconfig:"NOTIFY_EMPTY_BLOCKS" default:"false"`

	Redis     Redis     `envconfig:"REDIS"`
	Kafka     Kafka     `envconfig:"KAFKA"`
	Telegram  Telegram  `envconfig:"TELEGRAM"`
	Telemetry Telemetry `envconfig:"OTEL"`
}

// pipelineFields are only needed by the start command.
var pipelineFields = []string{
	"RPCURL",
	"ChainReader",
	"Notifications",
	"PollInterval",
	"FetchConcurrency",
	"FetchAttempts",
	"CallTimeout",
	"StartAttempts",
	"UnitDecimals",
	"UnitSymbol",
	"Kafka",
	"Telegram",
}

// Load reads envFile (DefaultEnvFile when empty) if it exists, then builds
// the Config from the environment. Only the shared settings (network,
// logging, Redis and telemetry) are validated; call Validate before running
// the monitor.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Overload(envFile); err != nil {
			return nil, &Error{Err: fmt.Errorf("load %s: %w", envFile, err)}
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, &Error{Err: err}
	}

	cfg.normalize()
	if err := validator.ValidateExcept(&cfg, pipelineFields...); err != nil {
		return nil, &Error{Err: err}
	}

	return &cfg, nil
}

// trimAll trims every entry and drops the blank ones.
func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (c *Config) normalize() {
	c.RPCURL = strings.TrimSpace(c.RPCURL)
	c.WatchAddresses = trimAll(c.WatchAddresses)
	c.Kafka.Brokers = trimAll(c.Kafka.Brokers)

	notifications := trimAll(c.Notifications)
	for i, n := range notifications {
		notifications[i] = strings.ToLower(n)
	}
	slices.Sort(notifications)
	c.Notifications = slices.Compact(notifications)
}

// Validate checks every field rule and the settings each enabled feature
// needs to run the monitor.
func (c *Config) Validate() error {
	if err := validator.Validate(c); err != nil {
		return &Error{Err: err}
	}

	var errs []error
	if len(c.WatchAddresses) == 0 && c.Redis.Addr == "" {
		errs = append(errs, errors.New("WATCH_ADDRESS is required when REDIS_ADDR is not set"))
	}

	if c.Notifies(NotifyTelegram) && (c.Telegram.BotToken == "" || c.Telegram.ChatID == "") {
		errs = append(errs, errors.New("telegram notifications require TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID"))
	}

	if c.Notifies(NotifyKafka) && len(c.Kafka.Brokers) == 0 {
		errs = append(errs, errors.New("kafka notifications require KAFKA_BROKERS"))
	}

	if c.Notifies(NotifyRedis) && c.Redis.Addr == "" {
		errs = append(errs, errors.New("redis notifications require REDIS_ADDR"))
	}

	if c.ChainReader == ReaderJSONRPC && !isHTTP(c.RPCURL) {
		errs = append(errs, fmt.Errorf("chain reader %q requires an http(s) RPC_URL", ReaderJSONRPC))
	}

	if len(errs) > 0 {
		return &Error{Err: errors.Join(errs...)}
	}

	return nil
}

// Notifies reports whether the notification type is enabled.
func (c *Config) Notifies(kind string) bool {
	return slices.Contains(c.Notifications, kind)
}

func isHTTP(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// Reader resolves ReaderAuto from the RPC_URL scheme: websocket and IPC
// endpoints use ethclient, everything else JSON-RPC polling.
func (c *Config) Reader() string {
	if c.ChainReader != ReaderAuto {
		return c.ChainReader
	}

	if isHTTP(c.RPCURL) {
		return ReaderJSONRPC
	}
	return ReaderEthclient
}

// RedactedRPCURL shortens long endpoints, which usually embed an API key, so
// they can be logged.
func (c *Config) RedactedRPCURL() string {
	return RedactURL(c.RPCURL)
}

// RedactURL keeps the first 45 and last 8 characters of URLs longer than 50
// characters. Passwords in the user info are always masked.
func RedactURL(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), "xxxxx")
			rawURL = u.String()
		}
	}

	if len(rawURL) <= 50 {
		return rawURL
	}
	return rawURL[:45] + "..." + rawURL[len(rawURL)-8:]
}

// Package logger provides a Sugared Zap logger with optional OpenTelemetry
// integration. A Logger is built once at process start and handed to every
// component that needs diagnostics; there is no package-level instance.
//
// Logs are emitted as JSON to stdout by default. When an OpenTelemetry
// LoggerProvider is supplied, an OTEL bridge core is added so that the same
// entries are forwarded to the telemetry backend.
package logger

import (
	"context"
	"io"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a context-aware wrapper around zap.SugaredLogger.
//
// Every logging method accepts a context; when the context carries an active
// span, its trace and span identifiers are attached to the entry.
type Logger struct {
	sugar *zap.SugaredLogger
}

// config holds configuration options for the logger.
type config struct {
	level          string                 // the minimum log level (debug, info, warn, error, panic, fatal)
	output         io.Writer              // destination of the JSON core
	loggerProvider otellog.LoggerProvider // optional OTEL bridge target
	name           string                 // instrumentation scope used by the OTEL bridge
}

// Option configures the logger before construction.
type Option func(*config)

// WithLevel sets the minimum log level.
// Example levels: "debug", "info", "warn", "error", "panic", "fatal".
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput redirects the JSON core to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// WithLoggerProvider enables the OpenTelemetry bridge core using lp.
// A nil provider leaves the bridge disabled.
func WithLoggerProvider(lp otellog.LoggerProvider) Option {
	return func(c *config) {
		c.loggerProvider = lp
	}
}

// WithName sets the instrumentation scope name reported by the OTEL bridge.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// New builds a Logger. By default it logs JSON to stdout at the "info" level.
//
// Returns an error if parsing the log level fails.
func New(opts ...Option) (*Logger, error) {
	cfg := config{
		level:  "info",
		output: os.Stdout,
		name:   "github.com/gabapcia/addrwatch",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return nil, err
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(cfg.output),
			level,
		),
	}

	if cfg.loggerProvider != nil {
		cores = append(cores, otelzap.NewCore(cfg.name, otelzap.WithLoggerProvider(cfg.loggerProvider)))
	}

	return &Logger{
		sugar: zap.New(zapcore.NewTee(cores...)).Sugar(),
	}, nil
}

// NewNop returns a Logger that discards everything. Useful in tests and as a
// default for optional dependencies.
func NewNop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// With returns a child Logger that always includes the given key/value pairs.
func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{sugar: l.sugar.With(keysAndValues...)}
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

// deriveFromCtx returns the base logger enriched with trace identifiers taken
// from ctx (if any) and the given key/value pairs.
func (l *Logger) deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	sugar := l.sugar

	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		sugar = sugar.With(
			"trace_id", spanCtx.TraceID().String(),
			"span_id", spanCtx.SpanID().String(),
		)
	}

	if len(keysAndValues) > 0 {
		sugar = sugar.With(keysAndValues...)
	}

	return sugar
}

// Debug logs a debug-level message with optional key/value context.
func (l *Logger) Debug(ctx context.Context, msg string, keysAndValues ...any) {
	l.deriveFromCtx(ctx).Debugw(msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func (l *Logger) Info(ctx context.Context, msg string, keysAndValues ...any) {
	l.deriveFromCtx(ctx).Infow(msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func (l *Logger) Warn(ctx context.Context, msg string, keysAndValues ...any) {
	l.deriveFromCtx(ctx).Warnw(msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func (l *Logger) Error(ctx context.Context, msg string, keysAndValues ...any) {
	l.deriveFromCtx(ctx).Errorw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func (l *Logger) Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	l.deriveFromCtx(ctx).Fatalw(msg, keysAndValues...)
}

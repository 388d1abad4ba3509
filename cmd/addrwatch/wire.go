package main

import (
	"context"
	"time"

	"github.com/gabapcia/addrwatch/internal/config"
	"github.com/gabapcia/addrwatch/internal/dispatch"
	"github.com/gabapcia/addrwatch/internal/handlers/cli"
	"github.com/gabapcia/addrwatch/internal/infra/blockchain/ethclient"
	"github.com/gabapcia/addrwatch/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/addrwatch/internal/infra/notifier/console"
	"github.com/gabapcia/addrwatch/internal/infra/notifier/kafka"
	"github.com/gabapcia/addrwatch/internal/infra/notifier/telegram"
	"github.com/gabapcia/addrwatch/internal/infra/storage/redis"
	"github.com/gabapcia/addrwatch/internal/monitor"
	"github.com/gabapcia/addrwatch/internal/notify"
	"github.com/gabapcia/addrwatch/internal/pkg/logger"
	"github.com/gabapcia/addrwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/addrwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/addrwatch/internal/txwatch"
	"github.com/gabapcia/addrwatch/internal/walletregistry"
)

// wiring builds the services used by the CLI commands from the configuration.
type wiring struct {
	cfg    *config.Config
	logger *logger.Logger
}

// pipeline wraps the monitor so that closing it also releases the
// connections it was built on.
type pipeline struct {
	monitor.Service
	closers []func()
}

func (p *pipeline) Close() {
	p.Service.Close()
	p.release()
}

func (p *pipeline) release() {
	for i := len(p.closers) - 1; i >= 0; i-- {
		p.closers[i]()
	}
	p.closers = nil
}

func (w *wiring) registry(ctx context.Context) (cli.Registry, error) {
	if w.cfg.Redis.Addr == "" {
		return nil, cli.ErrRegistryUnavailable
	}

	rc, err := redis.NewClient(ctx, w.cfg.Redis.Addr, w.cfg.Redis.Username, w.cfg.Redis.Password, w.cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	return walletregistry.New(rc), nil
}

func (w *wiring) chain(ctx context.Context) (monitor.Chain, func(), error) {
	if w.cfg.Reader() == config.ReaderJSONRPC {
		conn := jsonrpc.NewClient(w.cfg.RPCURL, jsonrpc.WithLogger(w.logger))
		reader := ethereum.NewClient(conn,
			ethereum.WithPollInterval(w.cfg.PollInterval),
			ethereum.WithLogger(w.logger),
		)
		return reader, func() {}, nil
	}

	reader, err := ethclient.Dial(ctx, w.cfg.RPCURL, ethclient.WithLogger(w.logger))
	if err != nil {
		return nil, nil, &dispatch.ConnectionError{Op: "dial", Err: err}
	}
	return reader, reader.Close, nil
}

func (w *wiring) scannerOptions() []txwatch.Option {
	opts := []txwatch.Option{
		txwatch.WithFetchConcurrency(w.cfg.FetchConcurrency),
		txwatch.WithDecimals(w.cfg.UnitDecimals),
		txwatch.WithRetry(retry.New(
			retry.WithAttempts(w.cfg.FetchAttempts),
			retry.WithDelay(250*time.Millisecond),
			retry.WithMaxDelay(2*time.Second),
		)),
	}

	if w.cfg.CallTimeout > 0 {
		opts = append(opts, txwatch.WithCallTimeout(w.cfg.CallTimeout))
	}

	return opts
}

func (w *wiring) pipeline(ctx context.Context) (cli.Pipeline, error) {
	cfg := w.cfg
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w.logger.Info(ctx, "configuration loaded",
		"rpc_url", cfg.RedactedRPCURL(),
		"chain_reader", cfg.Reader(),
		"network", cfg.Network,
		"notifications", cfg.Notifications,
	)

	p := &pipeline{}

	chain, closeChain, err := w.chain(ctx)
	if err != nil {
		return nil, err
	}
	p.closers = append(p.closers, closeChain)

	monitorOpts := []monitor.Option{
		monitor.WithNetwork(cfg.Network),
		monitor.WithAddresses(cfg.WatchAddresses...),
		monitor.WithLogger(w.logger),
		monitor.WithStartRetry(cfg.StartAttempts),
		monitor.WithScannerOptions(w.scannerOptions()...),
	}

	var notifiers []notify.FanoutOption
	if cfg.Notifies(config.NotifyConsole) {
		notifiers = append(notifiers, notify.WithNotifier(config.NotifyConsole, console.New(
			console.WithSymbol(cfg.UnitSymbol),
			console.WithEmptySummaries(cfg.NotifyEmptyBlocks),
		)))
	}

	if cfg.Notifies(config.NotifyTelegram) {
		notifiers = append(notifiers, notify.WithNotifier(config.NotifyTelegram, telegram.New(cfg.Telegram.BotToken, cfg.Telegram.ChatID,
			telegram.WithAPIURL(cfg.Telegram.APIURL),
			telegram.WithNetwork(cfg.Network),
			telegram.WithSymbol(cfg.UnitSymbol),
			telegram.WithEmptySummaries(cfg.NotifyEmptyBlocks),
			telegram.WithLogger(w.logger),
		)))
	}

	if cfg.Notifies(config.NotifyKafka) {
		producer := kafka.New(cfg.Kafka.Brokers, cfg.Kafka.Topic,
			kafka.WithNetwork(cfg.Network),
			kafka.WithSymbol(cfg.UnitSymbol),
		)
		p.closers = append(p.closers, func() { _ = producer.Close() })
		notifiers = append(notifiers, notify.WithNotifier(config.NotifyKafka, producer))
	}

	if cfg.Redis.Addr != "" {
		rc, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			p.release()
			return nil, err
		}
		p.closers = append(p.closers, func() { _ = rc.Close() })

		monitorOpts = append(monitorOpts, monitor.WithRegistry(walletregistry.New(rc)))

		if cfg.Notifies(config.NotifyRedis) {
			notifiers = append(notifiers, notify.WithNotifier(config.NotifyRedis, rc.NewPublisher(cfg.Redis.Channel,
				redis.WithNetwork(cfg.Network),
				redis.WithSymbol(cfg.UnitSymbol),
			)))
		}
	}

	p.Service = monitor.New(chain, notify.NewFanout(notifiers...), monitorOpts...)
	return p, nil
}

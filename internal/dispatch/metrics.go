package dispatch

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/gabapcia/addrwatch/internal/dispatch"

type loopMetrics struct {
	signalsSuperseded metric.Int64Counter
	blocksSkipped     metric.Int64Counter
	handlerErrors     metric.Int64Counter
}

func newLoopMetrics(mp metric.MeterProvider) loopMetrics {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}

	meter := mp.Meter(instrumentationName)
	nop := noop.NewMeterProvider().Meter(instrumentationName)

	counter := func(name, desc string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc))
		if err != nil {
			c, _ = nop.Int64Counter(name)
		}
		return c
	}

	return loopMetrics{
		signalsSuperseded: counter("addrwatch.dispatch.signals.superseded", "Block signals merged into a later one"),
		blocksSkipped:     counter("addrwatch.dispatch.blocks.skipped", "Blocks that could not be scanned"),
		handlerErrors:     counter("addrwatch.dispatch.handler.errors", "Events the handler failed to deliver"),
	}
}

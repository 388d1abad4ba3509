package txwatch

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/gabapcia/addrwatch/internal/txwatch"

// scannerMetrics groups the instruments reported by the Scanner.
type scannerMetrics struct {
	blocksScanned       metric.Int64Counter
	blocksUnavailable   metric.Int64Counter
	transactionsSkipped metric.Int64Counter
	transactionsMatched metric.Int64Counter
	scanDuration        metric.Float64Histogram
}

// newScannerMetrics creates the instruments from mp. Instruments that fail
// to register are replaced by no-ops.
func newScannerMetrics(mp metric.MeterProvider) scannerMetrics {
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

	duration, err := meter.Float64Histogram(
		"addrwatch.scanner.scan.duration",
		metric.WithDescription("Time spent scanning one block"),
		metric.WithUnit("s"),
	)
	if err != nil {
		duration, _ = nop.Float64Histogram("addrwatch.scanner.scan.duration")
	}

	return scannerMetrics{
		blocksScanned:       counter("addrwatch.scanner.blocks.scanned", "Blocks scanned successfully"),
		blocksUnavailable:   counter("addrwatch.scanner.blocks.unavailable", "Blocks that could not be read"),
		transactionsSkipped: counter("addrwatch.scanner.transactions.skipped", "Transactions left out because their details could not be fetched"),
		transactionsMatched: counter("addrwatch.scanner.transactions.matched", "Transactions touching the watch list"),
		scanDuration:        duration,
	}
}

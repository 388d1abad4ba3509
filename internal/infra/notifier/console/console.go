// Package console renders watch events on a terminal.
package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/gabapcia/addrwatch/internal/notify"
	"github.com/gabapcia/addrwatch/internal/txwatch"
)

// boxWidth is the number of columns between the box borders.
const boxWidth = 60

type config struct {
	output         io.Writer
	colored        bool
	emptySummaries bool
	symbol         string
}

// Option configures the console notifier.
type Option func(*config)

// WithOutput sets the destination. Default: standard output.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// WithColor forces colors on or off. By default colors are used when the
// output is a terminal.
func WithColor(enabled bool) Option {
	return func(c *config) {
		c.colored = enabled
	}
}

// WithEmptySummaries prints summaries of blocks without matches.
// Default: false.
func WithEmptySummaries(enabled bool) Option {
	return func(c *config) {
		c.emptySummaries = enabled
	}
}

// WithSymbol sets the unit shown next to amounts. Default: ETH.
func WithSymbol(symbol string) Option {
	return func(c *config) {
		c.symbol = symbol
	}
}

// notifier prints a box per transaction and a line per block.
type notifier struct {
	mu             sync.Mutex
	output         io.Writer
	colored        bool
	emptySummaries bool
	symbol         string
}

var _ notify.Notifier = (*notifier)(nil)

// New creates a console notifier.
func New(opts ...Option) *notifier {
	cfg := config{
		output:  color.Output,
		colored: !color.NoColor,
		symbol:  "ETH",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &notifier{
		output:         cfg.output,
		colored:        cfg.colored,
		emptySummaries: cfg.emptySummaries,
		symbol:         cfg.symbol,
	}
}

// paint returns a color that honours the colored setting.
func (n *notifier) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if n.colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func directionColor(d txwatch.Direction) color.Attribute {
	switch d {
	case txwatch.Inbound:
		return color.FgGreen
	case txwatch.Outbound:
		return color.FgYellow
	default:
		return color.FgCyan
	}
}

func directionTag(d txwatch.Direction) string {
	switch d {
	case txwatch.Inbound:
		return "[IN]"
	case txwatch.Outbound:
		return "[OUT]"
	case txwatch.SelfTransfer:
		return "[SELF]"
	default:
		return "[TX]"
	}
}

// pad right-pads s to width runes.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// render formats the box of tx.
func (n *notifier) render(tx txwatch.ClassifiedTransaction) string {
	border := n.paint(directionColor(tx.Direction))
	header := n.paint(directionColor(tx.Direction), color.Bold)
	bar := border.Sprint("║")

	row := func(label, value string) string {
		return bar + pad(fmt.Sprintf("  %-11s%s", label, value), boxWidth) + bar
	}

	timestamp := "-"
	if !tx.Timestamp.IsZero() {
		timestamp = tx.Timestamp.UTC().Format(time.DateTime + " UTC")
	}

	lines := []string{
		"",
		border.Sprint("╔" + strings.Repeat("═", boxWidth) + "╗"),
		bar + header.Sprint(pad(fmt.Sprintf("  %s %s", directionTag(tx.Direction), notify.DirectionLabel(tx.Direction)), boxWidth)) + bar,
		border.Sprint("╠" + strings.Repeat("═", boxWidth) + "╣"),
		row("Hash:", notify.ShortHash(tx.Hash)),
		row("Amount:", tx.FormattedValue+" "+n.symbol),
		row("From:", notify.ShortAddress(tx.From)),
		row("To:", notify.RecipientLabel(tx)),
		row("Gas price:", tx.FormattedGasPrice+" "+n.symbol),
		row("Gas limit:", humanize.Comma(int64(tx.GasLimit))),
		row("Block:", humanize.Comma(int64(tx.BlockNumber))),
		row("Time:", timestamp),
		border.Sprint("╚" + strings.Repeat("═", boxWidth) + "╝"),
		"",
	}

	return strings.Join(lines, "\n")
}

func (n *notifier) println(s string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	_, err := fmt.Fprintln(n.output, s)
	return err
}

// NotifyTransaction implements notify.Notifier.
func (n *notifier) NotifyTransaction(_ context.Context, tx txwatch.ClassifiedTransaction) error {
	return n.println(n.render(tx))
}

// NotifyBlockSummary implements notify.Notifier. Blocks without matches are
// only printed when empty summaries are enabled.
func (n *notifier) NotifyBlockSummary(_ context.Context, blockNumber uint64, matchCount int) error {
	if matchCount == 0 && !n.emptySummaries {
		return nil
	}

	line := "✓ " + notify.SummaryText(blockNumber, matchCount)
	if matchCount > 0 {
		line = n.paint(color.FgGreen, color.Bold).Sprint(line)
	}

	return n.println(line)
}

// SendMessage implements notify.Notifier.
func (n *notifier) SendMessage(_ context.Context, text string) error {
	return n.println(text)
}

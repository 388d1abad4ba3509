// Package notify defines the contract of notification sinks and fans the
// output of the dispatch loop out to every configured sink.
package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/addrwatch/internal/txwatch"
)

// Notifier delivers events to one destination (terminal, chat, message bus).
type Notifier interface {
	// NotifyTransaction delivers a transaction touching the watch list.
	NotifyTransaction(ctx context.Context, tx txwatch.ClassifiedTransaction) error

	// NotifyBlockSummary reports that a block was scanned and how many
	// transactions matched. It is called for every block, including blocks
	// without matches; notifiers decide whether to show those.
	NotifyBlockSummary(ctx context.Context, blockNumber uint64, matchCount int) error

	// SendMessage delivers free-form text, such as startup notices.
	SendMessage(ctx context.Context, text string) error
}

// SinkError reports a delivery failure of one notifier.
type SinkError struct {
	Notifier string // name the notifier was registered with
	Op       string // "transaction", "block_summary" or "message"
	Err      error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("notifier %s: %s: %v", e.Notifier, e.Op, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

// named pairs a notifier with the name used in errors.
type named struct {
	name     string
	notifier Notifier
}

// Fanout delivers every event to all registered notifiers, in registration
// order. A failing notifier does not prevent delivery to the others.
type Fanout struct {
	notifiers []named
}

// FanoutOption registers notifiers on a Fanout.
type FanoutOption func(*Fanout)

// WithNotifier adds n under name.
func WithNotifier(name string, n Notifier) FanoutOption {
	return func(f *Fanout) {
		f.notifiers = append(f.notifiers, named{name: name, notifier: n})
	}
}

// NewFanout creates a Fanout over the given notifiers.
func NewFanout(opts ...FanoutOption) *Fanout {
	f := &Fanout{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Len returns the number of registered notifiers.
func (f *Fanout) Len() int {
	return len(f.notifiers)
}

// each calls deliver for every notifier and joins the failures.
func (f *Fanout) each(op string, deliver func(Notifier) error) error {
	var errs []error
	for _, n := range f.notifiers {
		if err := deliver(n.notifier); err != nil {
			errs = append(errs, &SinkError{Notifier: n.name, Op: op, Err: err})
		}
	}
	return errors.Join(errs...)
}

// OnTransaction implements dispatch.EventHandler.
func (f *Fanout) OnTransaction(ctx context.Context, tx txwatch.ClassifiedTransaction) error {
	return f.each("transaction", func(n Notifier) error {
		return n.NotifyTransaction(ctx, tx)
	})
}

// OnBlockSummary implements dispatch.EventHandler.
func (f *Fanout) OnBlockSummary(ctx context.Context, blockNumber uint64, matchCount int) error {
	return f.each("block_summary", func(n Notifier) error {
		return n.NotifyBlockSummary(ctx, blockNumber, matchCount)
	})
}

// SendMessage delivers text to every notifier.
func (f *Fanout) SendMessage(ctx context.Context, text string) error {
	return f.each("message", func(n Notifier) error {
		return n.SendMessage(ctx, text)
	})
}

package dispatch

import (
	"sync"

	"github.com/gabapcia/addrwatch/internal/pkg/x/chflow"
)

// pendingSlot holds the highest block height waiting to be scanned.
// Offers made while the slot is full are merged into it.
type pendingSlot struct {
	mu     sync.Mutex
	height uint64
	set    bool
	ready  chan struct{}
}

func newPendingSlot() *pendingSlot {
	return &pendingSlot{ready: make(chan struct{}, 1)}
}

// Offer records height. When another height was already waiting, the lower
// of the two is dropped and returned with dropped set to true.
func (p *pendingSlot) Offer(height uint64) (superseded uint64, dropped bool) {
	p.mu.Lock()
	switch {
	case !p.set:
		p.height, p.set = height, true
	case height > p.height:
		superseded, dropped = p.height, true
		p.height = height
	default:
		superseded, dropped = height, true
	}
	p.mu.Unlock()

	chflow.TrySend(p.ready, struct{}{})
	return superseded, dropped
}

// Take empties the slot.
func (p *pendingSlot) Take() (uint64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.set {
		return 0, false
	}

	p.set = false
	return p.height, true
}

// Ready is signalled after every Offer.
func (p *pendingSlot) Ready() <-chan struct{} {
	return p.ready
}

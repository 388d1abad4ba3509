package ethereum

import (
	"context"
	"time"

	"github.com/gabapcia/addrwatch/internal/pkg/x/chflow"
)

// SubscribeNewBlocks polls the node every poll interval and emits each new
// latest height. Heights skipped between two polls are not emitted. The
// channel is closed once ctx is done.
func (c *client) SubscribeNewBlocks(ctx context.Context) (<-chan uint64, error) {
	last, err := c.BlockNumber(ctx)
	if err != nil {
		return nil, err
	}

	heightsCh := make(chan uint64, 1)
	go func() {
		defer close(heightsCh)

		ticker := time.NewTicker(c.pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			latest, err := c.BlockNumber(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}

				c.logger.Warn(ctx, "failed to poll latest block", "error", err)
				continue
			}

			if latest <= last {
				continue
			}

			last = latest
			if !chflow.Send(ctx, heightsCh, latest) {
				return
			}
		}
	}()

	return heightsCh, nil
}

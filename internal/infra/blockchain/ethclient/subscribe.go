package ethclient

import (
	"context"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/gabapcia/addrwatch/internal/pkg/x/chflow"
)

// SubscribeNewBlocks forwards the height of every newHeads notification. The
// channel is closed when ctx is done or the subscription fails.
func (c *client) SubscribeNewBlocks(ctx context.Context) (<-chan uint64, error) {
	headersCh := make(chan *types.Header, 1)
	sub, err := c.conn.SubscribeNewHead(ctx, headersCh)
	if err != nil {
		return nil, err
	}

	heightsCh := make(chan uint64, 1)
	go func() {
		defer close(heightsCh)
		defer sub.Unsubscribe()

		for {
			select {
			case <-ctx.Done():
				return
			case err := <-sub.Err():
				if err != nil {
					c.logger.Error(ctx, "new head subscription failed", "error", err)
				}
				return
			case header := <-headersCh:
				if header == nil || header.Number == nil {
					continue
				}

				if !chflow.Send(ctx, heightsCh, header.Number.Uint64()) {
					return
				}
			}
		}
	}()

	return heightsCh, nil
}

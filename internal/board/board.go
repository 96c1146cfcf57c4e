package board

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/api"
)

// recentWindow is how far back an order still counts as "new" on the
// staff board.
const recentWindow = time.Hour

// OrdersAPI is the slice of the remote client the board needs.
type OrdersAPI interface {
	AllOrders(ctx context.Context) ([]api.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status api.OrderStatus) error
}

// Board keeps a staff operator's view of all orders. Refresh replaces
// the whole list from a single server snapshot, so readers never see a
// partially applied update; when two refreshes overlap, whichever
// response lands last wins, which is safe under full-replace semantics.
type Board struct {
	mu     sync.Mutex
	all    []api.Order
	recent []api.Order
	closed bool

	ordersAPI OrdersAPI
	logger    zerolog.Logger
}

func New(ordersAPI OrdersAPI, logger zerolog.Logger) *Board {
	return &Board{
		ordersAPI: ordersAPI,
		logger:    logger,
	}
}

// Refresh fetches all orders, replaces the board state wholesale and
// recomputes the recent subset. A failed fetch leaves the previous
// snapshot untouched and is reported to the log; render paths keep
// showing the last known good state. The returned error exists for the
// poller's bookkeeping and may be ignored.
func (b *Board) Refresh(ctx context.Context) error {
	orders, err := b.ordersAPI.AllOrders(ctx)
	if err != nil {
		b.logger.Error().Err(err).Msg("board: failed to fetch orders")
		return err
	}

	cutoff := time.Now().Add(-recentWindow)
	recent := make([]api.Order, 0, len(orders))
	for _, o := range orders {
		if o.CreatedAt.After(cutoff) {
			recent = append(recent, o)
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		// Ответ пришёл уже после остановки доски — не применяем его.
		return nil
	}
	b.all = orders
	b.recent = recent
	return nil
}

// UpdateStatus asks the server to move an order to the given status,
// then refetches so the board shows the confirmed server state. There
// is no optimistic local update: a failed request changes nothing, and
// the refetch only starts after the update has resolved.
func (b *Board) UpdateStatus(ctx context.Context, orderID string, status api.OrderStatus) error {
	if err := b.ordersAPI.UpdateOrderStatus(ctx, orderID, status); err != nil {
		b.logger.Error().Err(err).
			Str("order_id", orderID).
			Stringer("status", status).
			Msg("board: failed to update order status")
		return fmt.Errorf("failed to update order %s: %w", orderID, err)
	}

	return b.Refresh(ctx)
}

// Snapshot returns copies of the full list and the recent subset.
func (b *Board) Snapshot() (all, recent []api.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]api.Order(nil), b.all...), append([]api.Order(nil), b.recent...)
}

// StartPolling refreshes immediately, then on every interval tick,
// until the returned stop function runs or ctx is cancelled. Every tick
// retries unconditionally; there is no backoff. Stopping also closes
// the board: a response from a still in-flight refresh arriving
// afterwards is discarded instead of mutating torn-down state.
func (b *Board) StartPolling(ctx context.Context, interval time.Duration) (stop func()) {
	pollCtx, cancel := context.WithCancel(ctx)

	go func() {
		_ = b.Refresh(pollCtx)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-pollCtx.Done():
				return
			case <-ticker.C:
				_ = b.Refresh(pollCtx)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			b.mu.Lock()
			b.closed = true
			b.mu.Unlock()
		})
	}
}

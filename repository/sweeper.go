package repository

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper periodically evicts expired entries from a PendingStore. It is
// owned by the process lifecycle: main starts it on a cancellable context
// and cancels it during shutdown.
type Sweeper struct {
	store    PendingStore
	interval time.Duration
	maxAge   time.Duration
	logger   *zap.Logger
}

func NewSweeper(store PendingStore, interval, maxAge time.Duration, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		store:    store,
		interval: interval,
		maxAge:   maxAge,
		logger:   logger,
	}
}

// Start blocks, sweeping on every tick until ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Pending-transaction sweeper stopped")
			return
		case now := <-ticker.C:
			if removed := s.store.SweepExpired(now, s.maxAge); removed > 0 {
				s.logger.Info("Evicted abandoned checkouts",
					zap.Int("removed", removed),
					zap.Duration("max_age", s.maxAge),
				)
			}
		}
	}
}

package session

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper periodically evicts idle sessions from a Store.
type Sweeper struct {
	store    *Store
	ttl      time.Duration
	interval time.Duration
	logger   *zap.Logger
}

func NewSweeper(store *Store, ttl, interval time.Duration, logger *zap.Logger) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sweeper{store: store, ttl: ttl, interval: interval, logger: logger}
}

// Run blocks until ctx is done. A non-positive ttl disables eviction.
func (s *Sweeper) Run(ctx context.Context) error {
	if s.ttl <= 0 {
		s.logger.Info("session sweeper disabled")
		<-ctx.Done()
		return nil
	}

	s.logger.Info("session sweeper started",
		zap.Duration("ttl", s.ttl),
		zap.Duration("interval", s.interval),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session sweeper stopped")
			return nil
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Sweeper) sweep() {
	n := s.store.Evict(s.ttl)
	if n == 0 {
		s.logger.Debug("no idle sessions")
		return
	}
	s.logger.Info("evicted idle sessions",
		zap.Int("count", n),
		zap.Int("remaining", s.store.Len()),
	)
}

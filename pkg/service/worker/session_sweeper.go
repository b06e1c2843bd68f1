package worker

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/execdiag/pkg/domain/interfaces"
	"github.com/secmon-lab/execdiag/pkg/utils/errutil"
	"github.com/secmon-lab/execdiag/pkg/utils/logging"
)

// SessionSweeper periodically deletes questionnaire sessions that have not
// been touched for longer than the TTL.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - Sweeping twice from two instances is harmless, DeleteIdle is idempotent
type SessionSweeper struct {
	repo     interfaces.Repository
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// SweeperOption configures a SessionSweeper
type SweeperOption func(*SessionSweeper)

// WithClock replaces time.Now
func WithClock(now func() time.Time) SweeperOption {
	return func(w *SessionSweeper) {
		w.now = now
	}
}

// NewSessionSweeper creates a sweeper that runs every interval
func NewSessionSweeper(repo interfaces.Repository, ttl, interval time.Duration, opts ...SweeperOption) *SessionSweeper {
	w := &SessionSweeper{
		repo:     repo,
		ttl:      ttl,
		interval: interval,
		now:      time.Now,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins the background sweep loop. It does not block.
func (w *SessionSweeper) Start(ctx context.Context) error {
	if w.ttl <= 0 || w.interval <= 0 {
		return goerr.New("sweeper TTL and interval must be positive",
			goerr.V("ttl", w.ttl),
			goerr.V("interval", w.interval))
	}

	logging.Default().Info("Session sweeper starting",
		"ttl", w.ttl.String(),
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *SessionSweeper) Stop() {
	w.stopOnce.Do(func() {
		logging.Default().Info("Session sweeper stopping")
		close(w.stopCh)
		<-w.doneCh
		logging.Default().Info("Session sweeper stopped")
	})
}

func (w *SessionSweeper) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := w.Sweep(ctx); err != nil {
				errutil.Handle(ctx, err, "Session sweep failed (will retry next interval)")
			}

		case <-w.stopCh:
			return

		case <-ctx.Done():
			logging.Default().Info("Session sweeper context cancelled")
			return
		}
	}
}

// Sweep performs a single cleanup cycle and returns the number of deleted sessions
func (w *SessionSweeper) Sweep(ctx context.Context) (int, error) {
	before := w.now().Add(-w.ttl)

	deleted, err := w.repo.Session().DeleteIdle(ctx, before)
	if err != nil {
		return deleted, goerr.Wrap(err, "failed to delete idle sessions", goerr.V("before", before))
	}

	if deleted > 0 {
		logging.Default().Info("Idle sessions deleted", "count", deleted, "before", before)
	}
	return deleted, nil
}

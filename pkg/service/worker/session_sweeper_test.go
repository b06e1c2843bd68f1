package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/execdiag/pkg/domain/model"
	"github.com/secmon-lab/execdiag/pkg/repository/memory"
	"github.com/secmon-lab/execdiag/pkg/service/worker"
)

func TestSessionSweeper_Sweep(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	stale := model.NewSession(model.NewSessionID(), now.Add(-3*time.Hour))
	fresh := model.NewSession(model.NewSessionID(), now.Add(-30*time.Minute))
	gt.NoError(t, repo.Session().Put(ctx, stale)).Required()
	gt.NoError(t, repo.Session().Put(ctx, fresh)).Required()

	w := worker.NewSessionSweeper(repo, 2*time.Hour, time.Minute,
		worker.WithClock(func() time.Time { return now }))

	deleted, err := w.Sweep(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, deleted).Equal(1)

	_, err = repo.Session().Get(ctx, stale.ID)
	gt.Error(t, err).Is(model.ErrSessionNotFound)
	_, err = repo.Session().Get(ctx, fresh.ID)
	gt.NoError(t, err)

	deleted, err = w.Sweep(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, deleted).Equal(0)
}

func TestSessionSweeper_StartStop(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	stale := model.NewSession(model.NewSessionID(), time.Now().Add(-time.Hour))
	gt.NoError(t, repo.Session().Put(ctx, stale)).Required()

	w := worker.NewSessionSweeper(repo, time.Minute, 10*time.Millisecond)
	gt.NoError(t, w.Start(ctx)).Required()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := repo.Session().Get(ctx, stale.ID); err != nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	w.Stop()
	w.Stop()

	_, err := repo.Session().Get(ctx, stale.ID)
	gt.Error(t, err).Is(model.ErrSessionNotFound)
}

func TestSessionSweeper_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := worker.NewSessionSweeper(memory.New(), time.Minute, time.Hour)
	gt.NoError(t, w.Start(ctx)).Required()

	cancel()
	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestSessionSweeper_InvalidConfig(t *testing.T) {
	w := worker.NewSessionSweeper(memory.New(), 0, time.Minute)
	gt.Error(t, w.Start(context.Background()))
}

package services

import (
	"context"
	"log/slog"
	"time"

	"partnerdash-be/internal/engagement"
	"partnerdash-be/internal/models"
)

// Refresher forces an engagement cache refresh.
type Refresher interface {
	Refresh(ctx context.Context) (*models.EngagementResponse, error)
}

// RefreshWorker refreshes the engagement cache once the daily refresh instant
// has passed. It stands in for an external cron when none is configured.
type RefreshWorker struct {
	refresher Refresher
	store     engagement.Store
	now       func() time.Time
	last      time.Time
}

func NewRefreshWorker(refresher Refresher, store engagement.Store, now func() time.Time) *RefreshWorker {
	if now == nil {
		now = time.Now
	}
	return &RefreshWorker{refresher: refresher, store: store, now: now}
}

// Start runs the worker in a goroutine until ctx is done.
func (w *RefreshWorker) Start(ctx context.Context, interval time.Duration) {
	if entry, err := w.store.Get(ctx); err == nil && entry != nil {
		w.last = entry.FetchedAt
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				slog.Info("refresh worker: shutting down")
				return
			case <-ticker.C:
				w.tick(ctx)
			}
		}
	}()
}

// tick refreshes when the last successful fetch predates the current threshold.
// It reports whether a refresh was attempted.
func (w *RefreshWorker) tick(ctx context.Context) bool {
	now := w.now()
	if engagement.IsFresh(w.last, now) {
		return false
	}

	resp, err := w.refresher.Refresh(ctx)
	if err != nil {
		slog.Error("refresh worker: refresh failed", "error", err)
		return true
	}
	w.last = resp.CachedAt
	return true
}

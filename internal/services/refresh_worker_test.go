package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"partnerdash-be/internal/engagement"
	"partnerdash-be/internal/models"

	"github.com/stretchr/testify/assert"
)

type fakeRefresher struct {
	calls int
	at    time.Time
	err   error
}

func (f *fakeRefresher) Refresh(ctx context.Context) (*models.EngagementResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &models.EngagementResponse{CachedAt: f.at}, nil
}

func TestRefreshWorker_Tick(t *testing.T) {
	// 09:00 IST on 31 Mar: the threshold is 09:30 IST on 30 Mar
	now := time.Date(2024, 3, 31, 9, 0, 0, 0, engagement.RefreshZone)
	refresher := &fakeRefresher{at: now}
	w := NewRefreshWorker(refresher, engagement.NewMemoryStore(), func() time.Time { return now })

	w.last = time.Date(2024, 3, 30, 9, 29, 0, 0, engagement.RefreshZone)
	assert.True(t, w.tick(context.Background()), "fetched before yesterday's instant")
	assert.Equal(t, 1, refresher.calls)
	assert.Equal(t, now, w.last)

	assert.False(t, w.tick(context.Background()), "fresh after refresh")
	assert.Equal(t, 1, refresher.calls)
}

func TestRefreshWorker_FailureRetriesNextTick(t *testing.T) {
	now := time.Date(2024, 3, 31, 10, 0, 0, 0, engagement.RefreshZone)
	refresher := &fakeRefresher{err: errors.New("feed down")}
	w := NewRefreshWorker(refresher, engagement.NewMemoryStore(), func() time.Time { return now })

	w.tick(context.Background())
	w.tick(context.Background())
	assert.Equal(t, 2, refresher.calls)
	assert.True(t, w.last.IsZero())
}

func TestRefreshWorker_StartSeedsFromStore(t *testing.T) {
	now := time.Date(2024, 3, 31, 10, 0, 0, 0, engagement.RefreshZone)
	store := engagement.NewMemoryStore()
	_ = store.Put(context.Background(), models.EngagementCacheEntry{FetchedAt: now.Add(-time.Minute)})

	refresher := &fakeRefresher{}
	w := NewRefreshWorker(refresher, store, func() time.Time { return now })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx, time.Hour)

	assert.False(t, w.tick(ctx))
	assert.Equal(t, 0, refresher.calls)
}

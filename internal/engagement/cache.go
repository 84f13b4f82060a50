package engagement

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"partnerdash-be/internal/mixmax"
	"partnerdash-be/internal/models"
	"partnerdash-be/internal/observability"

	"golang.org/x/sync/errgroup"
)

const (
	recipientPageSize  = 100
	defaultConcurrency = 4
)

// Feed is the upstream engagement source.
type Feed interface {
	Configured() error
	ListSequences(ctx context.Context) ([]mixmax.Sequence, error)
	ListRecipients(ctx context.Context, sequenceID string, offset, limit int) ([]mixmax.Recipient, error)
}

// Service serves the engagement snapshot from a daily-refreshed cache.
type Service struct {
	feed        Feed
	store       Store
	now         func() time.Time
	concurrency int
	log         *slog.Logger
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithConcurrency bounds how many sequences are fetched at once.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

func NewService(feed Feed, store Store, opts ...Option) *Service {
	s := &Service{
		feed:        feed,
		store:       store,
		now:         time.Now,
		concurrency: defaultConcurrency,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read returns the cached snapshot when it is fresh. Otherwise it refetches;
// if that fails and any entry exists, the old entry is served flagged stale.
func (s *Service) Read(ctx context.Context) (*models.EngagementResponse, error) {
	if err := s.feed.Configured(); err != nil {
		return nil, err
	}

	now := s.now()
	cached, err := s.store.Get(ctx)
	if err != nil {
		s.log.Warn("engagement cache unreadable, treating as empty", "error", err)
		cached = nil
	}

	if cached != nil && IsFresh(cached.FetchedAt, now) {
		observability.EngagementCache.WithLabelValues(observability.CacheHit).Inc()
		return respond(*cached, false), nil
	}

	snapshot, err := s.fetch(ctx)
	if err != nil {
		observability.UpstreamErrors.WithLabelValues("mixmax").Inc()
		if cached != nil {
			observability.EngagementCache.WithLabelValues(observability.CacheStale).Inc()
			s.log.Warn("engagement feed unavailable, serving stale cache",
				"error", err, "cachedAt", cached.FetchedAt)
			return respond(*cached, true), nil
		}
		observability.EngagementCache.WithLabelValues(observability.CacheError).Inc()
		return nil, fmt.Errorf("fetch engagement feed: %w", err)
	}

	observability.EngagementCache.WithLabelValues(observability.CacheMiss).Inc()
	entry := models.EngagementCacheEntry{FetchedAt: s.now(), Data: snapshot}
	if err := s.store.Put(ctx, entry); err != nil {
		s.log.Warn("failed to write engagement cache", "error", err)
	}
	return respond(entry, false), nil
}

// Refresh fetches and overwrites the cache regardless of freshness.
func (s *Service) Refresh(ctx context.Context) (*models.EngagementResponse, error) {
	if err := s.feed.Configured(); err != nil {
		return nil, err
	}

	snapshot, err := s.fetch(ctx)
	if err != nil {
		observability.UpstreamErrors.WithLabelValues("mixmax").Inc()
		return nil, fmt.Errorf("refresh engagement feed: %w", err)
	}

	entry := models.EngagementCacheEntry{FetchedAt: s.now(), Data: snapshot}
	if err := s.store.Put(ctx, entry); err != nil {
		return nil, fmt.Errorf("write engagement cache: %w", err)
	}
	observability.EngagementCache.WithLabelValues(observability.CacheRefresh).Inc()
	s.log.Info("engagement cache refreshed", "recipients", len(snapshot.Recipients))
	return respond(entry, false), nil
}

func (s *Service) fetch(ctx context.Context) (models.EngagementSnapshot, error) {
	sequences, err := s.feed.ListSequences(ctx)
	if err != nil {
		return models.EngagementSnapshot{}, fmt.Errorf("list sequences: %w", err)
	}

	acc := newAccumulator()
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, seq := range sequences {
		g.Go(func() error {
			for offset := 0; ; offset += recipientPageSize {
				page, err := s.feed.ListRecipients(gctx, seq.ID, offset, recipientPageSize)
				if err != nil {
					return fmt.Errorf("list recipients of %q: %w", seq.Name, err)
				}

				mu.Lock()
				for _, r := range page {
					acc.add(seq.Name, r)
				}
				mu.Unlock()

				if len(page) < recipientPageSize {
					return nil
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		return models.EngagementSnapshot{}, err
	}
	return acc.snapshot(), nil
}

func respond(entry models.EngagementCacheEntry, stale bool) *models.EngagementResponse {
	return &models.EngagementResponse{
		EngagementSnapshot: entry.Data,
		CachedAt:           entry.FetchedAt,
		Stale:              stale,
	}
}

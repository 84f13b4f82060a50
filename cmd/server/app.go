package main

import (
	"context"
	"net/http"
	"time"

	"partnerdash-be/config"
	"partnerdash-be/internal/airtable"
	"partnerdash-be/internal/database"
	"partnerdash-be/internal/engagement"
	"partnerdash-be/internal/mixmax"
	"partnerdash-be/internal/repository"
	"partnerdash-be/internal/services"
)

// app holds the wired services shared by every subcommand.
type app struct {
	cfg        *config.Config
	store      engagement.Store
	engagement *engagement.Service
	analytics  *services.AnalyticsService
	partners   *services.PartnerService
	insights   *services.InsightsService
	dailyCheck *services.DailyCheckService
	close      func()
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	store, closeStore, err := newEngagementStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	records := airtable.NewClient(cfg.AirtableBaseURL, cfg.AirtableToken,
		airtable.WithHTTPClient(airtable.NewHTTPClient(cfg.HTTPTimeout)),
		airtable.WithRateLimit(cfg.AirtableRateLimit),
	)
	feed := mixmax.NewClient(cfg.MixmaxBaseURL, cfg.MixmaxAPIKey,
		mixmax.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
	)

	// Initialize repositories
	pipelineRepo := repository.NewPipelineRepository(records)
	counselorRepo := repository.NewCounselorRepository(records, cfg.CounselorWriteToken())
	conversationRepo := repository.NewConversationRepository(records, cfg.CounselorWriteToken())
	cohortRepo := repository.NewCohortRepository(records)

	// Initialize services
	engagementService := engagement.NewService(feed, store, engagement.WithConcurrency(cfg.MixmaxConcurrency))
	gmailService := services.NewGmailService(cfg)

	return &app{
		cfg:        cfg,
		store:      store,
		engagement: engagementService,
		analytics:  services.NewAnalyticsService(pipelineRepo, counselorRepo, time.Now),
		partners:   services.NewPartnerService(pipelineRepo, counselorRepo, conversationRepo),
		insights:   services.NewInsightsService(cohortRepo, engagementService, time.Now),
		dailyCheck: services.NewDailyCheckService(cohortRepo, engagementService, gmailService, cfg.NotifyEmail, time.Now),
		close:      closeStore,
	}, nil
}

// newEngagementStore opens the configured cache backend.
func newEngagementStore(ctx context.Context, cfg *config.Config) (engagement.Store, func(), error) {
	if cfg.EngagementCacheBackend != "mongo" {
		return engagement.NewFileStore(cfg.EngagementCachePath), func() {}, nil
	}

	if cfg.MongoDBURI == "" {
		return nil, nil, &config.ConfigurationError{Key: "MONGODB_URI"}
	}
	mongodb, err := database.NewMongoDB(ctx, cfg.MongoDBURI, cfg.MongoDBDatabase)
	if err != nil {
		return nil, nil, err
	}
	closeStore := func() {
		_ = mongodb.Disconnect()
	}
	return repository.NewEngagementCacheRepository(mongodb.EngagementCache()), closeStore, nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"partnerdash-be/internal/analytics"
	"partnerdash-be/internal/models"
	"partnerdash-be/internal/observability"

	"golang.org/x/sync/errgroup"
)

// PipelineSource reads the student pipeline tables.
type PipelineSource interface {
	GetAllLeads(ctx context.Context) ([]models.Lead, error)
	GetAllApplications(ctx context.Context) ([]models.Application, error)
	GetAllCounselorLinks(ctx context.Context) ([]models.CounselorLink, error)
	GetLinksForCounselor(ctx context.Context, counselorID string) (models.CounselorLink, error)
	GetApplicationsByIDs(ctx context.Context, ids []string) ([]models.Application, error)
	GetLeadsByIDs(ctx context.Context, ids []string) ([]models.Lead, error)
}

// CounselorSource reads and writes partner records.
type CounselorSource interface {
	ListCounselors(ctx context.Context) ([]models.Counselor, error)
	NextCounselorID(ctx context.Context) (string, error)
	Create(ctx context.Context, req models.CreateCounselorRequest, counselorID string) (*models.Counselor, error)
	Update(ctx context.Context, recordID string, req models.UpdateCounselorRequest) (*models.Counselor, error)
}

type AnalyticsService struct {
	pipeline   PipelineSource
	counselors CounselorSource
	aggregator *analytics.Aggregator
}

func NewAnalyticsService(pipeline PipelineSource, counselors CounselorSource, now func() time.Time) *AnalyticsService {
	return &AnalyticsService{
		pipeline:   pipeline,
		counselors: counselors,
		aggregator: analytics.NewAggregator(now),
	}
}

// GetAnalytics fetches the four tables concurrently and computes the dashboard.
// Any table failing aborts the whole request.
func (s *AnalyticsService) GetAnalytics(ctx context.Context, period string) (*models.AnalyticsData, error) {
	start := time.Now()
	defer func() {
		observability.AnalyticsDuration.Observe(time.Since(start).Seconds())
	}()

	var (
		leads      []models.Lead
		apps       []models.Application
		links      []models.CounselorLink
		counselors []models.Counselor
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		leads, err = s.pipeline.GetAllLeads(gctx)
		return err
	})
	g.Go(func() (err error) {
		apps, err = s.pipeline.GetAllApplications(gctx)
		return err
	})
	g.Go(func() (err error) {
		links, err = s.pipeline.GetAllCounselorLinks(gctx)
		return err
	})
	g.Go(func() (err error) {
		counselors, err = s.counselors.ListCounselors(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		observability.UpstreamErrors.WithLabelValues("airtable").Inc()
		return nil, fmt.Errorf("load analytics sources: %w", err)
	}

	names := make(map[string]string, len(counselors))
	for _, c := range counselors {
		names[c.CounselorID] = c.CompanyName
	}

	data := s.aggregator.Compute(analytics.Input{
		Leads:          leads,
		Applications:   apps,
		Links:          links,
		CounselorNames: names,
		Period:         analytics.ParsePeriod(period),
	})
	return &data, nil
}

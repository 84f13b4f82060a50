package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"partnerdash-be/internal/analytics"
	"partnerdash-be/internal/models"
)

// Cohort keys.
const (
	CohortAcceptance   = "acceptance"
	CohortShortlisting = "shortlisting"
	CohortBooking      = "booking"
	CohortForm         = "form"
)

const defaultCohortDays = 30

var (
	ErrUnknownCohort = errors.New("unknown cohort")
	ErrInvalidDays   = errors.New("days must be 30, 60 or 90")
)

// CohortSource reads the people each campaign targets.
type CohortSource interface {
	GetApplicationCohort(ctx context.Context, statuses []string, sentField string, since time.Time) ([]models.CohortMember, error)
	GetDiscoveryCohort(ctx context.Context, field, value string) ([]models.CohortMember, error)
}

// EngagementReader serves the cached engagement snapshot.
type EngagementReader interface {
	Read(ctx context.Context) (*models.EngagementResponse, error)
}

type cohortDefinition struct {
	Key       string
	Title     string
	Campaigns []string
	load      func(ctx context.Context, src CohortSource, since time.Time) ([]models.CohortMember, error)
}

// Discovery-call campaigns are addressed to parents; the double space in their
// names matches the sequence titles in Mixmax.
var cohortDefinitions = []cohortDefinition{
	{
		Key:       CohortAcceptance,
		Title:     "Acceptance Email Audit",
		Campaigns: []string{"Acceptance Email - No Scholarship", "Acceptance Email - Scholarship"},
		load: func(ctx context.Context, src CohortSource, since time.Time) ([]models.CohortMember, error) {
			return src.GetApplicationCohort(ctx, analytics.AcceptanceStatuses, "Acceptances Email Sent Time", since)
		},
	},
	{
		Key:       CohortShortlisting,
		Title:     "Shortlisting",
		Campaigns: []string{"Shortlisting Mail"},
		load: func(ctx context.Context, src CohortSource, since time.Time) ([]models.CohortMember, error) {
			return src.GetApplicationCohort(ctx, analytics.ShortlistingStatuses, "Shortlist Email Sent Time", since)
		},
	},
	{
		Key:       CohortBooking,
		Title:     "Parents Discovery - Booking Link",
		Campaigns: []string{"Parents  Discovery - Booking Link"},
		load: func(ctx context.Context, src CohortSource, _ time.Time) ([]models.CohortMember, error) {
			return src.GetDiscoveryCohort(ctx, "Qualified", "Email Sent")
		},
	},
	{
		Key:       CohortForm,
		Title:     "Parents Discovery - Application Form",
		Campaigns: []string{"Parents  Discovery - Application Form"},
		load: func(ctx context.Context, src CohortSource, _ time.Time) ([]models.CohortMember, error) {
			return src.GetDiscoveryCohort(ctx, "Student Application Form", "Form Sent")
		},
	},
}

func findCohort(key string) (cohortDefinition, bool) {
	for _, def := range cohortDefinitions {
		if def.Key == key {
			return def, true
		}
	}
	return cohortDefinition{}, false
}

// ParseCohortDays accepts 30, 60 or 90; zero means the default.
func ParseCohortDays(days int) (int, error) {
	switch days {
	case 0:
		return defaultCohortDays, nil
	case 30, 60, 90:
		return days, nil
	default:
		return 0, ErrInvalidDays
	}
}

type InsightsService struct {
	cohorts    CohortSource
	engagement EngagementReader
	now        func() time.Time
	log        *slog.Logger
}

func NewInsightsService(cohorts CohortSource, engagement EngagementReader, now func() time.Time) *InsightsService {
	if now == nil {
		now = time.Now
	}
	return &InsightsService{
		cohorts:    cohorts,
		engagement: engagement,
		now:        now,
		log:        slog.Default(),
	}
}

// GetCohort joins one campaign cohort to the engagement feed. When the feed is
// unavailable the rows are still returned with empty engagement.
func (s *InsightsService) GetCohort(ctx context.Context, key string, days int) (*models.CohortReport, error) {
	def, ok := findCohort(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCohort, key)
	}
	days, err := ParseCohortDays(days)
	if err != nil {
		return nil, err
	}

	now := s.now()
	members, err := def.load(ctx, s.cohorts, now.AddDate(0, 0, -days))
	if err != nil {
		return nil, err
	}

	report := &models.CohortReport{
		Cohort:      def.Key,
		Title:       def.Title,
		Days:        days,
		GeneratedAt: now,
	}

	var ix analytics.EngagementIndex
	if resp, err := s.engagement.Read(ctx); err != nil {
		s.log.Warn("engagement unavailable for cohort", "cohort", def.Key, "error", err)
	} else {
		ix = analytics.IndexEngagement(resp.Recipients, def.Campaigns)
		cachedAt := resp.CachedAt
		report.EngagementCachedAt = &cachedAt
		report.EngagementStale = resp.Stale
	}

	report.Rows = analytics.JoinCohort(members, ix)
	return report, nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"partnerdash-be/internal/airtable"
	"partnerdash-be/internal/analytics"
	"partnerdash-be/internal/models"
)

// CohortRepository reads the people targeted by each campaign.
type CohortRepository struct {
	src RecordSource
}

func NewCohortRepository(src RecordSource) *CohortRepository {
	return &CohortRepository{src: src}
}

// GetApplicationCohort returns applications in one of statuses whose campaign
// email (recorded in sentField) went out after since.
func (r *CohortRepository) GetApplicationCohort(ctx context.Context, statuses []string, sentField string, since time.Time) ([]models.CohortMember, error) {
	formula := fmt.Sprintf("AND(%s, IS_AFTER({%s}, %s))",
		airtable.AnyOfFormula("Follow Up Status", statuses),
		sentField,
		airtable.Quote(since.UTC().Format(time.RFC3339)),
	)
	records, err := r.src.FetchAll(ctx, StudentPipelineBase, ApplicationTable, airtable.FetchOptions{
		Fields: []string{"Name", "Student Email ID", "Follow Up Status", sentField},
		Filter: formula,
	})
	if err != nil {
		return nil, fmt.Errorf("get application cohort: %w", err)
	}

	members := make([]models.CohortMember, 0, len(records))
	for _, rec := range records {
		m := models.CohortMember{
			RecordID: rec.ID,
			Name:     nameOr(rec.String("Name")),
			Email:    analytics.NormalizeEmail(rec.String("Student Email ID")),
			Status:   rec.String("Follow Up Status"),
		}
		if t, ok := rec.Time(sentField); ok {
			m.EmailSentAt = &t
		}
		members = append(members, m)
	}
	return members, nil
}

// GetDiscoveryCohort returns discovery calls whose field equals value. These
// campaigns go to the parent, so the parent's email is the join key.
func (r *CohortRepository) GetDiscoveryCohort(ctx context.Context, field, value string) ([]models.CohortMember, error) {
	records, err := r.src.FetchAll(ctx, StudentPipelineBase, DiscoveryCallTable, airtable.FetchOptions{
		Fields: []string{"Student Name", "Parent Email ID", field},
		Filter: fmt.Sprintf("{%s} = %s", field, airtable.Quote(value)),
	})
	if err != nil {
		return nil, fmt.Errorf("get discovery cohort: %w", err)
	}

	members := make([]models.CohortMember, 0, len(records))
	for _, rec := range records {
		members = append(members, models.CohortMember{
			RecordID: rec.ID,
			Name:     nameOr(rec.String("Student Name")),
			Email:    analytics.NormalizeEmail(rec.String("Parent Email ID")),
			Status:   rec.String(field),
		})
	}
	return members, nil
}

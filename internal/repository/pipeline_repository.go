package repository

import (
	"context"
	"fmt"
	"time"

	"partnerdash-be/internal/airtable"
	"partnerdash-be/internal/analytics"
	"partnerdash-be/internal/models"
)

var (
	discoveryCallFields   = []string{"Student Name", "Student Email ID", "Created"}
	applicationFields     = []string{"Name", "Student Email ID", "Follow Up Status", "Created", "Interview Date", "Last Modified"}
	counselorRecordFields = []string{"Counselor ID", "Research Scholar Application", "Parent Discovery Call"}
)

// PipelineRepository projects the student pipeline base into typed records.
type PipelineRepository struct {
	src RecordSource
}

func NewPipelineRepository(src RecordSource) *PipelineRepository {
	return &PipelineRepository{src: src}
}

// GetAllLeads returns every discovery call.
func (r *PipelineRepository) GetAllLeads(ctx context.Context) ([]models.Lead, error) {
	records, err := r.src.FetchAll(ctx, StudentPipelineBase, DiscoveryCallTable, airtable.FetchOptions{Fields: discoveryCallFields})
	if err != nil {
		return nil, fmt.Errorf("get leads: %w", err)
	}
	return toLeads(records), nil
}

// GetAllApplications returns every application, drops included.
func (r *PipelineRepository) GetAllApplications(ctx context.Context) ([]models.Application, error) {
	records, err := r.src.FetchAll(ctx, StudentPipelineBase, ApplicationTable, airtable.FetchOptions{Fields: applicationFields})
	if err != nil {
		return nil, fmt.Errorf("get applications: %w", err)
	}
	return toApplications(records), nil
}

// GetAllCounselorLinks returns every counselor-to-student link record.
func (r *PipelineRepository) GetAllCounselorLinks(ctx context.Context) ([]models.CounselorLink, error) {
	records, err := r.src.FetchAll(ctx, StudentPipelineBase, CounselorRecordsTable, airtable.FetchOptions{Fields: counselorRecordFields})
	if err != nil {
		return nil, fmt.Errorf("get counselor links: %w", err)
	}
	links := make([]models.CounselorLink, 0, len(records))
	for _, rec := range records {
		links = append(links, toLink(rec))
	}
	return links, nil
}

// GetLinksForCounselor merges every link record of one counselor.
func (r *PipelineRepository) GetLinksForCounselor(ctx context.Context, counselorID string) (models.CounselorLink, error) {
	records, err := r.src.FetchAll(ctx, StudentPipelineBase, CounselorRecordsTable, airtable.FetchOptions{
		Fields: counselorRecordFields,
		Filter: "{Counselor ID} = " + airtable.Quote(counselorID),
	})
	if err != nil {
		return models.CounselorLink{}, fmt.Errorf("get links for %s: %w", counselorID, err)
	}

	merged := models.CounselorLink{CounselorID: counselorID}
	for _, rec := range records {
		link := toLink(rec)
		merged.DiscoveryCallIDs = append(merged.DiscoveryCallIDs, link.DiscoveryCallIDs...)
		merged.ApplicationIDs = append(merged.ApplicationIDs, link.ApplicationIDs...)
	}
	return merged, nil
}

// GetApplicationsByIDs fetches the given applications.
func (r *PipelineRepository) GetApplicationsByIDs(ctx context.Context, ids []string) ([]models.Application, error) {
	records, err := fetchByIDs(ctx, r.src, StudentPipelineBase, ApplicationTable, ids, applicationFields)
	if err != nil {
		return nil, fmt.Errorf("get applications by id: %w", err)
	}
	return toApplications(records), nil
}

// GetLeadsByIDs fetches the given discovery calls.
func (r *PipelineRepository) GetLeadsByIDs(ctx context.Context, ids []string) ([]models.Lead, error) {
	records, err := fetchByIDs(ctx, r.src, StudentPipelineBase, DiscoveryCallTable, ids, discoveryCallFields)
	if err != nil {
		return nil, fmt.Errorf("get leads by id: %w", err)
	}
	return toLeads(records), nil
}

func toLeads(records []airtable.Record) []models.Lead {
	leads := make([]models.Lead, 0, len(records))
	for _, rec := range records {
		leads = append(leads, models.Lead{
			ID:          rec.ID,
			Name:        nameOr(rec.String("Student Name")),
			Email:       analytics.NormalizeEmail(rec.String("Student Email ID")),
			CreatedDate: createdAt(rec),
		})
	}
	return leads
}

func toApplications(records []airtable.Record) []models.Application {
	apps := make([]models.Application, 0, len(records))
	for _, rec := range records {
		status := rec.String("Follow Up Status")
		created := createdAt(rec)
		app := models.Application{
			ID:             rec.ID,
			Name:           nameOr(rec.String("Name")),
			Email:          analytics.NormalizeEmail(rec.String("Student Email ID")),
			FollowUpStatus: status,
			Dropped:        status == models.DropStatus,
			CreatedDate:    created,
			LastModified:   created,
		}
		if t, ok := rec.Time("Interview Date"); ok {
			app.InterviewDate = &t
		}
		if t, ok := rec.Time("Last Modified"); ok {
			app.LastModified = t
		}
		apps = append(apps, app)
	}
	return apps
}

func toLink(rec airtable.Record) models.CounselorLink {
	return models.CounselorLink{
		CounselorID:      rec.String("Counselor ID"),
		DiscoveryCallIDs: rec.Strings("Parent Discovery Call"),
		ApplicationIDs:   rec.Strings("Research Scholar Application"),
	}
}

// createdAt prefers the "Created" field and falls back to Airtable's own timestamp.
func createdAt(rec airtable.Record) time.Time {
	if t, ok := rec.Time("Created"); ok {
		return t
	}
	return rec.Created()
}

func nameOr(name string) string {
	if name == "" {
		return "Unknown"
	}
	return name
}

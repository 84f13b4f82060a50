package repository

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"partnerdash-be/internal/airtable"
	"partnerdash-be/internal/models"
	"partnerdash-be/internal/utils"
)

var (
	counselorFields = []string{
		"Company Name", "Counselor ID", "First Name", "Email ID (s)", "Phone Number",
		"Scholarship Amount", "Referral Amount", "POC (RISE)", "Country",
		"Expected Number", "Follow Up Status",
	}

	counselorIDPattern = regexp.MustCompile(`^PR(\d+)$`)
)

type CounselorRepository struct {
	store      RecordStore
	writeToken string
}

func NewCounselorRepository(store RecordStore, writeToken string) *CounselorRepository {
	return &CounselorRepository{store: store, writeToken: writeToken}
}

// ListCounselors returns partners that have both a company name and a counselor id.
func (r *CounselorRepository) ListCounselors(ctx context.Context) ([]models.Counselor, error) {
	records, err := r.store.FetchAll(ctx, CounselorDBBase, CounselorDBTable, airtable.FetchOptions{Fields: counselorFields})
	if err != nil {
		return nil, fmt.Errorf("list counselors: %w", err)
	}

	counselors := make([]models.Counselor, 0, len(records))
	for _, rec := range records {
		c := toCounselor(rec)
		if c.CompanyName == "" || c.CounselorID == "" {
			continue
		}
		counselors = append(counselors, c)
	}
	return counselors, nil
}

// NextCounselorID returns PR<n+1> where n is the highest existing PR number.
func (r *CounselorRepository) NextCounselorID(ctx context.Context) (string, error) {
	records, err := r.store.FetchAll(ctx, CounselorDBBase, CounselorDBTable, airtable.FetchOptions{Fields: []string{"Counselor ID"}})
	if err != nil {
		return "", fmt.Errorf("next counselor id: %w", err)
	}

	highest := 0
	for _, rec := range records {
		m := counselorIDPattern.FindStringSubmatch(rec.String("Counselor ID"))
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > highest {
			highest = n
		}
	}
	return "PR" + strconv.Itoa(highest+1), nil
}

// Create inserts a partner. counselorID must already be resolved.
func (r *CounselorRepository) Create(ctx context.Context, req models.CreateCounselorRequest, counselorID string) (*models.Counselor, error) {
	fields := map[string]any{
		"Company Name": req.CompanyName,
		"Counselor ID": counselorID,
		"First Name":   req.FirstName,
		"Email ID (s)": req.Email,
		"POC (RISE)":   req.POC,
		"Country":      req.Country,
	}
	if req.Phone != "" {
		fields["Phone Number"] = req.Phone
	}
	if req.Capacity != "" {
		fields["Expected Number"] = req.Capacity
	}
	if req.ScholarshipAmount != nil {
		fields["Scholarship Amount"] = *req.ScholarshipAmount
	}
	if req.ReferralAmount != nil {
		fields["Referral Amount"] = *req.ReferralAmount / 100
	}
	if req.FollowUpStatus != "" {
		fields["Follow Up Status"] = req.FollowUpStatus
	}

	rec, err := r.store.CreateRecord(ctx, CounselorDBBase, CounselorDBTable, fields, r.writeToken)
	if err != nil {
		return nil, fmt.Errorf("create counselor: %w", err)
	}
	c := toCounselor(*rec)
	return &c, nil
}

// Update patches the non-nil fields of req.
func (r *CounselorRepository) Update(ctx context.Context, recordID string, req models.UpdateCounselorRequest) (*models.Counselor, error) {
	fields := map[string]any{}
	setString := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	setString("Company Name", req.CompanyName)
	setString("First Name", req.FirstName)
	setString("Email ID (s)", req.Email)
	setString("Phone Number", req.Phone)
	setString("Country", req.Country)
	setString("Expected Number", req.Capacity)
	setString("Follow Up Status", req.FollowUpStatus)
	if req.POC != nil {
		fields["POC (RISE)"] = req.POC
	}
	if req.ScholarshipAmount != nil {
		fields["Scholarship Amount"] = *req.ScholarshipAmount
	}
	if req.ReferralAmount != nil {
		fields["Referral Amount"] = *req.ReferralAmount / 100
	}
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	rec, err := r.store.UpdateRecord(ctx, CounselorDBBase, CounselorDBTable, recordID, fields, r.writeToken)
	if err != nil {
		return nil, fmt.Errorf("update counselor: %w", err)
	}
	c := toCounselor(*rec)
	return &c, nil
}

func toCounselor(rec airtable.Record) models.Counselor {
	name := rec.String("Company Name")
	return models.Counselor{
		RecordID:          rec.ID,
		CounselorID:       rec.String("Counselor ID"),
		CompanyName:       name,
		FirstName:         rec.String("First Name"),
		Email:             rec.String("Email ID (s)"),
		Phone:             rec.String("Phone Number"),
		ScholarshipAmount: rec.Float("Scholarship Amount"),
		ReferralAmount:    rec.Float("Referral Amount"),
		POC:               nonNil(rec.Strings("POC (RISE)")),
		Country:           rec.String("Country"),
		Capacity:          rec.String("Expected Number"),
		FollowUpStatus:    rec.String("Follow Up Status"),
		Slug:              utils.Slug(name),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

package services

import (
	"context"
	"sync"
	"time"

	"partnerdash-be/internal/models"
)

type fakePipeline struct {
	leads []models.Lead
	apps  []models.Application
	links []models.CounselorLink
	err   error

	mu           sync.Mutex
	requestedIDs map[string][]string
}

func (f *fakePipeline) GetAllLeads(ctx context.Context) ([]models.Lead, error) {
	return f.leads, f.err
}

func (f *fakePipeline) GetAllApplications(ctx context.Context) ([]models.Application, error) {
	return f.apps, f.err
}

func (f *fakePipeline) GetAllCounselorLinks(ctx context.Context) ([]models.CounselorLink, error) {
	return f.links, f.err
}

func (f *fakePipeline) GetLinksForCounselor(ctx context.Context, counselorID string) (models.CounselorLink, error) {
	merged := models.CounselorLink{CounselorID: counselorID}
	for _, l := range f.links {
		if l.CounselorID == counselorID {
			merged.DiscoveryCallIDs = append(merged.DiscoveryCallIDs, l.DiscoveryCallIDs...)
			merged.ApplicationIDs = append(merged.ApplicationIDs, l.ApplicationIDs...)
		}
	}
	return merged, f.err
}

func (f *fakePipeline) record(kind string, ids []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.requestedIDs == nil {
		f.requestedIDs = map[string][]string{}
	}
	f.requestedIDs[kind] = append(f.requestedIDs[kind], ids...)
}

func (f *fakePipeline) GetApplicationsByIDs(ctx context.Context, ids []string) ([]models.Application, error) {
	f.record("apps", ids)
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []models.Application
	for _, a := range f.apps {
		if want[a.ID] {
			out = append(out, a)
		}
	}
	return out, f.err
}

func (f *fakePipeline) GetLeadsByIDs(ctx context.Context, ids []string) ([]models.Lead, error) {
	f.record("leads", ids)
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []models.Lead
	for _, l := range f.leads {
		if want[l.ID] {
			out = append(out, l)
		}
	}
	return out, f.err
}

type fakeCounselors struct {
	counselors []models.Counselor
	nextID     string
	err        error

	createdWith string
	updated     string
}

func (f *fakeCounselors) ListCounselors(ctx context.Context) ([]models.Counselor, error) {
	return f.counselors, f.err
}

func (f *fakeCounselors) NextCounselorID(ctx context.Context) (string, error) {
	return f.nextID, f.err
}

func (f *fakeCounselors) Create(ctx context.Context, req models.CreateCounselorRequest, counselorID string) (*models.Counselor, error) {
	f.createdWith = counselorID
	return &models.Counselor{CounselorID: counselorID, CompanyName: req.CompanyName}, f.err
}

func (f *fakeCounselors) Update(ctx context.Context, recordID string, req models.UpdateCounselorRequest) (*models.Counselor, error) {
	f.updated = recordID
	return &models.Counselor{RecordID: recordID}, f.err
}

type fakeConversations struct {
	conversations []models.Conversation
	listedFor     string
}

func (f *fakeConversations) ListForCounselor(ctx context.Context, counselorRecordID string) ([]models.Conversation, error) {
	f.listedFor = counselorRecordID
	return f.conversations, nil
}

func (f *fakeConversations) Create(ctx context.Context, req models.CreateConversationRequest) (*models.Conversation, error) {
	return &models.Conversation{ID: "recConv", Notes: req.Notes}, nil
}

type cohortCall struct {
	statuses  []string
	sentField string
	since     time.Time
	field     string
	value     string
}

type fakeCohorts struct {
	application []models.CohortMember
	discovery   []models.CohortMember
	err         error
	calls       []cohortCall
}

func (f *fakeCohorts) GetApplicationCohort(ctx context.Context, statuses []string, sentField string, since time.Time) ([]models.CohortMember, error) {
	f.calls = append(f.calls, cohortCall{statuses: statuses, sentField: sentField, since: since})
	return f.application, f.err
}

func (f *fakeCohorts) GetDiscoveryCohort(ctx context.Context, field, value string) ([]models.CohortMember, error) {
	f.calls = append(f.calls, cohortCall{field: field, value: value})
	return f.discovery, f.err
}

type fakeEngagement struct {
	resp *models.EngagementResponse
	err  error
}

func (f *fakeEngagement) Read(ctx context.Context) (*models.EngagementResponse, error) {
	return f.resp, f.err
}

type sentMail struct {
	to, subject, body string
}

type fakeNotifier struct {
	sent []sentMail
	err  error
}

func (f *fakeNotifier) Send(ctx context.Context, to, subject, htmlBody string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

var testNow = time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

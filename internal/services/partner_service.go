package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"partnerdash-be/internal/analytics"
	"partnerdash-be/internal/models"
	"partnerdash-be/internal/utils"

	"github.com/sahilm/fuzzy"
	"golang.org/x/sync/errgroup"
)

var ErrPartnerNotFound = errors.New("partner not found")

// ConversationSource reads and logs partner conversations.
type ConversationSource interface {
	ListForCounselor(ctx context.Context, counselorRecordID string) ([]models.Conversation, error)
	Create(ctx context.Context, req models.CreateConversationRequest) (*models.Conversation, error)
}

type PartnerService struct {
	pipeline      PipelineSource
	counselors    CounselorSource
	conversations ConversationSource
}

func NewPartnerService(pipeline PipelineSource, counselors CounselorSource, conversations ConversationSource) *PartnerService {
	return &PartnerService{
		pipeline:      pipeline,
		counselors:    counselors,
		conversations: conversations,
	}
}

func (s *PartnerService) ListPartners(ctx context.Context) ([]models.Counselor, error) {
	return s.counselors.ListCounselors(ctx)
}

// searchable adapts a counselor list for fuzzy matching.
type searchable []models.Counselor

func (c searchable) String(i int) string {
	return c[i].CompanyName + " " + c[i].CounselorID
}

func (c searchable) Len() int {
	return len(c)
}

// SearchPartners fuzzy-matches company names and counselor ids, best match first.
// An empty query returns every partner.
func (s *PartnerService) SearchPartners(ctx context.Context, query string) ([]models.Counselor, error) {
	counselors, err := s.counselors.ListCounselors(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return counselors, nil
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), lowered(counselors))
	results := make([]models.Counselor, 0, len(matches))
	for _, m := range matches {
		results = append(results, counselors[m.Index])
	}
	return results, nil
}

func lowered(counselors []models.Counselor) searchable {
	out := make(searchable, len(counselors))
	for i, c := range counselors {
		c.CompanyName = strings.ToLower(c.CompanyName)
		c.CounselorID = strings.ToLower(c.CounselorID)
		out[i] = c
	}
	return out
}

// GetPartner resolves a slug to a partner view. "<slug>-<counselor id>" opens
// the CEO view, which also carries the conversation log.
func (s *PartnerService) GetPartner(ctx context.Context, slug string) (*models.PartnerView, error) {
	counselors, err := s.counselors.ListCounselors(ctx)
	if err != nil {
		return nil, err
	}

	slug = strings.ToLower(strings.TrimSpace(slug))
	counselor, ceo, ok := matchSlug(counselors, slug)
	if !ok {
		return nil, ErrPartnerNotFound
	}

	students, err := s.students(ctx, counselor.CounselorID)
	if err != nil {
		return nil, err
	}

	view := &models.PartnerView{
		Counselor:    counselor,
		Students:     students,
		FunnelCounts: analytics.FunnelCounts(students),
		IsCEOView:    ceo,
	}
	if ceo {
		view.Conversations, err = s.conversations.ListForCounselor(ctx, counselor.RecordID)
		if err != nil {
			return nil, err
		}
	}
	return view, nil
}

func matchSlug(counselors []models.Counselor, slug string) (models.Counselor, bool, bool) {
	for _, c := range counselors {
		if c.Slug == slug {
			return c, false, true
		}
	}
	for _, c := range counselors {
		if utils.CEOSlug(c.CompanyName, c.CounselorID) == slug {
			return c, true, true
		}
	}
	return models.Counselor{}, false, false
}

func (s *PartnerService) students(ctx context.Context, counselorID string) ([]models.Student, error) {
	link, err := s.pipeline.GetLinksForCounselor(ctx, counselorID)
	if err != nil {
		return nil, err
	}

	var (
		apps  []models.Application
		leads []models.Lead
	)
	g, gctx := errgroup.WithContext(ctx)
	if len(link.ApplicationIDs) > 0 {
		g.Go(func() (err error) {
			apps, err = s.pipeline.GetApplicationsByIDs(gctx, link.ApplicationIDs)
			return err
		})
	}
	if len(link.DiscoveryCallIDs) > 0 {
		g.Go(func() (err error) {
			leads, err = s.pipeline.GetLeadsByIDs(gctx, link.DiscoveryCallIDs)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load students of %s: %w", counselorID, err)
	}
	return analytics.BuildStudents(apps, leads), nil
}

// CreateCounselor onboards a partner, assigning the next PR id when none is given.
func (s *PartnerService) CreateCounselor(ctx context.Context, req models.CreateCounselorRequest) (*models.Counselor, error) {
	id := strings.TrimSpace(req.CounselorID)
	if id == "" {
		next, err := s.counselors.NextCounselorID(ctx)
		if err != nil {
			return nil, err
		}
		id = next
	}
	return s.counselors.Create(ctx, req, id)
}

func (s *PartnerService) UpdateCounselor(ctx context.Context, recordID string, req models.UpdateCounselorRequest) (*models.Counselor, error) {
	return s.counselors.Update(ctx, recordID, req)
}

func (s *PartnerService) AddConversation(ctx context.Context, req models.CreateConversationRequest) (*models.Conversation, error) {
	return s.conversations.Create(ctx, req)
}

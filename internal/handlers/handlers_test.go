package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"partnerdash-be/config"
	"partnerdash-be/internal/airtable"
	"partnerdash-be/internal/mixmax"
	"partnerdash-be/internal/models"
	"partnerdash-be/internal/repository"
	"partnerdash-be/internal/services"
	"partnerdash-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRespondError_Mapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{&config.ConfigurationError{Key: "MIXMAX_API_KEY"}, http.StatusServiceUnavailable, "configuration_error"},
		{fmt.Errorf("get leads: %w", &airtable.SourceError{StatusCode: 500}), http.StatusBadGateway, "upstream_error"},
		{fmt.Errorf("fetch: %w", &mixmax.FeedError{Path: "/sequences", StatusCode: 429}), http.StatusBadGateway, "upstream_error"},
		{services.ErrPartnerNotFound, http.StatusNotFound, "not_found"},
		{fmt.Errorf("%w: %q", services.ErrUnknownCohort, "x"), http.StatusNotFound, "not_found"},
		{services.ErrInvalidDays, http.StatusBadRequest, "validation_error"},
		{repository.ErrNoFields, http.StatusBadRequest, "validation_error"},
		{errors.New("boom"), http.StatusInternalServerError, "server_error"},
	}
	for _, tt := range tests {
		t.Run(tt.code+"/"+tt.err.Error(), func(t *testing.T) {
			r := gin.New()
			r.GET("/x", func(c *gin.Context) { respondError(c, tt.err) })

			w := perform(r, http.MethodGet, "/x", "")
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Error)
		})
	}
}

type fakeAnalytics struct {
	period string
	err    error
}

func (f *fakeAnalytics) GetAnalytics(ctx context.Context, period string) (*models.AnalyticsData, error) {
	f.period = period
	if f.err != nil {
		return nil, f.err
	}
	return &models.AnalyticsData{Period: period}, nil
}

func TestGetAnalytics(t *testing.T) {
	svc := &fakeAnalytics{}
	r := gin.New()
	r.GET("/analytics", NewAnalyticsHandler(svc).GetAnalytics)

	w := perform(r, http.MethodGet, "/analytics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "30d", svc.period)

	perform(r, http.MethodGet, "/analytics?period=90d", "")
	assert.Equal(t, "90d", svc.period)
}

type fakeEngagement struct {
	resp *models.EngagementResponse
	err  error
}

func (f *fakeEngagement) Read(ctx context.Context) (*models.EngagementResponse, error) {
	return f.resp, f.err
}

func (f *fakeEngagement) Refresh(ctx context.Context) (*models.EngagementResponse, error) {
	return f.resp, f.err
}

func TestEngagementHandlers(t *testing.T) {
	cachedAt := time.Date(2024, 3, 31, 4, 0, 0, 0, time.UTC)
	svc := &fakeEngagement{resp: &models.EngagementResponse{
		EngagementSnapshot: models.EngagementSnapshot{Recipients: []models.EngagementRecord{{RecipientEmail: "a@x.com"}}},
		CachedAt:           cachedAt,
		Stale:              true,
	}}
	h := NewEngagementHandler(svc)
	r := gin.New()
	r.GET("/mixmax", h.GetEngagement)
	r.POST("/refresh/mixmax", h.RefreshEngagement)

	w := perform(r, http.MethodGet, "/mixmax", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"stale":true`)

	w = perform(r, http.MethodPost, "/refresh/mixmax", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.RefreshResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, 1, resp.Recipients)
	assert.True(t, cachedAt.Equal(resp.CachedAt))
}

func TestEngagement_NotConfigured(t *testing.T) {
	svc := &fakeEngagement{err: &config.ConfigurationError{Key: "MIXMAX_API_KEY"}}
	r := gin.New()
	r.GET("/mixmax", NewEngagementHandler(svc).GetEngagement)

	w := perform(r, http.MethodGet, "/mixmax", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, decodeError(t, w).Message, "MIXMAX_API_KEY")
}

type fakeDailyCheck struct {
	err error
}

func (f *fakeDailyCheck) Run(ctx context.Context) (*models.DailyCheckResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.DailyCheckResult{OK: true, TotalNotSent: 3}, nil
}

func TestCronHandlers(t *testing.T) {
	h := NewCronHandler(&fakeEngagement{resp: &models.EngagementResponse{}}, &fakeDailyCheck{})
	r := gin.New()
	r.GET("/cron/mixmax", h.RefreshMixmax)
	r.GET("/cron/daily-check", h.DailyCheck)

	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/cron/mixmax", "").Code)

	w := perform(r, http.MethodGet, "/cron/daily-check", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalNotSent":3`)
}

type fakePartners struct {
	query   string
	created models.CreateCounselorRequest
	updated string
	err     error
}

func (f *fakePartners) ListPartners(ctx context.Context) ([]models.Counselor, error) {
	return []models.Counselor{{CounselorID: "PR1"}}, f.err
}

func (f *fakePartners) SearchPartners(ctx context.Context, query string) ([]models.Counselor, error) {
	f.query = query
	return []models.Counselor{}, f.err
}

func (f *fakePartners) GetPartner(ctx context.Context, slug string) (*models.PartnerView, error) {
	if slug != "bright-futures" {
		return nil, services.ErrPartnerNotFound
	}
	return &models.PartnerView{Counselor: models.Counselor{Slug: slug}}, nil
}

func (f *fakePartners) CreateCounselor(ctx context.Context, req models.CreateCounselorRequest) (*models.Counselor, error) {
	f.created = req
	return &models.Counselor{CounselorID: "PR9", CompanyName: req.CompanyName}, f.err
}

func (f *fakePartners) UpdateCounselor(ctx context.Context, recordID string, req models.UpdateCounselorRequest) (*models.Counselor, error) {
	f.updated = recordID
	if f.err != nil {
		return nil, f.err
	}
	return &models.Counselor{RecordID: recordID}, nil
}

func (f *fakePartners) AddConversation(ctx context.Context, req models.CreateConversationRequest) (*models.Conversation, error) {
	return &models.Conversation{ID: "recC", Notes: req.Notes}, f.err
}

func partnerRouter(svc *fakePartners) *gin.Engine {
	h := NewPartnerHandler(svc)
	r := gin.New()
	r.GET("/partners", h.ListPartners)
	r.GET("/partners/search", h.SearchPartners)
	r.GET("/partners/:slug", h.GetPartner)
	r.POST("/counselors", h.CreateCounselor)
	r.PATCH("/counselors/:recordId", h.UpdateCounselor)
	r.POST("/conversations", h.AddConversation)
	return r
}

func TestPartnerRoutes(t *testing.T) {
	svc := &fakePartners{}
	r := partnerRouter(svc)

	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/partners", "").Code)

	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/partners/search?q=bright", "").Code)
	assert.Equal(t, "bright", svc.query)

	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/partners/bright-futures", "").Code)
	assert.Equal(t, http.StatusNotFound, perform(r, http.MethodGet, "/partners/unknown", "").Code)
}

func TestCreateCounselor_Validation(t *testing.T) {
	svc := &fakePartners{}
	r := partnerRouter(svc)

	w := perform(r, http.MethodPost, "/counselors", `{"companyName":"Acme"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", decodeError(t, w).Error)

	w = perform(r, http.MethodPost, "/counselors", `{"companyName":"Acme","firstName":"Ana","email":"not-an-email","country":"India","poc":["Meera"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, http.MethodPost, "/counselors", `{"companyName":"Acme","firstName":"Ana","email":"ana@acme.com","country":"India","poc":["Meera"],"referralAmount":10}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.created.ReferralAmount)
	assert.Equal(t, 10.0, *svc.created.ReferralAmount)
}

func TestUpdateCounselor(t *testing.T) {
	svc := &fakePartners{}
	r := partnerRouter(svc)

	w := perform(r, http.MethodPatch, "/counselors/rec123", `{"country":"Nepal"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rec123", svc.updated)

	svc.err = repository.ErrNoFields
	w = perform(r, http.MethodPatch, "/counselors/rec123", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddConversation(t *testing.T) {
	r := partnerRouter(&fakePartners{})

	w := perform(r, http.MethodPost, "/conversations", `{"counselorRecordId":"recBF"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "notes are required")

	w = perform(r, http.MethodPost, "/conversations", `{"counselorRecordId":"recBF","notes":"Agreed on MOU"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

type fakeInsights struct {
	key  string
	days int
}

func (f *fakeInsights) GetCohort(ctx context.Context, key string, days int) (*models.CohortReport, error) {
	f.key, f.days = key, days
	return &models.CohortReport{Cohort: key, Days: days}, nil
}

func TestGetCohort(t *testing.T) {
	svc := &fakeInsights{}
	r := gin.New()
	r.GET("/insights/:cohort", NewInsightsHandler(svc).GetCohort)

	w := perform(r, http.MethodGet, "/insights/acceptance?days=60", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "acceptance", svc.key)
	assert.Equal(t, 60, svc.days)

	perform(r, http.MethodGet, "/insights/form", "")
	assert.Equal(t, 0, svc.days)

	w = perform(r, http.MethodGet, "/insights/form?days=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSession(t *testing.T) {
	cfg := &config.Config{DashboardSecret: "s3cret", JWTSecret: "jwt", JWTSessionExpiration: time.Hour}
	r := gin.New()
	r.POST("/auth/session", NewAuthHandler(cfg).CreateSession)

	w := perform(r, http.MethodPost, "/auth/session", `{"secret":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = perform(r, http.MethodPost, "/auth/session", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, http.MethodPost, "/auth/session", `{"secret":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	_, err := utils.ValidateSessionToken(resp.Token, cfg.JWTSecret)
	assert.NoError(t, err)
}

func TestHealth(t *testing.T) {
	r := gin.New()
	r.GET("/health", Health)
	w := perform(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

package handlers

import (
	"context"
	"net/http"

	"partnerdash-be/internal/models"

	"github.com/gin-gonic/gin"
)

type PartnerProvider interface {
	ListPartners(ctx context.Context) ([]models.Counselor, error)
	SearchPartners(ctx context.Context, query string) ([]models.Counselor, error)
	GetPartner(ctx context.Context, slug string) (*models.PartnerView, error)
	CreateCounselor(ctx context.Context, req models.CreateCounselorRequest) (*models.Counselor, error)
	UpdateCounselor(ctx context.Context, recordID string, req models.UpdateCounselorRequest) (*models.Counselor, error)
	AddConversation(ctx context.Context, req models.CreateConversationRequest) (*models.Conversation, error)
}

type PartnerHandler struct {
	service PartnerProvider
}

func NewPartnerHandler(service PartnerProvider) *PartnerHandler {
	return &PartnerHandler{service: service}
}

// ListPartners godoc
// @Summary List referral partners
// @Tags partners
// @Security ApiKeyAuth
// @Success 200 {array} models.Counselor
// @Failure 401 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /partners [get]
func (h *PartnerHandler) ListPartners(c *gin.Context) {
	partners, err := h.service.ListPartners(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, partners)
}

// SearchPartners godoc
// @Summary Fuzzy search partners by company name or counselor id
// @Tags partners
// @Security ApiKeyAuth
// @Param q query string true "Search query"
// @Success 200 {array} models.Counselor
// @Failure 401 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /partners/search [get]
func (h *PartnerHandler) SearchPartners(c *gin.Context) {
	partners, err := h.service.SearchPartners(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, partners)
}

// GetPartner godoc
// @Summary Get a partner view
// @Description The partner slug opens the partner view; "<slug>-<counselorid>" opens the CEO view with conversations
// @Tags partners
// @Param slug path string true "Partner slug"
// @Success 200 {object} models.PartnerView
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /partners/{slug} [get]
func (h *PartnerHandler) GetPartner(c *gin.Context) {
	view, err := h.service.GetPartner(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// CreateCounselor godoc
// @Summary Onboard a partner
// @Tags counselors
// @Security ApiKeyAuth
// @Param request body models.CreateCounselorRequest true "Partner details"
// @Success 201 {object} models.Counselor
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /counselors [post]
func (h *PartnerHandler) CreateCounselor(c *gin.Context) {
	var req models.CreateCounselorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	counselor, err := h.service.CreateCounselor(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, counselor)
}

// UpdateCounselor godoc
// @Summary Update a partner
// @Tags counselors
// @Security ApiKeyAuth
// @Param recordId path string true "Airtable record id"
// @Param request body models.UpdateCounselorRequest true "Fields to change"
// @Success 200 {object} models.Counselor
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /counselors/{recordId} [patch]
func (h *PartnerHandler) UpdateCounselor(c *gin.Context) {
	var req models.UpdateCounselorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	counselor, err := h.service.UpdateCounselor(c.Request.Context(), c.Param("recordId"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, counselor)
}

// AddConversation godoc
// @Summary Log a conversation with a partner
// @Tags conversations
// @Security ApiKeyAuth
// @Param request body models.CreateConversationRequest true "Conversation"
// @Success 201 {object} models.Conversation
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /conversations [post]
func (h *PartnerHandler) AddConversation(c *gin.Context) {
	var req models.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	conversation, err := h.service.AddConversation(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, conversation)
}

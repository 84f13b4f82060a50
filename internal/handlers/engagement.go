package handlers

import (
	"context"
	"net/http"

	"partnerdash-be/internal/models"

	"github.com/gin-gonic/gin"
)

type EngagementProvider interface {
	Read(ctx context.Context) (*models.EngagementResponse, error)
	Refresh(ctx context.Context) (*models.EngagementResponse, error)
}

type EngagementHandler struct {
	service EngagementProvider
}

func NewEngagementHandler(service EngagementProvider) *EngagementHandler {
	return &EngagementHandler{service: service}
}

// GetEngagement godoc
// @Summary Get the email engagement snapshot
// @Description Serves the cached Mixmax snapshot, refetching once past the daily refresh time. Falls back to the previous snapshot (stale=true) when Mixmax is unavailable.
// @Tags engagement
// @Security ApiKeyAuth
// @Success 200 {object} models.EngagementResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /mixmax [get]
func (h *EngagementHandler) GetEngagement(c *gin.Context) {
	resp, err := h.service.Read(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RefreshEngagement godoc
// @Summary Force an engagement cache refresh
// @Tags engagement
// @Security ApiKeyAuth
// @Success 200 {object} models.RefreshResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /refresh/mixmax [post]
func (h *EngagementHandler) RefreshEngagement(c *gin.Context) {
	refresh(c, h.service)
}

func refresh(c *gin.Context, service EngagementProvider) {
	resp, err := service.Refresh(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.RefreshResponse{
		OK:         true,
		CachedAt:   resp.CachedAt,
		Recipients: len(resp.Recipients),
	})
}

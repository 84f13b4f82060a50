package handlers

import (
	"context"
	"net/http"

	"partnerdash-be/internal/models"

	"github.com/gin-gonic/gin"
)

type AnalyticsProvider interface {
	GetAnalytics(ctx context.Context, period string) (*models.AnalyticsData, error)
}

type AnalyticsHandler struct {
	service AnalyticsProvider
}

func NewAnalyticsHandler(service AnalyticsProvider) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetAnalytics godoc
// @Summary Get funnel analytics for the dashboard
// @Description Returns stage counts, time series, conversion funnel, drop-offs, velocity and counselor rollups
// @Tags analytics
// @Security ApiKeyAuth
// @Param period query string false "Time period: 7d, 30d, 90d, all" default(30d)
// @Success 200 {object} models.AnalyticsData
// @Failure 401 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	data, err := h.service.GetAnalytics(c.Request.Context(), c.DefaultQuery("period", "30d"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

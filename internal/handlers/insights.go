package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"partnerdash-be/internal/models"

	"github.com/gin-gonic/gin"
)

type InsightsProvider interface {
	GetCohort(ctx context.Context, key string, days int) (*models.CohortReport, error)
}

type InsightsHandler struct {
	service InsightsProvider
}

func NewInsightsHandler(service InsightsProvider) *InsightsHandler {
	return &InsightsHandler{service: service}
}

// GetCohort godoc
// @Summary Campaign cohort joined with email engagement
// @Tags insights
// @Security ApiKeyAuth
// @Param cohort path string true "acceptance, shortlisting, booking or form"
// @Param days query int false "Look-back window: 30, 60 or 90" default(30)
// @Success 200 {object} models.CohortReport
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /insights/{cohort} [get]
func (h *InsightsHandler) GetCohort(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			validationError(c, errors.New("days must be a number"))
			return
		}
		days = n
	}

	report, err := h.service.GetCohort(c.Request.Context(), c.Param("cohort"), days)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

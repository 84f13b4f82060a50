package handlers

import (
	"context"
	"net/http"

	"partnerdash-be/internal/models"

	"github.com/gin-gonic/gin"
)

type DailyChecker interface {
	Run(ctx context.Context) (*models.DailyCheckResult, error)
}

// CronHandler serves scheduler-triggered jobs.
type CronHandler struct {
	engagement EngagementProvider
	dailyCheck DailyChecker
}

func NewCronHandler(engagement EngagementProvider, dailyCheck DailyChecker) *CronHandler {
	return &CronHandler{engagement: engagement, dailyCheck: dailyCheck}
}

// RefreshMixmax godoc
// @Summary Scheduled engagement cache refresh
// @Tags cron
// @Security CronAuth
// @Success 200 {object} models.RefreshResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /cron/mixmax [get]
func (h *CronHandler) RefreshMixmax(c *gin.Context) {
	refresh(c, h.engagement)
}

// DailyCheck godoc
// @Summary Send the daily campaign digest
// @Description Lists everyone in the last 30 days of each campaign cohort who has not been emailed, and mails the digest
// @Tags cron
// @Security CronAuth
// @Success 200 {object} models.DailyCheckResult
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /cron/daily-check [get]
func (h *CronHandler) DailyCheck(c *gin.Context) {
	result, err := h.dailyCheck.Run(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

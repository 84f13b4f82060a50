package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"partnerdash-be/config"
	"partnerdash-be/internal/airtable"
	"partnerdash-be/internal/mixmax"
	"partnerdash-be/internal/models"
	"partnerdash-be/internal/repository"
	"partnerdash-be/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto a status and the shared error body.
func respondError(c *gin.Context, err error) {
	var (
		cfgErr    *config.ConfigurationError
		sourceErr *airtable.SourceError
		feedErr   *mixmax.FeedError
	)

	status, code := http.StatusInternalServerError, "server_error"
	switch {
	case errors.As(err, &cfgErr):
		status, code = http.StatusServiceUnavailable, "configuration_error"
	case errors.As(err, &sourceErr), errors.As(err, &feedErr):
		status, code = http.StatusBadGateway, "upstream_error"
	case errors.Is(err, services.ErrPartnerNotFound), errors.Is(err, services.ErrUnknownCohort):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, services.ErrInvalidDays), errors.Is(err, repository.ErrNoFields):
		status, code = http.StatusBadRequest, "validation_error"
	}

	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "path", c.Request.URL.Path, "status", status, "error", err)
	}
	_ = c.Error(err)
	c.JSON(status, models.ErrorResponse{
		Error:   code,
		Message: err.Error(),
	})
}

func validationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}

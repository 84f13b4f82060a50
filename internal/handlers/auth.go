package handlers

import (
	"net/http"
	"time"

	"partnerdash-be/config"
	"partnerdash-be/internal/middleware"
	"partnerdash-be/internal/models"
	"partnerdash-be/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		cfg: cfg,
	}
}

// CreateSession godoc
// @Summary Exchange the dashboard secret for a session token
// @Tags auth
// @Param request body models.SessionRequest true "Dashboard secret"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/session [post]
func (h *AuthHandler) CreateSession(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	if !middleware.SecretEqual(req.Secret, h.cfg.DashboardSecret) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Invalid dashboard secret",
		})
		return
	}

	token, expiresAt, err := utils.GenerateSessionToken(h.cfg.JWTSecret, time.Now(), h.cfg.JWTSessionExpiration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to issue session",
		})
		return
	}

	c.JSON(http.StatusOK, models.SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

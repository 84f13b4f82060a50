package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"partnerdash-be/config"
	"partnerdash-be/internal/models"
	"partnerdash-be/internal/utils"

	"github.com/gin-gonic/gin"
)

// DashboardSecretHeader carries the raw dashboard secret for clients that do not hold a session.
const DashboardSecretHeader = "X-Dashboard-Secret"

const authMethodKey = "authMethod"

// Auth methods stored on the request context.
const (
	AuthSecret  = "secret"
	AuthSession = "session"
	AuthCron    = "cron"
)

// DashboardAuth admits requests carrying the dashboard secret (header or
// bearer) or a session token issued for it.
func DashboardAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret := c.GetHeader(DashboardSecretHeader); secret != "" {
			if SecretEqual(secret, cfg.DashboardSecret) {
				c.Set(authMethodKey, AuthSecret)
				c.Next()
				return
			}
			unauthorized(c, "Invalid dashboard secret")
			return
		}

		token := extractBearerToken(c)
		if token == "" {
			unauthorized(c, "Authorization required")
			return
		}

		if SecretEqual(token, cfg.DashboardSecret) {
			c.Set(authMethodKey, AuthSecret)
			c.Next()
			return
		}

		if _, err := utils.ValidateSessionToken(token, cfg.JWTSecret); err != nil {
			unauthorized(c, "Invalid or expired session")
			return
		}
		c.Set(authMethodKey, AuthSession)
		c.Next()
	}
}

// CronAuth admits scheduler requests carrying "Bearer <secret>".
func CronAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !SecretEqual(extractBearerToken(c), secret) {
			unauthorized(c, "Unauthorized")
			return
		}
		c.Set(authMethodKey, AuthCron)
		c.Next()
	}
}

// GetAuthMethod reports how the request was authenticated, or "".
func GetAuthMethod(c *gin.Context) string {
	return c.GetString(authMethodKey)
}

// SecretEqual compares in constant time. An unset expected secret never matches.
func SecretEqual(given, expected string) bool {
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(expected)) == 1
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "unauthorized",
		Message: message,
	})
}

// extractBearerToken returns the token of "Authorization: Bearer <token>", or "".
func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

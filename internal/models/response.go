package models

import "time"

type SessionRequest struct {
	Secret string `json:"secret" binding:"required"`
}

type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type RefreshResponse struct {
	OK         bool      `json:"ok"`
	CachedAt   time.Time `json:"cachedAt"`
	Recipients int       `json:"recipients"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

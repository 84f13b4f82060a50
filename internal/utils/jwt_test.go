package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	now := time.Now()
	token, expiresAt, err := GenerateSessionToken("s3cret", now, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	claims, err := ValidateSessionToken(token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "dashboard", claims.Subject)
}

func TestSessionToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateSessionToken("s3cret", time.Now(), time.Hour)
	require.NoError(t, err)

	_, err = ValidateSessionToken(token, "other")
	assert.Error(t, err)
}

func TestSessionToken_Expired(t *testing.T) {
	token, _, err := GenerateSessionToken("s3cret", time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)

	_, err = ValidateSessionToken(token, "s3cret")
	assert.Error(t, err)
}

func TestSessionToken_RejectsOtherTokenTypes(t *testing.T) {
	claims := &Claims{
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = ValidateSessionToken(signed, "s3cret")
	assert.Error(t, err)
}

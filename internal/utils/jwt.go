package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionTokenType = "dashboard-session"

type Claims struct {
	TokenType string `json:"tokenType"`
	jwt.RegisteredClaims
}

// GenerateSessionToken issues a dashboard session token valid for expiration.
func GenerateSessionToken(secret string, now time.Time, expiration time.Duration) (string, time.Time, error) {
	expiresAt := now.Add(expiration)
	claims := &Claims{
		TokenType: sessionTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "dashboard",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func ValidateSessionToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.TokenType != sessionTokenType {
		return nil, errors.New("not a session token")
	}

	return claims, nil
}

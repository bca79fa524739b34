package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrExpiredToken = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

// TokenService issues and parses the signed credentials returned by login.
// Tokens are HMAC-SHA256 signed and carry the user id as subject with a
// fixed lifetime. Nothing is stored server-side; the token is the only
// proof of authentication.
type TokenService struct {
	signingKey []byte
	lifetime   time.Duration
	timeFunc   func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{
		signingKey: []byte(secret),
		lifetime:   time.Hour,
		timeFunc:   time.Now,
	}
}

// Issue creates a signed token for the given user id.
func (s *TokenService) Issue(userID string) (string, error) {
	now := s.timeFunc()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse validates a token and returns the user id it asserts. No route
// currently gates on this; it exists so enforcement can be added without
// touching issuance.
func (s *TokenService) Parse(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(func() time.Time { return s.timeFunc() }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

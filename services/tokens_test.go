package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-signing-key-0123456789"

func TestIssueAndParse(t *testing.T) {
	svc := NewTokenService(testSecret)

	token, err := svc.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestParseExpiredToken(t *testing.T) {
	issuer := NewTokenService(testSecret)
	issuer.timeFunc = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	parser := NewTokenService(testSecret)
	_, err = parser.Parse(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestParseWrongKey(t *testing.T) {
	issuer := NewTokenService(testSecret)
	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	parser := NewTokenService("some-other-signing-key-9876543210")
	_, err = parser.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	svc := NewTokenService(testSecret)
	_, err := svc.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenLifetimeIsOneHour(t *testing.T) {
	svc := NewTokenService(testSecret)
	issued := time.Now()
	svc.timeFunc = func() time.Time { return issued }

	token, err := svc.Issue("user-123")
	require.NoError(t, err)

	// Still valid just before expiry, rejected just after.
	before := NewTokenService(testSecret)
	before.timeFunc = func() time.Time { return issued.Add(59 * time.Minute) }
	_, err = before.Parse(token)
	assert.NoError(t, err)

	after := NewTokenService(testSecret)
	after.timeFunc = func() time.Time { return issued.Add(61 * time.Minute) }
	_, err = after.Parse(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

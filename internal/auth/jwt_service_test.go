package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "kanban/internal/errors"
)

func TestJWTService_IssuePair(t *testing.T) {
	svc := NewJWTService("test-secret", 0, 0)

	pair, err := svc.IssuePair("test@example.com", "session-1")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	access, err := svc.Parse(pair.AccessToken, TypeAccess)
	require.NoError(t, err)
	refresh, err := svc.Parse(pair.RefreshToken, TypeRefresh)
	require.NoError(t, err)

	assert.Equal(t, "test@example.com", access.Email)
	assert.Equal(t, "session-1", access.SessionID)
	assert.Equal(t, access.SessionID, refresh.SessionID)
	assert.Equal(t, "session-1", access.ID)

	lifetime := refresh.ExpiresAt.Sub(refresh.IssuedAt.Time)
	assert.Equal(t, RefreshTokenExpiry, lifetime)
}

func TestJWTService_Parse(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, 2*time.Hour)
	pair, err := svc.IssuePair("test@example.com", "session-1")
	require.NoError(t, err)

	expired := NewJWTService("test-secret", -time.Minute, -time.Minute)
	expiredPair, err := expired.IssuePair("test@example.com", "session-1")
	require.NoError(t, err)

	other := NewJWTService("other-secret", time.Hour, time.Hour)
	foreign, err := other.IssuePair("test@example.com", "session-1")
	require.NoError(t, err)

	tests := []struct {
		name        string
		token       string
		typ         TokenType
		wantMessage string
	}{
		{"malformed", "not-a-token", TypeAccess, "Unauthorized: Invalid token"},
		{"wrong signature", foreign.AccessToken, TypeAccess, "Unauthorized: Invalid token"},
		{"expired", expiredPair.AccessToken, TypeAccess, "Token expired. Refresh token using /auth/refresh-token"},
		{"refresh used as access", pair.RefreshToken, TypeAccess, "Unauthorized: Invalid token type"},
		{"access used as refresh", pair.AccessToken, TypeRefresh, "Unauthorized: Invalid token type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Parse(tt.token, tt.typ)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, apperrors.ErrUnauthenticated))
			assert.Equal(t, tt.wantMessage, err.Error())
		})
	}
}

func TestNewSessionID_Unique(t *testing.T) {
	assert.NotEqual(t, NewSessionID(), NewSessionID())
}

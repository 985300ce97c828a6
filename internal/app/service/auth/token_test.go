package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	cfgpkg "github.com/fitpulse/gymadmin/pkg/config"
)

func testService(secret string, ttl time.Duration) *Service {
	cfg := &cfgpkg.Config{}
	cfg.Auth.JWTSecret = secret
	cfg.Auth.TokenTTL = ttl
	return NewService(nil, zap.NewNop().Sugar(), cfg)
}

func TestIssueAndParseToken(t *testing.T) {
	s := testService("test-secret", time.Hour)
	now := time.Now()

	token, err := s.IssueToken("admin-1", "admin@gym.test", now)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "admin@gym.test", claims.Email)
	assert.Equal(t, "admin-1", claims.Subject)
}

func TestParseToken_Invalid(t *testing.T) {
	s := testService("test-secret", time.Hour)
	now := time.Now()

	t.Run("garbage", func(t *testing.T) {
		_, err := s.ParseToken("not-a-token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := s.IssueToken("admin-1", "admin@gym.test", now)
		require.NoError(t, err)

		other := testService("other-secret", time.Hour)
		_, err = other.ParseToken(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := s.IssueToken("admin-1", "admin@gym.test", now.Add(-2*time.Hour))
		require.NoError(t, err)

		_, err = s.ParseToken(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/legal-office-service/internal/config"
)

func testSessionConfig() config.SessionConfig {
	return config.SessionConfig{
		Secret:           "unit-test-secret",
		CookieName:       "office_session",
		TTLMinutes:       60,
		RememberTTLHours: 720,
	}
}

func TestSessionIssueAndRead(t *testing.T) {
	sm := NewSessionManager(testSessionConfig(), nil, nil)

	token, expiresAt, err := sm.Issue("clerk@office.example", false)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	email := sm.Read(context.Background(), token)
	assert.Equal(t, "clerk@office.example", email)
}

func TestSessionRememberExtendsExpiry(t *testing.T) {
	sm := NewSessionManager(testSessionConfig(), nil, nil)

	_, short, err := sm.Issue("clerk@office.example", false)
	require.NoError(t, err)
	_, long, err := sm.Issue("clerk@office.example", true)
	require.NoError(t, err)

	assert.True(t, long.After(short.Add(time.Hour)))
}

func TestSessionReadRejectsBadTokens(t *testing.T) {
	sm := NewSessionManager(testSessionConfig(), nil, nil)

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, sm.Read(context.Background(), ""))
	})

	t.Run("garbage", func(t *testing.T) {
		assert.Empty(t, sm.Read(context.Background(), "not-a-token"))
	})

	t.Run("wrong secret", func(t *testing.T) {
		otherCfg := testSessionConfig()
		otherCfg.Secret = "some-other-secret"
		other := NewSessionManager(otherCfg, nil, nil)

		token, _, err := other.Issue("clerk@office.example", false)
		require.NoError(t, err)
		assert.Empty(t, sm.Read(context.Background(), token))
	})

	t.Run("expired", func(t *testing.T) {
		expiredCfg := testSessionConfig()
		expiredCfg.TTLMinutes = -1
		expired := NewSessionManager(expiredCfg, nil, nil)

		token, _, err := expired.Issue("clerk@office.example", false)
		require.NoError(t, err)
		assert.Empty(t, expired.Read(context.Background(), token))
	})
}

func TestSessionDestroyDenylistsToken(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	sm := NewSessionManager(testSessionConfig(), client, nil)
	ctx := context.Background()

	token, expiresAt, err := sm.Issue("clerk@office.example", false)
	require.NoError(t, err)
	require.Equal(t, "clerk@office.example", sm.Read(ctx, token))

	require.NoError(t, sm.Destroy(ctx, token))
	assert.Empty(t, sm.Read(ctx, token))

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "session:revoked:"))
	ttl := mr.TTL(keys[0])
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Until(expiresAt)+time.Second)
	assert.Greater(t, ttl, time.Until(expiresAt)-time.Minute)

	// a second token stays valid
	other, _, err := sm.Issue("clerk@office.example", false)
	require.NoError(t, err)
	assert.Equal(t, "clerk@office.example", sm.Read(ctx, other))
}

func TestSessionReadWithUnreachableDenylist(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	sm := NewSessionManager(testSessionConfig(), client, nil)
	token, _, err := sm.Issue("clerk@office.example", false)
	require.NoError(t, err)

	mr.Close()
	assert.Empty(t, sm.Read(context.Background(), token))
}

func TestSessionDestroyWithoutDenylist(t *testing.T) {
	sm := NewSessionManager(testSessionConfig(), nil, nil)

	token, _, err := sm.Issue("clerk@office.example", false)
	require.NoError(t, err)

	assert.NoError(t, sm.Destroy(context.Background(), token))
	assert.NoError(t, sm.Destroy(context.Background(), "garbage"))
}

func TestSessionCookies(t *testing.T) {
	sm := NewSessionManager(testSessionConfig(), nil, nil)

	expiresAt := time.Now().Add(time.Hour)
	cookie := sm.Cookie("token-value", expiresAt)
	assert.Equal(t, "office_session", cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.True(t, cookie.HTTPOnly)
	assert.Equal(t, expiresAt, cookie.Expires)

	clearing := sm.ClearingCookie()
	assert.Equal(t, "office_session", clearing.Name)
	assert.Empty(t, clearing.Value)
	assert.True(t, clearing.Expires.Before(time.Now()))
}

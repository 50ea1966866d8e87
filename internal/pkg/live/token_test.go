package live

import (
	"circle/internal/api/config"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(ttl int) {
	config.Cfg = &config.Config{
		Live: config.LiveConfig{
			APIKey:    "testkey",
			APISecret: "testsecret",
			WSURL:     "ws://localhost:7880",
			TokenTTL:  ttl,
		},
	}
}

func parseToken(t *testing.T, token string) *joinClaims {
	claims := &joinClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte("testsecret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	return claims
}

func TestBuildJoinToken_Grant(t *testing.T) {
	setupTestConfig(3600)

	token, err := BuildJoinToken("room-abc", "42", true)
	require.NoError(t, err)

	claims := parseToken(t, token)
	assert.Equal(t, "room-abc", claims.Video.Room)
	assert.True(t, claims.Video.RoomJoin)
	assert.True(t, claims.Video.CanPublish)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "testkey", claims.Issuer)
}

func TestBuildJoinToken_ViewerCannotPublish(t *testing.T) {
	setupTestConfig(3600)

	token, err := BuildJoinToken("room-abc", "7", false)
	require.NoError(t, err)

	claims := parseToken(t, token)
	assert.False(t, claims.Video.CanPublish)
	assert.True(t, claims.Video.RoomJoin)
}

func TestBuildJoinToken_TTL(t *testing.T) {
	setupTestConfig(60)

	token, err := BuildJoinToken("room-abc", "7", false)
	require.NoError(t, err)

	claims := parseToken(t, token)
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 30*time.Second)
	assert.LessOrEqual(t, remaining, time.Minute)
}

// A zero TTL falls back to the six hour default rather than minting an
// already-expired token.
func TestBuildJoinToken_DefaultTTL(t *testing.T) {
	setupTestConfig(0)

	token, err := BuildJoinToken("room-abc", "7", false)
	require.NoError(t, err)

	claims := parseToken(t, token)
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 5*time.Hour)
}

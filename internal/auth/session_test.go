package auth

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) (*SessionManager, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	return NewSessionManager(redis.NewClient(&redis.Options{Addr: mr.Addr()})), mr
}

func TestBlacklistRoundTrip(t *testing.T) {
	session, _ := newSession(t)

	in, err := session.InBlackList("token-a")
	require.NoError(t, err)
	assert.False(t, in)

	require.NoError(t, session.AddBlackList("token-a", time.Hour))

	in, err = session.InBlackList("token-a")
	require.NoError(t, err)
	assert.True(t, in)

	// other tokens untouched
	in, err = session.InBlackList("token-b")
	require.NoError(t, err)
	assert.False(t, in)
}

func TestBlacklistEntryExpires(t *testing.T) {
	session, mr := newSession(t)

	require.NoError(t, session.AddBlackList("token", time.Minute))
	mr.FastForward(2 * time.Minute)

	in, err := session.InBlackList("token")
	require.NoError(t, err)
	assert.False(t, in)
}

func TestBlacklistExpiredTokenIsNoop(t *testing.T) {
	session, mr := newSession(t)

	require.NoError(t, session.AddBlackList("stale", 0))
	require.NoError(t, session.AddBlackList("staler", -time.Minute))
	assert.Empty(t, mr.Keys())
}

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, expires, err := issuer.GenerateToken("uid-1", "anna@jalusi.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, time.Minute)

	sub, err := issuer.ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", sub)
}

func TestTokenIssuer_RejectsForeignAndExpired(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	other := NewTokenIssuer("other", time.Hour)

	token, _, err := other.GenerateToken("uid-1", "anna@jalusi.com")
	require.NoError(t, err)
	_, err = issuer.ExtractIDFromToken(token)
	assert.Error(t, err)

	expired := NewTokenIssuer("secret", time.Hour)
	expired.now = FixedClock(time.Now().Add(-2 * time.Hour))
	token, _, err = expired.GenerateToken("uid-1", "anna@jalusi.com")
	require.NoError(t, err)
	_, err = issuer.ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestSequentialIDGenerator(t *testing.T) {
	g := NewSequentialIDGenerator("task")
	assert.Equal(t, "task-1", g.NewID())
	assert.Equal(t, "task-2", g.NewID())
	assert.NotEqual(t, UUIDGenerator{}.NewID(), UUIDGenerator{}.NewID())
}

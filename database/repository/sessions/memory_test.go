package sessionRepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jalusi/models"
	"jalusi/utils"
)

func TestMemorySessionRepo_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepo(10*time.Minute, nil)

	session := models.BookingSession{
		SessionID: "s-1",
		Selection: models.BookingSelection{Service: "facial", ClientName: "Lisa"},
	}
	require.NoError(t, repo.Save(ctx, session))

	got, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, session, *got)

	require.NoError(t, repo.Delete(ctx, "s-1"))
	_, err = repo.Get(ctx, "s-1")
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestMemorySessionRepo_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 2, 20, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	repo := NewMemorySessionRepo(10*time.Minute, clock)

	require.NoError(t, repo.Save(ctx, models.BookingSession{SessionID: "s-1"}))

	now = now.Add(9 * time.Minute)
	_, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)

	// Saving again restarts the clock.
	require.NoError(t, repo.Save(ctx, models.BookingSession{SessionID: "s-1"}))
	now = now.Add(9 * time.Minute)
	_, err = repo.Get(ctx, "s-1")
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = repo.Get(ctx, "s-1")
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}

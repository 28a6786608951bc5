package ledgerRepo

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jalusi/utils"
)

func TestMemoryLedger_ReserveThenOccupied(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryLedgerRepo()

	ok, err := repo.IsOccupied(ctx, "2024-02-20", "10:00")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Reserve(ctx, "2024-02-20", "10:00"))

	ok, err = repo.IsOccupied(ctx, "2024-02-20", "10:00")
	require.NoError(t, err)
	assert.True(t, ok)

	err = repo.Reserve(ctx, "2024-02-20", "10:00")
	assert.True(t, errors.Is(err, utils.ErrAlreadyOccupied))
}

func TestMemoryLedger_OccupiedSlotsForIsSortedAndEmptyForUnseen(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryLedgerRepo()

	for _, tm := range []string{"16:00", "09:00", "11:30"} {
		require.NoError(t, repo.Reserve(ctx, "2024-02-20", tm))
	}

	times, err := repo.OccupiedSlotsFor(ctx, "2024-02-20")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:30", "16:00"}, times)

	times, err = repo.OccupiedSlotsFor(ctx, "2031-01-01")
	require.NoError(t, err)
	assert.NotNil(t, times)
	assert.Empty(t, times)
}

func TestMemoryLedger_SameTimeOnOtherDateIsIndependent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryLedgerRepo()

	require.NoError(t, repo.Reserve(ctx, "2024-02-15", "09:00"))
	require.NoError(t, repo.Reserve(ctx, "2024-02-16", "09:00"))
}

func TestMemoryLedger_ReleaseFreesSlot(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryLedgerRepo()

	require.NoError(t, repo.Reserve(ctx, "2024-02-20", "12:00"))
	require.NoError(t, repo.Release(ctx, "2024-02-20", "12:00"))

	ok, err := repo.IsOccupied(ctx, "2024-02-20", "12:00")
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, repo.Reserve(ctx, "2024-02-20", "12:00"))
}

func TestMemoryLedger_ConcurrentReserveHasOneWinner(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryLedgerRepo()

	const workers = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		won     int
		refused int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Reserve(ctx, "2024-03-01", "14:00")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				won++
			} else if errors.Is(err, utils.ErrAlreadyOccupied) {
				refused++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, won)
	assert.Equal(t, workers-1, refused)
}

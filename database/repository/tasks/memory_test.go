package taskRepo

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

func sampleTask(id, title string) models.Task {
	return models.Task{
		ID:         id,
		Title:      title,
		AssignedTo: "Anna Smith",
		DueDate:    "2024-02-15",
		Status:     models.StatusTodo,
		Kind:       models.KindTask,
	}
}

func TestMemoryTaskRepo_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTaskRepo()

	require.NoError(t, repo.Insert(ctx, sampleTask("b", "second")))
	require.NoError(t, repo.Insert(ctx, sampleTask("a", "first")))
	require.NoError(t, repo.Insert(ctx, sampleTask("c", "third")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
	assert.Equal(t, "c", list[2].ID)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestMemoryTaskRepo_DuplicateIDRejected(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTaskRepo()

	require.NoError(t, repo.Insert(ctx, sampleTask("a", "first")))
	assert.Error(t, repo.Insert(ctx, sampleTask("a", "again")))
}

func TestMemoryTaskRepo_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTaskRepo()
	require.NoError(t, repo.Insert(ctx, sampleTask("a", "first")))
	at := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)

	updated, err := repo.UpdateStatus(ctx, "a", "", models.StatusCompleted, at)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, at, updated.UpdatedAt)

	_, err = repo.UpdateStatus(ctx, "a", models.StatusTodo, models.StatusInProgress, at)
	assert.True(t, errors.Is(err, utils.ErrIllegalTransition))

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)
}

func TestMemoryTaskRepo_UnknownIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTaskRepo()
	require.NoError(t, repo.Insert(ctx, sampleTask("a", "first")))

	_, err := repo.UpdateStatus(ctx, "missing", "", models.StatusCompleted, time.Now())
	assert.True(t, errors.Is(err, utils.ErrNotFound))

	_, err = repo.GetByID(ctx, "missing")
	assert.True(t, errors.Is(err, utils.ErrNotFound))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StatusTodo, list[0].Status)
}

func TestMemoryTaskRepo_ReturnedTasksAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTaskRepo()
	task := sampleTask("a", "Microblading - Lisa")
	task.Booking = &models.BookingLink{Service: "microblading", Time: "10:00", ClientName: "Lisa"}
	require.NoError(t, repo.Insert(ctx, task))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].Booking.Time = "11:00"
	list[0].Title = "changed"

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "10:00", got.Booking.Time)
	assert.Equal(t, "Microblading - Lisa", got.Title)
}

package taskRepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"jalusi/models"
	"jalusi/utils"
)

type memoryTaskRepo struct {
	mu    sync.RWMutex
	items []models.Task
	index map[string]int
}

func NewMemoryTaskRepo() TaskRepository {
	return &memoryTaskRepo{index: make(map[string]int)}
}

func (r *memoryTaskRepo) Insert(_ context.Context, task models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.index[task.ID]; exists {
		return fmt.Errorf("task %s already exists", task.ID)
	}
	r.index[task.ID] = len(r.items)
	r.items = append(r.items, cloneTask(task))
	return nil
}

func (r *memoryTaskRepo) GetByID(_ context.Context, id string) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, utils.NewNotFoundError("task %s not found", id)
	}
	t := cloneTask(r.items[i])
	return &t, nil
}

func (r *memoryTaskRepo) UpdateStatus(_ context.Context, id string, expected, next models.TaskStatus, at time.Time) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[id]
	if !ok {
		return nil, utils.NewNotFoundError("task %s not found", id)
	}
	cur := r.items[i].Status
	if expected != "" && cur != expected {
		return nil, utils.NewIllegalTransitionError(string(cur), string(next))
	}
	r.items[i].Status = next
	r.items[i].UpdatedAt = at
	t := cloneTask(r.items[i])
	return &t, nil
}

func (r *memoryTaskRepo) List(_ context.Context) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Task, len(r.items))
	for i, t := range r.items {
		out[i] = cloneTask(t)
	}
	return out, nil
}

func (r *memoryTaskRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

// cloneTask copies the booking link so callers never share it with the store.
func cloneTask(t models.Task) models.Task {
	if t.Booking != nil {
		b := *t.Booking
		t.Booking = &b
	}
	return t
}

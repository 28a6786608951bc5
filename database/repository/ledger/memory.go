package ledgerRepo

import (
	"context"
	"slices"
	"sync"

	"jalusi/utils"
)

type memoryLedgerRepo struct {
	mu    sync.RWMutex
	slots map[string]map[string]struct{}
}

// NewMemoryLedgerRepo constructs an empty in-process ledger.
func NewMemoryLedgerRepo() LedgerRepository {
	return &memoryLedgerRepo{slots: make(map[string]map[string]struct{})}
}

func (r *memoryLedgerRepo) IsOccupied(_ context.Context, date, time string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.slots[date][time]
	return ok, nil
}

func (r *memoryLedgerRepo) OccupiedSlotsFor(_ context.Context, date string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	times := make([]string, 0, len(r.slots[date]))
	for t := range r.slots[date] {
		times = append(times, t)
	}
	slices.Sort(times)
	return times, nil
}

func (r *memoryLedgerRepo) Reserve(_ context.Context, date, time string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	day, ok := r.slots[date]
	if !ok {
		day = make(map[string]struct{})
		r.slots[date] = day
	}
	if _, taken := day[time]; taken {
		return utils.NewAlreadyOccupiedError(date, time)
	}
	day[time] = struct{}{}
	return nil
}

func (r *memoryLedgerRepo) Release(_ context.Context, date, time string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots[date], time)
	if len(r.slots[date]) == 0 {
		delete(r.slots, date)
	}
	return nil
}

package sessionRepo

import (
	"context"
	"sync"
	"time"

	"jalusi/models"
	"jalusi/utils"
)

type memoryEntry struct {
	session   models.BookingSession
	expiresAt time.Time
}

type memorySessionRepo struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     utils.Clock
	entries map[string]memoryEntry
}

// NewMemorySessionRepo expires sessions lazily, on access.
func NewMemorySessionRepo(ttl time.Duration, now utils.Clock) SessionRepository {
	if now == nil {
		now = time.Now
	}
	return &memorySessionRepo{ttl: ttl, now: now, entries: make(map[string]memoryEntry)}
}

func (r *memorySessionRepo) Save(_ context.Context, session models.BookingSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[session.SessionID] = memoryEntry{session: session, expiresAt: r.now().Add(r.ttl)}
	return nil
}

func (r *memorySessionRepo) Get(_ context.Context, sessionID string) (*models.BookingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[sessionID]
	if ok && !r.now().Before(entry.expiresAt) {
		delete(r.entries, sessionID)
		ok = false
	}
	if !ok {
		return nil, utils.NewNotFoundError("booking session not found or expired")
	}
	s := entry.session
	return &s, nil
}

func (r *memorySessionRepo) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sessionID)
	return nil
}

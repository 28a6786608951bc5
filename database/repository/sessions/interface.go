// File: database/repository/sessions/interface.go
package sessionRepo

import (
	"context"

	"jalusi/models"
)

// SessionRepository keeps booking sessions for a limited time.
type SessionRepository interface {
	// Save stores the session and restarts its expiry.
	Save(ctx context.Context, session models.BookingSession) error
	// Get returns utils.ErrNotFound for unknown or expired sessions.
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Delete(ctx context.Context, sessionID string) error
}

package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	ledgerRepo "jalusi/database/repository/ledger"
	sessionRepo "jalusi/database/repository/sessions"
	"jalusi/models"
	"jalusi/services/notification"
	"jalusi/services/tasks"
	"jalusi/utils"
)

// BookingEngine confirms bookings and answers the questions the booking form
// asks while the client is choosing.
type BookingEngine interface {
	ConfirmBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error)
	Services() []models.Service
	SpecialistsFor(service string) ([]string, error)
	TimeSlots(ctx context.Context, date, selected string) ([]models.TimeSlotView, error)
	Calendar(ctx context.Context, year int, month time.Month, selected string) (*models.CalendarGrid, error)
	Selectable(ctx context.Context, date string) (bool, error)
	IsOccupied(ctx context.Context, date, time string) (bool, error)
	SeedLedger(ctx context.Context, booked map[string][]string) error
}

// BookingSessionService defines the interface for managing a stateful booking session.
type BookingSessionService interface {
	InitiateSession(ctx context.Context) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	UpdateSession(ctx context.Context, sessionID string, patch models.SelectionUpdate) (*models.BookingSession, error)
	ConfirmSession(ctx context.Context, sessionID string) (*models.BookingResult, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultBookingEngine implements BookingEngine.
type DefaultBookingEngine struct {
	Catalog  *models.Catalog
	Ledger   ledgerRepo.LedgerRepository
	Tasks    tasks.TaskService
	Notifier notification.Notifier
	Logger   *zap.Logger

	ClosedWeekday   time.Weekday
	BlockBookedDays bool
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Engine   BookingEngine
	Catalog  *models.Catalog
	Sessions sessionRepo.SessionRepository
	IDs      utils.IDGenerator
	Now      utils.Clock
	Logger   *zap.Logger
}

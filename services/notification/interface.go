package notification

import (
	"context"

	"jalusi/models"
)

// Notifier is told about every confirmed appointment. A failing notifier
// never undoes a booking.
type Notifier interface {
	AppointmentBooked(ctx context.Context, appointment models.Task) error
}

// NopNotifier is used when reminders are disabled.
type NopNotifier struct{}

func (NopNotifier) AppointmentBooked(context.Context, models.Task) error { return nil }

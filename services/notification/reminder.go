package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"jalusi/metrics"
	"jalusi/models"
	"jalusi/utils"
)

const TypeReminderSend = "reminder:send"

// NewReminderTask schedules payload for delivery at fireAt.
func NewReminderTask(payload models.ReminderPayload) (*asynq.Task, []asynq.Option, error) {
	fireAt, err := time.Parse(time.RFC3339, payload.FireAt)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid fire time %q: %w", payload.FireAt, err)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.MaxRetry(3),
		asynq.TaskID("reminder-" + payload.AppointmentID),
	}
	return asynq.NewTask(TypeReminderSend, data), opts, nil
}

// ReminderPayloadFor builds the reminder for an appointment, firing lead
// before the slot starts.
func ReminderPayloadFor(appointment models.Task, lead time.Duration) (models.ReminderPayload, error) {
	if appointment.Booking == nil {
		return models.ReminderPayload{}, fmt.Errorf("task %s is not linked to a booking", appointment.ID)
	}
	day, err := utils.ParseDate(appointment.DueDate)
	if err != nil {
		return models.ReminderPayload{}, err
	}
	clock, err := time.Parse("15:04", appointment.Booking.Time)
	if err != nil {
		return models.ReminderPayload{}, fmt.Errorf("invalid slot time %q: %w", appointment.Booking.Time, err)
	}
	start := day.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute)

	return models.ReminderPayload{
		AppointmentID: appointment.ID,
		Title:         appointment.Title,
		Specialist:    appointment.AssignedTo,
		ClientName:    appointment.Booking.ClientName,
		ClientEmail:   appointment.Booking.ClientEmail,
		ClientPhone:   appointment.Booking.ClientPhone,
		Date:          appointment.DueDate,
		Time:          appointment.Booking.Time,
		FireAt:        start.Add(-lead).Format(time.RFC3339),
	}, nil
}

// Enqueuer is the part of *asynq.Client the notifier uses.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqNotifier queues a reminder for each confirmed appointment.
type AsynqNotifier struct {
	Client Enqueuer
	Lead   time.Duration
	Logger *zap.Logger
}

func NewAsynqNotifier(client Enqueuer, lead time.Duration, logger *zap.Logger) *AsynqNotifier {
	return &AsynqNotifier{Client: client, Lead: lead, Logger: logger}
}

func (n *AsynqNotifier) AppointmentBooked(ctx context.Context, appointment models.Task) error {
	payload, err := ReminderPayloadFor(appointment, n.Lead)
	if err != nil {
		metrics.RemindersQueued.WithLabelValues("invalid").Inc()
		return err
	}
	task, opts, err := NewReminderTask(payload)
	if err != nil {
		metrics.RemindersQueued.WithLabelValues("invalid").Inc()
		return err
	}
	info, err := n.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		metrics.RemindersQueued.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	metrics.RemindersQueued.WithLabelValues("queued").Inc()
	n.Logger.Debug("Reminder queued",
		zap.String("appointmentID", appointment.ID),
		zap.String("taskID", info.ID),
		zap.String("fireAt", payload.FireAt))
	return nil
}

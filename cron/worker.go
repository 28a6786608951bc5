package cron

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"jalusi/models"
	"jalusi/services/notification"
)

// StartReminderWorker runs the reminder queue consumer in the background.
// Call Shutdown on the returned server to stop it.
func StartReminderWorker(redisOpt asynq.RedisClientOpt, logger *zap.Logger) (*asynq.Server, error) {
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeReminderSend, HandleReminderTask(logger))

	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("failed to start reminder worker: %w", err)
	}
	logger.Info("Reminder worker started", zap.String("redis", redisOpt.Addr), zap.Int("db", redisOpt.DB))
	return srv, nil
}

// HandleReminderTask delivers a reminder. Delivery is a log line; a bad
// payload is dropped without retry.
func HandleReminderTask(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		logger.Info("Appointment reminder",
			zap.String("appointmentID", p.AppointmentID),
			zap.String("title", p.Title),
			zap.String("specialist", p.Specialist),
			zap.String("client", p.ClientName),
			zap.String("date", p.Date),
			zap.String("time", p.Time))
		return nil
	}
}

package cron

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"jalusi/models"
	"jalusi/services/notification"
)

func TestHandleReminderTask_LogsReminder(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := HandleReminderTask(zap.New(core))

	data, err := json.Marshal(models.ReminderPayload{AppointmentID: "task-1", ClientName: "Lisa", Date: "2024-02-20", Time: "10:00"})
	require.NoError(t, err)

	require.NoError(t, handler(context.Background(), asynq.NewTask(notification.TypeReminderSend, data)))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Appointment reminder", logs.All()[0].Message)
}

func TestHandleReminderTask_BadPayloadSkipsRetry(t *testing.T) {
	handler := HandleReminderTask(zap.NewNop())
	err := handler(context.Background(), asynq.NewTask(notification.TypeReminderSend, []byte("{")))
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jalusi/models"
)

type mockEnqueuer struct {
	mock.Mock
}

func (m *mockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task)
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}

func appointment() models.Task {
	return models.Task{
		ID:         "task-7",
		Title:      "Microblading - Lisa",
		AssignedTo: "Anna Smith",
		DueDate:    "2024-02-20",
		Kind:       models.KindAppointment,
		Booking:    &models.BookingLink{Service: "microblading", Time: "10:00", ClientName: "Lisa"},
	}
}

func TestReminderPayloadFor_FiresBeforeSlot(t *testing.T) {
	p, err := ReminderPayloadFor(appointment(), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-20T09:00:00Z", p.FireAt)
	assert.Equal(t, "Lisa", p.ClientName)
	assert.Equal(t, "Anna Smith", p.Specialist)
}

func TestReminderPayloadFor_RequiresBooking(t *testing.T) {
	task := appointment()
	task.Booking = nil
	_, err := ReminderPayloadFor(task, time.Hour)
	assert.Error(t, err)
}

func TestAsynqNotifier_Enqueues(t *testing.T) {
	client := new(mockEnqueuer)
	client.On("EnqueueContext", mock.Anything, mock.MatchedBy(func(task *asynq.Task) bool {
		var p models.ReminderPayload
		return task.Type() == TypeReminderSend &&
			json.Unmarshal(task.Payload(), &p) == nil &&
			p.AppointmentID == "task-7"
	})).Return(&asynq.TaskInfo{ID: "reminder-task-7"}, nil)

	n := NewAsynqNotifier(client, 30*time.Minute, zap.NewNop())
	require.NoError(t, n.AppointmentBooked(context.Background(), appointment()))
	client.AssertExpectations(t)
}

func TestAsynqNotifier_EnqueueFailure(t *testing.T) {
	client := new(mockEnqueuer)
	client.On("EnqueueContext", mock.Anything, mock.Anything).Return(nil, errors.New("redis down"))

	n := NewAsynqNotifier(client, time.Hour, zap.NewNop())
	assert.Error(t, n.AppointmentBooked(context.Background(), appointment()))
}

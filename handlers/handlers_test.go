package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jalusi/config"
	ledgerRepo "jalusi/database/repository/ledger"
	sessionRepo "jalusi/database/repository/sessions"
	taskRepo "jalusi/database/repository/tasks"
	"jalusi/models"
	"jalusi/services/auth"
	"jalusi/services/booking"
	"jalusi/services/notification"
	"jalusi/services/tasks"
	"jalusi/utils"
)

var fixedNow = time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	logger := zap.NewNop()
	clock := utils.FixedClock(fixedNow)
	catalog := config.DefaultCatalog()
	sample := config.DefaultSampleData()

	taskSvc := &tasks.DefaultTaskService{
		Repo:    taskRepo.NewMemoryTaskRepo(),
		IDs:     utils.NewSequentialIDGenerator("task"),
		Now:     clock,
		Catalog: catalog,
		Logger:  logger,
	}
	require.NoError(t, taskSvc.Seed(context.Background(), sample.Tasks))

	engine := &booking.DefaultBookingEngine{
		Catalog:       catalog,
		Ledger:        ledgerRepo.NewMemoryLedgerRepo(),
		Tasks:         taskSvc,
		Notifier:      notification.NopNotifier{},
		Logger:        logger,
		ClosedWeekday: time.Sunday,
	}
	require.NoError(t, engine.SeedLedger(context.Background(), sample.BookedSlots))

	sessions := &booking.DefaultBookingSessionService{
		Engine:   engine,
		Catalog:  catalog,
		Sessions: sessionRepo.NewMemorySessionRepo(10*time.Minute, clock),
		IDs:      utils.NewSequentialIDGenerator("session"),
		Now:      clock,
		Logger:   logger,
	}
	authSvc := &auth.DefaultAuthService{
		Provider: auth.NewMemoryProvider(utils.NewSequentialIDGenerator("uid")),
		Tokens:   utils.NewTokenIssuer("secret", time.Hour),
		Logger:   logger,
	}

	bh := NewBookingHandler(engine, sessions, catalog, clock, logger)
	th := NewTaskHandler(taskSvc, logger)
	ah := NewAuthHandler(authSvc, logger)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/catalog/services/:service/specialists", bh.ListSpecialists)
	api.GET("/booking/slots", bh.GetTimeSlots)
	api.GET("/booking/calendar", bh.GetCalendar)
	api.POST("/booking/confirm", bh.ConfirmBooking)
	api.POST("/booking/session", bh.InitiateSession)
	api.PATCH("/booking/session/:sessionID", bh.UpdateSession)
	api.POST("/booking/session/:sessionID/confirm", bh.ConfirmSession)
	api.GET("/tasks", th.ListTasks)
	api.POST("/tasks", th.CreateTask)
	api.PATCH("/tasks/:id/status", th.UpdateTaskStatus)
	api.GET("/schedule/today", th.TodaySchedule)
	api.POST("/auth/login", ah.SignIn)
	api.POST("/auth/signup", ah.SignUp)
	return r
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestConfirmBookingEndpoint(t *testing.T) {
	r := newTestRouter(t)
	req := models.BookingRequest{Service: "microblading", Specialist: "Anna Smith", Date: "2024-02-20", Time: "09:00", ClientName: "Lisa"}

	w := do(r, http.MethodPost, "/api/booking/confirm", req)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, utils.CodeAlreadyOccupied, decode[utils.ErrorResponse](t, w).Code)

	req.Time = "10:00"
	w = do(r, http.MethodPost, "/api/booking/confirm", req)
	require.Equal(t, http.StatusCreated, w.Code)
	var body struct {
		Booking models.BookingResult `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Microblading - Lisa", body.Booking.Appointment.Title)

	req.Specialist = "Maria Garcia"
	req.Time = "11:00"
	w = do(r, http.MethodPost, "/api/booking/confirm", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, utils.CodeValidation, decode[utils.ErrorResponse](t, w).Code)
}

func TestTimeSlotsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/booking/slots?date=2024-02-16&selected=09:00", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Slots []models.TimeSlotView `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Slots, 8)
	assert.True(t, body.Slots[0].Selected)
	assert.True(t, body.Slots[1].Booked)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/booking/slots", nil).Code)
}

func TestCalendarEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/booking/calendar", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "February 2024", decode[models.CalendarGrid](t, w).Title)

	w = do(r, http.MethodGet, "/api/booking/calendar?year=2024&month=12&shift=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	grid := decode[models.CalendarGrid](t, w)
	assert.Equal(t, 2025, grid.Year)
	assert.Equal(t, 1, grid.Month)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/booking/calendar?month=13", nil).Code)
}

func TestSpecialistsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/catalog/services/facial/specialists", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/catalog/services/nails/specialists", nil).Code)
}

func TestSessionFlow(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/booking/session", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode[models.BookingSession](t, w).SessionID

	w = do(r, http.MethodPatch, "/api/booking/session/"+id, map[string]string{
		"service":    "lash-lift",
		"specialist": "Sarah Wilson",
		"date":       "2024-02-21",
		"time":       "13:00",
		"clientName": "Kim",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/api/booking/session/"+id+"/confirm", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPatch, "/api/booking/session/unknown", map[string]string{}).Code)
}

func TestTaskEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Tasks []models.TaskView `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Tasks, 4)
	assert.Equal(t, "In Progress", list.Tasks[0].StatusLabel)

	w = do(r, http.MethodGet, "/api/tasks?type=appointment&assignee=Anna+Smith", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Tasks, 2)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/tasks?status=done", nil).Code)

	w = do(r, http.MethodPost, "/api/tasks", map[string]string{"title": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/tasks", map[string]string{"title": "Order towels"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.TaskView](t, w)
	assert.Equal(t, "Anna Smith", created.AssignedTo)
	assert.Equal(t, "2024-02-15", created.DueDate)

	w = do(r, http.MethodPatch, "/api/tasks/"+created.ID+"/status", map[string]string{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Completed", decode[models.TaskView](t, w).StatusLabel)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPatch, "/api/tasks/missing/status", map[string]string{"status": "completed"}).Code)
}

func TestTodayScheduleEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/schedule/today", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Appointments []models.TaskView `json:"appointments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Appointments, 2)
}

func TestAuthEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/auth/signup", map[string]string{"email": "anna@jalusi.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/api/auth/login", map[string]string{"email": "anna@jalusi.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, auth.MsgInvalidCredentials, decode[utils.ErrorResponse](t, w).Details)

	w = do(r, http.MethodPost, "/api/auth/login", map[string]string{"email": "anna@jalusi.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode[models.AuthResponse](t, w).Token)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/auth/login", map[string]string{}).Code)
}

package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jalusi/handlers"
	"jalusi/utils"
)

func ok(c *gin.Context) { c.Status(http.StatusOK) }

func stubBundle() *handlers.HandlerBundle {
	return &handlers.HandlerBundle{
		ListServices: ok, ListSpecialists: ok, ListRoster: ok,
		GetTimeSlots: ok, GetCalendar: ok, ConfirmBooking: ok,
		InitiateSession: ok, GetSession: ok, UpdateSession: ok, CancelSession: ok, ConfirmSession: ok,
		ListTasks: ok, CreateTask: ok, UpdateTaskStatus: ok, TodaySchedule: ok,
		SignIn: ok, SignUp: ok, SignInWithGoogle: ok,
		Health: ok,
	}
}

func serve(r *gin.Engine, method, path, token string) int {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRegisterRoutes_TaskMutationsRequireToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := utils.NewTokenIssuer("secret", time.Hour)
	r := gin.New()
	RegisterRoutes(r, stubBundle(), Options{RequireAuth: true, Tokens: tokens})

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/tasks", ""))
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodPost, "/api/tasks", ""))
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodPatch, "/api/tasks/1/status", ""))

	token, _, err := tokens.GenerateToken("uid-1", "anna@jalusi.com")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/tasks", token))
}

func TestRegisterRoutes_OpenByDefault(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, stubBundle(), Options{})

	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/tasks", ""))
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/booking/session/abc/confirm", ""))
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/catalog/services/facial/specialists", ""))
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/metrics", ""))
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health", ""))
}

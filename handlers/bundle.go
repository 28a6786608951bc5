package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Catalog endpoints
	ListServices    gin.HandlerFunc
	ListSpecialists gin.HandlerFunc
	ListRoster      gin.HandlerFunc

	// Booking endpoints
	GetTimeSlots    gin.HandlerFunc
	GetCalendar     gin.HandlerFunc
	ConfirmBooking  gin.HandlerFunc
	InitiateSession gin.HandlerFunc
	GetSession      gin.HandlerFunc
	UpdateSession   gin.HandlerFunc
	CancelSession   gin.HandlerFunc
	ConfirmSession  gin.HandlerFunc

	// Task endpoints
	ListTasks        gin.HandlerFunc
	CreateTask       gin.HandlerFunc
	UpdateTaskStatus gin.HandlerFunc
	TodaySchedule    gin.HandlerFunc

	// Auth endpoints
	SignIn           gin.HandlerFunc
	SignUp           gin.HandlerFunc
	SignInWithGoogle gin.HandlerFunc

	Health gin.HandlerFunc
}

// NewHandlerBundle wires every handler method into the bundle.
func NewHandlerBundle(booking *BookingHandler, tasks *TaskHandler, auth *AuthHandler, health *HealthHandler) *HandlerBundle {
	return &HandlerBundle{
		ListServices:    booking.ListServices,
		ListSpecialists: booking.ListSpecialists,
		ListRoster:      booking.ListRoster,

		GetTimeSlots:    booking.GetTimeSlots,
		GetCalendar:     booking.GetCalendar,
		ConfirmBooking:  booking.ConfirmBooking,
		InitiateSession: booking.InitiateSession,
		GetSession:      booking.GetSession,
		UpdateSession:   booking.UpdateSession,
		CancelSession:   booking.CancelSession,
		ConfirmSession:  booking.ConfirmSession,

		ListTasks:        tasks.ListTasks,
		CreateTask:       tasks.CreateTask,
		UpdateTaskStatus: tasks.UpdateTaskStatus,
		TodaySchedule:    tasks.TodaySchedule,

		SignIn:           auth.SignIn,
		SignUp:           auth.SignUp,
		SignInWithGoogle: auth.SignInWithGoogle,

		Health: health.Check,
	}
}

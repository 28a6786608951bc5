package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsConfirmed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jalusi_bookings_confirmed_total",
			Help: "Confirmed bookings by service",
		},
		[]string{"service"},
	)

	// reason is the error code: validationFailure, alreadyOccupied or internal.
	BookingsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jalusi_bookings_rejected_total",
			Help: "Booking confirmations that did not go through",
		},
		[]string{"reason"},
	)

	TaskStatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jalusi_task_status_changes_total",
			Help: "Task status updates by target status",
		},
		[]string{"status"},
	)

	TasksCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jalusi_tasks_created_total",
			Help: "Registry items created by kind",
		},
		[]string{"type"},
	)

	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jalusi_auth_attempts_total",
			Help: "Sign-in and sign-up attempts by method and outcome",
		},
		[]string{"method", "outcome"},
	)

	RemindersQueued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jalusi_reminders_queued_total",
			Help: "Appointment reminders handed to the queue",
		},
		[]string{"status"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jalusi_http_requests_total",
			Help: "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jalusi_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jalusi/handlers"
	"jalusi/middleware"
	"jalusi/utils"
)

// Options controls which routes require a session token.
type Options struct {
	RequireAuth bool
	Tokens      *utils.TokenIssuer
}

// RegisterCatalogRoutes registers the read-only catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", hb.ListServices)
		api.GET("/services/:service/specialists", hb.ListSpecialists)
		api.GET("/roster", hb.ListRoster)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking form.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.GET("/slots", hb.GetTimeSlots)
		bookingGroup.GET("/calendar", hb.GetCalendar)
		bookingGroup.POST("/confirm", hb.ConfirmBooking)

		bookingGroup.POST("/session", hb.InitiateSession)
		bookingGroup.GET("/session/:sessionID", hb.GetSession)
		bookingGroup.PATCH("/session/:sessionID", hb.UpdateSession)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmSession)
	}
}

// RegisterTaskRoutes registers the task list and schedule. Mutations sit
// behind the session token when opts.RequireAuth is set.
func RegisterTaskRoutes(r *gin.Engine, hb *handlers.HandlerBundle, opts Options) {
	api := r.Group("/api")
	{
		api.GET("/tasks", hb.ListTasks)
		api.GET("/schedule/today", hb.TodaySchedule)

		protected := api.Group("")
		if opts.RequireAuth {
			protected.Use(middleware.JWTAuthMiddleware(opts.Tokens))
		}
		protected.POST("/tasks", hb.CreateTask)
		protected.PATCH("/tasks/:id/status", hb.UpdateTaskStatus)
	}
}

// RegisterAuthRoutes registers sign-in and sign-up endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.SignIn)
		api.POST("/signup", hb.SignUp)
		api.POST("/google", hb.SignInWithGoogle)
	}
}

// RegisterHealthRoute registers the health-check and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, opts Options) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterTaskRoutes(r, hb, opts)
	RegisterAuthRoutes(r, hb)
}

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jalusi/models"
	"jalusi/services/booking"
	"jalusi/services/calendar"
	"jalusi/utils"
)

// BookingHandler serves the booking form: catalog lookups, slot and calendar
// views, one-shot confirmation and the multi-step session.
type BookingHandler struct {
	Engine   booking.BookingEngine
	Sessions booking.BookingSessionService
	Catalog  *models.Catalog
	Now      utils.Clock
	Logger   *zap.Logger
}

func NewBookingHandler(engine booking.BookingEngine, sessions booking.BookingSessionService, catalog *models.Catalog, now utils.Clock, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		Engine:   engine,
		Sessions: sessions,
		Catalog:  catalog,
		Now:      now,
		Logger:   logger,
	}
}

// GetTimeSlots handles GET /api/booking/slots?date=&selected=.
func (h *BookingHandler) GetTimeSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "missing date", "query parameter 'date' is required")
		return
	}
	slots, err := h.Engine.TimeSlots(c.Request.Context(), date, c.Query("selected"))
	if err != nil {
		utils.RespondError(c, h.Logger, "failed to load time slots", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}

// GetCalendar handles GET /api/booking/calendar?year=&month=&selected=&shift=.
// Year and month default to the current month; shift moves by whole months.
func (h *BookingHandler) GetCalendar(c *gin.Context) {
	now := h.Now()
	year, month := now.Year(), int(now.Month())
	var err error
	if v := c.Query("year"); v != "" {
		if year, err = strconv.Atoi(v); err != nil {
			utils.JSONError(c, h.Logger, http.StatusBadRequest, "invalid year", err.Error())
			return
		}
	}
	if v := c.Query("month"); v != "" {
		if month, err = strconv.Atoi(v); err != nil || month < 1 || month > 12 {
			utils.JSONError(c, h.Logger, http.StatusBadRequest, "invalid month", "month must be between 1 and 12")
			return
		}
	}
	y, m := year, time.Month(month)
	if v := c.Query("shift"); v != "" {
		delta, err := strconv.Atoi(v)
		if err != nil {
			utils.JSONError(c, h.Logger, http.StatusBadRequest, "invalid shift", err.Error())
			return
		}
		y, m = calendar.ShiftMonth(y, m, delta)
	}

	grid, err := h.Engine.Calendar(c.Request.Context(), y, m, c.Query("selected"))
	if err != nil {
		utils.RespondError(c, h.Logger, "failed to build calendar", err)
		return
	}
	c.JSON(http.StatusOK, grid)
}

// ConfirmBooking handles POST /api/booking/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	result, err := h.Engine.ConfirmBooking(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, h.Logger, "booking failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking Confirmed!",
		"booking": result,
	})
}

// InitiateSession handles POST /api/booking/session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	session, err := h.Sessions.InitiateSession(c.Request.Context())
	if err != nil {
		utils.RespondError(c, h.Logger, "failed to start booking session", err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetSession handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Sessions.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.RespondError(c, h.Logger, "booking session not found", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSession handles PATCH /api/booking/session/:sessionID.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var patch models.SelectionUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	session, err := h.Sessions.UpdateSession(c.Request.Context(), c.Param("sessionID"), patch)
	if err != nil {
		utils.RespondError(c, h.Logger, "failed to update booking session", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Sessions.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.RespondError(c, h.Logger, "failed to cancel booking session", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ConfirmSession handles POST /api/booking/session/:sessionID/confirm.
func (h *BookingHandler) ConfirmSession(c *gin.Context) {
	result, err := h.Sessions.ConfirmSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.RespondError(c, h.Logger, "booking failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking Confirmed!",
		"booking": result,
	})
}

package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"jalusi/metrics"
	"jalusi/models"
	"jalusi/utils"
)

// ConfirmBooking validates the request, reserves the slot and appends the
// appointment. Either both writes land or neither does.
func (e *DefaultBookingEngine) ConfirmBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error) {
	req.ClientName = strings.TrimSpace(req.ClientName)
	if err := e.validateRequest(req); err != nil {
		e.reject(err)
		return nil, err
	}

	if err := e.Ledger.Reserve(ctx, req.Date, req.Time); err != nil {
		e.Logger.Info("Slot no longer available",
			zap.String("date", req.Date),
			zap.String("time", req.Time),
			zap.Error(err))
		e.reject(err)
		return nil, err
	}

	serviceName := e.Catalog.ServiceName(req.Service)
	appointment, err := e.Tasks.Append(ctx, models.NewTask{
		Title:      fmt.Sprintf("%s - %s", serviceName, req.ClientName),
		AssignedTo: req.Specialist,
		DueDate:    req.Date,
		Kind:       models.KindAppointment,
		Booking: &models.BookingLink{
			Service:     req.Service,
			Time:        req.Time,
			ClientName:  req.ClientName,
			ClientEmail: strings.TrimSpace(req.ClientEmail),
			ClientPhone: strings.TrimSpace(req.ClientPhone),
		},
	})
	if err != nil {
		if relErr := e.Ledger.Release(ctx, req.Date, req.Time); relErr != nil {
			e.Logger.Error("Failed to release slot after registry failure",
				zap.String("date", req.Date),
				zap.String("time", req.Time),
				zap.Error(relErr))
		}
		e.Logger.Error("Failed to record appointment", zap.Error(err))
		e.reject(err)
		return nil, fmt.Errorf("failed to record appointment: %w", err)
	}

	if e.Notifier != nil {
		if nErr := e.Notifier.AppointmentBooked(ctx, *appointment); nErr != nil {
			e.Logger.Warn("Failed to schedule reminder",
				zap.String("appointmentID", appointment.ID),
				zap.Error(nErr))
		}
	}

	metrics.BookingsConfirmed.WithLabelValues(req.Service).Inc()
	e.Logger.Info("Booking confirmed",
		zap.String("appointmentID", appointment.ID),
		zap.String("service", req.Service),
		zap.String("specialist", req.Specialist),
		zap.String("date", req.Date),
		zap.String("time", req.Time))

	summary := models.BookingSummary{
		Service:    serviceName,
		Specialist: req.Specialist,
		Date:       req.Date,
		Time:       req.Time,
	}
	return &models.BookingResult{
		Summary:     summary,
		Message:     confirmationMessage(summary),
		Appointment: *appointment,
	}, nil
}

// validateRequest checks the preconditions in order and stops at the first
// failure. It never touches the ledger.
func (e *DefaultBookingEngine) validateRequest(req models.BookingRequest) error {
	if req.Service == "" || req.Specialist == "" {
		return missingFields()
	}
	if _, ok := e.Catalog.Service(req.Service); !ok {
		return utils.NewValidationError(msgUnknownService)
	}
	if !e.Catalog.IsQualified(req.Service, req.Specialist) {
		return utils.NewValidationError(msgUnqualified, req.Specialist, e.Catalog.ServiceName(req.Service))
	}
	if req.Date == "" || req.Time == "" {
		return missingFields()
	}
	if _, err := utils.ParseDate(req.Date); err != nil {
		return utils.NewValidationError(msgBadDate)
	}
	if !e.Catalog.IsTimeSlot(req.Time) {
		return utils.NewValidationError(msgBadTime)
	}
	if req.ClientName == "" {
		return missingFields()
	}
	return nil
}

func (e *DefaultBookingEngine) reject(err error) {
	reason := "internal"
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		reason = appErr.Code
	}
	metrics.BookingsRejected.WithLabelValues(reason).Inc()
}

func confirmationMessage(s models.BookingSummary) string {
	return fmt.Sprintf("Service: %s\nSpecialist: %s\nDate: %s\nTime: %s", s.Service, s.Specialist, s.Date, s.Time)
}

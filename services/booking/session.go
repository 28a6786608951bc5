package booking

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"jalusi/models"
	"jalusi/utils"
)

func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context) (*models.BookingSession, error) {
	now := s.Now()
	session := models.BookingSession{
		SessionID: s.IDs.NewID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		s.Logger.Error("Failed to save booking session", zap.Error(err))
		return nil, err
	}
	return &session, nil
}

func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.Sessions.Get(ctx, sessionID)
}

// UpdateSession applies patch to the stored selection. Choices the form would
// not offer are refused here so a stale client cannot build an impossible
// selection; the confirmation step checks everything again regardless.
func (s *DefaultBookingSessionService) UpdateSession(ctx context.Context, sessionID string, patch models.SelectionUpdate) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sel := session.Selection

	if patch.Service != nil && *patch.Service != sel.Service {
		if *patch.Service != "" {
			if _, ok := s.Catalog.Service(*patch.Service); !ok {
				return nil, utils.NewValidationError(msgUnknownService)
			}
		}
		sel.Service = *patch.Service
		sel.Specialist = ""
	}

	if patch.Specialist != nil {
		if name := *patch.Specialist; name != "" {
			if !s.Catalog.IsQualified(sel.Service, name) {
				return nil, utils.NewValidationError(msgUnqualified, name, s.Catalog.ServiceName(sel.Service))
			}
		}
		sel.Specialist = *patch.Specialist
	}

	if patch.Date != nil {
		if date := *patch.Date; date != "" {
			ok, err := s.Engine.Selectable(ctx, date)
			if err != nil {
				return nil, err
			}
			if !ok {
				day, _ := utils.ParseDate(date)
				return nil, utils.NewValidationError(msgClosedDay, day.Format("Monday, January 2"))
			}
		}
		sel.Date = *patch.Date
	}

	if patch.Time != nil {
		sel.Time = *patch.Time
	}
	if sel.Time != "" && (patch.Time != nil || patch.Date != nil) {
		if err := s.checkTime(ctx, sel.Date, sel.Time); err != nil {
			return nil, err
		}
	}

	if patch.ClientName != nil {
		sel.ClientName = strings.TrimSpace(*patch.ClientName)
	}
	if patch.ClientEmail != nil {
		sel.ClientEmail = strings.TrimSpace(*patch.ClientEmail)
	}
	if patch.ClientPhone != nil {
		sel.ClientPhone = strings.TrimSpace(*patch.ClientPhone)
	}

	session.Selection = sel
	session.UpdatedAt = s.Now()
	if err := s.Sessions.Save(ctx, *session); err != nil {
		s.Logger.Error("Failed to save booking session", zap.String("sessionID", sessionID), zap.Error(err))
		return nil, err
	}
	return session, nil
}

func (s *DefaultBookingSessionService) checkTime(ctx context.Context, date, t string) error {
	if !s.Catalog.IsTimeSlot(t) {
		return utils.NewValidationError(msgBadTime)
	}
	if date == "" {
		return nil
	}
	taken, err := s.Engine.IsOccupied(ctx, date, t)
	if err != nil {
		return err
	}
	if taken {
		return utils.NewAlreadyOccupiedError(date, t)
	}
	return nil
}

// ConfirmSession books the stored selection and, on success, clears it so the
// form starts over.
func (s *DefaultBookingSessionService) ConfirmSession(ctx context.Context, sessionID string) (*models.BookingResult, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result, err := s.Engine.ConfirmBooking(ctx, session.Selection.Request())
	if err != nil {
		return nil, err
	}

	session.Selection = models.BookingSelection{}
	session.UpdatedAt = s.Now()
	if err := s.Sessions.Save(ctx, *session); err != nil {
		// The booking stands; only the form reset is lost.
		s.Logger.Warn("Failed to reset booking session", zap.String("sessionID", sessionID), zap.Error(err))
	}
	return result, nil
}

func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

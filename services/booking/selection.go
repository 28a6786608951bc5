package booking

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"jalusi/models"
	"jalusi/services/calendar"
	"jalusi/utils"
)

func (e *DefaultBookingEngine) Services() []models.Service {
	return slices.Clone(e.Catalog.Services)
}

// SpecialistsFor is the list the specialist picker offers once a service is
// chosen.
func (e *DefaultBookingEngine) SpecialistsFor(service string) ([]string, error) {
	if _, ok := e.Catalog.Service(service); !ok {
		return nil, utils.NewNotFoundError("service %q not found", service)
	}
	return e.Catalog.SpecialistsFor(service), nil
}

// TimeSlots returns every catalog time for date with its booked flag.
func (e *DefaultBookingEngine) TimeSlots(ctx context.Context, date, selected string) ([]models.TimeSlotView, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, utils.NewValidationError(msgBadDate)
	}
	occupied, err := e.Ledger.OccupiedSlotsFor(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load occupied slots: %w", err)
	}
	views := make([]models.TimeSlotView, 0, len(e.Catalog.TimeSlots))
	for _, t := range e.Catalog.TimeSlots {
		views = append(views, models.TimeSlotView{
			Time:     t,
			Booked:   slices.Contains(occupied, t),
			Selected: t == selected,
		})
	}
	return views, nil
}

func (e *DefaultBookingEngine) Calendar(ctx context.Context, year int, month time.Month, selected string) (*models.CalendarGrid, error) {
	if month < time.January || month > time.December {
		return nil, utils.NewValidationError("month must be between 1 and 12")
	}

	// Occupancy is read up front so the grid builder stays free of I/O.
	booked := make(map[string]bool)
	for day := 1; day <= calendar.DaysIn(year, month); day++ {
		key := utils.FormatDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
		slots, err := e.Ledger.OccupiedSlotsFor(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to load occupied slots: %w", err)
		}
		booked[key] = len(slots) > 0
	}

	grid := calendar.BuildMonth(year, month, e.calendarOptions(selected, func(d string) bool { return booked[d] }))
	return &grid, nil
}

// Selectable applies the calendar policy to a single date.
func (e *DefaultBookingEngine) Selectable(ctx context.Context, date string) (bool, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return false, utils.NewValidationError(msgBadDate)
	}
	var lookupErr error
	opts := e.calendarOptions("", func(d string) bool {
		slots, err := e.Ledger.OccupiedSlotsFor(ctx, d)
		if err != nil {
			lookupErr = err
			return false
		}
		return len(slots) > 0
	})
	ok := calendar.IsSelectable(day, opts)
	if lookupErr != nil {
		return false, fmt.Errorf("failed to load occupied slots: %w", lookupErr)
	}
	return ok, nil
}

func (e *DefaultBookingEngine) IsOccupied(ctx context.Context, date, t string) (bool, error) {
	return e.Ledger.IsOccupied(ctx, date, t)
}

// SeedLedger loads the sample bookings. Slots that are already taken are
// skipped so restarting against a persistent store is harmless.
func (e *DefaultBookingEngine) SeedLedger(ctx context.Context, booked map[string][]string) error {
	dates := make([]string, 0, len(booked))
	for d := range booked {
		dates = append(dates, d)
	}
	slices.Sort(dates)

	for _, d := range dates {
		for _, t := range booked[d] {
			err := e.Ledger.Reserve(ctx, d, t)
			if err == nil || errors.Is(err, utils.ErrAlreadyOccupied) {
				continue
			}
			return fmt.Errorf("failed to seed slot %s %s: %w", d, t, err)
		}
	}
	e.Logger.Info("Ledger seeded", zap.Int("dates", len(dates)))
	return nil
}

func (e *DefaultBookingEngine) calendarOptions(selected string, booked func(string) bool) calendar.Options {
	return calendar.Options{
		ClosedWeekday:   e.ClosedWeekday,
		SelectedDate:    selected,
		Booked:          booked,
		BlockBookedDays: e.BlockBookedDays,
	}
}

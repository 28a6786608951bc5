// Package calendar lays out the booking calendar one month at a time.
package calendar

import (
	"fmt"
	"time"

	"jalusi/models"
	"jalusi/utils"
)

var weekdayHeaders = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Options controls per-day flags of the grid.
type Options struct {
	// ClosedWeekday is never selectable.
	ClosedWeekday time.Weekday
	// SelectedDate is the currently chosen "YYYY-MM-DD", if any.
	SelectedDate string
	// Booked reports whether the ledger holds any slot on a date. Nil means
	// no day has bookings.
	Booked func(date string) bool
	// BlockBookedDays also makes days with bookings unselectable.
	BlockBookedDays bool
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOffset is the number of blank cells before the 1st in a
// Sunday-first grid.
func FirstWeekdayOffset(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// BuildMonth produces headers, leading blanks, then one cell per day. It has
// no side effects beyond calling opts.Booked.
func BuildMonth(year int, month time.Month, opts Options) models.CalendarGrid {
	days := DaysIn(year, month)
	offset := FirstWeekdayOffset(year, month)

	cells := make([]models.CalendarCell, 0, len(weekdayHeaders)+offset+days)
	for _, h := range weekdayHeaders {
		cells = append(cells, models.CalendarCell{Kind: models.CellHeader, Label: h})
	}
	for i := 0; i < offset; i++ {
		cells = append(cells, models.CalendarCell{Kind: models.CellBlank})
	}
	for day := 1; day <= days; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		key := utils.FormatDate(d)
		booked := opts.Booked != nil && opts.Booked(key)
		cells = append(cells, models.CalendarCell{
			Kind:        models.CellDay,
			Date:        key,
			Day:         day,
			Unavailable: d.Weekday() == opts.ClosedWeekday || (opts.BlockBookedDays && booked),
			Selected:    key == opts.SelectedDate,
			HasBookings: booked,
		})
	}

	return models.CalendarGrid{
		Year:  year,
		Month: int(month),
		Title: fmt.Sprintf("%s %d", month, year),
		Cells: cells,
	}
}

// ShiftMonth moves delta months forward (or back for negative delta).
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

// IsSelectable applies the same day rule as the grid to a single date.
func IsSelectable(date time.Time, opts Options) bool {
	if date.Weekday() == opts.ClosedWeekday {
		return false
	}
	if opts.BlockBookedDays && opts.Booked != nil && opts.Booked(utils.FormatDate(date)) {
		return false
	}
	return true
}

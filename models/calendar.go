package models

type CellKind string

const (
	CellHeader CellKind = "header"
	CellBlank  CellKind = "blank"
	CellDay    CellKind = "day"
)

// CalendarCell is one square of the month grid. Header cells only carry
// Label; blank cells carry nothing.
type CalendarCell struct {
	Kind        CellKind `json:"kind"`
	Label       string   `json:"label,omitempty"`
	Date        string   `json:"date,omitempty"`
	Day         int      `json:"day,omitempty"`
	Unavailable bool     `json:"unavailable,omitempty"`
	Selected    bool     `json:"selected,omitempty"`
	HasBookings bool     `json:"hasBookings,omitempty"`
}

// CalendarGrid is a single month laid out Sunday-first.
type CalendarGrid struct {
	Year  int            `json:"year"`
	Month int            `json:"month"` // 1-12
	Title string         `json:"title"` // e.g. "February 2024"
	Cells []CalendarCell `json:"cells"`
}

package models

// BookingRequest carries everything the confirmation step needs.
type BookingRequest struct {
	Service     string `json:"service"`
	Specialist  string `json:"specialist"`
	Date        string `json:"date"` // "YYYY-MM-DD"
	Time        string `json:"time"` // "HH:MM", one of the catalog time slots
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail,omitempty"`
	ClientPhone string `json:"clientPhone,omitempty"`
}

// BookingSummary is the human-readable confirmation shown to the client.
type BookingSummary struct {
	Service    string `json:"service"` // display name
	Specialist string `json:"specialist"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

// BookingResult is returned by a successful confirmation.
type BookingResult struct {
	Summary     BookingSummary `json:"summary"`
	Message     string         `json:"message"`
	Appointment Task           `json:"appointment"`
}

// TimeSlotView is one entry of the "Available Time Slots" grid for a date.
type TimeSlotView struct {
	Time     string `json:"time"`
	Booked   bool   `json:"booked"`
	Selected bool   `json:"selected"`
}

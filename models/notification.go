package models

// ReminderPayload is queued for every confirmed appointment.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	Title         string `json:"title"`
	Specialist    string `json:"specialist"`
	ClientName    string `json:"clientName"`
	ClientEmail   string `json:"clientEmail,omitempty"`
	ClientPhone   string `json:"clientPhone,omitempty"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	FireAt        string `json:"fireAt"` // RFC 3339
}

package models

import "time"

// BookingSelection is the transient state of the booking form.
type BookingSelection struct {
	Service     string `json:"service"`
	Specialist  string `json:"specialist"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone"`
}

// Request turns the current selection into a confirmation request.
func (s BookingSelection) Request() BookingRequest {
	return BookingRequest{
		Service:     s.Service,
		Specialist:  s.Specialist,
		Date:        s.Date,
		Time:        s.Time,
		ClientName:  s.ClientName,
		ClientEmail: s.ClientEmail,
		ClientPhone: s.ClientPhone,
	}
}

// BookingSession holds the selection between form steps.
type BookingSession struct {
	SessionID string           `json:"sessionId"`
	Selection BookingSelection `json:"selection"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// SelectionUpdate is a partial edit of the selection; nil fields are left
// unchanged.
type SelectionUpdate struct {
	Service     *string `json:"service,omitempty"`
	Specialist  *string `json:"specialist,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	ClientName  *string `json:"clientName,omitempty"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	ClientPhone *string `json:"clientPhone,omitempty"`
}

package requests

import "time"

type AppointmentBookedEvent struct {
	Event         string    `json:"event"`
	AppointmentID string    `json:"appointment_id"`
	UserID        string    `json:"user_id"`
	ProviderID    string    `json:"provider_id"`
	SlotDate      string    `json:"slot_date"`
	SlotTime      string    `json:"slot_time"`
	Amount        float64   `json:"amount"`
	BookedAt      time.Time `json:"booked_at"`
}

package responses

import "time"

type Appointment struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	ProviderID   string          `json:"provider_id"`
	UserData     UserSnapshot    `json:"user_data"`
	ProviderData ProviderSummary `json:"provider_data"`
	Amount       float64         `json:"amount"`
	SlotDate     string          `json:"slot_date"`
	SlotTime     string          `json:"slot_time"`
	CreatedAt    time.Time       `json:"created_at"`
}

type UserSnapshot struct {
	Name    string  `json:"name"`
	Email   string  `json:"email,omitempty"`
	Phone   string  `json:"phone,omitempty"`
	Image   string  `json:"image,omitempty"`
	Gender  string  `json:"gender,omitempty"`
	Dob     string  `json:"dob,omitempty"`
	Address Address `json:"address"`
}

type ProviderSummary struct {
	Name       string  `json:"name"`
	Image      string  `json:"image,omitempty"`
	Speciality string  `json:"speciality,omitempty"`
	Address    Address `json:"address"`
	Fees       float64 `json:"fees"`
}

type Address struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

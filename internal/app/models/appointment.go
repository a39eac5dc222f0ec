package models

import (
	"booking-service/internal/pkg/dto/responses"
	"time"
)

type Appointment struct {
	ID           string          `bson:"_id"`
	UserID       string          `bson:"user_id"`
	ProviderID   string          `bson:"provider_id"`
	UserData     UserSnapshot    `bson:"user_data"`
	ProviderData ProviderSummary `bson:"provider_data"`
	Amount       float64         `bson:"amount"`
	SlotDate     string          `bson:"slot_date"`
	SlotTime     string          `bson:"slot_time"`
	CreatedAt    time.Time       `bson:"created_at"`
}

func (a Appointment) ConvertIntoResponse() responses.Appointment {
	return responses.Appointment{
		ID:           a.ID,
		UserID:       a.UserID,
		ProviderID:   a.ProviderID,
		UserData:     a.UserData.ConvertIntoResponse(),
		ProviderData: a.ProviderData.ConvertIntoResponse(),
		Amount:       a.Amount,
		SlotDate:     a.SlotDate,
		SlotTime:     a.SlotTime,
		CreatedAt:    a.CreatedAt,
	}
}

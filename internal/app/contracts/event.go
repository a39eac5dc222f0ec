package contracts

import (
	"booking-service/internal/app/models"
	"context"
)

type AppointmentEventPublisher interface {
	PublishAppointmentBooked(ctx context.Context, appointment models.Appointment) error
}

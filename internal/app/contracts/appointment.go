package contracts

import (
	"booking-service/internal/app/models"
	"context"
)

type AppointmentRepository interface {
	// Insert fails with exceptions.ErrDuplicateAppointment when the id or the
	// provider slot is already recorded.
	Insert(ctx context.Context, appointment models.Appointment) error
	FindByRequester(ctx context.Context, requesterID string) ([]models.Appointment, error)
	// Discard removes an appointment that was never acknowledged to a caller.
	Discard(ctx context.Context, appointmentID string) error
}

type ReservationUsecase interface {
	Reserve(ctx context.Context, requesterID, providerID, slotDate, slotTime string) (models.Outcome, error)
	ListForRequester(ctx context.Context, requesterID string) ([]models.Appointment, error)
}

package appointments

import (
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/exceptions"
	"context"
	"sync"
)

type slotKey struct {
	providerID string
	slotDate   string
	slotTime   string
}

// AppointmentMemoryRepository keeps appointments in insertion order and
// enforces the same uniqueness as the Mongo indexes.
type AppointmentMemoryRepository struct {
	mu           sync.RWMutex
	appointments []models.Appointment
	byID         map[string]int
	bySlot       map[slotKey]string
}

func NewAppointmentMemoryRepository() *AppointmentMemoryRepository {
	return &AppointmentMemoryRepository{
		byID:   make(map[string]int),
		bySlot: make(map[slotKey]string),
	}
}

func (repo *AppointmentMemoryRepository) Insert(ctx context.Context, appointment models.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()

	key := slotKey{appointment.ProviderID, appointment.SlotDate, appointment.SlotTime}
	if _, exists := repo.byID[appointment.ID]; exists {
		return exceptions.ErrDuplicateAppointment
	}
	if _, exists := repo.bySlot[key]; exists {
		return exceptions.ErrDuplicateAppointment
	}

	repo.byID[appointment.ID] = len(repo.appointments)
	repo.bySlot[key] = appointment.ID
	repo.appointments = append(repo.appointments, appointment)
	return nil
}

func (repo *AppointmentMemoryRepository) FindByRequester(ctx context.Context, requesterID string) ([]models.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	result := make([]models.Appointment, 0)
	for _, appointment := range repo.appointments {
		if appointment.UserID == requesterID {
			result = append(result, appointment)
		}
	}
	return result, nil
}

func (repo *AppointmentMemoryRepository) Discard(ctx context.Context, appointmentID string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	index, ok := repo.byID[appointmentID]
	if !ok {
		return nil
	}
	removed := repo.appointments[index]
	repo.appointments = append(repo.appointments[:index], repo.appointments[index+1:]...)
	delete(repo.byID, appointmentID)
	delete(repo.bySlot, slotKey{removed.ProviderID, removed.SlotDate, removed.SlotTime})
	for i := index; i < len(repo.appointments); i++ {
		repo.byID[repo.appointments[i].ID] = i
	}
	return nil
}

// Count returns every stored appointment regardless of requester.
func (repo *AppointmentMemoryRepository) Count() int {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return len(repo.appointments)
}

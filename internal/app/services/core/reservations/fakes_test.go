package reservations

import (
	"booking-service/internal/app/models"
	"booking-service/internal/app/services/core/appointments"
	"booking-service/internal/app/services/core/providers"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// faultyDirectory fails SaveSlotLedger with queued errors, one per call.
type faultyDirectory struct {
	*providers.MemoryDirectory

	mu         sync.Mutex
	getErr     error
	saveErrs   []error
	saves      int
	beforeSave func()
}

func (d *faultyDirectory) GetProvider(ctx context.Context, providerID string) (*models.Provider, error) {
	if d.getErr != nil {
		return nil, d.getErr
	}
	return d.MemoryDirectory.GetProvider(ctx, providerID)
}

func (d *faultyDirectory) SaveSlotLedger(ctx context.Context, providerID string, ledger models.SlotLedger, expectedVersion int64) error {
	d.mu.Lock()
	d.saves++
	hook := d.beforeSave
	d.beforeSave = nil
	var err error
	if len(d.saveErrs) > 0 {
		err, d.saveErrs = d.saveErrs[0], d.saveErrs[1:]
	}
	d.mu.Unlock()

	if hook != nil {
		hook()
	}
	if err != nil {
		return err
	}
	return d.MemoryDirectory.SaveSlotLedger(ctx, providerID, ledger, expectedVersion)
}

func (d *faultyDirectory) saveCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.saves
}

// faultyStore reports queued insert errors after the write has landed, the way
// a lost acknowledgement would.
type faultyStore struct {
	*appointments.AppointmentMemoryRepository

	mu         sync.Mutex
	insertErrs []error
	discardErr error
}

func (s *faultyStore) Insert(ctx context.Context, appointment models.Appointment) error {
	s.mu.Lock()
	var err error
	if len(s.insertErrs) > 0 {
		err, s.insertErrs = s.insertErrs[0], s.insertErrs[1:]
	}
	s.mu.Unlock()

	if insertErr := s.AppointmentMemoryRepository.Insert(ctx, appointment); insertErr != nil {
		return insertErr
	}
	return err
}

func (s *faultyStore) Discard(ctx context.Context, appointmentID string) error {
	if s.discardErr != nil {
		return s.discardErr
	}
	return s.AppointmentMemoryRepository.Discard(ctx, appointmentID)
}

// stallingStore holds the first insert until its context is done.
type stallingStore struct {
	*appointments.AppointmentMemoryRepository

	mu      sync.Mutex
	stalled bool
}

func (s *stallingStore) Insert(ctx context.Context, appointment models.Appointment) error {
	s.mu.Lock()
	stall := !s.stalled
	s.stalled = true
	s.mu.Unlock()

	if stall {
		<-ctx.Done()
		return ctx.Err()
	}
	return s.AppointmentMemoryRepository.Insert(ctx, appointment)
}

// alwaysGrantLocker behaves like a lock that expired for every holder.
type alwaysGrantLocker struct{}

func (alwaysGrantLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	return true, uuid.NewString(), nil
}

func (alwaysGrantLocker) Unlock(ctx context.Context, key, lockValue string) error {
	return nil
}

func (alwaysGrantLocker) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return nil
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishAppointmentBooked(ctx context.Context, appointment models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

package exceptions

import (
	"booking-service/internal/pkg/constvars"
	"errors"
	"fmt"
)

var (
	ErrNotFound              = errors.New("not found")
	ErrLedgerVersionConflict = errors.New(constvars.ErrDevLedgerVersionConflict)
	ErrDuplicateAppointment  = errors.New(constvars.ErrDevDuplicateAppointment)
	ErrReservationBusy       = errors.New(constvars.ErrDevReservationBusy)
	ErrPersistenceFailure    = errors.New(constvars.ErrDevPersistenceFailure)
)

// PersistenceFailure reports a failed durable write for one slot. It matches
// ErrPersistenceFailure under errors.Is and unwraps to the storage error.
type PersistenceFailure struct {
	ProviderID string
	SlotDate   string
	SlotTime   string
	Err        error
}

func NewPersistenceFailure(providerID, slotDate, slotTime string, err error) *PersistenceFailure {
	return &PersistenceFailure{
		ProviderID: providerID,
		SlotDate:   slotDate,
		SlotTime:   slotTime,
		Err:        err,
	}
}

func (e *PersistenceFailure) Error() string {
	return fmt.Sprintf("%s: provider %s slot %s %s: %v", constvars.ErrDevPersistenceFailure, e.ProviderID, e.SlotDate, e.SlotTime, e.Err)
}

func (e *PersistenceFailure) Unwrap() error {
	return e.Err
}

func (e *PersistenceFailure) Is(target error) bool {
	return target == ErrPersistenceFailure
}

package reservations

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/app/services/shared/metrics"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type reservationUsecase struct {
	Directory    contracts.ProviderDirectory
	Appointments contracts.AppointmentRepository
	Locker       contracts.LockerService
	Events       contracts.AppointmentEventPublisher
	Metrics      *metrics.ReservationMetrics
	Log          *zap.Logger
	Config       config.Reservation

	now   func() time.Time
	newID func() string
}

// NewReservationUsecase wires the engine. events and reservationMetrics may be nil.
func NewReservationUsecase(
	directory contracts.ProviderDirectory,
	appointments contracts.AppointmentRepository,
	locker contracts.LockerService,
	events contracts.AppointmentEventPublisher,
	reservationMetrics *metrics.ReservationMetrics,
	logger *zap.Logger,
	cfg config.Reservation,
) contracts.ReservationUsecase {
	return &reservationUsecase{
		Directory:    directory,
		Appointments: appointments,
		Locker:       locker,
		Events:       events,
		Metrics:      reservationMetrics,
		Log:          logger,
		Config:       cfg,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

func (uc *reservationUsecase) Reserve(ctx context.Context, requesterID, providerID, slotDate, slotTime string) (models.Outcome, error) {
	requestID := utils.RequestIDFromContext(ctx)
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRequesterIDKey, requesterID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
		zap.String(constvars.LoggingSlotDateKey, slotDate),
		zap.String(constvars.LoggingSlotTimeKey, slotTime),
	}
	uc.Log.Info("reservationUsecase.Reserve called", fields...)

	outcome, err := uc.reserve(ctx, requesterID, providerID, slotDate, slotTime, fields)
	if err != nil {
		uc.Metrics.ObserveError(errorKind(err))
		uc.Log.Error("reservationUsecase.Reserve error", append(fields, zap.Error(err))...)
		return models.Outcome{}, err
	}

	uc.Metrics.ObserveOutcome(outcome.Label())
	if !outcome.Booked() {
		uc.Log.Info("reservationUsecase.Reserve rejected",
			append(fields, zap.String(constvars.LoggingOutcomeKey, outcome.Label()))...)
		return outcome, nil
	}

	uc.publishBooked(ctx, *outcome.Appointment, fields)
	uc.Log.Info("reservationUsecase.Reserve succeeded",
		append(fields, zap.String(constvars.LoggingAppointmentIDKey, outcome.Appointment.ID))...)
	return outcome, nil
}

func (uc *reservationUsecase) reserve(ctx context.Context, requesterID, providerID, slotDate, slotTime string, fields []zap.Field) (models.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return models.Outcome{}, err
	}

	provider, err := uc.Directory.GetProvider(ctx, providerID)
	if err != nil {
		return models.Outcome{}, uc.readFailure(ctx, providerID, slotDate, slotTime, err)
	}
	if provider == nil {
		return models.Rejected(models.RejectionProviderNotFound), nil
	}
	if !provider.Available {
		return models.Rejected(models.RejectionProviderUnavailable), nil
	}
	// Ledgers only grow, so a slot seen booked here is still booked under the lock.
	if provider.SlotsBooked.IsBooked(slotDate, slotTime) {
		return models.Rejected(models.RejectionSlotTaken), nil
	}

	profile, err := uc.Directory.GetRequesterProfile(ctx, requesterID)
	if err != nil {
		return models.Outcome{}, uc.readFailure(ctx, providerID, slotDate, slotTime, err)
	}

	lock, err := uc.acquireProviderLock(ctx, providerID, fields)
	if err != nil {
		return models.Outcome{}, err
	}
	defer lock.release(ctx)

	if err := ctx.Err(); err != nil {
		return models.Outcome{}, err
	}

	sectionCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.criticalSectionTimeout())
	defer cancel()

	started := time.Now()
	defer func() { uc.Metrics.ObserveCriticalSection(time.Since(started).Seconds()) }()

	return uc.commit(sectionCtx, lock, requesterID, providerID, slotDate, slotTime, profile, fields)
}

// commit runs with the provider lock held. Each attempt re-reads the provider
// and writes the ledger conditionally on the version it read.
func (uc *reservationUsecase) commit(ctx context.Context, lock *providerLock, requesterID, providerID, slotDate, slotTime string, profile *models.Profile, fields []zap.Field) (models.Outcome, error) {
	for attempt := 1; attempt <= uc.maxAttempts(); attempt++ {
		provider, err := uc.Directory.GetProvider(ctx, providerID)
		if err != nil {
			return models.Outcome{}, exceptions.NewPersistenceFailure(providerID, slotDate, slotTime, err)
		}
		if provider == nil {
			return models.Rejected(models.RejectionProviderNotFound), nil
		}
		if !provider.Available {
			return models.Rejected(models.RejectionProviderUnavailable), nil
		}
		if provider.SlotsBooked.IsBooked(slotDate, slotTime) {
			return models.Rejected(models.RejectionSlotTaken), nil
		}
		if profile == nil {
			return models.Rejected(models.RejectionRequesterNotFound), nil
		}

		ledger := provider.SlotsBooked.Clone()
		ledger.Book(slotDate, slotTime)

		err = uc.Directory.SaveSlotLedger(ctx, providerID, ledger, provider.SlotsVersion)
		if errors.Is(err, exceptions.ErrLedgerVersionConflict) {
			uc.Metrics.ObserveLedgerConflict()
			uc.Log.Warn("reservationUsecase.commit ledger version moved, retrying",
				append(fields,
					zap.Int(constvars.LoggingAttemptKey, attempt),
					zap.Int64(constvars.LoggingLedgerVersionKey, provider.SlotsVersion),
				)...)
			lock.extend(ctx)
			continue
		}
		if err != nil {
			return models.Outcome{}, exceptions.NewPersistenceFailure(providerID, slotDate, slotTime, err)
		}

		appointment := uc.buildAppointment(requesterID, provider, profile, slotDate, slotTime)
		err = uc.Appointments.Insert(ctx, appointment)
		if err == nil {
			return models.Booked(appointment), nil
		}

		if errors.Is(err, exceptions.ErrDuplicateAppointment) {
			// The slot already had an appointment the ledger did not show. The
			// ledger now agrees with it, so keep the write.
			uc.Log.Warn("reservationUsecase.commit appointment already recorded for slot",
				append(fields, zap.Error(err))...)
			return models.Rejected(models.RejectionSlotTaken), nil
		}

		// The insert may have failed on the section deadline, so the undo gets
		// its own budget.
		rollbackCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
		uc.rollback(rollbackCtx, provider, appointment.ID, provider.SlotsVersion+1, fields)
		cancel()
		return models.Outcome{}, exceptions.NewPersistenceFailure(providerID, slotDate, slotTime, err)
	}

	return models.Outcome{}, exceptions.ErrReservationBusy
}

// rollback undoes a ledger write whose appointment insert failed. The insert
// may still have landed, so it is discarded first; when that fails the ledger
// entry stays so the slot cannot be granted twice.
func (uc *reservationUsecase) rollback(ctx context.Context, original *models.Provider, appointmentID string, writtenVersion int64, fields []zap.Field) {
	if err := uc.Appointments.Discard(ctx, appointmentID); err != nil {
		uc.Log.Error("reservationUsecase.rollback could not discard appointment, ledger entry kept",
			append(fields,
				zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
				zap.Error(err),
			)...)
		return
	}

	if err := uc.Directory.SaveSlotLedger(ctx, original.ID, original.SlotsBooked, writtenVersion); err != nil {
		uc.Log.Error("reservationUsecase.rollback could not restore ledger, slot booked without appointment",
			append(fields,
				zap.Int64(constvars.LoggingLedgerVersionKey, writtenVersion),
				zap.Error(err),
			)...)
	}
}

func (uc *reservationUsecase) buildAppointment(requesterID string, provider *models.Provider, profile *models.Profile, slotDate, slotTime string) models.Appointment {
	return models.Appointment{
		ID:           uc.newID(),
		UserID:       requesterID,
		ProviderID:   provider.ID,
		UserData:     profile.Snapshot(),
		ProviderData: provider.Summary(),
		Amount:       provider.Fees,
		SlotDate:     slotDate,
		SlotTime:     slotTime,
		// BSON dates keep milliseconds only.
		CreatedAt: uc.now().UTC().Truncate(time.Millisecond),
	}
}

func (uc *reservationUsecase) publishBooked(ctx context.Context, appointment models.Appointment, fields []zap.Field) {
	if uc.Events == nil {
		return
	}
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Duration(uc.Config.EventPublishTimeoutInSeconds)*time.Second)
	defer cancel()

	if err := uc.Events.PublishAppointmentBooked(publishCtx, appointment); err != nil {
		uc.Metrics.ObserveEventPublishFailed()
		uc.Log.Warn("reservationUsecase.publishBooked error, booking kept",
			append(fields, zap.Error(err))...)
	}
}

// readFailure keeps caller cancellation distinguishable from storage faults.
func (uc *reservationUsecase) readFailure(ctx context.Context, providerID, slotDate, slotTime string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return exceptions.NewPersistenceFailure(providerID, slotDate, slotTime, err)
}

func (uc *reservationUsecase) ListForRequester(ctx context.Context, requesterID string) ([]models.Appointment, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("reservationUsecase.ListForRequester called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRequesterIDKey, requesterID),
	)

	appointments, err := uc.Appointments.FindByRequester(ctx, requesterID)
	if err != nil {
		uc.Log.Error("reservationUsecase.ListForRequester error calling Appointments.FindByRequester",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("reservationUsecase.ListForRequester succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(appointments)),
	)
	return appointments, nil
}

func (uc *reservationUsecase) criticalSectionTimeout() time.Duration {
	return time.Duration(uc.Config.CriticalSectionTimeoutInSeconds) * time.Second
}

func (uc *reservationUsecase) maxAttempts() int {
	if uc.Config.MaxAttempts < 1 {
		return 1
	}
	return uc.Config.MaxAttempts
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, exceptions.ErrReservationBusy):
		return "busy"
	case errors.Is(err, exceptions.ErrPersistenceFailure):
		return "persistence"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "lock"
	}
}

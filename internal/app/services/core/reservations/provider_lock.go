package reservations

import (
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	maxLockRetryInterval = 250 * time.Millisecond
	lockReleaseTimeout   = 2 * time.Second
	rollbackTimeout      = 2 * time.Second
)

type providerLock struct {
	uc     *reservationUsecase
	key    string
	token  string
	fields []zap.Field
}

func providerLockKey(providerID string) string {
	return fmt.Sprintf("%s:%s", constvars.ReservationLockKeyPrefix, providerID)
}

// acquireProviderLock polls the locker with doubling backoff until the lock is
// held, the wait budget is spent or ctx ends.
func (uc *reservationUsecase) acquireProviderLock(ctx context.Context, providerID string, fields []zap.Field) (*providerLock, error) {
	key := providerLockKey(providerID)
	ttl := time.Duration(uc.Config.LockTTLInSeconds) * time.Second
	interval := time.Duration(uc.Config.LockRetryIntervalInMilliseconds) * time.Millisecond
	if interval <= 0 {
		interval = time.Millisecond
	}

	started := time.Now()
	budget := time.NewTimer(time.Duration(uc.Config.LockWaitInMilliseconds) * time.Millisecond)
	defer budget.Stop()

	for {
		acquired, token, err := uc.Locker.TryLock(ctx, key, ttl)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, err
		}
		if acquired {
			waited := time.Since(started)
			uc.Metrics.ObserveLockWait(waited.Seconds())
			uc.Log.Debug("reservationUsecase.acquireProviderLock acquired",
				append(fields, zap.Duration(constvars.LoggingLockWaitKey, waited))...)
			return &providerLock{uc: uc, key: key, token: token, fields: fields}, nil
		}

		retry := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			retry.Stop()
			return nil, ctx.Err()
		case <-budget.C:
			retry.Stop()
			return nil, exceptions.ErrReservationBusy
		case <-retry.C:
		}

		interval *= 2
		if interval > maxLockRetryInterval {
			interval = maxLockRetryInterval
		}
	}
}

// release must run even when the caller's context is already done.
func (l *providerLock) release(ctx context.Context) {
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lockReleaseTimeout)
	defer cancel()

	if err := l.uc.Locker.Unlock(releaseCtx, l.key, l.token); err != nil {
		l.uc.Log.Warn("reservationUsecase.release could not release provider lock",
			append(l.fields, zap.String(constvars.LoggingRedisKey, l.key), zap.Error(err))...)
	}
}

// extend keeps the lock alive across retries. A lost lock is logged only; the
// conditional ledger write still refuses stale snapshots.
func (l *providerLock) extend(ctx context.Context) {
	ttl := time.Duration(l.uc.Config.LockTTLInSeconds) * time.Second
	if err := l.uc.Locker.Refresh(ctx, l.key, l.token, ttl); err != nil {
		l.uc.Log.Warn("reservationUsecase.extend could not refresh provider lock",
			append(l.fields, zap.String(constvars.LoggingRedisKey, l.key), zap.Error(err))...)
	}
}

package locker

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type localLock struct {
	value     string
	expiresAt time.Time
}

type localLockService struct {
	mu    sync.Mutex
	locks map[string]localLock
	now   func() time.Time
	Log   *zap.Logger
}

// NewLocalLockService keeps locks in process memory. It only serializes
// callers inside one instance.
func NewLocalLockService(logger *zap.Logger) contracts.LockerService {
	return &localLockService{
		locks: make(map[string]localLock),
		now:   time.Now,
		Log:   logger,
	}
}

func (s *localLockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	if err := ctx.Err(); err != nil {
		return false, "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if held, ok := s.locks[key]; ok && now.Before(held.expiresAt) {
		return false, "", nil
	}

	lockValue := uuid.NewString()
	s.locks[key] = localLock{value: lockValue, expiresAt: now.Add(expiration)}
	return true, lockValue, nil
}

func (s *localLockService) Unlock(ctx context.Context, key, lockValue string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	held, ok := s.locks[key]
	if !ok || held.value != lockValue {
		s.Log.Warn("localLockService.Unlock lock expired or owned by another caller",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return exceptions.ErrRedisUnlock(errLockNotOwned)
	}
	delete(s.locks, key)
	return nil
}

func (s *localLockService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	held, ok := s.locks[key]
	if !ok || held.value != lockValue || !now.Before(held.expiresAt) {
		return exceptions.ErrRedisRefresh(errLockNotOwned)
	}
	held.expiresAt = now.Add(expiration)
	s.locks[key] = held
	return nil
}

package config

import (
	"booking-service/internal/pkg/constvars"
	"errors"
	"fmt"
)

// Validate rejects settings the service cannot run with.
func (c *InternalConfig) Validate() error {
	var errs []error

	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET must be set"))
	}

	switch c.Storage.Driver {
	case constvars.StorageDriverMongo, constvars.StorageDriverMemory:
	default:
		errs = append(errs, fmt.Errorf("APP_STORAGE_DRIVER %q is not one of mongo, memory", c.Storage.Driver))
	}

	switch c.Storage.LockerDriver {
	case constvars.LockerDriverRedis, constvars.LockerDriverLocal:
	default:
		errs = append(errs, fmt.Errorf("APP_LOCKER_DRIVER %q is not one of redis, local", c.Storage.LockerDriver))
	}

	r := c.Reservation
	if r.MaxAttempts < 1 {
		errs = append(errs, errors.New("APP_RESERVATION_MAX_ATTEMPTS must be at least 1"))
	}
	if r.LockWaitInMilliseconds < 0 || r.LockRetryIntervalInMilliseconds < 1 {
		errs = append(errs, errors.New("reservation lock wait and retry interval must be positive"))
	}
	if r.CriticalSectionTimeoutInSeconds < 1 {
		errs = append(errs, errors.New("APP_RESERVATION_CRITICAL_SECTION_TIMEOUT_IN_SECONDS must be at least 1"))
	}
	if r.LockTTLInSeconds <= r.CriticalSectionTimeoutInSeconds {
		errs = append(errs, errors.New("APP_RESERVATION_LOCK_TTL_IN_SECONDS must exceed the critical section timeout"))
	}

	return errors.Join(errs...)
}

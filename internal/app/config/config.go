package config

import (
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "booking"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", "8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:  utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RabbitMQAppointmentQueue: utils.GetEnvString("APP_RABBITMQ_APPOINTMENT_QUEUE", ""),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", ""),
		},
		Storage: Storage{
			Driver:         utils.GetEnvString("APP_STORAGE_DRIVER", constvars.StorageDriverMongo),
			LockerDriver:   utils.GetEnvString("APP_LOCKER_DRIVER", constvars.LockerDriverRedis),
			MemorySeedFile: utils.GetEnvString("APP_MEMORY_SEED_FILE", ""),
		},
		Reservation: Reservation{
			LockTTLInSeconds:                utils.GetEnvInt("APP_RESERVATION_LOCK_TTL_IN_SECONDS", 15),
			LockWaitInMilliseconds:          utils.GetEnvInt("APP_RESERVATION_LOCK_WAIT_IN_MILLISECONDS", 3000),
			LockRetryIntervalInMilliseconds: utils.GetEnvInt("APP_RESERVATION_LOCK_RETRY_INTERVAL_IN_MILLISECONDS", 20),
			CriticalSectionTimeoutInSeconds: utils.GetEnvInt("APP_RESERVATION_CRITICAL_SECTION_TIMEOUT_IN_SECONDS", 5),
			EventPublishTimeoutInSeconds:    utils.GetEnvInt("APP_RESERVATION_EVENT_PUBLISH_TIMEOUT_IN_SECONDS", 3),
			MaxAttempts:                     utils.GetEnvInt("APP_RESERVATION_MAX_ATTEMPTS", 3),
		},
	}
}

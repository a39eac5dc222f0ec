package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
	}
	MongoDB struct {
		Port     string
		Host     string
		Username string
		Password string
		DbName   string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
)

type (
	InternalConfig struct {
		App         App
		JWT         JWT
		Storage     Storage
		Reservation Reservation
	}
	App struct {
		Env                      string
		Port                     string
		Version                  string
		Timezone                 string
		EndpointPrefix           string
		MaxRequests              int
		ShutdownTimeoutInSeconds int
		RequestTimeoutInSeconds  int
		RabbitMQAppointmentQueue string
	}
	JWT struct {
		Secret string
	}
	Storage struct {
		// Driver is either "mongo" or "memory".
		Driver string
		// LockerDriver is either "redis" or "local".
		LockerDriver string
		// MemorySeedFile is a JSON fixture of providers and users loaded into
		// the memory directory at startup. Ignored by the mongo driver.
		MemorySeedFile string
	}
	Reservation struct {
		LockTTLInSeconds                int
		LockWaitInMilliseconds          int
		LockRetryIntervalInMilliseconds int
		CriticalSectionTimeoutInSeconds int
		EventPublishTimeoutInSeconds    int
		MaxAttempts                     int
	}
)

package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_REQUESTER_ID_KEY         ContextKey = "requester_id"
)

const (
	REQUEST_ID_PREFIX = "BKNG_SVC_"
)

const (
	ResourceAppointments = "appointments"
)

const (
	StorageDriverMongo  = "mongo"
	StorageDriverMemory = "memory"
	LockerDriverRedis   = "redis"
	LockerDriverLocal   = "local"
)

const (
	// ReservationLockKeyPrefix scopes the exclusive section to a single provider.
	ReservationLockKeyPrefix = "reservation:lock:provider"
)

const (
	EventAppointmentBooked = "appointment.booked"
)

const (
	SlotDateLayout = "2006-01-02"
	SlotTimeLayout = "15:04"
)

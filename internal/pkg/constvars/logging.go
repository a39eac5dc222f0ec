package constvars

const (
	LoggingRequestIDKey         = "request_id"
	LoggingDataKey              = "data"
	LoggingRequestKey           = "request"
	LoggingResponseLengthKey    = "response_length"
	LoggingRequesterIDKey       = "requester_id"
	LoggingProviderIDKey        = "provider_id"
	LoggingAppointmentIDKey     = "appointment_id"
	LoggingSlotDateKey          = "slot_date"
	LoggingSlotTimeKey          = "slot_time"
	LoggingOutcomeKey           = "outcome"
	LoggingAttemptKey           = "attempt"
	LoggingLedgerVersionKey     = "ledger_version"
	LoggingRedisKey             = "redis_key"
	LoggingLockValueKey         = "lock_value"
	LoggingLockExpirationKey    = "lock_expiration"
	LoggingLockWaitKey          = "lock_wait"
	LoggingQueueNameKey         = "queue_name"
	LoggingMongoCollectionKey   = "mongo_collection"
	LoggingMethodKey            = "method"
	LoggingEndpointKey          = "endpoint"
	LoggingRemoteAddrKey        = "remote_addr"
	LoggingUserAgentKey         = "user_agent"
	LoggingQueryKey             = "query"
	LoggingStatusCodeKey        = "status_code"
	LoggingDurationKey          = "duration"
	LoggingSuccessKey           = "success"
	LoggingIsClientRequestIDKey = "is_client_request_id"
)

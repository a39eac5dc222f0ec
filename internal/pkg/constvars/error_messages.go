package constvars

var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"len":      "must be %s characters long",
	"datetime": "must follow the %s format",
}

var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"len":      true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientProviderNotFound              = "doctor not found"
	ErrClientRequesterNotFound             = "user not found"
	ErrClientProviderUnavailable           = "doctor not available"
	ErrClientSlotTaken                     = "slot not available"
	ErrClientReservationBusy               = "the doctor is receiving many bookings right now, please try again"
	ErrClientRouteNotFound                 = "the resource you are looking for does not exist"
)

// Error messages for developers
const (
	ErrDevInvalidInput                 = "invalid input"
	ErrDevValidationFailed             = "validation failed"
	ErrDevCannotParseJSON              = "failed to parse JSON"
	ErrDevCannotMarshalJSON            = "failed to marshal JSON"
	ErrDevServerDeadlineExceeded       = "server deadline exceeded"
	ErrDevMissingRequestID             = "request id missing from context"
	ErrDevMissingRequesterID           = "requester id missing from context"
	ErrDevAuthTokenMissing             = "auth token missing"
	ErrDevAuthTokenInvalid             = "auth token invalid"
	ErrDevAuthSigningMethod            = "unexpected signing method"
	ErrDevAuthTokenClaimMissing        = "auth token has no id claim"
	ErrDevDBFailedToFindDocument       = "failed to find document"
	ErrDevDBFailedToIterateDocuments   = "failed to iterate documents"
	ErrDevDBFailedToInsertDocument     = "failed to insert document"
	ErrDevDBFailedToUpdateDocument     = "failed to update document"
	ErrDevDBFailedToDeleteDocument     = "failed to delete document"
	ErrDevDBFailedToCreateIndex        = "failed to create index"
	ErrDevRedisSet                     = "failed to set redis key"
	ErrDevRedisGet                     = "failed to get redis key %s"
	ErrDevRedisEval                    = "failed to evaluate redis script"
	ErrDevRedisUnlock                  = "failed to release redis lock"
	ErrDevRedisRefresh                 = "failed to refresh redis lock"
	ErrDevRabbitMQPublishMessage       = "failed to publish message to queue %s"
	ErrDevProviderNotFound             = "provider does not exist"
	ErrDevRequesterNotFound            = "requester profile does not exist"
	ErrDevProviderUnavailable          = "provider is not accepting bookings"
	ErrDevSlotTaken                    = "slot already present in the provider ledger"
	ErrDevReservationBusy              = "provider lock was not acquired within the wait budget"
	ErrDevPersistenceFailure           = "reservation could not be persisted"
	ErrDevLedgerVersionConflict        = "slot ledger version moved since it was read"
	ErrDevDuplicateAppointment         = "appointment already exists for this slot"
	ErrDevUnknownRejection             = "unknown rejection reason %s"
	ErrDevRouteNotFound                = "route not found"
)

const (
	ResponseUnknown = "unknown"
)

package utils

import (
	"booking-service/internal/pkg/constvars"
	"context"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// RequestIDFromContext returns an empty string when no request id was attached.
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

func RequesterIDFromContext(ctx context.Context) (string, bool) {
	requesterID, ok := ctx.Value(constvars.CONTEXT_REQUESTER_ID_KEY).(string)
	return requesterID, ok && requesterID != ""
}

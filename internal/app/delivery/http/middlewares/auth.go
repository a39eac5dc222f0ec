package middlewares

import (
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate resolves the requester from a bearer token, falling back to the
// legacy token header.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		requesterID, err := utils.ParseUserJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			m.Log.Warn("Middlewares.Authenticate rejected token",
				zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUESTER_ID_KEY, requesterID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
	}
	return strings.TrimSpace(r.Header.Get(constvars.HeaderLegacyToken))
}

package utils

import (
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestParseUserJWT(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		token, err := GenerateUserJWT("U1", testSecret, time.Hour)
		require.NoError(t, err)

		userID, err := ParseUserJWT(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "U1", userID)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateUserJWT("U1", testSecret, time.Hour)
		require.NoError(t, err)

		_, err = ParseUserJWT(token, "other-secret")
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := jwt.MapClaims{"id": "U1", "exp": time.Now().Add(-time.Minute).Unix()}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = ParseUserJWT(token, testSecret)
		assert.Error(t, err)
	})

	t.Run("missing user claim", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "U1"}).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = ParseUserJWT(token, testSecret)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Contains(t, customErr.DevMessage, constvars.ErrDevAuthTokenClaimMissing)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseUserJWT("not-a-token", testSecret)
		assert.Error(t, err)
	})
}

package utils

import (
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const jwtClaimUserID = "id"

// GenerateUserJWT signs an HS256 token carrying the user id claim.
func GenerateUserJWT(userID, secret string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		jwtClaimUserID: userID,
		"iat":          time.Now().Unix(),
	}
	if expiry > 0 {
		claims["exp"] = time.Now().Add(expiry).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthTokenInvalid)
	}
	return tokenString, nil
}

// ParseUserJWT verifies an HMAC token and returns its user id claim.
func ParseUserJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", exceptions.ErrTokenInvalid(err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if userID, ok := claims[jwtClaimUserID].(string); ok && userID != "" {
			return userID, nil
		}
	}
	return "", exceptions.ErrTokenClaimMissing(nil)
}

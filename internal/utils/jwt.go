package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry extracts the expiry time from the "exp" claim of a JWT access
// token without verifying its signature. The client has no signing key for
// tokens issued by the identity provider, and the value is used only to warn
// when the configured polling window outlives the token.
//
// Returns the zero time and an error if the token is not a parseable JWT or
// carries no exp claim.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no expiration claim")
	}

	return exp.Time, nil
}

package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expiry inspects the credential as a JWT and returns its exp claim, without
// verifying the signature. Display only: auth decisions never depend on it,
// the backend remains the authority on token validity.
func Expiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

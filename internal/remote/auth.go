package remote

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reports whether the cached bearer token has expired or is
// malformed. The signature is deliberately not verified here: the server
// stays authoritative, this check only spares the app a guaranteed 401
// after a long offline stretch. A token without an exp claim is treated
// as still valid.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return true
	}
	if exp == nil {
		return false
	}
	return exp.Before(now)
}

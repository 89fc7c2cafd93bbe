package cli

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiry decodes the expiry claim from a stored token for display.
// The token is not verified here; the server is the authority on validity.
// Returns "" when the token carries no readable expiry.
func tokenExpiry(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return ""
	}
	return exp.Time.Format(time.RFC3339)
}

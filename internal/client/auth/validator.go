package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Lifetime classifies a freshly issued token.
type Lifetime int

const (
	// LifetimeLongLived is a trusted-device token valid for months.
	LifetimeLongLived Lifetime = iota
	// LifetimeShortLived is a token the server will expire, typically within
	// an hour. Short-lived tokens are never accepted for persistence.
	LifetimeShortLived
)

func (l Lifetime) String() string {
	if l == LifetimeShortLived {
		return "short-lived"
	}
	return "long-lived"
}

// Classify decides whether a token is long-lived.
//
// A non-nil server-reported expiration is definitive: the token expires.
// Otherwise the token's shape is inspected: a JWT (three dot-separated
// segments) is the short-lived issuance format, even when the server omits
// the expiration field. The server may silently fall back to short-lived
// issuance when it does not trust the device, so this check runs on every
// freshly obtained token, not only at first login.
func Classify(token string, serverExpiration *time.Time) Lifetime {
	if serverExpiration != nil {
		return LifetimeShortLived
	}
	if isJWTShaped(token) {
		return LifetimeShortLived
	}
	return LifetimeLongLived
}

func isJWTShaped(token string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}

// ExpiryHint extracts the exp claim from a JWT-shaped token without
// verifying its signature, so rejection messages can say when the token
// would have died. Returns false for tokens that do not parse as JWTs or
// carry no expiration.
func ExpiryHint(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

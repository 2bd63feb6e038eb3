// Package session defines the persisted login session and its durable store.
//
// A session is the product of a successful trusted-device login: an opaque
// long-lived token plus the metadata needed to reuse it across process
// restarts. The store owns no network behavior; deciding whether a loaded
// session is still usable is the auth manager's job.
package session

import (
	"time"

	"github.com/google/uuid"
)

// Session holds the credentials and metadata persisted between runs.
//
// TokenExpiration is nil for long-lived (trusted-device) tokens; the server
// reports a timestamp only for short-lived issuance. DeviceUUID is minted
// once and reused on every request so the server keeps treating this client
// as the same trusted device.
type Session struct {
	Token           string     `json:"token"`
	TokenExpiration *time.Time `json:"token_expiration,omitempty"`
	TrustedDevice   bool       `json:"trusted_device"`
	DeviceUUID      string     `json:"device_uuid"`
	CreatedAt       time.Time  `json:"created_at"`
}

// New returns a session for a freshly issued token with a new device UUID.
func New(token string, expiration *time.Time) *Session {
	return &Session{
		Token:           token,
		TokenExpiration: expiration,
		TrustedDevice:   true,
		DeviceUUID:      uuid.NewString(),
		CreatedAt:       time.Now().UTC(),
	}
}

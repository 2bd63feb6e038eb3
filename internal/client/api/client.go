package api

import (
	"context"
	"encoding/json"
	"time"
)

// Operation is a single GraphQL call: a named query document plus its
// variables. It is built per call and never mutated afterwards.
type Operation struct {
	Name      string
	Query     string
	Variables map[string]any
}

// LoginResult is the outcome of a login or MFA verification attempt.
// Exactly one of two shapes comes back from the server: a token (with an
// optional expiration), or an MFA challenge.
type LoginResult struct {
	Token           string
	TokenExpiration *time.Time
	MFARequired     bool
}

// Client is the remote API contract.
type Client interface {
	// Login submits credentials requesting a trusted-device session.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// VerifyMFA completes a pending multi-factor challenge with a one-time code.
	VerifyMFA(ctx context.Context, email, password, code string) (*LoginResult, error)
	// GraphQL executes op with the given session token and returns the
	// response's data payload.
	GraphQL(ctx context.Context, token string, op Operation) (json.RawMessage, error)
	// DeviceUUID returns the device identity sent on every request.
	DeviceUUID() string
	// SetDeviceUUID restores the device identity from a saved session.
	SetDeviceUUID(id string)
}

// Executor runs GraphQL operations on behalf of an established session.
// The auth manager implements it by capturing the current token per call.
type Executor interface {
	Do(ctx context.Context, op Operation) (json.RawMessage, error)
}

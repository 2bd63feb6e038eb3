package auth

import "errors"

var (
	// ErrNotAuthenticated means no authenticated session is held; the user
	// must log in before domain operations can run.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrMFARequired is returned by Login when the server demands a second
	// factor. The manager is left awaiting the one-time code.
	ErrMFARequired = errors.New("multi-factor code required")

	// ErrShortLivedToken means the server issued a short-lived token even
	// though a trusted-device session was requested. This is a hard stop:
	// accepting the token would silently downgrade the session guarantee.
	ErrShortLivedToken = errors.New("short-lived token rejected")

	// ErrInvalidState is returned when an operation is called from a state
	// that does not allow it, e.g. CompleteMFA without a pending challenge.
	ErrInvalidState = errors.New("operation not allowed in current state")
)

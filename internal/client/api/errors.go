package api

import "errors"

var (
	// ErrUnavailable covers network-level failures: the request never got a
	// usable HTTP response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the session token was rejected. The caller must
	// invalidate the session and require a fresh login; retrying with the
	// same token is pointless.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is returned by login when the email/password
	// pair is rejected.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMFAIncorrect is returned by MFA verification for a wrong or expired
	// one-time code. The challenge stays open and can be retried.
	ErrMFAIncorrect = errors.New("incorrect mfa code")

	// ErrRateLimited is surfaced as-is; backoff is the caller's concern.
	ErrRateLimited = errors.New("rate limited")

	// ErrServer covers 5xx responses, WAF blocks, and GraphQL responses with
	// a top-level errors array. The server's message is preserved in the wrap.
	ErrServer = errors.New("server error")
)

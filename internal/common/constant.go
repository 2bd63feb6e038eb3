// Package common contains shared constants and small helpers used across
// fingate components.
package common

const (
	// AuthHeaderName carries the session token on outbound GraphQL requests.
	// The upstream API uses the DRF "Token <value>" scheme rather than Bearer.
	AuthHeaderName = "Authorization"

	// DeviceUUIDHeaderName identifies the client device on every request.
	// Reusing the same UUID across logins is what keeps the device "trusted".
	DeviceUUIDHeaderName = "Device-UUID"

	// ClientPlatformHeaderName mirrors what the first-party web client sends.
	ClientPlatformHeaderName = "Client-Platform"

	// ClientPlatformValue is the platform string reported to the API.
	ClientPlatformValue = "web"
)

// Package api contains the transport layer for talking to the finance
// service's private API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     three remote surfaces: password login, multi-factor verification, and
//     authenticated GraphQL execution.
//  2. A concrete HTTP implementation (see HTTPClient) that serializes
//     requests, attaches the session token and device identity headers, and
//     maps HTTP and GraphQL-level failures to sentinel errors.
//  3. The Executor interface consumed by higher layers that only need to run
//     GraphQL operations with an already-established session.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrInvalidCredentials,
// ErrMFAIncorrect, ErrRateLimited, ErrServer. Server-reported messages are
// preserved in the error text via wrapping.
//
// A GraphQL response is a failure whenever it carries a top-level "errors"
// array, even when the HTTP status is 200: the GraphQL error channel is
// independent of transport status and is always checked.
package api

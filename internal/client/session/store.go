package session

import (
	"context"
	"errors"
)

// ErrNotFound reports that no usable session is persisted. A corrupt or
// unreadable session file is reported the same way: callers must treat both
// as "not logged in" and proceed to a fresh login.
var ErrNotFound = errors.New("session not found")

// Store persists and retrieves the login session.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Load(ctx context.Context) (*Session, error)
	Erase(ctx context.Context) error
}

// Package auth owns the session lifecycle: login, multi-factor completion,
// token classification, lazy invalidation, and handing tokens to the
// GraphQL executor.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/abelikov/fingate/internal/client/api"
	"github.com/abelikov/fingate/internal/client/session"
	"github.com/abelikov/fingate/internal/common"
	"github.com/abelikov/fingate/internal/logging"
)

// State is the explicit session lifecycle state. Transitions happen only
// inside Manager methods.
type State int

const (
	StateUnauthenticated State = iota
	StateAwaitingMFA
	StateAuthenticated
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StateAwaitingMFA:
		return "awaiting-mfa"
	case StateAuthenticated:
		return "authenticated"
	case StateInvalid:
		return "invalid"
	default:
		return "unauthenticated"
	}
}

// Credentials is a transient email/password pair. The password is wiped
// once the login attempt resolves; credentials are never persisted.
type Credentials struct {
	Email    string
	Password []byte
}

// Manager drives the session state machine. One manager instance owns one
// logical session; Login, CompleteMFA, and Logout must not be called
// concurrently with each other. The internal mutex is held only across
// state reads and transitions, never across network calls, so Do calls
// from other goroutines are not blocked by an in-flight login.
type Manager struct {
	client api.Client
	store  session.Store
	log    logging.Logger

	mu      sync.Mutex
	state   State
	sess    *session.Session
	pending *Credentials
}

func NewManager(client api.Client, store session.Store, log logging.Logger) *Manager {
	return &Manager{client: client, store: store, log: log, state: StateUnauthenticated}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// CurrentToken returns the session token, or ErrNotAuthenticated when no
// authenticated session is held.
func (m *Manager) CurrentToken() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAuthenticated {
		return "", ErrNotAuthenticated
	}
	return m.sess.Token, nil
}

// Login establishes an authenticated session.
//
// When useSavedSession is set and a valid long-lived session is on disk, it
// is adopted without a network round trip. A saved session that fails
// classification is discarded and a fresh login proceeds.
//
// Fresh login has three outcomes: a token (validated, then persisted), an
// MFA challenge (state moves to awaiting-mfa and ErrMFARequired is
// returned), or a failure (state is left unauthenticated). Empty
// credentials fail with api.ErrInvalidCredentials before any request is
// sent, so probing for a saved session costs nothing.
func (m *Manager) Login(ctx context.Context, creds Credentials, useSavedSession bool) error {
	if useSavedSession {
		if sess, err := m.store.Load(ctx); err == nil {
			if Classify(sess.Token, sess.TokenExpiration) == LifetimeLongLived {
				m.adopt(sess)
				m.log.Info(ctx, "reusing saved session", "created_at", sess.CreatedAt)
				return nil
			}
			m.log.Warn(ctx, "saved session token is short-lived, discarding")
			_ = m.store.Erase(ctx)
		}
	}

	if creds.Email == "" {
		// No saved session to adopt and nothing to send; fail fast
		// instead of posting a guaranteed-failing request.
		return fmt.Errorf("%w: no credentials provided", api.ErrInvalidCredentials)
	}

	res, err := m.client.Login(ctx, creds.Email, string(creds.Password))
	if err != nil {
		return err
	}

	if res.MFARequired {
		m.mu.Lock()
		m.state = StateAwaitingMFA
		m.setPending(creds)
		m.mu.Unlock()
		return ErrMFARequired
	}

	return m.accept(ctx, res)
}

// CompleteMFA submits the one-time code for a pending challenge. It is
// valid only from the awaiting-mfa state. A wrong code keeps the challenge
// open (api.ErrMFAIncorrect); the number of attempts is the caller's call.
func (m *Manager) CompleteMFA(ctx context.Context, code string) error {
	m.mu.Lock()
	if m.state != StateAwaitingMFA {
		m.mu.Unlock()
		return fmt.Errorf("%w: complete-mfa requires awaiting-mfa, current state is %s", ErrInvalidState, m.state)
	}
	creds := *m.pending
	m.mu.Unlock()

	res, err := m.client.VerifyMFA(ctx, creds.Email, string(creds.Password), code)
	if err != nil {
		// Wrong code or transport blip: the challenge stays open.
		return err
	}
	if res.MFARequired {
		// The server re-issued the challenge instead of a token.
		return api.ErrMFAIncorrect
	}

	return m.accept(ctx, res)
}

// Logout erases the persisted session and returns to unauthenticated.
// It always succeeds: the in-memory session is gone either way, and a
// failure to remove the file is only logged. Logging out twice is not an
// error.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.clearPending()
	m.sess = nil
	m.state = StateUnauthenticated
	m.mu.Unlock()

	if err := m.store.Erase(ctx); err != nil {
		m.log.Warn(ctx, "failed to erase saved session", "error", err)
	}
	return nil
}

// Do executes a GraphQL operation with the current session token, captured
// at call time. A rejected token (api.ErrUnauthorized) invalidates the
// session so subsequent calls fail fast with ErrNotAuthenticated instead of
// repeating doomed requests.
func (m *Manager) Do(ctx context.Context, op api.Operation) (json.RawMessage, error) {
	m.mu.Lock()
	if m.state != StateAuthenticated {
		m.mu.Unlock()
		return nil, ErrNotAuthenticated
	}
	token := m.sess.Token
	m.mu.Unlock()

	data, err := m.client.GraphQL(ctx, token, op)
	if errors.Is(err, api.ErrUnauthorized) {
		m.invalidate(ctx, token)
	}
	return data, err
}

// accept runs token validation on a freshly issued token and either adopts
// and persists the session or rejects it as short-lived.
func (m *Manager) accept(ctx context.Context, res *api.LoginResult) error {
	if res.Token == "" {
		// Never adopt a tokenless result; the current state stays as is.
		return fmt.Errorf("%w: response contained no session token", api.ErrServer)
	}
	if Classify(res.Token, res.TokenExpiration) == LifetimeShortLived {
		m.mu.Lock()
		m.clearPending()
		m.sess = nil
		m.state = StateInvalid
		m.mu.Unlock()

		if exp, ok := ExpiryHint(res.Token); ok {
			return fmt.Errorf("%w: server issued a token expiring at %s", ErrShortLivedToken, exp.UTC().Format("2006-01-02 15:04:05"))
		}
		return fmt.Errorf("%w: trusted-device request was not honored", ErrShortLivedToken)
	}

	sess := session.New(res.Token, res.TokenExpiration)
	sess.DeviceUUID = m.client.DeviceUUID()

	m.mu.Lock()
	m.clearPending()
	m.sess = sess
	m.state = StateAuthenticated
	m.mu.Unlock()

	if err := m.store.Save(ctx, sess); err != nil {
		// The in-memory session still works for this process.
		m.log.Warn(ctx, "failed to persist session", "error", err)
	}
	m.log.Info(ctx, "authenticated", "device_uuid", sess.DeviceUUID)
	return nil
}

// adopt installs a session loaded from disk and restores its device
// identity on the transport client.
func (m *Manager) adopt(sess *session.Session) {
	m.client.SetDeviceUUID(sess.DeviceUUID)

	m.mu.Lock()
	m.clearPending()
	m.sess = sess
	m.state = StateAuthenticated
	m.mu.Unlock()
}

// invalidate handles lazy token revocation detected on a domain call. Only
// the session that issued the rejected token is torn down; a re-login that
// raced the failing call is left alone.
func (m *Manager) invalidate(ctx context.Context, staleToken string) {
	m.mu.Lock()
	if m.state != StateAuthenticated || m.sess == nil || m.sess.Token != staleToken {
		m.mu.Unlock()
		return
	}
	m.sess = nil
	m.state = StateInvalid
	m.mu.Unlock()

	m.log.Warn(ctx, "session token rejected by server, invalidating session")
	_ = m.store.Erase(ctx)
}

// setPending retains a copy of the credentials for MFA resubmission.
func (m *Manager) setPending(creds Credentials) {
	m.clearPending()
	m.pending = &Credentials{
		Email:    creds.Email,
		Password: append([]byte(nil), creds.Password...),
	}
}

func (m *Manager) clearPending() {
	if m.pending != nil {
		common.WipeByteArray(m.pending.Password)
		m.pending = nil
	}
}

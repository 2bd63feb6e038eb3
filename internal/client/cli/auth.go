package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/abelikov/fingate/internal/client/api"
	"github.com/abelikov/fingate/internal/client/auth"
	"github.com/abelikov/fingate/internal/client/session"
	"github.com/abelikov/fingate/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login establishes an authenticated session.
//
// A saved session is tried first and adopted without any prompting when it
// is valid. Otherwise credentials come from the configuration (environment
// variables, for non-interactive use) or an interactive prompt, and a fresh
// login is performed. When the server answers with an MFA challenge the
// user is asked for the one-time code.
//
// The password byte slice is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Println("Already logged in.")
		return nil
	}

	if _, err := a.store.Load(ctx); err == nil {
		if err := a.manager.Login(ctx, auth.Credentials{}, true); err == nil {
			fmt.Println("Restored saved session.")
			return nil
		}
	}

	creds, err := a.gatherCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(creds.Password)

	err = a.manager.Login(ctx, creds, false)
	if errors.Is(err, auth.ErrMFARequired) {
		fmt.Println("Multi-factor authentication required.")
		return a.MFA(ctx)
	}
	if err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}

	fmt.Println("Login successful.")
	return nil
}

// MFA prompts for a one-time code and completes a pending challenge. A
// wrong code keeps the challenge open and the prompt repeats; an empty
// code cancels.
func (a *App) MFA(ctx context.Context) error {
	for {
		code, err := getSimpleText(a.reader, "Enter MFA code (empty to cancel)", os.Stdout)
		if err != nil {
			return err
		}
		if code == "" {
			fmt.Println("Cancelled.")
			return nil
		}

		err = a.manager.CompleteMFA(ctx, code)
		if err == nil {
			fmt.Println("Login successful.")
			return nil
		}
		if errors.Is(err, api.ErrMFAIncorrect) {
			fmt.Println("Incorrect code, try again.")
			continue
		}
		a.log.Error(ctx, "mfa verification failed", "error", err)
		return err
	}
}

// Logout erases the persisted session. Logging out twice is not an error.
func (a *App) Logout(ctx context.Context) error {
	if err := a.manager.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// Status reports the session state, the session file, and whether
// environment credentials are configured.
func (a *App) Status(ctx context.Context) error {
	fmt.Printf("State:        %s\n", a.manager.State())

	saved := "absent"
	if _, err := a.store.Load(ctx); err == nil {
		saved = "present"
	}
	if fs, ok := a.store.(*session.FileStore); ok {
		fmt.Printf("Session file: %s (%s)\n", fs.Path(), saved)
	} else {
		fmt.Printf("Saved session: %s\n", saved)
	}

	envCreds := "not set"
	if a.config.Email != "" && a.config.Password != "" {
		envCreds = "set"
	}
	fmt.Printf("Env credentials: %s\n", envCreds)
	return nil
}

func (a *App) gatherCredentials() (auth.Credentials, error) {
	if a.config.Email != "" && a.config.Password != "" {
		return auth.Credentials{
			Email:    a.config.Email,
			Password: []byte(a.config.Password),
		}, nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return auth.Credentials{}, err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return auth.Credentials{}, err
	}

	return auth.Credentials{Email: email, Password: password}, nil
}

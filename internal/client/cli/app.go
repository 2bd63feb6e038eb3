package cli

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/abelikov/fingate/internal/client/api"
	"github.com/abelikov/fingate/internal/client/auth"
	"github.com/abelikov/fingate/internal/client/config"
	"github.com/abelikov/fingate/internal/client/finance"
	"github.com/abelikov/fingate/internal/client/refresh"
	"github.com/abelikov/fingate/internal/client/session"
	"github.com/abelikov/fingate/internal/logging"
)

type App struct {
	config  *config.Config
	manager *auth.Manager
	finance *finance.Service
	refresh *refresh.Coordinator
	store   session.Store
	log     logging.Logger
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	log := logging.NewZerologLogger(zl)

	apiClient := api.NewHTTPClient(c.BaseURL, c.HTTPTimeout)
	store := session.NewFileStore(c.SessionFile, []byte(c.SessionSecret), log)
	manager := auth.NewManager(apiClient, store, log)

	return &App{
		config:  c,
		manager: manager,
		finance: finance.NewService(manager),
		refresh: refresh.NewCoordinator(manager, log),
		store:   store,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.manager.State() == auth.StateAuthenticated
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

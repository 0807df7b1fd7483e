// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	urfave "github.com/urfave/cli/v2"

	"github.com/MKhiriev/go-gym-client/internal/adapter"
	"github.com/MKhiriev/go-gym-client/internal/cli"
	"github.com/MKhiriev/go-gym-client/internal/config"
	"github.com/MKhiriev/go-gym-client/internal/logger"
	"github.com/MKhiriev/go-gym-client/internal/service"
	"github.com/MKhiriev/go-gym-client/internal/session"
	"github.com/MKhiriev/go-gym-client/internal/store"
	"github.com/MKhiriev/go-gym-client/internal/workers"
	"github.com/MKhiriev/go-gym-client/models"
)

const loggerRole = "gym-client"

type App struct {
	buildInfo models.AppBuildInfo
	stdout    io.Writer
	stderr    io.Writer

	logger      *logger.Logger
	storages    *store.ClientStorages
	manager     *session.Manager
	unsubscribe func()
	workers     *workers.Workers
}

// NewApp returns an App writing command output to stdout and usage errors
// to stderr.
func NewApp(buildInfo models.AppBuildInfo, stdout, stderr io.Writer) *App {
	return &App{
		buildInfo: buildInfo,
		stdout:    stdout,
		stderr:    stderr,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	app := cli.App(a.setup)
	app.Version = a.buildInfo.String()
	app.Writer = a.stdout
	app.ErrWriter = a.stderr
	app.After = func(*urfave.Context) error {
		return a.shutdown()
	}

	err := app.RunContext(ctx, args)

	var cliErr *cli.Error
	if errors.As(err, &cliErr) && a.logger != nil {
		a.logger.Error().Err(cliErr.Err).Str("message", cliErr.Message).Msg("command failed")
	}
	return err
}

// setup builds the runtime for one command: configuration, logger, storage,
// adapter, session, services and workers.
func (a *App) setup(c *urfave.Context) (*cli.Deps, error) {
	cfg, err := config.GetClientConfig(config.FromCLI(c))
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	a.logger = logger.NewClientLogger(loggerRole, cfg.App.LogFile, cfg.App.LogLevel)
	a.logger.Info().
		Str("version", a.buildInfo.BuildVersion()).
		Str("commit", a.buildInfo.BuildCommit()).
		Str("built", a.buildInfo.BuildDate()).
		Str("command", c.Args().First()).
		Msg("client starting")

	// subcommand contexts inherit c.Context
	ctx := a.logger.WithContext(c.Context)
	c.Context = ctx

	a.storages, err = store.NewClientStorages(ctx, cfg.Storage, a.logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, a.logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	a.manager = session.NewManager(serverAdapter, a.storages.Session, a.logger)
	a.unsubscribe = a.manager.Subscribe(a.logSessionEvent)
	state := a.manager.Restore(ctx)
	a.logger.Debug().Str("state", state.String()).Msg("session restored")

	services := service.NewClientServices(a.manager, serverAdapter, cfg.Workers, a.logger)

	a.workers = workers.NewWorkers(services.TokenRefreshJob)
	a.workers.Start(ctx)

	return &cli.Deps{
		Session: a.manager,
		Auth:    services.AuthService,
		Catalog: services.CatalogService,
		History: services.HistoryService,
		Profile: services.ProfileService,
	}, nil
}

// shutdown releases whatever setup built. It is safe after a partial setup.
func (a *App) shutdown() error {
	if a.workers != nil {
		a.workers.Stop()
		a.workers = nil
	}
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	if a.manager != nil {
		a.manager.Close()
		a.manager = nil
	}

	var err error
	if a.storages != nil {
		err = a.storages.Close()
		a.storages = nil
	}
	if a.logger != nil {
		a.logger.Info().Msg("client stopped")
	}
	return err
}

func (a *App) logSessionEvent(event session.Event) {
	entry := a.logger.Info().
		Str("event", event.Type.String()).
		Str("state", event.Session.State.String())
	if event.Session.IsAuthenticated() {
		entry = entry.Str("user_id", event.Session.User.ID.String())
	}
	entry.Msg("session event")
}

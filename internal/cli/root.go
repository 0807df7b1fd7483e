// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/go-gym-client/internal/config"
	"github.com/MKhiriev/go-gym-client/internal/service"
)

const (
	depsKey  = "deps"
	setupKey = "setup"
)

// Deps is everything the command actions need.
type Deps struct {
	Session service.SessionManager
	Auth    service.ClientAuthService
	Catalog service.ClientCatalogService
	History service.ClientHistoryService
	Profile service.ClientProfileService
}

// Setup builds the dependencies for a parsed command line. It runs at most
// once, when the first action that needs a session starts. Help, version and
// a bare invocation never call it.
type Setup func(c *cli.Context) (*Deps, error)

// App creates the command-line application.
func App(setup Setup) *cli.App {
	return &cli.App{
		Name:     "gym",
		Usage:    "Gym tracking client",
		Flags:    config.Flags(),
		Metadata: map[string]any{setupKey: setup},
		Commands: []*cli.Command{
			SignInCommand(),
			SignUpCommand(),
			SignOutCommand(),
			WhoAmICommand(),
			GroupsCommand(),
			ExercisesCommand(),
			ExerciseCommand(),
			HistoryCommand(),
			DoneCommand(),
			ProfileCommand(),
		},
	}
}

// GetDeps retrieves the dependencies built by Setup, or nil before the first
// session-bound action ran.
func GetDeps(c *cli.Context) *Deps {
	if deps, ok := c.App.Metadata[depsKey].(*Deps); ok {
		return deps
	}
	return nil
}

// loadDeps runs Setup on first use and caches the result in the app metadata.
func loadDeps(c *cli.Context) (*Deps, error) {
	if deps := GetDeps(c); deps != nil {
		return deps, nil
	}

	setup, ok := c.App.Metadata[setupKey].(Setup)
	if !ok || setup == nil {
		return nil, fmt.Errorf("client is not initialized")
	}

	deps, err := setup(c)
	if err != nil {
		return nil, fmt.Errorf("error starting client: %w", err)
	}
	if deps == nil {
		return nil, fmt.Errorf("client is not initialized")
	}

	c.App.Metadata[depsKey] = deps
	return deps, nil
}

// withSession wraps an action so it runs after the stored session has been
// restored.
func withSession(action func(c *cli.Context, deps *Deps) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		deps, err := loadDeps(c)
		if err != nil {
			return err
		}

		select {
		case <-deps.Session.Ready():
		case <-c.Context.Done():
			return c.Context.Err()
		}

		return action(c, deps)
	}
}

// withAuth is withSession for commands that need a signed-in user.
func withAuth(action func(c *cli.Context, deps *Deps) error) cli.ActionFunc {
	return withSession(func(c *cli.Context, deps *Deps) error {
		if !deps.Session.IsAuthenticated() {
			return fail(service.ErrNotSignedIn, "")
		}
		return action(c, deps)
	})
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-gym-client/internal/mock"
	"github.com/MKhiriev/go-gym-client/models"
)

var testUser = models.User{ID: "1", Name: "Ana Maria", Email: "a@b.com"}

type fixture struct {
	session *mock.MockSessionManager
	auth    *mock.MockClientAuthService
	catalog *mock.MockClientCatalogService
	history *mock.MockClientHistoryService
	profile *mock.MockClientProfileService
	out     *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		session: mock.NewMockSessionManager(ctrl),
		auth:    mock.NewMockClientAuthService(ctrl),
		catalog: mock.NewMockClientCatalogService(ctrl),
		history: mock.NewMockClientHistoryService(ctrl),
		profile: mock.NewMockClientProfileService(ctrl),
		out:     &bytes.Buffer{},
	}

	ready := make(chan struct{})
	close(ready)
	f.session.EXPECT().Ready().Return((<-chan struct{})(ready)).AnyTimes()
	return f
}

func (f *fixture) signedIn() {
	f.session.EXPECT().IsAuthenticated().Return(true).AnyTimes()
	f.session.EXPECT().User().Return(testUser, true).AnyTimes()
}

func (f *fixture) signedOut() {
	f.session.EXPECT().IsAuthenticated().Return(false).AnyTimes()
	f.session.EXPECT().User().Return(models.User{}, false).AnyTimes()
}

func (f *fixture) run(args ...string) error {
	return f.runContext(context.Background(), args...)
}

func (f *fixture) runContext(ctx context.Context, args ...string) error {
	app := App(func(*cli.Context) (*Deps, error) {
		return &Deps{
			Session: f.session,
			Auth:    f.auth,
			Catalog: f.catalog,
			History: f.history,
			Profile: f.profile,
		}, nil
	})
	app.Writer = f.out
	app.ErrWriter = &bytes.Buffer{}

	return app.RunContext(ctx, append([]string{"gym"}, args...))
}

func requireUserError(t *testing.T, err error, message string) *Error {
	t.Helper()
	require.Error(t, err)

	var cliErr *Error
	require.ErrorAs(t, err, &cliErr)
	require.Equal(t, message, cliErr.Message)
	return cliErr
}

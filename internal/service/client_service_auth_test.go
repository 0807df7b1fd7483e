// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-gym-client/internal/adapter"
	"github.com/MKhiriev/go-gym-client/internal/app"
	"github.com/MKhiriev/go-gym-client/internal/validators"
	"github.com/MKhiriev/go-gym-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── SignIn ───────────────────────────────────────────────────────────────────

func TestClientAuthService_SignIn_Success(t *testing.T) {
	d := newDeps(t)
	ctx := context.Background()

	d.session.EXPECT().SignIn(ctx, "a@b.com", "secret1").Return(nil)

	err := d.auth().SignIn(ctx, models.SignInForm{Email: " a@b.com ", Password: "secret1"})
	assert.NoError(t, err)
}

func TestClientAuthService_SignIn_InvalidFormSkipsSession(t *testing.T) {
	d := newDeps(t)

	err := d.auth().SignIn(context.Background(), models.SignInForm{Email: "a@b.com", Password: "123"})

	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrPasswordTooShort)
	assert.Equal(t, app.KindValidation, app.KindOf(err))
}

func TestClientAuthService_SignIn_PropagatesSessionError(t *testing.T) {
	d := newDeps(t)
	rejected := app.NewApplicationError("E-mail e/ou senha incorreta.", adapter.ErrUnauthorized)

	d.session.EXPECT().SignIn(gomock.Any(), "a@b.com", "secret1").Return(rejected)

	err := d.auth().SignIn(context.Background(), models.SignInForm{Email: "a@b.com", Password: "secret1"})
	assert.Equal(t, "E-mail e/ou senha incorreta.", app.Message(err, app.MsgSignInFailed))
}

// ── SignUp ───────────────────────────────────────────────────────────────────

func TestClientAuthService_SignUp_CreatesAccountThenSignsIn(t *testing.T) {
	d := newDeps(t)
	ctx := context.Background()

	gomock.InOrder(
		d.adapter.EXPECT().SignUp(ctx, models.SignUpRequest{Name: "A", Email: "a@b.com", Password: "secret1"}).Return(nil),
		d.session.EXPECT().SignIn(ctx, "a@b.com", "secret1").Return(nil),
	)

	err := d.auth().SignUp(ctx, models.SignUpForm{Name: " A ", Email: "a@b.com", Password: "secret1", PasswordConfirm: "secret1"})
	assert.NoError(t, err)
}

func TestClientAuthService_SignUp_EmailTaken(t *testing.T) {
	d := newDeps(t)

	taken := app.NewApplicationError("Este e-mail já está em uso.", fmt.Errorf("%w: {\"status\":\"error\"}", adapter.ErrConflict))
	d.adapter.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(taken)

	err := d.auth().SignUp(context.Background(), models.SignUpForm{Name: "A", Email: "a@b.com", Password: "secret1", PasswordConfirm: "secret1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	assert.ErrorIs(t, err, adapter.ErrConflict)
	assert.Equal(t, "Este e-mail já está em uso.", app.Message(err, app.MsgSignUpFailed))
}

func TestClientAuthService_SignUp_InvalidForm(t *testing.T) {
	d := newDeps(t)

	err := d.auth().SignUp(context.Background(), models.SignUpForm{Name: "A", Email: "a@b.com", Password: "secret1", PasswordConfirm: "secret2"})
	assert.ErrorIs(t, err, validators.ErrPasswordMismatch)
}

// ── SignOut ──────────────────────────────────────────────────────────────────

func TestClientAuthService_SignOut(t *testing.T) {
	d := newDeps(t)
	d.session.EXPECT().SignOut(gomock.Any())

	d.auth().SignOut(context.Background())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-gym-client/internal/adapter"
	"github.com/MKhiriev/go-gym-client/internal/logger"
	"github.com/MKhiriev/go-gym-client/internal/validators"
	"github.com/MKhiriev/go-gym-client/models"
)

type clientAuthService struct {
	session   SessionManager
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
}

// NewClientAuthService returns a [ClientAuthService] that validates the forms
// with validator and delegates the session transitions to session.
func NewClientAuthService(session SessionManager, serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{session: session, adapter: serverAdapter, validator: validator, logger: logger}
}

func (a *clientAuthService) SignIn(ctx context.Context, form models.SignInForm) error {
	if err := a.validator.Validate(ctx, form); err != nil {
		return err
	}

	return a.session.SignIn(ctx, strings.TrimSpace(form.Email), form.Password)
}

// SignUp creates the account, then signs in with the same credentials.
func (a *clientAuthService) SignUp(ctx context.Context, form models.SignUpForm) error {
	if err := a.validator.Validate(ctx, form); err != nil {
		return err
	}

	req := models.SignUpRequest{
		Name:     strings.TrimSpace(form.Name),
		Email:    strings.TrimSpace(form.Email),
		Password: form.Password,
	}
	if err := a.adapter.SignUp(ctx, req); err != nil {
		a.logger.Info().Err(err).Str("func", "clientAuthService.SignUp").Str("email", req.Email).Msg("sign up failed")
		return mapAdapterError(err)
	}

	return a.session.SignIn(ctx, req.Email, req.Password)
}

func (a *clientAuthService) SignOut(ctx context.Context) {
	a.session.SignOut(ctx)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-gym-client/internal/adapter"
	"github.com/MKhiriev/go-gym-client/internal/logger"
	"github.com/MKhiriev/go-gym-client/internal/utils"
)

type tokenRefresher struct {
	session SessionManager
	adapter adapter.ServerAdapter
	leeway  time.Duration
	now     func() time.Time
	logger  *logger.Logger
}

// NewTokenRefresher returns a [TokenRefresher] that rotates the pair once the
// access token's "exp" claim is less than leeway away. Tokens that are not
// JWTs, or carry no expiry, are left to the refresh-on-401 path of the
// adapter.
func NewTokenRefresher(session SessionManager, serverAdapter adapter.ServerAdapter, leeway time.Duration, logger *logger.Logger) TokenRefresher {
	return &tokenRefresher{
		session: session,
		adapter: serverAdapter,
		leeway:  leeway,
		now:     time.Now,
		logger:  logger,
	}
}

func (r *tokenRefresher) RefreshIfExpiring(ctx context.Context) (bool, error) {
	if !r.session.IsAuthenticated() {
		return false, nil
	}

	tokens := r.session.Tokens()
	if tokens.RefreshToken == "" || !utils.ExpiresWithin(tokens.AccessToken, r.leeway, r.now()) {
		return false, nil
	}

	if _, err := r.adapter.RefreshTokens(ctx); err != nil {
		r.logger.Warn().Err(err).Str("func", "tokenRefresher.RefreshIfExpiring").Msg("proactive token refresh failed")
		return false, mapAdapterError(err)
	}

	r.logger.Debug().Str("func", "tokenRefresher.RefreshIfExpiring").Msg("tokens refreshed ahead of expiry")
	return true, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-gym-client/internal/adapter"
	"github.com/MKhiriev/go-gym-client/internal/app"
	"github.com/MKhiriev/go-gym-client/internal/logger"
	"github.com/MKhiriev/go-gym-client/internal/utils"
	"github.com/MKhiriev/go-gym-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRefresher(d deps, leeway time.Duration, now time.Time) *tokenRefresher {
	r := NewTokenRefresher(d.session, d.adapter, leeway, logger.Nop()).(*tokenRefresher)
	r.now = func() time.Time { return now }
	return r
}

func jwtExpiringIn(t *testing.T, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("1", ttl, "test-key")
	require.NoError(t, err)
	return token
}

func TestTokenRefresher_RefreshesNearExpiry(t *testing.T) {
	d := newDeps(t)
	pair := models.TokenPair{AccessToken: jwtExpiringIn(t, time.Minute), RefreshToken: "r1"}

	d.session.EXPECT().IsAuthenticated().Return(true)
	d.session.EXPECT().Tokens().Return(pair)
	d.adapter.EXPECT().RefreshTokens(gomock.Any()).Return(models.TokenPair{AccessToken: "t2", RefreshToken: "r2"}, nil)

	refreshed, err := newTestRefresher(d, 2*time.Minute, time.Now()).RefreshIfExpiring(context.Background())

	require.NoError(t, err)
	assert.True(t, refreshed)
}

func TestTokenRefresher_SkipsFreshToken(t *testing.T) {
	d := newDeps(t)
	pair := models.TokenPair{AccessToken: jwtExpiringIn(t, time.Hour), RefreshToken: "r1"}

	d.session.EXPECT().IsAuthenticated().Return(true)
	d.session.EXPECT().Tokens().Return(pair)

	refreshed, err := newTestRefresher(d, 2*time.Minute, time.Now()).RefreshIfExpiring(context.Background())

	require.NoError(t, err)
	assert.False(t, refreshed)
}

func TestTokenRefresher_SkipsWithoutSession(t *testing.T) {
	d := newDeps(t)
	d.session.EXPECT().IsAuthenticated().Return(false)

	refreshed, err := newTestRefresher(d, time.Minute, time.Now()).RefreshIfExpiring(context.Background())

	require.NoError(t, err)
	assert.False(t, refreshed)
}

func TestTokenRefresher_SkipsOpaqueOrUnrefreshableTokens(t *testing.T) {
	for _, pair := range []models.TokenPair{
		{AccessToken: "opaque", RefreshToken: "r1"},
		{AccessToken: "", RefreshToken: "r1"},
	} {
		d := newDeps(t)
		d.session.EXPECT().IsAuthenticated().Return(true)
		d.session.EXPECT().Tokens().Return(pair)

		refreshed, err := newTestRefresher(d, time.Hour, time.Now()).RefreshIfExpiring(context.Background())
		require.NoError(t, err)
		assert.False(t, refreshed)
	}

	d := newDeps(t)
	d.session.EXPECT().IsAuthenticated().Return(true)
	d.session.EXPECT().Tokens().Return(models.TokenPair{AccessToken: jwtExpiringIn(t, time.Second)})

	refreshed, err := newTestRefresher(d, time.Hour, time.Now()).RefreshIfExpiring(context.Background())
	require.NoError(t, err)
	assert.False(t, refreshed)
}

func TestTokenRefresher_RefreshRejected(t *testing.T) {
	d := newDeps(t)
	pair := models.TokenPair{AccessToken: jwtExpiringIn(t, time.Second), RefreshToken: "r1"}

	d.session.EXPECT().IsAuthenticated().Return(true)
	d.session.EXPECT().Tokens().Return(pair)
	d.adapter.EXPECT().RefreshTokens(gomock.Any()).
		Return(models.TokenPair{}, app.NewApplicationError(app.MsgTokenInvalid, adapter.ErrUnauthorized))

	refreshed, err := newTestRefresher(d, time.Minute, time.Now()).RefreshIfExpiring(context.Background())

	assert.False(t, refreshed)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

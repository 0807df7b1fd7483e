// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the gym client and the
// remote gym API.
//
// The primary abstraction is [ServerAdapter], which decouples the session
// manager and the services from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]) built on go-resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). Responses
// that carry a server message are additionally wrapped in an *app.Error of
// kind application; transport failures become kind connectivity.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-gym-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the gym API.
//
// The adapter holds the current credentials as an immutable value. Every
// authenticated request snapshots them once, so a concurrent credential change
// never produces a request with a half-updated header.
type ServerAdapter interface {
	// SetCredentials replaces the credentials attached to authenticated
	// requests. A pair with an empty access token clears them.
	SetCredentials(creds models.TokenPair)

	// Credentials returns the current credentials, or the zero pair.
	Credentials() models.TokenPair

	// AuthorizationHeader returns the header value authenticated requests
	// currently carry: "Bearer <access token>", or "" without credentials.
	AuthorizationHeader() string

	// OnUnauthorized registers hook to be called when the server rejects an
	// authenticated request and the credentials cannot be refreshed. The
	// returned function unregisters the hook; calling it twice is safe.
	OnUnauthorized(hook func()) (unsubscribe func())

	// OnTokensRefreshed registers hook to be called with the new pair after a
	// successful refresh has been installed.
	OnTokensRefreshed(hook func(models.TokenPair)) (unsubscribe func())

	// SignIn exchanges e-mail and password for a user and a token pair
	// (POST /sessions). It does not install the credentials.
	SignIn(ctx context.Context, req models.SignInRequest) (models.SignInResponse, error)

	// SignUp creates an account (POST /users).
	SignUp(ctx context.Context, req models.SignUpRequest) error

	// RefreshTokens rotates the current pair (POST /sessions/refresh-token),
	// installs the new pair and notifies the OnTokensRefreshed hooks.
	// A rejected refresh is returned as an error; it never fires the
	// OnUnauthorized hooks.
	RefreshTokens(ctx context.Context) (models.TokenPair, error)

	// UpdateProfile changes the name and optionally the password (PUT /users).
	UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) error

	// UploadAvatar sends the file as the multipart field "avatar"
	// (PATCH /users/avatar) and returns the updated user.
	UploadAvatar(ctx context.Context, file models.AvatarFile) (models.User, error)

	// Groups lists the muscle groups (GET /groups).
	Groups(ctx context.Context) ([]string, error)

	// ExercisesByGroup lists the exercises of group
	// (GET /exercises/bygroup/{group}).
	ExercisesByGroup(ctx context.Context, group string) ([]models.Exercise, error)

	// Exercise fetches a single exercise (GET /exercises/{id}).
	Exercise(ctx context.Context, id models.ID) (models.Exercise, error)

	// History lists the performed exercises grouped by day (GET /history).
	History(ctx context.Context) ([]models.HistoryByDay, error)

	// RegisterHistory marks an exercise as performed (POST /history).
	RegisterHistory(ctx context.Context, exerciseID models.ID) error

	// MediaURL returns the absolute URL of a static media file, or "" for an
	// empty file name.
	MediaURL(kind models.MediaKind, file string) string
}

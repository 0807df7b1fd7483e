// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-gym-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionManager is the view of the session the services and the command
// line need. It is implemented by *session.Manager.
type SessionManager interface {
	// SignIn authenticates against the API and persists the session.
	SignIn(ctx context.Context, email, password string) error

	// SignOut ends the session. It never fails.
	SignOut(ctx context.Context)

	// UpdateUserProfile replaces the signed-in user and persists it.
	UpdateUserProfile(ctx context.Context, user models.User) error

	// User returns the signed-in user; ok is false when signed out.
	User() (user models.User, ok bool)

	// Tokens returns the current token pair, or the zero pair.
	Tokens() models.TokenPair

	// IsAuthenticated reports whether a user is signed in.
	IsAuthenticated() bool

	// Ready is closed once the stored session has been restored.
	Ready() <-chan struct{}
}

// ClientAuthService validates the authentication forms and drives the
// session.
type ClientAuthService interface {
	// SignIn validates form and signs in.
	SignIn(ctx context.Context, form models.SignInForm) error

	// SignUp validates form, creates the account and signs in with the new
	// credentials.
	SignUp(ctx context.Context, form models.SignUpForm) error

	// SignOut ends the session.
	SignOut(ctx context.Context)
}

// ClientCatalogService reads the exercise catalog.
type ClientCatalogService interface {
	// Groups lists the muscle groups.
	Groups(ctx context.Context) ([]string, error)

	// ExercisesByGroup lists the exercises of group.
	ExercisesByGroup(ctx context.Context, group string) ([]models.Exercise, error)

	// Exercise fetches one exercise.
	Exercise(ctx context.Context, id models.ID) (models.Exercise, error)

	// DemoURL returns the absolute URL of the exercise demonstration.
	DemoURL(exercise models.Exercise) string

	// ThumbURL returns the absolute URL of the exercise thumbnail.
	ThumbURL(exercise models.Exercise) string
}

// ClientHistoryService reads and records performed exercises.
type ClientHistoryService interface {
	// List returns the history grouped by day, newest first.
	List(ctx context.Context) ([]models.HistoryByDay, error)

	// Register marks the exercise as performed now.
	Register(ctx context.Context, exerciseID models.ID) error
}

// ClientProfileService edits the signed-in user's profile.
type ClientProfileService interface {
	// Update validates form, sends it to the API and stores the new name in
	// the session. It returns the updated user.
	Update(ctx context.Context, form models.ProfileForm) (models.User, error)

	// UploadAvatar validates the image at path, uploads it and stores the new
	// avatar in the session. It returns the updated user.
	UploadAvatar(ctx context.Context, path string) (models.User, error)

	// AvatarURL returns the absolute URL of the user's avatar, or "".
	AvatarURL(user models.User) string
}

// TokenRefresher refreshes the token pair ahead of its expiry.
type TokenRefresher interface {
	// RefreshIfExpiring rotates the pair if the access token expires within
	// the configured leeway. It reports whether a refresh happened.
	RefreshIfExpiring(ctx context.Context) (bool, error)
}

// ClientTokenRefreshJob is the background worker that calls a
// [TokenRefresher] periodically.
type ClientTokenRefreshJob interface {
	// Start checks the tokens once, then on every tick, until ctx is
	// cancelled or Stop is called. A running job is stopped first.
	Start(ctx context.Context)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

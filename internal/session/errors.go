// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrNotAuthenticated is returned by operations that need a signed-in
	// user.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrEmptyUser is returned when a user record without id is offered as
	// the signed-in user.
	ErrEmptyUser = errors.New("user has no id")

	// ErrEmptyCredentials is returned by SignIn when e-mail or password is
	// empty.
	ErrEmptyCredentials = errors.New("email and password are required")
)

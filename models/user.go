// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the profile of the signed-in account as returned by the API and
// persisted locally between process restarts.
type User struct {
	// ID is the server-side identifier. An empty ID means "no user".
	ID ID `json:"id"`

	// Name is the display name shown on the home header and profile.
	Name string `json:"name"`

	// Email is the login e-mail. It cannot be changed from the client.
	Email string `json:"email"`

	// Avatar is the file name of the uploaded avatar, relative to the
	// API's /avatar/ static route. Empty when the user never uploaded one.
	Avatar string `json:"avatar,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// IsZero reports whether u carries no identity.
func (u User) IsZero() bool {
	return u.ID == ""
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "github.com/MKhiriev/go-gym-client/models"

// State is the position of the session in its lifecycle.
type State int

const (
	// StateRestoring is the initial state, left once the stored session has
	// been read.
	StateRestoring State = iota

	// StateUnauthenticated means no user is signed in.
	StateUnauthenticated

	// StateAuthenticated means a user and a token pair are held.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateRestoring:
		return "restoring"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is an immutable snapshot of the manager's state. User and Tokens
// are zero unless State is [StateAuthenticated].
type Session struct {
	State  State
	User   models.User
	Tokens models.TokenPair
}

// IsAuthenticated reports whether the snapshot holds a signed-in user.
func (s Session) IsAuthenticated() bool {
	return s.State == StateAuthenticated
}

var (
	restoring       = &Session{State: StateRestoring}
	unauthenticated = &Session{State: StateUnauthenticated}
)

func authenticated(user models.User, tokens models.TokenPair) *Session {
	return &Session{State: StateAuthenticated, User: user, Tokens: tokens}
}

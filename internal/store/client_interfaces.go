// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-gym-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KVRepository is the durable key/value store of the client. Values survive
// process restarts.
type KVRepository interface {
	// Get returns the value stored under key. found is false when the key is
	// absent; that is not an error.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key succeeds.
	Remove(ctx context.Context, key string) error

	// SetMany stores all entries in a single transaction: either every entry
	// is written or none is.
	SetMany(ctx context.Context, entries map[string][]byte) error
}

// SessionStorage persists the signed-in user and the token pair under the
// well-known session keys. Every failure is returned as an *app.Error of kind
// storage.
type SessionStorage interface {
	// SaveSession writes the user and the token pair atomically.
	SaveSession(ctx context.Context, user models.User, tokens models.TokenPair) error

	// SaveUser replaces the persisted user; the token pair is left untouched.
	SaveUser(ctx context.Context, user models.User) error

	// SaveTokens replaces the persisted token pair; the user is left untouched.
	SaveTokens(ctx context.Context, tokens models.TokenPair) error

	// LoadUser returns the persisted user; found is false when none is stored.
	LoadUser(ctx context.Context) (user models.User, found bool, err error)

	// LoadTokens returns the persisted pair; found is false when none is stored.
	LoadTokens(ctx context.Context) (tokens models.TokenPair, found bool, err error)

	// RemoveUser deletes the persisted user. It is idempotent.
	RemoveUser(ctx context.Context) error

	// RemoveTokens deletes the persisted token pair. It is idempotent.
	RemoveTokens(ctx context.Context) error
}

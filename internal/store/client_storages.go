// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gym-client/internal/config"
	"github.com/MKhiriev/go-gym-client/internal/crypto"
	"github.com/MKhiriev/go-gym-client/internal/logger"
)

// ClientStorages groups the client-side storage layer into a single value
// that is handed to the session manager.
type ClientStorages struct {
	// KV is the raw SQLite-backed key/value repository.
	KV KVRepository

	// Session persists the signed-in user and the token pair.
	Session SessionStorage

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Loads the at-rest sealer for cfg.EncryptionKey (see [LoadSealer]).
//  4. Wires a [KVRepository] and a [SessionStorage] on top of it.
//
// Returns an error if the database connection cannot be established, if
// migration fails or if the sealer cannot be built.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv := NewKVRepository(db, logger)
	sealer, err := LoadSealer(ctx, kv, cfg.EncryptionKey, crypto.DefaultKeyParams)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error loading sealer: %w", err)
	}

	return &ClientStorages{
		KV:      kv,
		Session: NewSessionStorage(kv, sealer, logger),
		db:      db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-gym-client/internal/logger"
)

type kvRepository struct {
	*DB
	logger *logger.Logger
}

// NewKVRepository returns the SQLite-backed [KVRepository]. The kv table must
// exist, see [DB.Migrate].
func NewKVRepository(db *DB, logger *logger.Logger) KVRepository {
	return &kvRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *kvRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetValueQuery(key)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "kvRepository.Get").
			Str("key", key).
			Msg("failed to read value")
		return nil, false, fmt.Errorf("%w (key=%s): %w", ErrExecutingQuery, key, err)
	}

	return value, true, nil
}

func (r *kvRepository) Set(ctx context.Context, key string, value []byte) error {
	return r.set(ctx, r.DB, key, value)
}

func (r *kvRepository) Remove(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRemoveValueQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "kvRepository.Remove").
			Str("key", key).
			Msg("failed to remove value")
		return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
	}

	return nil
}

func (r *kvRepository) SetMany(ctx context.Context, entries map[string][]byte) error {
	if len(entries) == 0 {
		return nil
	}

	// stable write order
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return r.DB.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		for _, key := range keys {
			if err := r.set(ctx, tx, key, entries[key]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *kvRepository) set(ctx context.Context, db DBTX, key string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetValueQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "kvRepository.Set").
			Str("key", key).
			Msg("failed to upsert value")
		return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
	}

	return nil
}

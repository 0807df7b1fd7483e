// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-gym-client/internal/app"
	"github.com/MKhiriev/go-gym-client/internal/crypto"
	"github.com/MKhiriev/go-gym-client/internal/logger"
	"github.com/MKhiriev/go-gym-client/models"
)

// Keys of the persisted session entries.
const (
	// TokenKey holds the JSON token pair {"token","refresh_token"}.
	TokenKey = "@gymapp:token"
	// UserKey holds the JSON user profile.
	UserKey = "@gymapp:user"
	// SaltKey holds the key derivation salt of the at-rest sealer.
	SaltKey = "@gymapp:salt"
)

type sessionStorage struct {
	kv     KVRepository
	sealer crypto.Sealer
	logger *logger.Logger
}

// NewSessionStorage returns a [SessionStorage] on top of kv. Every value is
// passed through sealer before it is written; use [crypto.NopSealer] to store
// plain JSON.
func NewSessionStorage(kv KVRepository, sealer crypto.Sealer, logger *logger.Logger) SessionStorage {
	return &sessionStorage{
		kv:     kv,
		sealer: sealer,
		logger: logger,
	}
}

// LoadSealer returns the sealer for encryptionKey. An empty key yields
// [crypto.NopSealer]. Otherwise the salt is read from [SaltKey], generated
// and stored on first use.
func LoadSealer(ctx context.Context, kv KVRepository, encryptionKey string, params crypto.KeyParams) (crypto.Sealer, error) {
	if encryptionKey == "" {
		return crypto.NopSealer(), nil
	}

	salt, found, err := kv.Get(ctx, SaltKey)
	if err != nil {
		return nil, app.NewStorageError(err)
	}

	if !found {
		salt, err = crypto.GenerateSalt()
		if err != nil {
			return nil, err
		}
		if err = kv.Set(ctx, SaltKey, salt); err != nil {
			return nil, app.NewStorageError(err)
		}
	}

	return crypto.NewSealer(encryptionKey, salt, params)
}

func (s *sessionStorage) SaveSession(ctx context.Context, user models.User, tokens models.TokenPair) error {
	userValue, err := s.encode(user)
	if err != nil {
		return app.NewStorageError(err)
	}
	tokenValue, err := s.encode(tokens)
	if err != nil {
		return app.NewStorageError(err)
	}

	err = s.kv.SetMany(ctx, map[string][]byte{
		UserKey:  userValue,
		TokenKey: tokenValue,
	})
	if err != nil {
		return app.NewStorageError(err)
	}

	return nil
}

func (s *sessionStorage) SaveUser(ctx context.Context, user models.User) error {
	return s.save(ctx, UserKey, user)
}

func (s *sessionStorage) SaveTokens(ctx context.Context, tokens models.TokenPair) error {
	return s.save(ctx, TokenKey, tokens)
}

func (s *sessionStorage) LoadUser(ctx context.Context) (models.User, bool, error) {
	var user models.User
	found, err := s.load(ctx, UserKey, &user)
	if err != nil || !found {
		return models.User{}, false, err
	}
	return user, true, nil
}

func (s *sessionStorage) LoadTokens(ctx context.Context) (models.TokenPair, bool, error) {
	var tokens models.TokenPair
	found, err := s.load(ctx, TokenKey, &tokens)
	if err != nil || !found {
		return models.TokenPair{}, false, err
	}
	return tokens, true, nil
}

func (s *sessionStorage) RemoveUser(ctx context.Context) error {
	if err := s.kv.Remove(ctx, UserKey); err != nil {
		return app.NewStorageError(err)
	}
	return nil
}

func (s *sessionStorage) RemoveTokens(ctx context.Context) error {
	if err := s.kv.Remove(ctx, TokenKey); err != nil {
		return app.NewStorageError(err)
	}
	return nil
}

func (s *sessionStorage) save(ctx context.Context, key string, v any) error {
	value, err := s.encode(v)
	if err != nil {
		return app.NewStorageError(err)
	}
	if err = s.kv.Set(ctx, key, value); err != nil {
		return app.NewStorageError(err)
	}
	return nil
}

func (s *sessionStorage) load(ctx context.Context, key string, target any) (bool, error) {
	value, found, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, app.NewStorageError(err)
	}
	if !found {
		return false, nil
	}

	if err = s.decode(value, target); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionStorage.load").
			Str("key", key).
			Msg("persisted value is unreadable")
		return false, app.NewStorageError(fmt.Errorf("%w (key=%s): %w", ErrDecodingValue, key, err))
	}

	return true, nil
}

func (s *sessionStorage) encode(v any) ([]byte, error) {
	plain, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}
	sealed, err := s.sealer.Seal(plain)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}
	return sealed, nil
}

func (s *sessionStorage) decode(value []byte, target any) error {
	plain, err := s.sealer.Open(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(plain, target)
}

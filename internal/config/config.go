// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the gym
// client. It is populated by merging defaults, an optional JSON file,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with [EnvPrefix].
type StructuredConfig struct {
	// App holds process-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Storage holds the local persistent store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote API connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: GYM_CONFIG. Flag: -c / --config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is the path of the JSON log file. Empty means a "logs" file
	// next to the executable.
	// Env: GYM_APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: GYM_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// EncryptionKey, when set, seals persisted session values at rest.
	// Env: GYM_STORAGE_ENCRYPTION_KEY
	EncryptionKey string `env:"ENCRYPTION_KEY"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or DSN (e.g. "gym.db").
	// Env: GYM_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the remote API connection settings.
type Adapter struct {
	// HTTPAddress is the API base URL or "host:port".
	// Env: GYM_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: GYM_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background job settings.
type Workers struct {
	// RefreshInterval is how often the token refresh job checks the access
	// token's expiry.
	// Env: GYM_WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// RefreshLeeway is how long before expiry the access token is refreshed.
	// Env: GYM_WORKERS_REFRESH_LEEWAY
	RefreshLeeway time.Duration `env:"REFRESH_LEEWAY"`
}

// Defaults returns the configuration used when no source sets a value.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
		},
		Storage: Storage{
			DB: DB{DSN: "gym.db"},
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:3333",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			RefreshInterval: time.Minute,
			RefreshLeeway:   2 * time.Minute,
		},
	}
}

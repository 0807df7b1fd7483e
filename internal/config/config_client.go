// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	LogFile  string
	LogLevel string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the API base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// EncryptionKey seals persisted session values when non-empty.
	EncryptionKey string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the token refresh job runs.
	RefreshInterval time.Duration
	// RefreshLeeway defines how close to expiry a token gets refreshed.
	RefreshLeeway time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration.
//
// flags is the layer produced from the command line (see [FromCLI]); it may
// be nil. The layers are merged as defaults < JSON file < environment <
// flags, then mapped to a [ClientConfig] and validated.
func GetClientConfig(flags *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogFile:  cfg.App.LogFile,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:            ClientDB{DSN: cfg.Storage.DB.DSN},
			EncryptionKey: cfg.Storage.EncryptionKey,
		},
		Workers: ClientWorkers{
			RefreshInterval: cfg.Workers.RefreshInterval,
			RefreshLeeway:   cfg.Workers.RefreshLeeway,
		},
	}

	return clientCfg, clientCfg.validate()
}

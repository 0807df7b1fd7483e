// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/urfave/cli/v2"
)

// Flag names shared by [Flags] and [FromCLI].
const (
	FlagServer          = "server"
	FlagRequestTimeout  = "request-timeout"
	FlagDB              = "db"
	FlagEncryptionKey   = "encryption-key"
	FlagConfig          = "config"
	FlagLogFile         = "log-file"
	FlagLogLevel        = "log-level"
	FlagRefreshInterval = "refresh-interval"
	FlagRefreshLeeway   = "refresh-leeway"
)

// Flags returns the global command-line flags that feed the configuration.
// None of them has a default value: an unset flag leaves the lower layers in
// charge.
//
// Flags:
//
//	-s/--server           API base URL or host:port
//	--request-timeout     outbound request timeout (e.g. 15s)
//	-d/--db               SQLite database path
//	--encryption-key      key sealing the persisted session
//	-c/--config           JSON config file path
//	--log-file            log file path
//	--log-level           log level
//	--refresh-interval    token refresh job interval
//	--refresh-leeway      refresh the access token this long before expiry
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: FlagServer, Aliases: []string{"s"}, Usage: "API base URL or host:port"},
		&cli.DurationFlag{Name: FlagRequestTimeout, Usage: "Outbound request timeout (e.g. 15s)"},
		&cli.StringFlag{Name: FlagDB, Aliases: []string{"d"}, Usage: "Local SQLite database path"},
		&cli.StringFlag{Name: FlagEncryptionKey, Usage: "Key sealing the persisted session at rest"},
		&cli.StringFlag{Name: FlagConfig, Aliases: []string{"c"}, Usage: "JSON config file path"},
		&cli.StringFlag{Name: FlagLogFile, Usage: "Log file path"},
		&cli.StringFlag{Name: FlagLogLevel, Usage: "Log level (debug, info, warn, error)"},
		&cli.DurationFlag{Name: FlagRefreshInterval, Usage: "Token refresh check interval"},
		&cli.DurationFlag{Name: FlagRefreshLeeway, Usage: "Refresh the access token this long before it expires"},
	}
}

// FromCLI builds the flags layer from the parsed command line.
func FromCLI(c *cli.Context) *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogFile:  c.String(FlagLogFile),
			LogLevel: c.String(FlagLogLevel),
		},
		Storage: Storage{
			DB:            DB{DSN: c.String(FlagDB)},
			EncryptionKey: c.String(FlagEncryptionKey),
		},
		Adapter: Adapter{
			HTTPAddress:    c.String(FlagServer),
			RequestTimeout: c.Duration(FlagRequestTimeout),
		},
		Workers: Workers{
			RefreshInterval: c.Duration(FlagRefreshInterval),
			RefreshLeeway:   c.Duration(FlagRefreshLeeway),
		},
		JSONFilePath: c.String(FlagConfig),
	}
}

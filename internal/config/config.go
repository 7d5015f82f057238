// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for habitsync.
// It is populated by merging values from command-line flags, environment
// variables, an optional JSON file, and built-in defaults (in that order of
// precedence).
//
// Struct tags:
//   - envPrefix — prefix applied to nested env lookups (caarlos0/env).
//   - env       — environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the cloud auth token.
	App App `envPrefix:"APP_"`

	// Adapter holds the cloud store endpoint settings used by the client
	// transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background sync job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged on top of the values already
	// loaded from flags and environment variables.
	// Populated via the CONFIG environment variable or the -c/-config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// AuthToken is the bearer token identifying the signed-in user against
	// the cloud store and the entitlement service. Empty means signed out.
	// Env: APP_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`
}

// Adapter holds network settings for the cloud store client.
type Adapter struct {
	// CloudAddress is the base address of the cloud sync API, in
	// "[scheme://]host:port" format.
	// Env: ADAPTER_ADDRESS
	CloudAddress string `env:"ADDRESS"`

	// RequestTimeout is the per-request timeout for outbound cloud calls
	// (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (":memory:" for an in-memory database).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds background sync job settings.
type Workers struct {
	// SyncInterval defines how often the periodic full sync runs
	// (e.g. "5m").
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// DebounceWindow is the quiet period after a local change before the
	// debounced push fires (e.g. "5s"). A new change within the window
	// restarts it.
	// Env: WORKERS_DEBOUNCE_WINDOW
	DebounceWindow time.Duration `env:"DEBOUNCE_WINDOW"`
}

// GetStructuredConfig assembles the final configuration: flags first, then
// environment variables, then the optional JSON file, then defaults to fill
// whatever is still unset.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
}

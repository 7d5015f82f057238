// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client application settings derived from the shared
// structured config.
type ClientApp struct {
	// AuthToken is the bearer token for the cloud API. Empty means signed
	// out; sync is a no-op in that case.
	AuthToken string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// CloudAddress is the base address of the cloud sync API.
	CloudAddress string
	// RequestTimeout is the default timeout for outbound cloud requests.
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
}

// ClientWorkers contains background sync settings.
type ClientWorkers struct {
	// SyncInterval defines how often the periodic full sync runs.
	SyncInterval time.Duration
	// DebounceWindow is the quiet period before a debounced push fires.
	DebounceWindow time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the cloud endpoint address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			AuthToken: cfg.App.AuthToken,
		},
		Adapter: ClientAdapter{
			CloudAddress:   cfg.Adapter.CloudAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			SyncInterval:   cfg.Workers.SyncInterval,
			DebounceWindow: cfg.Workers.DebounceWindow,
		},
	}

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.CloudAddress == "" {
		return fmt.Errorf("%w: cloud address is empty", ErrConfigValidation)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: local database DSN is empty", ErrConfigValidation)
	}

	return nil
}

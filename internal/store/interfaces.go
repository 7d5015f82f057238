// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package store

import (
	"context"
	"encoding/json"

	"github.com/mlezhnev/habitsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/local_store_mock.go -package=mock

// KVRepository is the low-level key/value repository backed by the local
// SQLite database.
type KVRepository interface {
	// Get returns the raw value stored under key. The second result is
	// false when the key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set fully replaces the value stored under key (insert-or-replace).
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key and its value. Deleting an absent key is not an
	// error.
	Delete(ctx context.Context, key string) error
}

// LocalStore is the device-local persistence layer the sync engine reads
// aggregated snapshots from and writes merged or restored snapshots to.
//
// Read methods never fail on malformed stored values: a value that cannot be
// parsed is logged and treated as absent, so one corrupt key never blocks
// sync of the others.
type LocalStore interface {
	// ReadCollection returns the collection stored under key, or an empty
	// collection when the key is absent or its value is unparsable.
	ReadCollection(ctx context.Context, key string) models.Collection

	// WriteCollection fully replaces the stored value for key.
	WriteCollection(ctx context.Context, key string, records models.Collection) error

	// ReadGroup returns the settings group stored under key, or an empty
	// group when absent or unparsable.
	ReadGroup(ctx context.Context, key string) models.SettingsGroup

	// WriteGroup fully replaces the settings group stored under key.
	WriteGroup(ctx context.Context, key string, group models.SettingsGroup) error

	// ReadValue returns the raw auxiliary setting stored under key. The
	// second result is false when the key is absent.
	ReadValue(ctx context.Context, key string) (json.RawMessage, bool)

	// WriteValue fully replaces the auxiliary setting stored under key.
	WriteValue(ctx context.Context, key string, value json.RawMessage) error

	// ReadAllData reads all eight domain collections into one snapshot.
	ReadAllData(ctx context.Context) models.DataSnapshot

	// WriteAllData writes every collection of the snapshot, replacing the
	// stored values including empty ones. Callers that must not erase local
	// data merge before writing.
	WriteAllData(ctx context.Context, snap models.DataSnapshot) error

	// ReadAllSettings reads the six settings groups and folds the auxiliary
	// general settings into the General group.
	ReadAllSettings(ctx context.Context) models.SettingsSnapshot

	// WriteAllSettings writes every settings group, splitting the auxiliary
	// keys back out of the General group into their own entries.
	WriteAllSettings(ctx context.Context, snap models.SettingsSnapshot) error

	// IsEmpty reports whether the three primary collections (habits, tasks,
	// transactions) are all absent or empty. Used only to decide whether a
	// first-run restore should be offered.
	IsEmpty(ctx context.Context) bool

	// DeviceID returns the per-install device identifier, generating and
	// persisting one on first call.
	DeviceID(ctx context.Context) (string, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package models

import "time"

// DataRecord is the single per-user "data" document kept in the cloud store:
// one field per domain collection plus the upsert timestamp set by the sync
// engine on every push.
type DataRecord struct {
	UserID string `json:"user_id"`
	DataSnapshot
	UpdatedAt time.Time `json:"updated_at"`
}

// SettingsRecord is the single per-user "settings" document kept in the
// cloud store.
type SettingsRecord struct {
	UserID string `json:"user_id"`
	SettingsSnapshot
	UpdatedAt time.Time `json:"updated_at"`
}

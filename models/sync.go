// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package models

import "time"

// SyncState describes the sync engine's session-scoped state. It lives for
// one authenticated session and is never persisted; only LastSyncTime is
// surfaced to the user.
type SyncState struct {
	// IsSyncing is true only while a pull+push round-trip is in flight.
	IsSyncing bool `json:"is_syncing"`

	// LastSyncTime is the completion time of the last successful
	// round-trip, nil until the first one finishes.
	LastSyncTime *time.Time `json:"last_sync_time,omitempty"`

	// AutoSyncEnabled gates the debounced and periodic push paths.
	AutoSyncEnabled bool `json:"auto_sync_enabled"`

	// LastPushedFingerprint is the content hash of the data snapshot most
	// recently written to the cloud, used to suppress redundant pushes.
	LastPushedFingerprint string `json:"last_pushed_fingerprint,omitempty"`

	// EntitlementChecked is true once the entitlement gate has been
	// evaluated for this session.
	EntitlementChecked bool `json:"entitlement_checked"`

	// Entitled is the cached answer of the entitlement gate. Meaningless
	// until EntitlementChecked is true.
	Entitled bool `json:"entitled"`
}

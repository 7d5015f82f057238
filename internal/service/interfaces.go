// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mlezhnev/habitsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncEngine keeps the device-local store and the per-user cloud records
// consistent. One engine instance is constructed per authenticated session
// and owns the session's [models.SyncState] exclusively.
//
// No method ever panics or leaks a transport error to the UI layer: cloud
// failures are logged, surfaced through the [Notifier], and reported as a
// plain error return.
type SyncEngine interface {
	// SyncAll performs one full round-trip: pull settings and data from the
	// cloud in parallel, merge what was found into the local store (a
	// present, non-empty remote field overwrites the local one; an absent
	// or empty remote field never erases local data), then push settings
	// and data back in parallel, skipping the data push when the content
	// fingerprint has not changed since the last push.
	//
	// Returns immediately without any cloud call when the user is not
	// entitled, and is a no-op when another round-trip is in flight.
	// Partial progress on failure is kept; the next round self-heals.
	SyncAll(ctx context.Context) error

	// NotifyChanged tells the engine a watched local key was mutated. Each
	// call restarts the single debounce timer; when the quiet period
	// elapses, a push-only round runs. Unwatched keys are ignored, as is
	// everything when auto-sync is disabled.
	NotifyChanged(key string)

	// Flush cancels any pending debounce timer and runs the push-only
	// round immediately. Called on shutdown so a coalesced change is not
	// lost with the process.
	Flush(ctx context.Context) error

	// CheckCloudData reports whether the user has a data record in the
	// cloud. Used with [store.LocalStore].IsEmpty to decide whether the
	// first-run restore prompt should be shown.
	CheckCloudData(ctx context.Context) (bool, error)

	// RestoreFromCloud unconditionally replaces the whole local store with
	// the cloud records (no merge). The caller must reload all in-memory
	// state afterwards. Reserved for the explicit "this is a new device"
	// user action; it is never triggered silently.
	RestoreFromCloud(ctx context.Context) error

	// SetAutoSync toggles the debounced and periodic push paths. Explicit
	// SyncAll and RestoreFromCloud calls are unaffected.
	SetAutoSync(enabled bool)

	// State returns a copy of the session sync state for display.
	State() models.SyncState

	// SignOut clears the entitlement cache and all session sync state.
	SignOut()

	// Close stops the debounce timer. The engine must not be used after
	// Close.
	Close()
}

// SyncJob is a background worker that periodically calls SyncAll for the
// session, as a safety net behind the debounced push path.
type SyncJob interface {
	// Start launches the background sync goroutine. It syncs every
	// interval, defaulting to 5 minutes if interval is zero or negative,
	// and skips ticks while the engine's auto-sync is disabled. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated. Safe to call when the job is not running.
	Stop()
}

// DataService is the write facade domain code mutates local state through.
// Every write lands in the local store synchronously and then notifies the
// sync engine, which makes the dependency from mutation sites to sync
// explicit instead of relying on an ambient storage event.
type DataService interface {
	// SaveCollection fully replaces the collection stored under key.
	SaveCollection(ctx context.Context, key string, records models.Collection) error

	// SaveGroup fully replaces the settings group stored under key.
	SaveGroup(ctx context.Context, key string, group models.SettingsGroup) error

	// SaveValue replaces one auxiliary general setting.
	SaveValue(ctx context.Context, key string, value json.RawMessage) error
}

// Notifier carries the engine's user-visible signals (toasts). The engine
// never surfaces failures any other way.
type Notifier interface {
	Success(msg string)
	Failure(msg string)
}

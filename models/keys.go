// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package models

// Local storage keys. The restore path on a new device reads exactly the
// keys an older release wrote, so every constant here is a versioned
// contract: renaming one without a data migration breaks restore for
// existing users.
const (
	// Domain collection keys.
	KeyHabits           = "habits"
	KeyTasks            = "tasks"
	KeyTransactions     = "transactions"
	KeyTimeEntries      = "time_entries"
	KeyNotes            = "notes"
	KeyChecklists       = "checklists"
	KeyCounters         = "counters"
	KeyPomodoroSessions = "pomodoro_sessions"

	// Settings group keys.
	KeyWidgetSettings       = "widget_settings"
	KeyThemeSettings        = "theme_settings"
	KeyCelebrationSettings  = "celebration_settings"
	KeyNotificationSettings = "notification_settings"
	KeyGeneralSettings      = "general_settings"
	KeyDashboardLayout      = "dashboard_layout"

	// Auxiliary general settings stored under their own keys locally but
	// folded into the "general" group for transport.
	KeyFirstDayOfWeek = "first_day_of_week"
	KeyLocale         = "locale"
	KeyCurrency       = "currency"
	KeyAutoArchive    = "auto_archive"

	// KeyDeviceID holds the per-install device identifier. It is local-only
	// state and is never part of a snapshot.
	KeyDeviceID = "device_id"
)

// CollectionKeys returns the eight domain collection keys in their canonical
// order. The order is fixed so that aggregated reads and fingerprints are
// deterministic.
func CollectionKeys() []string {
	return []string{
		KeyHabits,
		KeyTasks,
		KeyTransactions,
		KeyTimeEntries,
		KeyNotes,
		KeyChecklists,
		KeyCounters,
		KeyPomodoroSessions,
	}
}

// PrimaryKeys returns the collections that decide whether the local store
// counts as empty for the first-run restore prompt.
func PrimaryKeys() []string {
	return []string{KeyHabits, KeyTasks, KeyTransactions}
}

// SettingsKeys returns the six settings group keys in canonical order.
func SettingsKeys() []string {
	return []string{
		KeyWidgetSettings,
		KeyThemeSettings,
		KeyCelebrationSettings,
		KeyNotificationSettings,
		KeyGeneralSettings,
		KeyDashboardLayout,
	}
}

// AuxGeneralKeys returns the individually stored settings that travel inside
// the "general" group remotely.
func AuxGeneralKeys() []string {
	return []string{KeyFirstDayOfWeek, KeyLocale, KeyCurrency, KeyAutoArchive}
}

var watchedKeys = func() map[string]struct{} {
	m := make(map[string]struct{})
	for _, k := range CollectionKeys() {
		m[k] = struct{}{}
	}
	for _, k := range SettingsKeys() {
		m[k] = struct{}{}
	}
	for _, k := range AuxGeneralKeys() {
		m[k] = struct{}{}
	}
	return m
}()

// IsWatchedKey reports whether a change to key should schedule a debounced
// push. Keys outside the registry (such as KeyDeviceID) never trigger sync.
func IsWatchedKey(key string) bool {
	_, ok := watchedKeys[key]
	return ok
}

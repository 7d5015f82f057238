// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package models

import "encoding/json"

// Collection is an ordered sequence of opaque domain records. The sync layer
// never looks inside a record; collections are moved between the stores as
// raw JSON.
type Collection []json.RawMessage

// SettingsGroup is an opaque key/value settings mapping.
type SettingsGroup map[string]json.RawMessage

// DataSnapshot is the complete set of domain collections for one user at one
// point in time.
type DataSnapshot struct {
	Habits           Collection `json:"habits,omitempty"`
	Tasks            Collection `json:"tasks,omitempty"`
	Transactions     Collection `json:"transactions,omitempty"`
	TimeEntries      Collection `json:"time_entries,omitempty"`
	Notes            Collection `json:"notes,omitempty"`
	Checklists       Collection `json:"checklists,omitempty"`
	Counters         Collection `json:"counters,omitempty"`
	PomodoroSessions Collection `json:"pomodoro_sessions,omitempty"`
}

// Collection returns a pointer to the collection stored under key, or nil if
// key is not a collection key.
func (s *DataSnapshot) Collection(key string) *Collection {
	switch key {
	case KeyHabits:
		return &s.Habits
	case KeyTasks:
		return &s.Tasks
	case KeyTransactions:
		return &s.Transactions
	case KeyTimeEntries:
		return &s.TimeEntries
	case KeyNotes:
		return &s.Notes
	case KeyChecklists:
		return &s.Checklists
	case KeyCounters:
		return &s.Counters
	case KeyPomodoroSessions:
		return &s.PomodoroSessions
	default:
		return nil
	}
}

// Empty reports whether every collection in the snapshot is empty.
func (s *DataSnapshot) Empty() bool {
	for _, key := range CollectionKeys() {
		if c := s.Collection(key); c != nil && len(*c) > 0 {
			return false
		}
	}
	return true
}

// SettingsSnapshot is the complete set of settings groups for one user. The
// General group also carries the auxiliary settings (first day of week,
// locale, currency, auto-archive) so they travel inside one remote record.
type SettingsSnapshot struct {
	Widget          SettingsGroup `json:"widget_settings,omitempty"`
	Theme           SettingsGroup `json:"theme_settings,omitempty"`
	Celebration     SettingsGroup `json:"celebration_settings,omitempty"`
	Notification    SettingsGroup `json:"notification_settings,omitempty"`
	General         SettingsGroup `json:"general_settings,omitempty"`
	DashboardLayout SettingsGroup `json:"dashboard_layout,omitempty"`
}

// Group returns a pointer to the settings group stored under key, or nil if
// key is not a settings group key.
func (s *SettingsSnapshot) Group(key string) *SettingsGroup {
	switch key {
	case KeyWidgetSettings:
		return &s.Widget
	case KeyThemeSettings:
		return &s.Theme
	case KeyCelebrationSettings:
		return &s.Celebration
	case KeyNotificationSettings:
		return &s.Notification
	case KeyGeneralSettings:
		return &s.General
	case KeyDashboardLayout:
		return &s.DashboardLayout
	default:
		return nil
	}
}

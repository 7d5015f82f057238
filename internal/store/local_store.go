// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/mlezhnev/habitsync/internal/logger"
	"github.com/mlezhnev/habitsync/models"
)

type localStore struct {
	kv     KVRepository
	logger *logger.Logger
}

func NewLocalStore(kv KVRepository, logger *logger.Logger) LocalStore {
	return &localStore{
		kv:     kv,
		logger: logger,
	}
}

// ReadCollection implements [LocalStore]. A missing key, a read error, or a
// value that fails to parse all yield an empty collection; the failure is
// logged and never propagated, so corrupt local data cannot block sync.
func (s *localStore) ReadCollection(ctx context.Context, key string) models.Collection {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil || !ok {
		if err != nil {
			s.logger.Err(err).Str("key", key).Msg("read collection failed, treating as empty")
		}
		return models.Collection{}
	}

	var records models.Collection
	if err = json.Unmarshal(raw, &records); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("corrupt stored collection, treating as empty")
		return models.Collection{}
	}

	return records
}

func (s *localStore) WriteCollection(ctx context.Context, key string, records models.Collection) error {
	if records == nil {
		records = models.Collection{}
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", key, err)
	}

	return s.kv.Set(ctx, key, raw)
}

// ReadGroup implements [LocalStore] with the same corrupt-value policy as
// ReadCollection.
func (s *localStore) ReadGroup(ctx context.Context, key string) models.SettingsGroup {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil || !ok {
		if err != nil {
			s.logger.Err(err).Str("key", key).Msg("read settings group failed, treating as empty")
		}
		return models.SettingsGroup{}
	}

	var group models.SettingsGroup
	if err = json.Unmarshal(raw, &group); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("corrupt stored settings group, treating as empty")
		return models.SettingsGroup{}
	}

	return group
}

func (s *localStore) WriteGroup(ctx context.Context, key string, group models.SettingsGroup) error {
	if group == nil {
		group = models.SettingsGroup{}
	}

	raw, err := json.Marshal(group)
	if err != nil {
		return fmt.Errorf("encode settings group %s: %w", key, err)
	}

	return s.kv.Set(ctx, key, raw)
}

func (s *localStore) ReadValue(ctx context.Context, key string) (json.RawMessage, bool) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil || !ok {
		if err != nil {
			s.logger.Err(err).Str("key", key).Msg("read value failed, treating as absent")
		}
		return nil, false
	}

	if !json.Valid(raw) {
		s.logger.Warn().Str("key", key).Msg("corrupt stored value, treating as absent")
		return nil, false
	}

	return json.RawMessage(raw), true
}

func (s *localStore) WriteValue(ctx context.Context, key string, value json.RawMessage) error {
	return s.kv.Set(ctx, key, value)
}

func (s *localStore) ReadAllData(ctx context.Context) models.DataSnapshot {
	var snap models.DataSnapshot
	for _, key := range models.CollectionKeys() {
		*snap.Collection(key) = s.ReadCollection(ctx, key)
	}
	return snap
}

func (s *localStore) WriteAllData(ctx context.Context, snap models.DataSnapshot) error {
	for _, key := range models.CollectionKeys() {
		if err := s.WriteCollection(ctx, key, *snap.Collection(key)); err != nil {
			return err
		}
	}
	return nil
}

// ReadAllSettings implements [LocalStore]. The auxiliary general settings
// live under their own local keys but travel inside the "general" group, so
// they are folded in here.
func (s *localStore) ReadAllSettings(ctx context.Context) models.SettingsSnapshot {
	var snap models.SettingsSnapshot
	for _, key := range models.SettingsKeys() {
		*snap.Group(key) = s.ReadGroup(ctx, key)
	}

	for _, key := range models.AuxGeneralKeys() {
		value, ok := s.ReadValue(ctx, key)
		if !ok {
			continue
		}
		if snap.General == nil {
			snap.General = models.SettingsGroup{}
		}
		snap.General[key] = value
	}

	return snap
}

// WriteAllSettings implements [LocalStore]. Auxiliary keys found inside the
// General group are split back out into their own entries; the remainder is
// stored as the general group.
func (s *localStore) WriteAllSettings(ctx context.Context, snap models.SettingsSnapshot) error {
	general := models.SettingsGroup{}
	for k, v := range snap.General {
		general[k] = v
	}

	for _, key := range models.AuxGeneralKeys() {
		value, ok := general[key]
		if !ok {
			continue
		}
		if err := s.WriteValue(ctx, key, value); err != nil {
			return err
		}
		delete(general, key)
	}

	for _, key := range models.SettingsKeys() {
		group := *snap.Group(key)
		if key == models.KeyGeneralSettings {
			group = general
		}
		if err := s.WriteGroup(ctx, key, group); err != nil {
			return err
		}
	}

	return nil
}

func (s *localStore) IsEmpty(ctx context.Context) bool {
	for _, key := range models.PrimaryKeys() {
		if len(s.ReadCollection(ctx, key)) > 0 {
			return false
		}
	}
	return true
}

func (s *localStore) DeviceID(ctx context.Context) (string, error) {
	raw, ok, err := s.kv.Get(ctx, models.KeyDeviceID)
	if err != nil {
		return "", fmt.Errorf("read device id: %w", err)
	}
	if ok && len(raw) > 0 {
		return string(raw), nil
	}

	id := uuid.NewString()
	if err = s.kv.Set(ctx, models.KeyDeviceID, []byte(id)); err != nil {
		return "", fmt.Errorf("persist device id: %w", err)
	}

	s.logger.Info().Str("device_id", id).Msg("generated new device id")
	return id, nil
}

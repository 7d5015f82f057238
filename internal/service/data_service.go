// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/mlezhnev/habitsync/internal/store"
	"github.com/mlezhnev/habitsync/models"
)

type dataService struct {
	local  store.LocalStore
	engine SyncEngine
}

// NewDataService creates the write facade over the local store. Every
// successful write is reported to the sync engine so the debounced push
// can pick it up.
func NewDataService(local store.LocalStore, engine SyncEngine) DataService {
	return &dataService{local: local, engine: engine}
}

// SaveCollection implements DataService.
func (s *dataService) SaveCollection(ctx context.Context, key string, records models.Collection) error {
	if !slices.Contains(models.CollectionKeys(), key) {
		return fmt.Errorf("%w: %q is not a collection key", ErrUnknownKey, key)
	}

	if err := s.local.WriteCollection(ctx, key, records); err != nil {
		return err
	}

	s.engine.NotifyChanged(key)
	return nil
}

// SaveGroup implements DataService.
func (s *dataService) SaveGroup(ctx context.Context, key string, group models.SettingsGroup) error {
	if !slices.Contains(models.SettingsKeys(), key) {
		return fmt.Errorf("%w: %q is not a settings group key", ErrUnknownKey, key)
	}

	if err := s.local.WriteGroup(ctx, key, group); err != nil {
		return err
	}

	s.engine.NotifyChanged(key)
	return nil
}

// SaveValue implements DataService.
func (s *dataService) SaveValue(ctx context.Context, key string, value json.RawMessage) error {
	if !slices.Contains(models.AuxGeneralKeys(), key) {
		return fmt.Errorf("%w: %q is not a general setting key", ErrUnknownKey, key)
	}

	if err := s.local.WriteValue(ctx, key, value); err != nil {
		return err
	}

	s.engine.NotifyChanged(key)
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package service

import (
	"time"

	"github.com/mlezhnev/habitsync/internal/adapter"
	"github.com/mlezhnev/habitsync/internal/logger"
	"github.com/mlezhnev/habitsync/internal/store"
)

type ClientServices struct {
	SyncEngine  SyncEngine
	SyncJob     SyncJob
	DataService DataService
}

func NewClientServices(
	storages *store.ClientStorages,
	cloud adapter.CloudAdapter,
	notifier Notifier,
	userID string,
	debounceWindow time.Duration,
	log *logger.Logger,
) *ClientServices {
	engine := NewSyncEngine(storages.Local, cloud, notifier, userID, debounceWindow, log)

	return &ClientServices{
		SyncEngine:  engine,
		SyncJob:     NewSyncJob(engine),
		DataService: NewDataService(storages.Local, engine),
	}
}

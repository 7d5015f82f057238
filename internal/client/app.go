// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mlezhnev/habitsync/internal/config"
	"github.com/mlezhnev/habitsync/internal/logger"
	"github.com/mlezhnev/habitsync/internal/service"
	"github.com/mlezhnev/habitsync/internal/store"
)

const flushTimeout = 10 * time.Second

type App struct {
	services *service.ClientServices
	local    store.LocalStore
	workers  config.ClientWorkers
	confirm  RestoreConfirmer
	logger   *logger.Logger
}

func NewApp(
	services *service.ClientServices,
	storages *store.ClientStorages,
	workers config.ClientWorkers,
	confirm RestoreConfirmer,
	log *logger.Logger,
) (*App, error) {
	if services == nil || storages == nil {
		return nil, errors.New("client app: services and storages are required")
	}

	return &App{
		services: services,
		local:    storages.Local,
		workers:  workers,
		confirm:  confirm,
		logger:   log,
	}, nil
}

// Run blocks until the process receives SIGINT or SIGTERM. Sync failures
// along the way never abort the application; the local store stays the
// source of truth and the engine retries on its own schedule.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.maybeRestoreFirstRun(ctx)

	if err := a.services.SyncEngine.SyncAll(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial sync failed, continuing offline")
	}

	a.services.SyncJob.Start(ctx, a.workers.SyncInterval)
	defer a.services.SyncJob.Stop()

	<-ctx.Done()
	a.logger.Info().Msg("shutdown signal received")

	return a.shutdown()
}

// maybeRestoreFirstRun offers a cloud restore when this device is empty but
// the user already has cloud data. The restore never happens silently: it
// requires an explicit confirmation.
func (a *App) maybeRestoreFirstRun(ctx context.Context) {
	if !a.local.IsEmpty(ctx) || a.confirm == nil {
		return
	}

	has, err := a.services.SyncEngine.CheckCloudData(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("could not check for cloud data, skipping restore offer")
		return
	}
	if !has || !a.confirm() {
		return
	}

	if err := a.services.SyncEngine.RestoreFromCloud(ctx); err != nil {
		if errors.Is(err, service.ErrNoCloudData) {
			return
		}
		a.logger.Err(err).Msg("restore from cloud failed")
	}
}

// shutdown flushes a pending debounced change so it is not lost with the
// process. The flush gets its own deadline because the signal context is
// already cancelled at this point.
func (a *App) shutdown() error {
	flushCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	if err := a.services.SyncEngine.Flush(flushCtx); err != nil {
		a.logger.Warn().Err(err).Msg("final flush failed")
	}
	a.services.SyncEngine.Close()

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package service

import (
	"context"
	"sync"
	"time"
)

const defaultSyncInterval = 5 * time.Minute

type syncJob struct {
	engine SyncEngine

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that calls engine.SyncAll on a ticker. The
// job is idle until Start is called.
func NewSyncJob(engine SyncEngine) SyncJob {
	return &syncJob{engine: engine}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that calls SyncAll every interval. If
// interval is zero or negative it defaults to 5 minutes. Ticks are skipped
// while the engine's auto-sync is disabled. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if !j.engine.State().AutoSyncEnabled {
					continue
				}
				_ = j.engine.SyncAll(jobCtx)
			}
		}
	}()
}

// Stop implements SyncJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the
// job is not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

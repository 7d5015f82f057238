// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mlezhnev/habitsync/models"
)

// spyEngine counts SyncAll calls; every other SyncEngine method is a no-op.
// Auto-sync is reported enabled unless switched off via SetAutoSync.
type spyEngine struct {
	calls       atomic.Int64
	autoSyncOff atomic.Bool
	err         error
}

func (s *spyEngine) SyncAll(context.Context) error { s.calls.Add(1); return s.err }

func (s *spyEngine) SetAutoSync(enabled bool) { s.autoSyncOff.Store(!enabled) }

func (s *spyEngine) State() models.SyncState {
	return models.SyncState{AutoSyncEnabled: !s.autoSyncOff.Load()}
}

func (s *spyEngine) NotifyChanged(string)                         {}
func (s *spyEngine) Flush(context.Context) error                  { return nil }
func (s *spyEngine) CheckCloudData(context.Context) (bool, error) { return false, nil }
func (s *spyEngine) RestoreFromCloud(context.Context) error       { return nil }
func (s *spyEngine) SignOut()                                     {}
func (s *spyEngine) Close()                                       {}

var _ SyncEngine = (*spyEngine)(nil)

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestSyncJob_Start_CallsSyncAll(t *testing.T) {
	spy := &spyEngine{}
	job := NewSyncJob(spy)

	// 10ms interval, ~5 ticks in 55ms.
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "expected several ticks, got %d", got)
}

func TestSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyEngine{}
	job := NewSyncJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no ticks may land after Stop")
}

func TestSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewSyncJob(&spyEngine{})
	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewSyncJob(&spyEngine{})

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()
	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_Start_DefaultInterval(t *testing.T) {
	spy := &spyEngine{}
	job := NewSyncJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	// interval <= 0 falls back to 5 minutes, so nothing fires within 20ms.
	job.Start(ctx, 0)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestSyncJob_AutoSyncDisabled_SkipsTicks(t *testing.T) {
	spy := &spyEngine{}
	spy.SetAutoSync(false)
	job := NewSyncJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)

	assert.Equal(t, int64(0), spy.calls.Load(), "no full rounds may run while auto-sync is off")

	// Re-enabling picks the ticker back up without a restart.
	spy.SetAutoSync(true)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), int64(0))
}

func TestSyncJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spyEngine{}
	job := NewSyncJob(spy)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	callsBefore := spy.calls.Load()
	assert.Greater(t, callsBefore, int64(0))

	// Start on a running job stops the previous goroutine first.
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore)
}

func TestSyncJob_ContextCancel_StopsJob(t *testing.T) {
	spy := &spyEngine{}
	job := NewSyncJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	// Stop must return promptly after the parent context is cancelled.
	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

func TestSyncJob_SyncError_DoesNotStopJob(t *testing.T) {
	spy := &spyEngine{err: assert.AnError}
	job := NewSyncJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "ticks continue despite sync errors, got %d", got)
}

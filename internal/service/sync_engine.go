// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"dario.cat/mergo"

	"github.com/mlezhnev/habitsync/internal/adapter"
	"github.com/mlezhnev/habitsync/internal/logger"
	"github.com/mlezhnev/habitsync/internal/store"
	"github.com/mlezhnev/habitsync/internal/utils"
	"github.com/mlezhnev/habitsync/models"
)

const defaultDebounceWindow = 5 * time.Second

type syncEngine struct {
	local    store.LocalStore
	cloud    adapter.CloudAdapter
	notifier Notifier
	logger   *logger.Logger

	userID         string
	debounceWindow time.Duration

	mu     sync.Mutex
	state  models.SyncState
	timer  *time.Timer
	closed bool
}

// NewSyncEngine constructs a SyncEngine for one authenticated session.
// userID may be empty for a signed-out session, in which case every
// operation is a no-op. A non-positive debounceWindow falls back to 5
// seconds.
func NewSyncEngine(
	local store.LocalStore,
	cloud adapter.CloudAdapter,
	notifier Notifier,
	userID string,
	debounceWindow time.Duration,
	log *logger.Logger,
) SyncEngine {
	if debounceWindow <= 0 {
		debounceWindow = defaultDebounceWindow
	}

	return &syncEngine{
		local:          local,
		cloud:          cloud,
		notifier:       notifier,
		logger:         log,
		userID:         userID,
		debounceWindow: debounceWindow,
		state:          models.SyncState{AutoSyncEnabled: true},
	}
}

// entitled evaluates the entitlement gate once per session and caches the
// answer. A failed check counts as not entitled: no sync rather than
// unauthorized sync.
func (e *syncEngine) entitled(ctx context.Context) bool {
	e.mu.Lock()
	if e.closed || e.userID == "" {
		e.mu.Unlock()
		return false
	}
	if e.state.EntitlementChecked {
		ok := e.state.Entitled
		e.mu.Unlock()
		return ok
	}
	uid := e.userID
	e.mu.Unlock()

	ok, err := e.cloud.CheckEntitlement(ctx, uid)
	if err != nil {
		e.logger.Warn().Err(err).Msg("entitlement check failed, treating as not entitled")
		ok = false
	}

	e.mu.Lock()
	e.state.EntitlementChecked = true
	e.state.Entitled = ok
	e.mu.Unlock()

	return ok
}

// beginRound flips IsSyncing on, refusing when a round-trip is already in
// flight so two rounds can never race on the same upsert key.
func (e *syncEngine) beginRound() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.state.IsSyncing {
		return false
	}
	e.state.IsSyncing = true
	return true
}

func (e *syncEngine) endRound() {
	e.mu.Lock()
	e.state.IsSyncing = false
	e.mu.Unlock()
}

// user snapshots the session user under the lock. A round keeps the snapshot
// it took at its start even when a sign-out lands mid-flight.
func (e *syncEngine) user() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.userID
}

func (e *syncEngine) completeRound() {
	now := time.Now().UTC()
	e.mu.Lock()
	e.state.LastSyncTime = &now
	e.mu.Unlock()
}

// SyncAll implements [SyncEngine].
func (e *syncEngine) SyncAll(ctx context.Context) error {
	if !e.entitled(ctx) {
		return nil
	}
	if !e.beginRound() {
		e.logger.Debug().Msg("sync round already in flight, skipping")
		return nil
	}
	defer e.endRound()

	uid := e.user()

	// Pull completes fully before push begins, so a push never sends data
	// that the concurrent pull half of the same round would overwrite.
	if err := e.pullAndMerge(ctx, uid); err != nil {
		e.logger.Err(err).Msg("sync pull failed")
		e.notifier.Failure("Sync failed: could not fetch cloud data")
		return err
	}

	if err := e.pushLocal(ctx, uid); err != nil {
		e.logger.Err(err).Msg("sync push failed")
		e.notifier.Failure("Sync failed: could not upload changes")
		return err
	}

	e.completeRound()
	e.notifier.Success("Sync complete")
	return nil
}

// pullAndMerge fans out the two pulls, waits for both, and merges whatever
// was found into the local store. A missing cloud record is not an error;
// the user simply has not pushed from any device yet.
func (e *syncEngine) pullAndMerge(ctx context.Context, uid string) error {
	var (
		wg sync.WaitGroup

		dataRec       models.DataRecord
		settingsRec   models.SettingsRecord
		dataFound     bool
		settingsFound bool
		dataErr       error
		settingsErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		rec, err := e.cloud.PullData(ctx, uid)
		switch {
		case err == nil:
			dataRec, dataFound = rec, true
		case errors.Is(err, adapter.ErrNotFound):
		default:
			dataErr = fmt.Errorf("pull data: %w", err)
		}
	}()
	go func() {
		defer wg.Done()
		rec, err := e.cloud.PullSettings(ctx, uid)
		switch {
		case err == nil:
			settingsRec, settingsFound = rec, true
		case errors.Is(err, adapter.ErrNotFound):
		default:
			settingsErr = fmt.Errorf("pull settings: %w", err)
		}
	}()
	wg.Wait()

	if err := errors.Join(dataErr, settingsErr); err != nil {
		return err
	}

	if settingsFound {
		if err := e.mergeSettings(ctx, settingsRec.SettingsSnapshot); err != nil {
			return err
		}
	}
	if dataFound {
		if err := e.mergeData(ctx, dataRec.DataSnapshot); err != nil {
			return err
		}
	}

	return nil
}

// mergeData applies the remote-wins merge policy: a non-empty remote
// collection replaces the local one, while an absent or empty remote
// collection leaves local data untouched. mergo only overrides destination
// fields with non-empty source values, which is exactly that policy.
func (e *syncEngine) mergeData(ctx context.Context, remote models.DataSnapshot) error {
	merged := e.local.ReadAllData(ctx)
	if err := mergo.Merge(&merged, remote, mergo.WithOverride); err != nil {
		return fmt.Errorf("merge data snapshot: %w", err)
	}
	return e.local.WriteAllData(ctx, merged)
}

// mergeSettings merges key-by-key inside each group: remote keys win,
// local-only keys survive, an empty remote group erases nothing.
func (e *syncEngine) mergeSettings(ctx context.Context, remote models.SettingsSnapshot) error {
	merged := e.local.ReadAllSettings(ctx)
	if err := mergo.Merge(&merged, remote, mergo.WithOverride); err != nil {
		return fmt.Errorf("merge settings snapshot: %w", err)
	}
	return e.local.WriteAllSettings(ctx, merged)
}

// pushLocal uploads the aggregated local state: settings always, data only
// when its fingerprint moved since the last successful push. Both uploads
// run in parallel and failures are joined; a partial round is kept as-is
// because the next push repeats the full snapshot anyway.
func (e *syncEngine) pushLocal(ctx context.Context, uid string) error {
	data := e.local.ReadAllData(ctx)
	settings := e.local.ReadAllSettings(ctx)

	fp, err := utils.Fingerprint(data)
	if err != nil {
		return fmt.Errorf("fingerprint data snapshot: %w", err)
	}

	e.mu.Lock()
	lastFP := e.state.LastPushedFingerprint
	e.mu.Unlock()

	now := time.Now().UTC()

	var (
		wg          sync.WaitGroup
		dataErr     error
		settingsErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		rec := models.SettingsRecord{UserID: uid, SettingsSnapshot: settings, UpdatedAt: now}
		if err := e.cloud.PushSettings(ctx, rec); err != nil {
			settingsErr = fmt.Errorf("push settings: %w", err)
		}
	}()

	if utils.Changed(fp, lastFP) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := models.DataRecord{UserID: uid, DataSnapshot: data, UpdatedAt: now}
			if err := e.cloud.PushData(ctx, rec); err != nil {
				dataErr = fmt.Errorf("push data: %w", err)
			}
		}()
	} else {
		e.logger.Debug().Msg("data unchanged since last push, skipping data upload")
	}
	wg.Wait()

	if dataErr == nil {
		e.mu.Lock()
		e.state.LastPushedFingerprint = fp
		e.mu.Unlock()
	}

	return errors.Join(dataErr, settingsErr)
}

// NotifyChanged implements [SyncEngine].
func (e *syncEngine) NotifyChanged(key string) {
	if !models.IsWatchedKey(key) {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || !e.state.AutoSyncEnabled {
		return
	}

	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(e.debounceWindow, e.debouncedPush)
	e.logger.Debug().Str("key", key).Dur("window", e.debounceWindow).Msg("debounce timer reset")
}

// debouncedPush is the steady-state keep-cloud-current path: push-only, no
// pull. The periodic full sync bounds how long the pull side can lag.
func (e *syncEngine) debouncedPush() {
	ctx := context.Background()

	if !e.entitled(ctx) {
		return
	}
	if !e.beginRound() {
		// A full round is in flight; it will push this change itself.
		return
	}
	defer e.endRound()

	if err := e.pushLocal(ctx, e.user()); err != nil {
		e.logger.Err(err).Msg("debounced push failed")
		e.notifier.Failure("Cloud backup failed, will retry on next change")
		return
	}
	e.completeRound()
}

// Flush implements [SyncEngine].
func (e *syncEngine) Flush(ctx context.Context) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrEngineClosed
	}
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.mu.Unlock()

	if !e.entitled(ctx) {
		return nil
	}
	if !e.beginRound() {
		return nil
	}
	defer e.endRound()

	if err := e.pushLocal(ctx, e.user()); err != nil {
		e.logger.Err(err).Msg("flush push failed")
		return err
	}

	e.completeRound()
	return nil
}

// CheckCloudData implements [SyncEngine].
func (e *syncEngine) CheckCloudData(ctx context.Context) (bool, error) {
	if !e.entitled(ctx) {
		return false, nil
	}

	_, err := e.cloud.PullData(ctx, e.user())
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, adapter.ErrNotFound):
		return false, nil
	default:
		e.logger.Err(err).Msg("check cloud data failed")
		return false, err
	}
}

// RestoreFromCloud implements [SyncEngine].
func (e *syncEngine) RestoreFromCloud(ctx context.Context) error {
	if !e.entitled(ctx) {
		return nil
	}
	if !e.beginRound() {
		return nil
	}
	defer e.endRound()

	uid := e.user()

	dataRec, err := e.cloud.PullData(ctx, uid)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return ErrNoCloudData
		}
		e.logger.Err(err).Msg("restore pull data failed")
		e.notifier.Failure("Restore failed: could not fetch cloud data")
		return fmt.Errorf("restore pull data: %w", err)
	}

	settingsRec, settingsErr := e.cloud.PullSettings(ctx, uid)
	if settingsErr != nil && !errors.Is(settingsErr, adapter.ErrNotFound) {
		e.logger.Err(settingsErr).Msg("restore pull settings failed")
		e.notifier.Failure("Restore failed: could not fetch cloud settings")
		return fmt.Errorf("restore pull settings: %w", settingsErr)
	}

	// Full replace, empty collections included: restore intentionally
	// discards whatever this device held.
	if err = e.local.WriteAllData(ctx, dataRec.DataSnapshot); err != nil {
		e.notifier.Failure("Restore failed: could not write local data")
		return fmt.Errorf("restore write data: %w", err)
	}
	if settingsErr == nil {
		if err = e.local.WriteAllSettings(ctx, settingsRec.SettingsSnapshot); err != nil {
			e.notifier.Failure("Restore failed: could not write local settings")
			return fmt.Errorf("restore write settings: %w", err)
		}
	}

	fp, err := utils.Fingerprint(e.local.ReadAllData(ctx))
	if err != nil {
		return fmt.Errorf("fingerprint restored snapshot: %w", err)
	}

	e.mu.Lock()
	e.state.LastPushedFingerprint = fp
	e.mu.Unlock()
	e.completeRound()

	e.notifier.Success("Restore complete, restart the app to reload your data")
	return nil
}

// SetAutoSync implements [SyncEngine]. Disabling also cancels a pending
// debounce timer.
func (e *syncEngine) SetAutoSync(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.AutoSyncEnabled = enabled
	if !enabled && e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// State implements [SyncEngine].
func (e *syncEngine) State() models.SyncState {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.state
	if st.LastSyncTime != nil {
		t := *st.LastSyncTime
		st.LastSyncTime = &t
	}
	return st
}

// SignOut implements [SyncEngine]. Session sync state, including the cached
// entitlement answer, does not survive a sign-out.
func (e *syncEngine) SignOut() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	auto := e.state.AutoSyncEnabled
	e.state = models.SyncState{AutoSyncEnabled: auto}
	e.userID = ""
}

// Close implements [SyncEngine].
func (e *syncEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.closed = true
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mlezhnev/habitsync/internal/adapter"
	"github.com/mlezhnev/habitsync/internal/config"
	"github.com/mlezhnev/habitsync/internal/logger"
	"github.com/mlezhnev/habitsync/internal/mock"
	"github.com/mlezhnev/habitsync/internal/store"
	"github.com/mlezhnev/habitsync/models"
)

const testUserID = "user-1"

// ── helpers ──────────────────────────────────────────────────────────────────

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Failure(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, msg)
}

func (n *recordingNotifier) counts() (successes, failures int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.successes), len(n.failures)
}

func newTestLocalStore(t *testing.T) store.LocalStore {
	t.Helper()

	log := logger.Nop()
	db, err := store.NewConnectSQLite(context.Background(), config.ClientDB{DSN: ":memory:"}, log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	return store.NewLocalStore(store.NewKVRepository(db, log), log)
}

func newTestEngine(t *testing.T, userID string, window time.Duration) (SyncEngine, *mock.MockCloudAdapter, store.LocalStore, *recordingNotifier) {
	t.Helper()

	ctrl := gomock.NewController(t)
	cloud := mock.NewMockCloudAdapter(ctrl)
	local := newTestLocalStore(t)
	notifier := &recordingNotifier{}

	eng := NewSyncEngine(local, cloud, notifier, userID, window, logger.Nop())
	t.Cleanup(eng.Close)

	return eng, cloud, local, notifier
}

func rawRecords(ss ...string) models.Collection {
	c := make(models.Collection, 0, len(ss))
	for _, s := range ss {
		c = append(c, json.RawMessage(s))
	}
	return c
}

func expectEntitled(cloud *mock.MockCloudAdapter) {
	cloud.EXPECT().CheckEntitlement(gomock.Any(), testUserID).Return(true, nil).Times(1)
}

func expectNoCloudRecords(cloud *mock.MockCloudAdapter, times int) {
	cloud.EXPECT().PullData(gomock.Any(), testUserID).
		Return(models.DataRecord{}, adapter.ErrNotFound).Times(times)
	cloud.EXPECT().PullSettings(gomock.Any(), testUserID).
		Return(models.SettingsRecord{}, adapter.ErrNotFound).Times(times)
}

// ── entitlement gate ─────────────────────────────────────────────────────────

func TestSyncEngine_SyncAll_NotEntitled(t *testing.T) {
	eng, cloud, _, notifier := newTestEngine(t, testUserID, 0)

	// Checked once, cached for the session: no pull or push expectations.
	cloud.EXPECT().CheckEntitlement(gomock.Any(), testUserID).Return(false, nil).Times(1)

	require.NoError(t, eng.SyncAll(context.Background()))
	require.NoError(t, eng.SyncAll(context.Background()))

	successes, failures := notifier.counts()
	assert.Zero(t, successes)
	assert.Zero(t, failures)

	st := eng.State()
	assert.True(t, st.EntitlementChecked)
	assert.False(t, st.Entitled)
	assert.Nil(t, st.LastSyncTime)
}

func TestSyncEngine_SyncAll_EntitlementErrorFailsClosed(t *testing.T) {
	eng, cloud, _, _ := newTestEngine(t, testUserID, 0)

	cloud.EXPECT().CheckEntitlement(gomock.Any(), testUserID).
		Return(false, adapter.ErrBadGateway).Times(1)

	require.NoError(t, eng.SyncAll(context.Background()))

	st := eng.State()
	assert.True(t, st.EntitlementChecked)
	assert.False(t, st.Entitled)
}

func TestSyncEngine_SyncAll_SignedOutUser(t *testing.T) {
	eng, _, _, _ := newTestEngine(t, "", 0)

	// No expectations at all: an empty userID must not reach the cloud.
	require.NoError(t, eng.SyncAll(context.Background()))
	assert.False(t, eng.State().EntitlementChecked)
}

// ── SyncAll ──────────────────────────────────────────────────────────────────

func TestSyncEngine_SyncAll_FirstRoundPushesEverything(t *testing.T) {
	eng, cloud, local, notifier := newTestEngine(t, testUserID, 0)
	ctx := context.Background()

	require.NoError(t, local.WriteCollection(ctx, models.KeyHabits, rawRecords(`{"id":"h1"}`)))

	expectEntitled(cloud)
	expectNoCloudRecords(cloud, 1)

	var pushedData models.DataRecord
	cloud.EXPECT().PushData(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.DataRecord) error {
			pushedData = rec
			return nil
		}).Times(1)
	cloud.EXPECT().PushSettings(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	require.NoError(t, eng.SyncAll(ctx))

	assert.Equal(t, testUserID, pushedData.UserID)
	assert.False(t, pushedData.UpdatedAt.IsZero())
	require.Len(t, pushedData.Habits, 1)
	assert.JSONEq(t, `{"id":"h1"}`, string(pushedData.Habits[0]))

	st := eng.State()
	require.NotNil(t, st.LastSyncTime)
	assert.NotEmpty(t, st.LastPushedFingerprint)
	assert.False(t, st.IsSyncing)

	successes, failures := notifier.counts()
	assert.Equal(t, 1, successes)
	assert.Zero(t, failures)
}

func TestSyncEngine_SyncAll_MergePreservesLocalOnlyData(t *testing.T) {
	eng, cloud, local, _ := newTestEngine(t, testUserID, 0)
	ctx := context.Background()

	// Local device has habits and tasks; the cloud record only knows about
	// habits. The remote habits must win and the local tasks must survive.
	require.NoError(t, local.WriteCollection(ctx, models.KeyHabits, rawRecords(`{"id":"h-local"}`)))
	require.NoError(t, local.WriteCollection(ctx, models.KeyTasks, rawRecords(`{"id":"t-local"}`)))
	require.NoError(t, local.WriteGroup(ctx, models.KeyWidgetSettings,
		models.SettingsGroup{"size": json.RawMessage(`"small"`)}))

	remoteData := models.DataRecord{
		UserID:       testUserID,
		DataSnapshot: models.DataSnapshot{Habits: rawRecords(`{"id":"h-remote"}`)},
		UpdatedAt:    time.Now().UTC(),
	}
	remoteSettings := models.SettingsRecord{
		UserID: testUserID,
		SettingsSnapshot: models.SettingsSnapshot{
			Widget: models.SettingsGroup{"color": json.RawMessage(`"green"`)},
		},
		UpdatedAt: time.Now().UTC(),
	}

	expectEntitled(cloud)
	cloud.EXPECT().PullData(gomock.Any(), testUserID).Return(remoteData, nil).Times(1)
	cloud.EXPECT().PullSettings(gomock.Any(), testUserID).Return(remoteSettings, nil).Times(1)

	var pushedData models.DataRecord
	cloud.EXPECT().PushData(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.DataRecord) error {
			pushedData = rec
			return nil
		}).Times(1)
	cloud.EXPECT().PushSettings(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	require.NoError(t, eng.SyncAll(ctx))

	habits := local.ReadCollection(ctx, models.KeyHabits)
	require.Len(t, habits, 1)
	assert.JSONEq(t, `{"id":"h-remote"}`, string(habits[0]))

	tasks := local.ReadCollection(ctx, models.KeyTasks)
	require.Len(t, tasks, 1)
	assert.JSONEq(t, `{"id":"t-local"}`, string(tasks[0]))

	widget := local.ReadGroup(ctx, models.KeyWidgetSettings)
	assert.JSONEq(t, `"green"`, string(widget["color"]))
	assert.JSONEq(t, `"small"`, string(widget["size"]))

	// The push carries the merged state, not the pre-merge local one.
	require.Len(t, pushedData.Habits, 1)
	assert.JSONEq(t, `{"id":"h-remote"}`, string(pushedData.Habits[0]))
	require.Len(t, pushedData.Tasks, 1)
}

func TestSyncEngine_SyncAll_EmptyRemoteCollectionKeepsLocal(t *testing.T) {
	eng, cloud, local, _ := newTestEngine(t, testUserID, 0)
	ctx := context.Background()

	require.NoError(t, local.WriteCollection(ctx, models.KeyNotes, rawRecords(`{"id":"n1"}`, `{"id":"n2"}`)))

	// A data record whose notes field is empty: missing remote data must
	// never erase what the device holds.
	remoteData := models.DataRecord{UserID: testUserID, UpdatedAt: time.Now().UTC()}

	expectEntitled(cloud)
	cloud.EXPECT().PullData(gomock.Any(), testUserID).Return(remoteData, nil).Times(1)
	cloud.EXPECT().PullSettings(gomock.Any(), testUserID).
		Return(models.SettingsRecord{}, adapter.ErrNotFound).Times(1)
	cloud.EXPECT().PushData(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	cloud.EXPECT().PushSettings(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	require.NoError(t, eng.SyncAll(ctx))

	assert.Len(t, local.ReadCollection(ctx, models.KeyNotes), 2)
}

func TestSyncEngine_SyncAll_FingerprintSkipsUnchangedData(t *testing.T) {
	eng, cloud, local, _ := newTestEngine(t, testUserID, 0)
	ctx := context.Background()

	require.NoError(t, local.WriteCollection(ctx, models.KeyHabits, rawRecords(`{"id":"h1"}`)))

	expectEntitled(cloud)
	expectNoCloudRecords(cloud, 2)

	// Settings are pushed every round; data only when the fingerprint moved.
	cloud.EXPECT().PushData(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	cloud.EXPECT().PushSettings(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	require.NoError(t, eng.SyncAll(ctx))
	require.NoError(t, eng.SyncAll(ctx))
}

func TestSyncEngine_SyncAll_PullFailureSkipsPush(t *testing.T) {
	eng, cloud, _, notifier := newTestEngine(t, testUserID, 0)

	expectEntitled(cloud)
	cloud.EXPECT().PullData(gomock.Any(), testUserID).
		Return(models.DataRecord{}, adapter.ErrInternalServerError).Times(1)
	cloud.EXPECT().PullSettings(gomock.Any(), testUserID).
		Return(models.SettingsRecord{}, adapter.ErrNotFound).Times(1)

	err := eng.SyncAll(context.Background())
	require.ErrorIs(t, err, adapter.ErrInternalServerError)

	_, failures := notifier.counts()
	assert.Equal(t, 1, failures)
	assert.Nil(t, eng.State().LastSyncTime)
	assert.False(t, eng.State().IsSyncing)
}

func TestSyncEngine_SyncAll_DataPushFailureKeepsFingerprintDirty(t *testing.T) {
	eng, cloud, local, _ := newTestEngine(t, testUserID, 0)
	ctx := context.Background()

	require.NoError(t, local.WriteCollection(ctx, models.KeyHabits, rawRecords(`{"id":"h1"}`)))

	expectEntitled(cloud)
	expectNoCloudRecords(cloud, 2)
	cloud.EXPECT().PushSettings(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	// First round: data push fails, fingerprint must stay unset so the next
	// round retries the same content.
	gomock.InOrder(
		cloud.EXPECT().PushData(gomock.Any(), gomock.Any()).Return(adapter.ErrBadGateway),
		cloud.EXPECT().PushData(gomock.Any(), gomock.Any()).Return(nil),
	)

	err := eng.SyncAll(ctx)
	require.ErrorIs(t, err, adapter.ErrBadGateway)
	assert.Empty(t, eng.State().LastPushedFingerprint)

	require.NoError(t, eng.SyncAll(ctx))
	assert.NotEmpty(t, eng.State().LastPushedFingerprint)
}

func TestSyncEngine_SyncAll_SingleFlight(t *testing.T) {
	eng, cloud, _, _ := newTestEngine(t, testUserID, 0)

	release := make(chan struct{})

	expectEntitled(cloud)
	cloud.EXPECT().PullData(gomock.Any(), testUserID).
		DoAndReturn(func(context.Context, string) (models.DataRecord, error) {
			<-release
			return models.DataRecord{}, adapter.ErrNotFound
		}).Times(1)
	cloud.EXPECT().PullSettings(gomock.Any(), testUserID).
		Return(models.SettingsRecord{}, adapter.ErrNotFound).Times(1)
	cloud.EXPECT().PushData(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	cloud.EXPECT().PushSettings(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	done := make(chan error, 1)
	go func() { done <- eng.SyncAll(context.Background()) }()

	require.Eventually(t, func() bool { return eng.State().IsSyncing }, time.Second, time.Millisecond)

	// While the first round is blocked in PullData, a second call must be a
	// silent no-op rather than a second set of cloud calls.
	require.NoError(t, eng.SyncAll(context.Background()))

	close(release)
	require.NoError(t, <-done)
	assert.False(t, eng.State().IsSyncing)
}

// ── debounced push ───────────────────────────────────────────────────────────

func TestSyncEngine_NotifyChanged_CoalescesIntoOnePush(t *testing.T) {
	eng, cloud, local, _ := newTestEngine(t, testUserID, 20*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, local.WriteCollection(ctx, models.KeyTasks, rawRecords(`{"id":"t1"}`)))

	expectEntitled(cloud)
	cloud.EXPECT().PushData(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	cloud.EXPECT().PushSettings(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// Three rapid writes, one push. No pull expectations: the debounced
	// path is push-only.
	eng.NotifyChanged(models.KeyTasks)
	eng.NotifyChanged(models.KeyTasks)
	eng.NotifyChanged(models.KeyHabits)

	require.Eventually(t, func() bool { return eng.State().LastSyncTime != nil },
		time.Second, 5*time.Millisecond)
}

func TestSyncEngine_NotifyChanged_IgnoresUnwatchedKey(t *testing.T) {
	eng, _, _, _ := newTestEngine(t, testUserID, 5*time.Millisecond)

	// No expectations: an unknown key must not arm the timer.
	eng.NotifyChanged("scratch_buffer")
	eng.NotifyChanged(models.KeyDeviceID)

	time.Sleep(30 * time.Millisecond)
	assert.Nil(t, eng.State().LastSyncTime)
}

func TestSyncEngine_NotifyChanged_AutoSyncDisabled(t *testing.T) {
	eng, _, _, _ := newTestEngine(t, testUserID, 5*time.Millisecond)

	eng.SetAutoSync(false)
	eng.NotifyChanged(models.KeyHabits)

	time.Sleep(30 * time.Millisecond)
	assert.Nil(t, eng.State().LastSyncTime)
}

func TestSyncEngine_Flush_RunsPendingPushImmediately(t *testing.T) {
	eng, cloud, local, _ := newTestEngine(t, testUserID, time.Minute)
	ctx := context.Background()

	require.NoError(t, local.WriteCollection(ctx, models.KeyCounters, rawRecords(`{"id":"c1"}`)))

	expectEntitled(cloud)
	cloud.EXPECT().PushData(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	cloud.EXPECT().PushSettings(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// The armed one-minute timer must be cancelled, not left to fire later.
	eng.NotifyChanged(models.KeyCounters)
	require.NoError(t, eng.Flush(ctx))

	require.NotNil(t, eng.State().LastSyncTime)
	time.Sleep(20 * time.Millisecond)
}

// ── restore ──────────────────────────────────────────────────────────────────

func TestSyncEngine_RestoreFromCloud_ReplacesLocalState(t *testing.T) {
	eng, cloud, local, notifier := newTestEngine(t, testUserID, 0)
	ctx := context.Background()

	// Local-only data that a plain sync would preserve; restore must not.
	require.NoError(t, local.WriteCollection(ctx, models.KeyTasks, rawRecords(`{"id":"t-old"}`)))

	remoteData := models.DataRecord{
		UserID:       testUserID,
		DataSnapshot: models.DataSnapshot{Habits: rawRecords(`{"id":"h-cloud"}`)},
		UpdatedAt:    time.Now().UTC(),
	}

	expectEntitled(cloud)
	cloud.EXPECT().PullData(gomock.Any(), testUserID).Return(remoteData, nil).Times(1)
	cloud.EXPECT().PullSettings(gomock.Any(), testUserID).
		Return(models.SettingsRecord{}, adapter.ErrNotFound).Times(1)

	require.NoError(t, eng.RestoreFromCloud(ctx))

	habits := local.ReadCollection(ctx, models.KeyHabits)
	require.Len(t, habits, 1)
	assert.JSONEq(t, `{"id":"h-cloud"}`, string(habits[0]))
	assert.Empty(t, local.ReadCollection(ctx, models.KeyTasks))

	// The restored content counts as pushed: the next push-only round must
	// not re-upload it.
	assert.NotEmpty(t, eng.State().LastPushedFingerprint)
	require.NotNil(t, eng.State().LastSyncTime)

	successes, _ := notifier.counts()
	assert.Equal(t, 1, successes)
}

func TestSyncEngine_RestoreFromCloud_NoCloudData(t *testing.T) {
	eng, cloud, local, _ := newTestEngine(t, testUserID, 0)
	ctx := context.Background()

	require.NoError(t, local.WriteCollection(ctx, models.KeyHabits, rawRecords(`{"id":"h1"}`)))

	expectEntitled(cloud)
	cloud.EXPECT().PullData(gomock.Any(), testUserID).
		Return(models.DataRecord{}, adapter.ErrNotFound).Times(1)

	require.ErrorIs(t, eng.RestoreFromCloud(ctx), ErrNoCloudData)

	// Nothing was written.
	assert.Len(t, local.ReadCollection(ctx, models.KeyHabits), 1)
}

// ── CheckCloudData ───────────────────────────────────────────────────────────

func TestSyncEngine_CheckCloudData(t *testing.T) {
	tests := []struct {
		name    string
		pullErr error
		want    bool
		wantErr error
	}{
		{name: "record exists", pullErr: nil, want: true},
		{name: "no record", pullErr: adapter.ErrNotFound, want: false},
		{name: "transport failure", pullErr: adapter.ErrBadGateway, want: false, wantErr: adapter.ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, cloud, _, _ := newTestEngine(t, testUserID, 0)

			expectEntitled(cloud)
			cloud.EXPECT().PullData(gomock.Any(), testUserID).
				Return(models.DataRecord{}, tt.pullErr).Times(1)

			got, err := eng.CheckCloudData(context.Background())
			assert.Equal(t, tt.want, got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// ── session lifecycle ────────────────────────────────────────────────────────

func TestSyncEngine_SignOut_ClearsSessionState(t *testing.T) {
	eng, cloud, _, _ := newTestEngine(t, testUserID, 0)

	expectEntitled(cloud)
	expectNoCloudRecords(cloud, 1)
	cloud.EXPECT().PushData(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	cloud.EXPECT().PushSettings(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	require.NoError(t, eng.SyncAll(context.Background()))
	require.NotNil(t, eng.State().LastSyncTime)

	eng.SignOut()

	st := eng.State()
	assert.False(t, st.EntitlementChecked)
	assert.Empty(t, st.LastPushedFingerprint)
	assert.Nil(t, st.LastSyncTime)
	assert.True(t, st.AutoSyncEnabled)

	// A signed-out engine never reaches the cloud again.
	require.NoError(t, eng.SyncAll(context.Background()))
}

func TestSyncEngine_SignOut_DuringRoundKeepsRoundUser(t *testing.T) {
	eng, cloud, _, _ := newTestEngine(t, testUserID, 0)

	release := make(chan struct{})

	expectEntitled(cloud)
	cloud.EXPECT().PullData(gomock.Any(), testUserID).
		DoAndReturn(func(context.Context, string) (models.DataRecord, error) {
			<-release
			return models.DataRecord{}, adapter.ErrNotFound
		}).Times(1)
	cloud.EXPECT().PullSettings(gomock.Any(), testUserID).
		Return(models.SettingsRecord{}, adapter.ErrNotFound).Times(1)

	var pushedUser string
	cloud.EXPECT().PushData(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.DataRecord) error {
			pushedUser = rec.UserID
			return nil
		}).Times(1)
	cloud.EXPECT().PushSettings(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	done := make(chan error, 1)
	go func() { done <- eng.SyncAll(context.Background()) }()

	require.Eventually(t, func() bool { return eng.State().IsSyncing }, time.Second, time.Millisecond)

	// A sign-out racing the in-flight round must not tear the round's user
	// out from under it: the round finishes with the user it started with.
	eng.SignOut()

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, testUserID, pushedUser)
}

func TestSyncEngine_PeriodicJob_AutoSyncDisabled(t *testing.T) {
	eng, _, _, _ := newTestEngine(t, testUserID, 0)
	eng.SetAutoSync(false)

	// No cloud expectations: an entitled user who turned auto-sync off must
	// not get background round-trips from the ticker.
	job := NewSyncJob(eng)
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.Nil(t, eng.State().LastSyncTime)
}

func TestSyncEngine_Close(t *testing.T) {
	eng, _, _, _ := newTestEngine(t, testUserID, 5*time.Millisecond)

	eng.Close()

	require.ErrorIs(t, eng.Flush(context.Background()), ErrEngineClosed)
	require.NoError(t, eng.SyncAll(context.Background()))

	// A change notification after Close must not arm the timer.
	eng.NotifyChanged(models.KeyHabits)
	time.Sleep(20 * time.Millisecond)
	assert.Nil(t, eng.State().LastSyncTime)
}

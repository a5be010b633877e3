// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/mock"
	"github.com/MKhiriev/go-account-sync/internal/notify"
	"github.com/MKhiriev/go-account-sync/internal/store"
	"github.com/MKhiriev/go-account-sync/models"
)

// keyTranslator возвращает ключ без перевода, чтобы сравнивать сообщения напрямую.
type keyTranslator struct{}

func (keyTranslator) T(key string) string { return key }

type syncFixture struct {
	svc       *clientSyncService
	adapter   *mock.MockServerAdapter
	kv        store.KeyValueStore
	repo      store.SyncStateRepository
	items     *models.ItemList
	selection *models.Selection
	notes     *notify.Recorder
}

// newSyncFixture — хелпер: экземпляр "augment" (токены) поверх памяти и мока адаптера.
func newSyncFixture(t *testing.T, ctrl *gomock.Controller, opts ...func(*SyncConfig)) *syncFixture {
	t.Helper()

	kv := store.NewMemoryKeyValueStore()
	f := &syncFixture{
		adapter:   mock.NewMockServerAdapter(ctrl),
		kv:        kv,
		repo:      store.NewSyncStateRepository(kv, store.NamespaceFor("augment"), "token", "email_note"),
		items:     models.NewItemList(),
		selection: &models.Selection{},
		notes:     notify.NewRecorder(0),
	}

	cfg := SyncConfig{
		Platform:     "augment",
		ItemKey:      "token",
		LabelField:   "email_note",
		Items:        f.items,
		Selection:    f.selection,
		LoadingHold:  time.Millisecond,
		PollInterval: time.Hour,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	svc, err := NewClientSyncService(cfg, f.repo, f.adapter, f.notes, keyTranslator{}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(svc.Close)

	f.svc = svc.(*clientSyncService)
	return f
}

// initWith инициализирует экземпляр с заданным статусом хранилища.
func (f *syncFixture) initWith(t *testing.T, status models.StorageStatus) {
	t.Helper()
	f.adapter.EXPECT().GetStorageStatus(gomock.Any()).Return(status, nil)
	require.NoError(t, f.svc.Init(context.Background()))
}

func (f *syncFixture) levels() []notify.Level {
	var out []notify.Level
	for _, n := range f.notes.Snapshot() {
		out = append(out, n.Level)
	}
	return out
}

// ── NewClientSyncService ─────────────────────────────────────────────────────

func TestNewClientSyncService_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter := mock.NewMockServerAdapter(ctrl)
	repo := store.NewSyncStateRepository(store.NewMemoryKeyValueStore(), "ns", "token", "email_note")

	_, err := NewClientSyncService(SyncConfig{Items: models.NewItemList()}, repo, adapter, notify.NewRecorder(0), keyTranslator{}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyPlatform)

	_, err = NewClientSyncService(SyncConfig{Platform: "augment"}, repo, adapter, notify.NewRecorder(0), keyTranslator{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoItemCollection)

	_, err = NewClientSyncService(SyncConfig{Platform: "augment", Items: models.NewItemList()}, repo, nil, notify.NewRecorder(0), keyTranslator{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoRemoteAvailable)
}

func TestSyncConfig_Defaults(t *testing.T) {
	cfg := SyncConfig{Platform: "windsurf"}.withDefaults()

	assert.Equal(t, "atm-windsurf", cfg.Namespace)
	assert.Equal(t, DefaultItemKey, cfg.ItemKey)
	assert.Equal(t, DefaultLabelField, cfg.LabelField)
	assert.Equal(t, DefaultLoadingHold, cfg.LoadingHold)
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval)
}

func TestClientSyncService_Identity(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)

	assert.Equal(t, "augment", f.svc.Platform())
	assert.Equal(t, "email_note", f.svc.LabelField())
}

// ── Init ─────────────────────────────────────────────────────────────────────

func TestClientSyncService_Init_LoadsPersistedState(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	ctx := context.Background()

	require.NoError(t, f.repo.SaveVersion(ctx, 7))
	require.NoError(t, f.repo.SaveUpserts(ctx, []models.Entity{{"id": "t1"}}))
	require.NoError(t, f.repo.SaveDeletions(ctx, []models.Tombstone{{ID: "t2", Label: strPtr("x@y.z")}}))

	f.initWith(t, statusAvailable)

	assert.Equal(t, int64(7), f.svc.LastVersion())
	assert.Len(t, f.svc.PendingUpserts(), 1)
	assert.Equal(t, []models.Tombstone{{ID: "t2", Label: strPtr("x@y.z")}}, f.svc.PendingDeletions())
	assert.True(t, f.svc.IsSyncNeeded())
	assert.Equal(t, models.StorageAvailable, f.svc.State())
}

func TestClientSyncService_Init_CorruptStateDegradesToEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	ctx := context.Background()

	require.NoError(t, f.kv.Set(ctx, "atm-augment-sync-last-version", "not-a-number"))
	require.NoError(t, f.kv.Set(ctx, "atm-augment-sync-pending-upserts", "{broken"))

	f.initWith(t, statusAvailable)

	assert.Equal(t, int64(0), f.svc.LastVersion())
	assert.False(t, f.svc.HasPendingChanges())
	assert.False(t, f.svc.IsSyncNeeded())
}

func TestClientSyncService_Init_SeedsKnownIDsFromLiveItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	ctx := context.Background()

	f.items.Replace([]models.Entity{{"id": "old"}, {"id": "local"}})
	require.NoError(t, f.repo.SaveUpserts(ctx, []models.Entity{{"id": "local"}}))

	f.initWith(t, statusAvailable)

	known, err := f.repo.LoadKnownIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"old"}, known)

	// "old" известен серверу: удаление даёт tombstone
	f.svc.MarkUpsert(ctx, models.Entity{"id": "old"})
	f.svc.MarkDeletion(ctx, models.Entity{"id": "old"})
	assert.Len(t, f.svc.PendingDeletions(), 1)

	// "local" сервер не видел: удаление гасит upsert
	f.svc.MarkDeletion(ctx, models.Entity{"id": "local"})
	assert.Empty(t, f.svc.PendingUpserts())
	assert.Len(t, f.svc.PendingDeletions(), 1)
}

// ── Mark* ────────────────────────────────────────────────────────────────────

func TestClientSyncService_MarkUpsert_PersistsAndFlagsSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	f.initWith(t, statusAvailable)
	ctx := context.Background()

	f.svc.MarkUpsert(ctx, models.Entity{"id": "t1", "email_note": "a@b.c"})

	assert.True(t, f.svc.IsSyncNeeded())
	state, err := f.repo.LoadLedger(ctx)
	require.NoError(t, err)
	require.Len(t, state.Upserts, 1)
	assert.Equal(t, "t1", state.Upserts[0].ID())
}

func TestClientSyncService_MarkUpsert_IgnoresEntityWithoutID(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	f.initWith(t, statusAvailable)

	f.svc.MarkUpsert(context.Background(), models.Entity{"email_note": "a@b.c"})
	f.svc.MarkDeletion(context.Background(), models.Entity{"id": ""})

	assert.False(t, f.svc.HasPendingChanges())
	assert.False(t, f.svc.IsSyncNeeded())
}

func TestClientSyncService_MarkUpsert_OfflineDoesNotFlagSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	f.initWith(t, statusUnavailable)

	f.svc.MarkUpsert(context.Background(), models.Entity{"id": "t1"})

	assert.True(t, f.svc.HasPendingChanges())
	assert.False(t, f.svc.IsSyncNeeded())
}

func TestClientSyncService_MarkUpsert_CopiesEntity(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	f.initWith(t, statusAvailable)

	e := models.Entity{"id": "t1", "name": "before"}
	f.svc.MarkUpsert(context.Background(), e)
	e["name"] = "after"

	assert.Equal(t, "before", f.svc.PendingUpserts()[0]["name"])
}

func TestClientSyncService_MarkDeletion_RecomputesSyncNeeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	f.initWith(t, statusAvailable)
	ctx := context.Background()

	f.svc.MarkUpsert(ctx, models.Entity{"id": "t1"})
	require.True(t, f.svc.IsSyncNeeded())

	f.svc.MarkDeletion(ctx, models.Entity{"id": "t1"})
	assert.False(t, f.svc.HasPendingChanges())
	assert.False(t, f.svc.IsSyncNeeded())
}

func TestClientSyncService_MarkDeletion_TombstoneCarriesLabel(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	f.initWith(t, statusAvailable)
	ctx := context.Background()

	f.svc.MarkDeletion(ctx, models.Entity{"id": "t1", "email_note": "a@b.c"})
	f.svc.MarkDeletion(ctx, models.Entity{"id": "t2", "email_note": 42})

	assert.Equal(t, []models.Tombstone{
		{ID: "t1", Label: strPtr("a@b.c")},
		{ID: "t2"},
	}, f.svc.PendingDeletions())
}

func TestClientSyncService_MarkUpsertByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	f.items.Replace([]models.Entity{{"id": "t1", "name": "a"}})
	f.initWith(t, statusAvailable)

	f.svc.MarkUpsertByID(context.Background(), "missing")
	assert.False(t, f.svc.HasPendingChanges())

	f.svc.MarkUpsertByID(context.Background(), "t1")
	require.Len(t, f.svc.PendingUpserts(), 1)
	assert.Equal(t, "a", f.svc.PendingUpserts()[0]["name"])
}

func TestClientSyncService_MarkAllForSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	f.initWith(t, statusUnavailable)
	ctx := context.Background()

	// пустая коллекция: отметить нечего, tombstone остаётся
	f.svc.MarkDeletion(ctx, models.Entity{"id": "gone"})
	assert.False(t, f.svc.MarkAllForSync(ctx))
	assert.Len(t, f.svc.PendingDeletions(), 1)
	assert.Empty(t, f.svc.PendingUpserts())

	f.items.Replace([]models.Entity{{"id": "b"}, {"id": "a"}})
	assert.True(t, f.svc.MarkAllForSync(ctx))
	assert.Empty(t, f.svc.PendingDeletions())
	assert.Len(t, f.svc.PendingUpserts(), 2)
	assert.True(t, f.svc.IsSyncNeeded(), "mark-all flags sync even while offline")
}

// ── Sync ─────────────────────────────────────────────────────────────────────

// Полный цикл: слияние ответа, сдвиг версии, подтверждение очереди.
func TestClientSyncService_Sync_MergesAndAdvancesVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	var callbackRuns int
	f := newSyncFixture(t, ctrl, func(c *SyncConfig) {
		c.OnSyncComplete = func(context.Context) error {
			callbackRuns++
			return nil
		}
	})
	ctx := context.Background()
	require.NoError(t, f.repo.SaveVersion(ctx, 5))
	f.initWith(t, statusAvailable)

	f.svc.MarkUpsert(ctx, models.Entity{"id": 1, "name": "a"})

	var sent models.SyncRequest
	f.adapter.EXPECT().
		Sync(gomock.Any(), "augment", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.SyncRequest) (models.SyncResponse, error) {
			sent = req
			return models.SyncResponse{
				Upserts:    []models.Entity{{"id": 1, "name": "a"}},
				Deletions:  []string{},
				NewVersion: 6,
			}, nil
		})

	outcome, err := f.svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, SyncCompleted, outcome)

	assert.Equal(t, int64(5), sent.LastVersion)
	require.Len(t, sent.Upserts, 1)
	assert.Equal(t, "1", sent.Upserts[0]["token"].ID())
	assert.NotNil(t, sent.Deletions)
	assert.Empty(t, sent.Deletions)

	item, ok := f.items.Find("1")
	require.True(t, ok)
	assert.Equal(t, "a", item["name"])
	assert.Equal(t, int64(6), f.svc.LastVersion())
	assert.False(t, f.svc.HasPendingChanges())
	assert.False(t, f.svc.IsSyncNeeded())
	assert.False(t, f.svc.IsLoadingFromSync())
	assert.False(t, f.svc.IsSyncing())
	assert.Equal(t, 1, callbackRuns)

	persisted, err := f.repo.LoadVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), persisted)
	ledger, err := f.repo.LoadLedger(ctx)
	require.NoError(t, err)
	assert.True(t, ledger.IsEmpty())

	assert.Equal(t, []notify.Level{notify.LevelInfo, notify.LevelSuccess}, f.levels())
	notes := f.notes.Snapshot()
	assert.Equal(t, notify.KeySyncingData, notes[0].Message)
	assert.Equal(t, notify.KeySyncComplete, notes[1].Message)
}

// Удаление с сервера снимает выделение с удалённой записи.
func TestClientSyncService_Sync_DeletionClearsSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	f.items.Replace([]models.Entity{{"id": 1}, {"id": 2}})
	f.selection.Set("2")
	f.initWith(t, statusAvailable)

	f.adapter.EXPECT().Sync(gomock.Any(), "augment", gomock.Any()).
		Return(models.SyncResponse{Deletions: []string{"2"}, NewVersion: 1}, nil)

	_, err := f.svc.Sync(context.Background())
	require.NoError(t, err)

	all := f.items.All()
	require.Len(t, all, 1)
	assert.Equal(t, "1", all[0].ID())
	assert.Empty(t, f.selection.Current())
}

func TestClientSyncService_Sync_KeepsUnrelatedSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	f.items.Replace([]models.Entity{{"id": "a"}, {"id": "b"}})
	f.selection.Set("a")
	f.initWith(t, statusAvailable)

	f.adapter.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.SyncResponse{
			Upserts:    []models.Entity{{"id": "a", "v": 2}, {"id": "c"}, {"name": "no id"}},
			Deletions:  []string{"b", "missing"},
			NewVersion: 3,
		}, nil)

	_, err := f.svc.Sync(context.Background())
	require.NoError(t, err)

	all := f.items.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID())
	assert.Equal(t, 2, all[0]["v"], "replaced in place")
	assert.Equal(t, "c", all[1].ID(), "new entities are appended")
	assert.Equal(t, "a", f.selection.Current())
}

// Хранилище недоступно: сеть не трогаем, одно предупреждение.
func TestClientSyncService_Sync_UnavailableStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	ctx := context.Background()
	require.NoError(t, f.repo.SaveVersion(ctx, 4))
	f.initWith(t, statusUnavailable)
	f.svc.MarkUpsert(ctx, models.Entity{"id": "t1"})

	// adapter.Sync не ожидается
	outcome, err := f.svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, SyncSkippedUnavailable, outcome)

	notes := f.notes.Snapshot()
	require.Len(t, notes, 1)
	assert.Equal(t, notify.LevelWarning, notes[0].Level)
	assert.Equal(t, notify.KeyDatabaseNotAvailable, notes[0].Message)
	assert.Equal(t, int64(4), f.svc.LastVersion())
	assert.Len(t, f.svc.PendingUpserts(), 1)
}

func TestClientSyncService_Sync_InitializingStorageIsUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	f.initWith(t, statusInitializing)

	outcome, err := f.svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SyncSkippedUnavailable, outcome)
}

func TestClientSyncService_Sync_RemoteFailureLeavesStateUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	ctx := context.Background()
	require.NoError(t, f.repo.SaveVersion(ctx, 2))
	f.items.Replace([]models.Entity{{"id": "keep"}})
	f.initWith(t, statusAvailable)
	f.svc.MarkUpsert(ctx, models.Entity{"id": "t1"})

	remoteErr := errors.New("connection reset")
	f.adapter.EXPECT().Sync(gomock.Any(), "augment", gomock.Any()).
		Return(models.SyncResponse{}, remoteErr)

	outcome, err := f.svc.Sync(ctx)
	assert.Equal(t, SyncFailed, outcome)
	assert.ErrorIs(t, err, remoteErr)

	assert.Equal(t, int64(2), f.svc.LastVersion())
	assert.Len(t, f.svc.PendingUpserts(), 1)
	assert.Len(t, f.items.All(), 1)
	assert.True(t, f.svc.IsSyncNeeded())
	assert.False(t, f.svc.IsSyncing())

	notes := f.notes.Snapshot()
	require.Len(t, notes, 2)
	assert.Equal(t, notify.LevelInfo, notes[0].Level)
	assert.Equal(t, notify.LevelError, notes[1].Level)
	assert.Equal(t, notify.KeySyncFailed+": connection reset", notes[1].Message)

	// после ошибки t1 снова чисто локальный
	f.svc.MarkDeletion(ctx, models.Entity{"id": "t1"})
	assert.False(t, f.svc.HasPendingChanges())
}

func TestClientSyncService_Sync_IgnoresOlderVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	ctx := context.Background()
	require.NoError(t, f.repo.SaveVersion(ctx, 10))
	f.initWith(t, statusAvailable)
	f.svc.MarkUpsert(ctx, models.Entity{"id": "t1"})

	f.adapter.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.SyncResponse{NewVersion: 3}, nil)

	outcome, err := f.svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, SyncCompleted, outcome)
	assert.Equal(t, int64(10), f.svc.LastVersion())
	assert.False(t, f.svc.HasPendingChanges())
}

func TestClientSyncService_Sync_MarksSentIDsKnown(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	f.initWith(t, statusAvailable)
	ctx := context.Background()

	f.svc.MarkUpsert(ctx, models.Entity{"id": "t1"})
	f.adapter.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.SyncResponse{Upserts: []models.Entity{{"id": "srv"}}, NewVersion: 1}, nil)
	_, err := f.svc.Sync(ctx)
	require.NoError(t, err)

	known, err := f.repo.LoadKnownIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"srv", "t1"}, known)

	// t1 синхронизирован, затем снова изменён и удалён: tombstone обязателен
	f.svc.MarkUpsert(ctx, models.Entity{"id": "t1", "name": "edited"})
	f.svc.MarkDeletion(ctx, models.Entity{"id": "t1"})
	require.Len(t, f.svc.PendingDeletions(), 1)
	assert.Equal(t, "t1", f.svc.PendingDeletions()[0].ID)
}

func TestClientSyncService_Sync_EditDuringFlightStaysPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	f.initWith(t, statusAvailable)
	ctx := context.Background()

	f.svc.MarkUpsert(ctx, models.Entity{"id": "t1", "v": 1})

	f.adapter.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, models.SyncRequest) (models.SyncResponse, error) {
			// пользователь правит запись, пока запрос в полёте
			f.svc.MarkUpsert(ctx, models.Entity{"id": "t1", "v": 2})
			return models.SyncResponse{NewVersion: 1}, nil
		})

	_, err := f.svc.Sync(ctx)
	require.NoError(t, err)

	pending := f.svc.PendingUpserts()
	require.Len(t, pending, 1)
	assert.Equal(t, 2, pending[0]["v"])
	assert.True(t, f.svc.IsSyncNeeded())
}

func TestClientSyncService_Sync_DeleteDuringFlightIsNotResurrected(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	f.initWith(t, statusAvailable)
	ctx := context.Background()

	f.items.Upsert(models.Entity{"id": "t1"})
	f.svc.MarkUpsert(ctx, models.Entity{"id": "t1"})

	f.adapter.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.SyncRequest) (models.SyncResponse, error) {
			// пользователь удаляет запись, пока запрос в полёте
			f.items.Remove("t1")
			f.svc.MarkDeletion(ctx, models.Entity{"id": "t1"})
			// сервер возвращает эхо отправленного upsert
			return models.SyncResponse{Upserts: []models.Entity{{"id": "t1"}}, NewVersion: 1}, nil
		})

	_, err := f.svc.Sync(ctx)
	require.NoError(t, err)

	_, live := f.items.Find("t1")
	assert.False(t, live, "удалённая запись не должна вернуться в коллекцию")
	require.Len(t, f.svc.PendingDeletions(), 1)
	assert.Equal(t, "t1", f.svc.PendingDeletions()[0].ID)
	assert.True(t, f.svc.IsSyncNeeded())
}

func TestClientSyncService_Sync_EchoDoesNotOverwriteNewerEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	f.initWith(t, statusAvailable)
	ctx := context.Background()

	f.items.Upsert(models.Entity{"id": "t1", "v": 1})
	f.svc.MarkUpsert(ctx, models.Entity{"id": "t1", "v": 1})

	f.adapter.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, models.SyncRequest) (models.SyncResponse, error) {
			f.items.Upsert(models.Entity{"id": "t1", "v": 2})
			f.svc.MarkUpsertByID(ctx, "t1")
			return models.SyncResponse{Upserts: []models.Entity{{"id": "t1", "v": 1}}, NewVersion: 1}, nil
		})

	_, err := f.svc.Sync(ctx)
	require.NoError(t, err)

	item, ok := f.items.Find("t1")
	require.True(t, ok)
	assert.Equal(t, 2, item["v"], "локальная правка новее эха сервера")

	// следующая правка по id берёт актуальную версию из коллекции
	f.svc.MarkUpsertByID(ctx, "t1")
	pending := f.svc.PendingUpserts()
	require.Len(t, pending, 1)
	assert.Equal(t, 2, pending[0]["v"])
}

func TestClientSyncService_Sync_CallbackErrorIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl, func(c *SyncConfig) {
		c.OnSyncComplete = func(context.Context) error { return errors.New("disk full") }
	})
	f.initWith(t, statusAvailable)

	f.adapter.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.SyncResponse{NewVersion: 1}, nil)

	outcome, err := f.svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SyncCompleted, outcome)
	assert.Equal(t, []notify.Level{notify.LevelInfo, notify.LevelSuccess}, f.levels())
}

func TestClientSyncService_Sync_HoldsLoadingFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl, func(c *SyncConfig) {
		c.LoadingHold = 50 * time.Millisecond
	})
	f.initWith(t, statusAvailable)

	var loadingInCallback bool
	f.svc.cfg.OnSyncComplete = func(context.Context) error {
		loadingInCallback = f.svc.IsLoadingFromSync()
		return nil
	}

	f.adapter.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.SyncResponse{NewVersion: 1}, nil)

	started := time.Now()
	_, err := f.svc.Sync(context.Background())
	require.NoError(t, err)

	assert.True(t, loadingInCallback)
	assert.GreaterOrEqual(t, time.Since(started), 50*time.Millisecond)
	assert.False(t, f.svc.IsLoadingFromSync())
}

func TestClientSyncService_Sync_CancelledHoldStillCompletes(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl, func(c *SyncConfig) {
		c.LoadingHold = time.Hour
	})
	f.initWith(t, statusAvailable)

	ctx, cancel := context.WithCancel(context.Background())
	f.adapter.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, models.SyncRequest) (models.SyncResponse, error) {
			cancel()
			return models.SyncResponse{NewVersion: 1}, nil
		})

	outcome, err := f.svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, SyncCompleted, outcome)
	assert.Equal(t, int64(1), f.svc.LastVersion())
	assert.False(t, f.svc.IsLoadingFromSync())
}

func TestClientSyncService_Sync_ConcurrentCallsHitRemoteOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	f.initWith(t, statusAvailable)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.adapter.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, models.SyncRequest) (models.SyncResponse, error) {
			close(entered)
			<-release
			return models.SyncResponse{NewVersion: 1}, nil
		}).Times(1)

	var wg sync.WaitGroup
	var first SyncOutcome
	wg.Go(func() {
		first, _ = f.svc.Sync(context.Background())
	})

	<-entered
	assert.True(t, f.svc.IsSyncing())
	second, err := f.svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SyncSkippedInFlight, second)

	close(release)
	wg.Wait()
	assert.Equal(t, SyncCompleted, first)
	assert.False(t, f.svc.IsSyncing())
}

// ── review surface ───────────────────────────────────────────────────────────

func TestClientSyncService_StorageStatusTextAndClass(t *testing.T) {
	tests := []struct {
		name      string
		status    models.StorageStatus
		pending   bool
		wantText  string
		wantClass string
	}{
		{"initializing", statusInitializing, false, notify.KeyStorageInitializing, StatusClassAccent},
		{"initializing with pending", statusInitializing, true, notify.KeyStorageInitializing, StatusClassAccent},
		{"available", statusAvailable, false, notify.KeyStorageDualStorage, StatusClassSuccess},
		{"available with pending", statusAvailable, true, notify.KeyStorageDualStorage + "-" + notify.KeyStorageNotSynced, StatusClassWarning},
		{"unavailable", statusUnavailable, false, notify.KeyStorageLocalStorage, StatusClassAccent},
		{"unavailable with pending", statusUnavailable, true, notify.KeyStorageLocalStorage, StatusClassAccent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newSyncFixture(t, ctrl)
			f.initWith(t, tt.status)
			if tt.pending {
				f.svc.MarkUpsert(context.Background(), models.Entity{"id": "t1"})
			}

			assert.Equal(t, tt.wantText, f.svc.StorageStatusText())
			assert.Equal(t, tt.wantClass, f.svc.StorageStatusClass())
		})
	}
}

func TestClientSyncService_QueueReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	f.initWith(t, statusUnavailable)

	assert.False(t, f.svc.OpenQueueReview())
	assert.False(t, f.svc.IsQueueReviewOpen())
	notes := f.notes.Drain()
	require.Len(t, notes, 1)
	assert.Equal(t, notify.LevelInfo, notes[0].Level)
	assert.Equal(t, notify.KeyStorageDatabaseNotAvailable, notes[0].Message)

	f.adapter.EXPECT().GetStorageStatus(gomock.Any()).Return(statusAvailable, nil)
	f.svc.Probe(context.Background())

	assert.True(t, f.svc.OpenQueueReview())
	assert.True(t, f.svc.IsQueueReviewOpen())
	assert.Empty(t, f.notes.Drain())

	f.svc.CloseQueueReview()
	assert.False(t, f.svc.IsQueueReviewOpen())
}

func TestClientSyncService_CheckPendingChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	f.initWith(t, statusUnavailable)
	f.svc.MarkUpsert(context.Background(), models.Entity{"id": "t1"})

	check := f.svc.CheckPendingChanges()
	assert.True(t, check.HasChanges)
	assert.ErrorIs(t, check.Err, ErrStorageUnavailable)

	f.adapter.EXPECT().GetStorageStatus(gomock.Any()).Return(statusAvailable, nil)
	f.svc.Probe(context.Background())

	check = f.svc.CheckPendingChanges()
	assert.True(t, check.HasChanges)
	assert.NoError(t, check.Err)
}

// ── restart round-trip ───────────────────────────────────────────────────────

func TestClientSyncService_LedgerSurvivesRestart(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl)
	f.initWith(t, statusUnavailable)
	ctx := context.Background()

	f.svc.MarkUpsert(ctx, models.Entity{"id": "b", "email_note": "b@x"})
	f.svc.MarkUpsert(ctx, models.Entity{"id": "a"})
	f.svc.MarkDeletion(ctx, models.Entity{"id": "c", "email_note": "c@x"})

	restarted, err := NewClientSyncService(f.svc.cfg, f.repo, f.adapter, notify.NewRecorder(0), keyTranslator{}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(restarted.Close)

	f.adapter.EXPECT().GetStorageStatus(gomock.Any()).Return(statusUnavailable, nil)
	require.NoError(t, restarted.Init(ctx))

	assert.Equal(t, f.svc.PendingUpserts(), restarted.PendingUpserts())
	assert.Equal(t, f.svc.PendingDeletions(), restarted.PendingDeletions())
}

func TestSyncOutcome_String(t *testing.T) {
	assert.Equal(t, "completed", SyncCompleted.String())
	assert.Equal(t, "skipped_in_flight", SyncSkippedInFlight.String())
	assert.Equal(t, "skipped_unavailable", SyncSkippedUnavailable.String())
	assert.Equal(t, "failed", SyncFailed.String())
}

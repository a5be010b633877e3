// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-account-sync/models"
)

// ItemCollection is the live collection an instance reconciles into. The
// sync orchestrator mutates it in place; [models.ItemList] implements it.
type ItemCollection interface {
	All() []models.Entity
	Len() int
	Find(id string) (models.Entity, bool)
	Upsert(e models.Entity)
	Remove(id string) bool
}

// SelectedItem is the optional "current item" reference. A server deletion
// of the selected id clears it; [models.Selection] implements it.
type SelectedItem interface {
	Current() string
	Clear()
}

// SyncOutcome reports what a call to [ClientSyncService.Sync] did.
type SyncOutcome int

const (
	// SyncCompleted means the server round-trip succeeded and was merged.
	SyncCompleted SyncOutcome = iota
	// SyncSkippedInFlight means another sync of the same instance was running.
	SyncSkippedInFlight
	// SyncSkippedUnavailable means storage was not available; the user was warned.
	SyncSkippedUnavailable
	// SyncFailed means the remote call failed; local state is untouched.
	SyncFailed
)

func (o SyncOutcome) String() string {
	switch o {
	case SyncCompleted:
		return "completed"
	case SyncSkippedInFlight:
		return "skipped_in_flight"
	case SyncSkippedUnavailable:
		return "skipped_unavailable"
	default:
		return "failed"
	}
}

// PendingCheck is the programmatic form of the queue review: whether anything
// is waiting to be synced, or why the answer is not meaningful.
type PendingCheck struct {
	HasChanges bool
	Err        error
}

// ClientSyncService is one sync instance (tokens, accounts of one platform).
// Instances share nothing but the key-value store, whose keys are namespaced.
type ClientSyncService interface {
	// Init loads the persisted version, ledger and known ids, then probes the
	// storage status. It must be called before any other operation.
	Init(ctx context.Context) error

	// Close stops the status poller and waits for it to exit.
	Close()

	// Sync pushes the pending ledger and merges the server response into the
	// live collection. A sync already in flight or unavailable storage make it
	// a no-op (see [SyncOutcome]); only a failed remote call returns an error.
	Sync(ctx context.Context) (SyncOutcome, error)

	// Probe refreshes the storage state from the remote status endpoint.
	Probe(ctx context.Context) models.StorageState

	// MarkUpsert records a create or edit of e. Entities without an id are ignored.
	MarkUpsert(ctx context.Context, e models.Entity)

	// MarkDeletion records a delete of e. A pending upsert the server never saw
	// cancels out instead of producing a tombstone.
	MarkDeletion(ctx context.Context, e models.Entity)

	// MarkUpsertByID marks the live item with id. Unknown ids are a no-op.
	MarkUpsertByID(ctx context.Context, id string)

	// MarkAllForSync queues every live item as an upsert and drops all
	// tombstones. It reports false, changing nothing, on an empty collection.
	MarkAllForSync(ctx context.Context) bool

	PendingUpserts() []models.Entity
	PendingDeletions() []models.Tombstone
	HasPendingChanges() bool
	CheckPendingChanges() PendingCheck

	StorageStatusText() string
	StorageStatusClass() string

	// OpenQueueReview shows the review surface, or refuses with an info
	// notification when storage is not available.
	OpenQueueReview() bool
	CloseQueueReview()
	IsQueueReviewOpen() bool

	IsSyncing() bool
	IsSyncNeeded() bool
	IsLoadingFromSync() bool
	State() models.StorageState
	LastVersion() int64
	Platform() string
	// LabelField is the entity field shown next to ids in the queue review.
	LabelField() string
}

// ClientSyncJob periodically syncs an instance in the background.
type ClientSyncJob interface {
	// Start launches the background loop. A running loop is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and blocks until it has exited.
	Stop()
}

// SettingsService caches named settings documents fetched from the remote.
type SettingsService interface {
	// Load returns the cached document for name, fetching it on first use or
	// when force is set. A failed fetch leaves the cache entry unloaded.
	Load(ctx context.Context, name string, force bool) (json.RawMessage, error)

	// LoadAll loads app_version, api_server_status, proxy_config and
	// database_config.
	LoadAll(ctx context.Context, force bool) error

	// Loaded reports whether name has been fetched successfully.
	Loaded(name string) bool
}

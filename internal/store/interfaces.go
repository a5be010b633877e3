// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-account-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is the durable string key/value store the sync state lives in.
// Keys are namespaced by the caller. Implementations must be safe for
// concurrent use.
type KeyValueStore interface {
	// Get returns the value stored under key, or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the underlying resources.
	Close() error
}

// SyncStateRepository persists the sync state of one platform namespace:
// the version cursor, the pending ledger and the set of server-known ids.
//
// Load methods degrade to empty values on missing keys; malformed ledger
// entries are dropped one by one rather than failing the whole load.
type SyncStateRepository interface {
	LoadVersion(ctx context.Context) (int64, error)
	SaveVersion(ctx context.Context, version int64) error

	LoadLedger(ctx context.Context) (models.LedgerState, error)
	SaveUpserts(ctx context.Context, upserts []models.Entity) error
	SaveDeletions(ctx context.Context, deletions []models.Tombstone) error

	LoadKnownIDs(ctx context.Context) ([]string, error)
	SaveKnownIDs(ctx context.Context, ids []string) error
}

// ItemMirror keeps a JSON copy of a live item collection on disk so the
// client starts with the last merged state.
type ItemMirror interface {
	Load(ctx context.Context) ([]models.Entity, error)
	Save(ctx context.Context, items []models.Entity) error
}

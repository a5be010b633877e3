// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package devserver implements an in-memory remote that speaks the sync
// protocol: a storage status probe, a versioned per-platform change log and a
// small set of settings documents. It backs cmd/devserver and the adapter's
// end-to-end tests.
package devserver

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-account-sync/models"
)

// Remote is the storage behind the development HTTP server.
type Remote interface {
	// StorageStatus reports the current initialisation and database state.
	StorageStatus(ctx context.Context) models.StorageStatus

	// Sync applies req to the platform's change log and returns every change
	// recorded after req.LastVersion, the request's own changes included.
	Sync(ctx context.Context, platform string, req models.SyncRequest) (models.SyncResponse, error)

	// Setting returns the named settings document.
	Setting(ctx context.Context, name string) (json.RawMessage, error)

	// SetSetting replaces the named settings document.
	SetSetting(name string, doc json.RawMessage) error

	// SetDatabaseAvailable simulates the backing database going away.
	SetDatabaseAvailable(available bool)

	// Upsert records a server-side change, as if another client had synced it.
	Upsert(platform string, e models.Entity) (int64, error)

	// Delete records a server-side deletion.
	Delete(platform, id string) (int64, error)

	// Version returns the platform's current version.
	Version(platform string) int64
}

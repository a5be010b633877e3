// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncRequest is sent by the client to push its pending changes and pull
// everything the server recorded after LastVersion.
type SyncRequest struct {
	// LastVersion is the last server version the client has fully incorporated.
	LastVersion int64 `json:"last_version"`

	// Upserts holds full entity snapshots, each wrapped under the instance's
	// item key (e.g. {"token": {...}} or {"account": {...}}).
	Upserts []map[string]Entity `json:"upserts"`

	// Deletions holds ids of entities deleted locally. Labels are not sent.
	Deletions []DeletionRef `json:"deletions"`
}

// DeletionRef identifies one entity to delete on the server.
type DeletionRef struct {
	ID string `json:"id"`
}

// SyncResponse is returned by the server after applying a [SyncRequest].
type SyncResponse struct {
	// Upserts are entities changed on the server after the request's LastVersion.
	Upserts []Entity `json:"upserts"`

	// Deletions are ids deleted on the server after the request's LastVersion.
	Deletions []string `json:"deletions"`

	// NewVersion is the server version the client reaches after merging.
	NewVersion int64 `json:"new_version"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Tombstone marks a local deletion that has not been sent to the server yet.
// It keeps only what is needed to show the user what was deleted; the entity
// itself is already gone from the live collection.
type Tombstone struct {
	ID    string
	Label *string
}

// LedgerState is a serialisable snapshot of the pending-change ledger.
type LedgerState struct {
	Upserts   []Entity
	Deletions []Tombstone
}

// IsEmpty reports whether the snapshot holds no pending changes.
func (l LedgerState) IsEmpty() bool {
	return len(l.Upserts) == 0 && len(l.Deletions) == 0
}

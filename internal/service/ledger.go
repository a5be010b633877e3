// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"

	"github.com/MKhiriev/go-account-sync/models"
)

// pendingLedger holds the local changes the server has not acknowledged yet.
//
// An id is never both a pending upsert and a tombstone. Every mutation bumps a
// revision stored on the entry, so a sync can acknowledge exactly the entries
// it sent and keep the ones changed while the request was in flight.
//
// The ledger is not safe for concurrent use; clientSyncService guards it.
type pendingLedger struct {
	upserts   map[string]upsertEntry
	deletions map[string]tombstoneEntry
	known     map[string]struct{}
	inFlight  map[string]struct{}
	rev       uint64
}

type upsertEntry struct {
	entity models.Entity
	rev    uint64
}

type tombstoneEntry struct {
	tombstone models.Tombstone
	rev       uint64
}

// ledgerSnapshot is what a sync sends, with the revisions it saw.
type ledgerSnapshot struct {
	upserts      []models.Entity
	deletions    []models.Tombstone
	upsertRevs   map[string]uint64
	deletionRevs map[string]uint64
}

func newPendingLedger() *pendingLedger {
	return &pendingLedger{
		upserts:   make(map[string]upsertEntry),
		deletions: make(map[string]tombstoneEntry),
		known:     make(map[string]struct{}),
		inFlight:  make(map[string]struct{}),
	}
}

func (l *pendingLedger) next() uint64 {
	l.rev++
	return l.rev
}

// load replaces both pending sets with persisted state.
func (l *pendingLedger) load(state models.LedgerState) {
	l.upserts = make(map[string]upsertEntry, len(state.Upserts))
	l.deletions = make(map[string]tombstoneEntry, len(state.Deletions))

	for _, t := range state.Deletions {
		l.deletions[t.ID] = tombstoneEntry{tombstone: t, rev: l.next()}
	}
	// upserts win when a corrupt store holds an id in both sets
	for _, e := range state.Upserts {
		id := e.ID()
		delete(l.deletions, id)
		l.upserts[id] = upsertEntry{entity: e, rev: l.next()}
	}
}

func (l *pendingLedger) markUpsert(e models.Entity) {
	id := e.ID()
	l.upserts[id] = upsertEntry{entity: e, rev: l.next()}
	delete(l.deletions, id)
}

// markDeletion records a tombstone, or cancels a purely local upsert. It
// reports whether a tombstone was recorded.
func (l *pendingLedger) markDeletion(id string, label *string) bool {
	if l.wasOnlyLocal(id) {
		delete(l.upserts, id)
		delete(l.deletions, id)
		return false
	}

	delete(l.upserts, id)
	l.deletions[id] = tombstoneEntry{
		tombstone: models.Tombstone{ID: id, Label: label},
		rev:       l.next(),
	}
	return true
}

// wasOnlyLocal reports whether id exists only on this client: it has a
// pending upsert and the server has neither acknowledged nor been sent it.
func (l *pendingLedger) wasOnlyLocal(id string) bool {
	if _, pending := l.upserts[id]; !pending {
		return false
	}
	if _, ok := l.known[id]; ok {
		return false
	}
	_, sending := l.inFlight[id]
	return !sending
}

// replaceUpserts queues every entity as an upsert and drops all tombstones.
func (l *pendingLedger) replaceUpserts(items []models.Entity) {
	l.upserts = make(map[string]upsertEntry, len(items))
	l.deletions = make(map[string]tombstoneEntry)
	for _, e := range items {
		if id := e.ID(); id != "" {
			l.upserts[id] = upsertEntry{entity: e, rev: l.next()}
		}
	}
}

func (l *pendingLedger) isEmpty() bool {
	return len(l.upserts) == 0 && len(l.deletions) == 0
}

func (l *pendingLedger) hasUpsert(id string) bool {
	_, ok := l.upserts[id]
	return ok
}

// upsertList returns the pending upserts ordered by id.
func (l *pendingLedger) upsertList() []models.Entity {
	ids := sortedKeys(l.upserts)
	out := make([]models.Entity, 0, len(ids))
	for _, id := range ids {
		out = append(out, l.upserts[id].entity)
	}
	return out
}

// deletionList returns the tombstones ordered by id.
func (l *pendingLedger) deletionList() []models.Tombstone {
	ids := sortedKeys(l.deletions)
	out := make([]models.Tombstone, 0, len(ids))
	for _, id := range ids {
		out = append(out, l.deletions[id].tombstone)
	}
	return out
}

// snapshot captures the ledger for a sync request and marks its upserts as
// in flight until acknowledge or release.
func (l *pendingLedger) snapshot() ledgerSnapshot {
	snap := ledgerSnapshot{
		upserts:      l.upsertList(),
		deletions:    l.deletionList(),
		upsertRevs:   make(map[string]uint64, len(l.upserts)),
		deletionRevs: make(map[string]uint64, len(l.deletions)),
	}
	for id, entry := range l.upserts {
		snap.upsertRevs[id] = entry.rev
		l.inFlight[id] = struct{}{}
	}
	for id, entry := range l.deletions {
		snap.deletionRevs[id] = entry.rev
	}
	return snap
}

// release ends the in-flight window of snap without acknowledging anything.
func (l *pendingLedger) release(snap ledgerSnapshot) {
	for id := range snap.upsertRevs {
		delete(l.inFlight, id)
	}
}

// acknowledge clears the entries of snap that were not modified since it was
// taken, and updates the known set: sent and returned upserts become known,
// sent and returned deletions are forgotten.
func (l *pendingLedger) acknowledge(snap ledgerSnapshot, returnedUpserts, returnedDeletions []string) {
	l.release(snap)

	for id, rev := range snap.upsertRevs {
		if entry, ok := l.upserts[id]; ok && entry.rev == rev {
			delete(l.upserts, id)
		}
		l.known[id] = struct{}{}
	}
	for id, rev := range snap.deletionRevs {
		if entry, ok := l.deletions[id]; ok && entry.rev == rev {
			delete(l.deletions, id)
		}
		delete(l.known, id)
	}

	for _, id := range returnedUpserts {
		l.known[id] = struct{}{}
	}
	for _, id := range returnedDeletions {
		delete(l.known, id)
	}
}

// changedSince reports whether id has a pending tombstone, or a pending upsert
// that snap did not carry at its current revision.
func (l *pendingLedger) changedSince(snap ledgerSnapshot, id string) bool {
	if _, ok := l.deletions[id]; ok {
		return true
	}
	entry, ok := l.upserts[id]
	if !ok {
		return false
	}
	rev, sent := snap.upsertRevs[id]
	return !sent || rev != entry.rev
}

func (l *pendingLedger) setKnown(ids []string) {
	l.known = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		l.known[id] = struct{}{}
	}
}

func (l *pendingLedger) knownList() []string {
	return sortedKeys(l.known)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/models"
)

const (
	versionKeySuffix   = "-sync-last-version"
	upsertsKeySuffix   = "-sync-pending-upserts"
	deletionsKeySuffix = "-sync-pending-deletions"
	knownIDsKeySuffix  = "-sync-known-ids"
)

// NamespaceFor returns the default key namespace of a platform, "atm-<platform>".
func NamespaceFor(platform string) string {
	return "atm-" + platform
}

// syncStateRepository is the [KeyValueStore]-backed [SyncStateRepository].
//
// Layout under namespace P:
//
//	P-sync-last-version      decimal string
//	P-sync-pending-upserts   [{"id": id, "<itemKey>": entity}, ...]
//	P-sync-pending-deletions [{"id": id, "<labelField>": string|null}, ...]
//	P-sync-known-ids         [id, ...]
type syncStateRepository struct {
	kv         KeyValueStore
	namespace  string
	itemKey    string
	labelField string
}

// NewSyncStateRepository returns a repository for one namespace. itemKey wraps
// each pending upsert, labelField names the tombstone label.
func NewSyncStateRepository(kv KeyValueStore, namespace, itemKey, labelField string) SyncStateRepository {
	return &syncStateRepository{
		kv:         kv,
		namespace:  namespace,
		itemKey:    itemKey,
		labelField: labelField,
	}
}

func (r *syncStateRepository) key(suffix string) string {
	return r.namespace + suffix
}

// LoadVersion returns 0 when nothing is stored. A value that is not a
// non-negative decimal integer yields 0 and [ErrMalformedValue].
func (r *syncStateRepository) LoadVersion(ctx context.Context) (int64, error) {
	raw, err := r.get(ctx, versionKeySuffix)
	if err != nil || raw == "" {
		return 0, err
	}

	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || version < 0 {
		return 0, fmt.Errorf("%w: version %q", ErrMalformedValue, raw)
	}
	return version, nil
}

func (r *syncStateRepository) SaveVersion(ctx context.Context, version int64) error {
	return r.kv.Set(ctx, r.key(versionKeySuffix), strconv.FormatInt(version, 10))
}

// LoadLedger reads both pending sets. Each set is read independently, so a
// corrupt upsert list does not discard the tombstones and vice versa; the
// returned error joins the per-set failures.
func (r *syncStateRepository) LoadLedger(ctx context.Context) (models.LedgerState, error) {
	var state models.LedgerState

	upserts, upsertsErr := r.loadUpserts(ctx)
	state.Upserts = upserts

	deletions, deletionsErr := r.loadDeletions(ctx)
	state.Deletions = deletions

	return state, errors.Join(upsertsErr, deletionsErr)
}

func (r *syncStateRepository) loadUpserts(ctx context.Context) ([]models.Entity, error) {
	entries, err := r.getList(ctx, upsertsKeySuffix)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	upserts := make([]models.Entity, 0, len(entries))
	for i, entry := range entries {
		id := models.Entity(entry).ID()
		item, ok := entry[r.itemKey].(map[string]any)
		if id == "" || !ok {
			log.Warn().Str("namespace", r.namespace).Int("index", i).Msg("dropping malformed pending upsert")
			continue
		}

		entity := models.Entity(item)
		if entity.ID() == "" {
			entity[models.EntityIDField] = id
		}
		upserts = append(upserts, entity)
	}
	return upserts, nil
}

func (r *syncStateRepository) loadDeletions(ctx context.Context) ([]models.Tombstone, error) {
	entries, err := r.getList(ctx, deletionsKeySuffix)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	deletions := make([]models.Tombstone, 0, len(entries))
	for i, entry := range entries {
		e := models.Entity(entry)
		id := e.ID()
		if id == "" {
			log.Warn().Str("namespace", r.namespace).Int("index", i).Msg("dropping malformed pending deletion")
			continue
		}
		deletions = append(deletions, models.Tombstone{ID: id, Label: e.Label(r.labelField)})
	}
	return deletions, nil
}

func (r *syncStateRepository) SaveUpserts(ctx context.Context, upserts []models.Entity) error {
	entries := make([]map[string]any, 0, len(upserts))
	for _, e := range upserts {
		entries = append(entries, map[string]any{
			models.EntityIDField: e.ID(),
			r.itemKey:            e,
		})
	}
	return r.setJSON(ctx, upsertsKeySuffix, entries)
}

func (r *syncStateRepository) SaveDeletions(ctx context.Context, deletions []models.Tombstone) error {
	entries := make([]map[string]any, 0, len(deletions))
	for _, t := range deletions {
		var label any
		if t.Label != nil {
			label = *t.Label
		}
		entries = append(entries, map[string]any{
			models.EntityIDField: t.ID,
			r.labelField:         label,
		})
	}
	return r.setJSON(ctx, deletionsKeySuffix, entries)
}

// LoadKnownIDs drops entries that are not non-empty strings.
func (r *syncStateRepository) LoadKnownIDs(ctx context.Context) ([]string, error) {
	raw, err := r.get(ctx, knownIDsKeySuffix)
	if err != nil || raw == "" {
		return nil, err
	}

	var values []any
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("%w: known ids: %w", ErrMalformedValue, err)
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *syncStateRepository) SaveKnownIDs(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return r.setJSON(ctx, knownIDsKeySuffix, ids)
}

// get returns "" for a missing key.
func (r *syncStateRepository) get(ctx context.Context, suffix string) (string, error) {
	raw, err := r.kv.Get(ctx, r.key(suffix))
	if errors.Is(err, ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", r.key(suffix), err)
	}
	return raw, nil
}

// getList decodes a JSON array of objects. Array elements that are not
// objects are skipped.
func (r *syncStateRepository) getList(ctx context.Context, suffix string) ([]map[string]any, error) {
	raw, err := r.get(ctx, suffix)
	if err != nil || raw == "" {
		return nil, err
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedValue, r.key(suffix), err)
	}

	entries := make([]map[string]any, 0, len(elements))
	for _, el := range elements {
		var entry map[string]any
		if err := json.Unmarshal(el, &entry); err != nil || entry == nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *syncStateRepository) setJSON(ctx context.Context, suffix string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key(suffix), err)
	}
	return r.kv.Set(ctx, r.key(suffix), string(payload))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-account-sync/internal/logger"
)

// sqlKeyValueStore stores values in the sync_kv table of a SQLite or
// PostgreSQL database.
type sqlKeyValueStore struct {
	db *DB
}

// NewSQLKeyValueStore returns a [KeyValueStore] backed by db. The schema must
// already be migrated.
func NewSQLKeyValueStore(db *DB) KeyValueStore {
	return &sqlKeyValueStore{db: db}
}

func (s *sqlKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetValueQuery(s.db.builder, key)
	if err != nil {
		return "", err
	}

	var value string
	err = s.db.withRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sqlKeyValueStore.Get").Str("key", key).Msg("failed to read value")
		return "", fmt.Errorf("%w: get %s: %w", ErrExecutingQuery, key, err)
	}

	return value, nil
}

func (s *sqlKeyValueStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetValueQuery(s.db.builder, key, value)
	if err != nil {
		return err
	}

	err = s.db.withRetry(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "sqlKeyValueStore.Set").Str("key", key).Msg("failed to write value")
		return fmt.Errorf("%w: set %s: %w", ErrExecutingQuery, key, err)
	}

	return nil
}

func (s *sqlKeyValueStore) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteValueQuery(s.db.builder, key)
	if err != nil {
		return err
	}

	err = s.db.withRetry(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("%w: delete %s: %w", ErrExecutingQuery, key, err)
	}

	return nil
}

func (s *sqlKeyValueStore) Close() error {
	return s.db.Close()
}

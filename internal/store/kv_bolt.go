// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var syncBucket = []byte("sync")

// boltKeyValueStore keeps values in a single bbolt bucket.
type boltKeyValueStore struct {
	db *bolt.DB
}

// NewBoltKeyValueStore opens (creating if needed) the bbolt file at path.
func NewBoltKeyValueStore(path string) (KeyValueStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(syncBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket %s: %w", syncBucket, err)
	}

	return &boltKeyValueStore{db: db}, nil
}

func (s *boltKeyValueStore) Get(_ context.Context, key string) (string, error) {
	var value string
	found := false

	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(syncBucket).Get([]byte(key))
		if v != nil {
			// v is only valid inside the transaction
			value = string(v)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("bolt get %s: %w", key, err)
	}
	if !found {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (s *boltKeyValueStore) Set(_ context.Context, key, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(syncBucket).Put([]byte(key), []byte(value))
	})
}

func (s *boltKeyValueStore) Delete(_ context.Context, key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(syncBucket).Delete([]byte(key))
	})
}

func (s *boltKeyValueStore) Close() error {
	return s.db.Close()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-sync/internal/config"
	"github.com/MKhiriev/go-account-sync/internal/crypto"
	"github.com/MKhiriev/go-account-sync/internal/logger"
)

// ClientStorages groups the client's local persistence.
type ClientStorages struct {
	// KV holds the sync state of every platform, namespaced by key.
	KV KeyValueStore

	mirrorDir string
}

// NewClientStorages opens the configured key-value backend, migrating SQL
// schemas, and seals it when a passphrase is configured.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	kv, err := openKeyValueStore(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if cfg.Passphrase != "" {
		sealed, err := OpenSealedKeyValueStore(ctx, kv, cfg.Passphrase, crypto.DefaultKDFParams)
		if err != nil {
			_ = kv.Close()
			return nil, fmt.Errorf("open sealed store: %w", err)
		}
		kv = sealed
		log.Info().Msg("sync state is sealed with the configured passphrase")
	}

	return &ClientStorages{KV: kv, mirrorDir: cfg.MirrorDir}, nil
}

func openKeyValueStore(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (KeyValueStore, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemoryKeyValueStore(), nil

	case config.DriverBolt:
		kv, err := NewBoltKeyValueStore(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("bolt connection error: %w", err)
		}
		return kv, nil

	case config.DriverSQLite, config.DriverPostgres:
		connect := NewConnectSQLite
		if cfg.Driver == config.DriverPostgres {
			connect = NewConnectPostgres
		}

		db, err := connect(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
		}
		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLKeyValueStore(db), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// SyncState returns the sync state repository of one platform instance.
func (s *ClientStorages) SyncState(namespace, itemKey, labelField string) SyncStateRepository {
	return NewSyncStateRepository(s.KV, namespace, itemKey, labelField)
}

// Mirror returns the item mirror of one platform.
func (s *ClientStorages) Mirror(platform string) ItemMirror {
	return NewFileItemMirror(s.mirrorDir, platform)
}

// Close closes the key-value backend.
func (s *ClientStorages) Close() error {
	return s.KV.Close()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-sync/internal/config"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/models"
)

func TestNewClientStorages_Memory(t *testing.T) {
	ctx := context.Background()
	s, err := NewClientStorages(ctx, config.ClientStorage{
		DB:        config.ClientDB{Driver: config.DriverMemory},
		MirrorDir: t.TempDir(),
	}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	repo := s.SyncState(NamespaceFor("augment"), "token", "email_note")
	require.NoError(t, repo.SaveVersion(ctx, 3))
	v, err := repo.LoadVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	mirror := s.Mirror("augment")
	require.NoError(t, mirror.Save(ctx, []models.Entity{{"id": "t1"}}))
	items, err := mirror.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestNewClientStorages_BoltSealed(t *testing.T) {
	ctx := context.Background()
	s, err := NewClientStorages(ctx, config.ClientStorage{
		DB:         config.ClientDB{Driver: config.DriverBolt, DSN: filepath.Join(t.TempDir(), "sync.bolt")},
		Passphrase: "pw",
	}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.KV.Set(ctx, "k", "v"))
	v, err := s.KV.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestNewClientStorages_UnknownDriver(t *testing.T) {
	_, err := NewClientStorages(context.Background(), config.ClientStorage{
		DB: config.ClientDB{Driver: "mysql"},
	}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

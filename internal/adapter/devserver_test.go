// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-sync/internal/devserver"
	devhttp "github.com/MKhiriev/go-account-sync/internal/handler/http"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/utils"
	"github.com/MKhiriev/go-account-sync/models"
)

// startDevServer поднимает in-memory сервер разработки на httptest.
func startDevServer(t *testing.T, signKey string) (*httptest.Server, devserver.Remote) {
	t.Helper()
	remote := devserver.NewRemote(devserver.Options{
		BuildInfo: models.NewAppBuildInfo("1.4.0", "2026-01-01", "abc123"),
	}, logger.Nop())
	h := devhttp.NewHandler(remote, signKey, models.AppBuildInfo{}, logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv, remote
}

// ── end-to-end against the development server ───────────────────────────────

func TestDevServer_TwoClientsConverge(t *testing.T) {
	srv, _ := startDevServer(t, "")
	ctx := context.Background()
	first := newTestAdapter(t, srv.URL)
	second := newTestAdapter(t, srv.URL)

	status, err := first.GetStorageStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StorageAvailable, models.StateFromStatus(status))

	resp, err := first.Sync(ctx, "augment", models.SyncRequest{
		Upserts:   []map[string]models.Entity{{"token": {"id": "t1", "email_note": "a@x"}}},
		Deletions: []models.DeletionRef{},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.NewVersion)

	resp, err = second.Sync(ctx, "augment", models.SyncRequest{
		Upserts:   []map[string]models.Entity{},
		Deletions: []models.DeletionRef{{ID: "t1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.NewVersion)
	assert.Equal(t, []string{"t1"}, resp.Deletions)

	resp, err = first.Sync(ctx, "augment", models.SyncRequest{LastVersion: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Upserts)
	assert.Equal(t, []string{"t1"}, resp.Deletions)
	assert.Equal(t, int64(2), resp.NewVersion)
}

func TestDevServer_DatabaseDownIsTransient(t *testing.T) {
	srv, remote := startDevServer(t, "")
	a := newTestAdapter(t, srv.URL)
	remote.SetDatabaseAvailable(false)

	_, err := a.Sync(context.Background(), "windsurf", models.SyncRequest{})
	require.Error(t, err)
	assert.True(t, IsTransient(err))

	status, err := a.GetStorageStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.StorageUnavailable, models.StateFromStatus(status))
}

func TestDevServer_Settings(t *testing.T) {
	srv, _ := startDevServer(t, "")
	a := newTestAdapter(t, srv.URL)

	doc, err := a.GetSetting(context.Background(), "app_version")
	require.NoError(t, err)
	assert.JSONEq(t, `{"current_version":"1.4.0","build_date":"2026-01-01","build_commit":"abc123"}`, string(doc))

	_, err = a.GetSetting(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDevServer_Auth(t *testing.T) {
	srv, _ := startDevServer(t, "dev-key")
	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	_, err := a.Sync(ctx, "augment", models.SyncRequest{})
	assert.ErrorIs(t, err, ErrUnauthorized)

	token, err := utils.GenerateJWTToken(devhttp.TokenIssuer, "cli", time.Hour, "dev-key")
	require.NoError(t, err)
	a.SetToken(token.String())

	_, err = a.Sync(ctx, "augment", models.SyncRequest{})
	assert.NoError(t, err)
}

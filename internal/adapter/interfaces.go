// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-account-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client's view of the remote: the storage status probe,
// the per-platform sync endpoint and the settings endpoint.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to subsequent requests.
	// An empty token disables the Authorization header.
	SetToken(token string)
	// Token returns the current bearer token.
	Token() string

	// GetStorageStatus reports whether the remote storage is initialising
	// and whether its database is reachable.
	GetStorageStatus(ctx context.Context) (models.StorageStatus, error)

	// Sync sends the client's pending changes for platform and returns the
	// server changes since req.LastVersion.
	Sync(ctx context.Context, platform string, req models.SyncRequest) (models.SyncResponse, error)

	// GetSetting fetches a named settings document as raw JSON.
	GetSetting(ctx context.Context, name string) (json.RawMessage, error)
}

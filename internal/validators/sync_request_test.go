// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-sync/models"
)

func validSyncRequest() models.SyncRequest {
	return models.SyncRequest{
		LastVersion: 3,
		Upserts: []map[string]models.Entity{
			{"token": {"id": "t1", "email_note": "a@x"}},
		},
		Deletions: []models.DeletionRef{{ID: "t2"}},
	}
}

// ---------------------------------------------------------------------------
// Validate dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewSyncRequestValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("SyncRequest value and pointer", func(t *testing.T) {
		req := validSyncRequest()
		require.NoError(t, v.Validate(ctx, req))
		require.NoError(t, v.Validate(ctx, &req))
	})

	t.Run("empty SyncRequest", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.SyncRequest{}))
	})

	t.Run("Entity", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.Entity{"id": "x"}))
		assert.ErrorIs(t, v.Validate(ctx, models.Entity{"id": true}), ErrMissingEntityID)
	})

	t.Run("DeletionRef", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.DeletionRef{ID: "x"}))
		assert.ErrorIs(t, v.Validate(ctx, &models.DeletionRef{}), ErrMissingDeleteID)
	})
}

// ---------------------------------------------------------------------------
// SyncRequest rules
// ---------------------------------------------------------------------------

func TestValidate_SyncRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.SyncRequest)
		fields  []string
		wantErr error
	}{
		{
			name:    "negative version",
			mutate:  func(r *models.SyncRequest) { r.LastVersion = -1 },
			wantErr: ErrInvalidVersion,
		},
		{
			name:    "empty wrapper",
			mutate:  func(r *models.SyncRequest) { r.Upserts = append(r.Upserts, map[string]models.Entity{}) },
			wantErr: ErrInvalidWrapper,
		},
		{
			name: "wrapper with two entities",
			mutate: func(r *models.SyncRequest) {
				r.Upserts = []map[string]models.Entity{{"token": {"id": "a"}, "account": {"id": "b"}}}
			},
			wantErr: ErrInvalidWrapper,
		},
		{
			name:    "empty item key",
			mutate:  func(r *models.SyncRequest) { r.Upserts = []map[string]models.Entity{{"": {"id": "a"}}} },
			wantErr: ErrEmptyItemKey,
		},
		{
			name:    "upsert without id",
			mutate:  func(r *models.SyncRequest) { r.Upserts[0]["token"] = models.Entity{"email_note": "x"} },
			wantErr: ErrMissingEntityID,
		},
		{
			name:    "deletion without id",
			mutate:  func(r *models.SyncRequest) { r.Deletions = append(r.Deletions, models.DeletionRef{}) },
			wantErr: ErrMissingDeleteID,
		},
		{
			name:    "unknown field",
			mutate:  func(r *models.SyncRequest) {},
			fields:  []string{"nope"},
			wantErr: ErrUnknownField,
		},
		{
			name:   "scoped to version ignores bad upserts",
			mutate: func(r *models.SyncRequest) { r.Upserts = []map[string]models.Entity{{}} },
			fields: []string{FieldLastVersion},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSyncRequest()
			tt.mutate(&req)

			err := NewSyncRequestValidator().Validate(context.Background(), req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_SyncRequestReportsIndex(t *testing.T) {
	req := validSyncRequest()
	req.Deletions = append(req.Deletions, models.DeletionRef{})

	err := NewSyncRequestValidator().Validate(context.Background(), req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "deletion at index 1")
}

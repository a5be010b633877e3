// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-sync/models"
)

// Field names accepted by [SyncRequestValidator].
const (
	FieldLastVersion = "last_version"
	FieldUpserts     = "upserts"
	FieldDeletions   = "deletions"
	FieldID          = "id"
)

type SyncRequestValidator struct{}

// NewSyncRequestValidator returns a [Validator] for models.SyncRequest,
// models.Entity and models.DeletionRef values.
func NewSyncRequestValidator() Validator {
	return &SyncRequestValidator{}
}

func (v *SyncRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncRequest:
		return v.validateSyncRequest(ctx, value, fields...)
	case *models.SyncRequest:
		return v.validateSyncRequest(ctx, *value, fields...)

	case models.Entity:
		return v.validateEntity(ctx, value, fields...)

	case models.DeletionRef:
		return v.validateDeletionRef(ctx, value, fields...)
	case *models.DeletionRef:
		return v.validateDeletionRef(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SyncRequestValidator) validateSyncRequest(ctx context.Context, request models.SyncRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLastVersion, FieldUpserts, FieldDeletions}
	}

	for _, f := range fields {
		switch f {
		case FieldLastVersion:
			if request.LastVersion < 0 {
				return fmt.Errorf("%w: got %d", ErrInvalidVersion, request.LastVersion)
			}
		case FieldUpserts:
			for i, wrapped := range request.Upserts {
				if err := v.validateWrapper(ctx, wrapped); err != nil {
					return fmt.Errorf("upsert at index %d: %w", i, err)
				}
			}
		case FieldDeletions:
			for i, ref := range request.Deletions {
				if err := v.validateDeletionRef(ctx, ref); err != nil {
					return fmt.Errorf("deletion at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateWrapper checks the {<itemKey>: Entity} envelope of one upsert.
func (v *SyncRequestValidator) validateWrapper(ctx context.Context, wrapped map[string]models.Entity) error {
	if len(wrapped) != 1 {
		return ErrInvalidWrapper
	}
	for itemKey, e := range wrapped {
		if itemKey == "" {
			return ErrEmptyItemKey
		}
		if err := v.validateEntity(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (v *SyncRequestValidator) validateEntity(_ context.Context, e models.Entity, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if e.ID() == "" {
				return ErrMissingEntityID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncRequestValidator) validateDeletionRef(_ context.Context, ref models.DeletionRef, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if ref.ID == "" {
				return ErrMissingDeleteID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

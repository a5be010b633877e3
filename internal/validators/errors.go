// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidVersion  = errors.New("last_version must not be negative")
	ErrInvalidWrapper  = errors.New("upsert must wrap exactly one entity")
	ErrEmptyItemKey    = errors.New("upsert item key is empty")
	ErrMissingEntityID = errors.New("entity id is required")
	ErrMissingDeleteID = errors.New("deletion id is required")
)

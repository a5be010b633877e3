// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrStorageUnavailable = errors.New("storage is not available")
	ErrNotInitialized     = errors.New("sync instance is not initialized")

	ErrEmptyPlatform     = errors.New("platform must not be empty")
	ErrNoItemCollection  = errors.New("item collection must not be nil")
	ErrEmptySettingName  = errors.New("setting name must not be empty")
	ErrNoRemoteAvailable = errors.New("server adapter must not be nil")
)

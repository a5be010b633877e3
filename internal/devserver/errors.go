// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import "errors"

var (
	ErrStorageInitializing = errors.New("storage is initializing")
	ErrDatabaseUnavailable = errors.New("database is not available")
	ErrEmptyPlatform       = errors.New("empty platform")
	ErrInvalidSyncRequest  = errors.New("invalid sync request")
	ErrSettingNotFound     = errors.New("setting not found")
	ErrInvalidSetting      = errors.New("invalid setting")
)

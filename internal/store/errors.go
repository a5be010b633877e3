// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrKeyNotFound is returned by [KeyValueStore.Get] for a missing key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrStoreClosed is returned by operations on a closed store.
	ErrStoreClosed = errors.New("store is closed")

	// ErrUnknownDriver is returned by [NewClientStorages] for an unsupported driver.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

var (
	// ErrBuildingSQLQuery is returned when the SQL builder fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the database rejects a statement.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrMalformedValue is returned when a persisted value cannot be decoded.
	ErrMalformedValue = errors.New("malformed persisted value")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the response messages shared by the development server's
// handlers and middleware.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError hides unexpected failures from the caller.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified (wrong signature, issuer or subject).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgStorageUnavailable = "storage is not available"
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the auth middleware. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader means the request has no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken means the header carries the scheme but a blank token.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrTokenExpired means the bearer token's exp claim has passed.
	ErrTokenExpired = errors.New("token is expired")
)

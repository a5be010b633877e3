// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the development server and the
// client adapter: typed context keys, JSON response writing, the resty client
// constructor, trace id generation and JWT handling.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so that keys of other
// packages can never collide with ours.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey stores the authenticated token subject in a request context.
var SubjectCtxKey = contextKey("subject")

// GetSubjectFromContext returns the token subject stored under
// [SubjectCtxKey]. ok is false when it is missing, of another type or empty.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok && subject != ""
}

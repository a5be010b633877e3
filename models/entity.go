// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
)

// EntityIDField is the only field of an [Entity] the sync core relies on.
const EntityIDField = "id"

// Entity is an opaque account or token record owned by the caller's live
// collection. The sync core reads only its "id" and, for deletion review,
// one configurable label field. Every other field travels untouched between
// the local collection, the pending ledger and the server.
type Entity map[string]any

// ID returns the entity identifier as a string. Numeric ids decoded from JSON
// are rendered without a fractional part. An empty string means the entity
// has no usable id.
func (e Entity) ID() string {
	if e == nil {
		return ""
	}

	switch v := e[EntityIDField].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

// Label returns the value of field when it holds a non-empty string, or nil
// otherwise.
func (e Entity) Label(field string) *string {
	if e == nil || field == "" {
		return nil
	}

	s, ok := e[field].(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

// Clone returns a shallow copy of e. Nested values are shared.
func (e Entity) Clone() Entity {
	if e == nil {
		return nil
	}

	c := make(Entity, len(e))
	for k, v := range e {
		c[k] = v
	}
	return c
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-account-sync/internal/store"
)

const (
	DefaultItemKey      = "account"
	DefaultLabelField   = "email"
	DefaultLoadingHold  = 1200 * time.Millisecond
	DefaultPollInterval = 500 * time.Millisecond
	DefaultSyncInterval = 5 * time.Minute
)

// SyncConfig describes one sync instance.
type SyncConfig struct {
	// Platform selects the remote sync endpoint, e.g. "augment" or "windsurf".
	Platform string
	// Namespace prefixes every persisted key. Defaults to "atm-<platform>".
	Namespace string
	// ItemKey wraps each upsert on the wire and in storage ("account", "token").
	ItemKey string
	// LabelField is the entity field copied into tombstones ("email", "email_note").
	LabelField string

	Items     ItemCollection
	Selection SelectedItem

	// OnSyncComplete runs after a successful merge, before the loading hold.
	// Its error is logged and does not fail the sync.
	OnSyncComplete func(ctx context.Context) error

	// LoadingHold keeps IsLoadingFromSync raised after a merge. Zero means
	// DefaultLoadingHold.
	LoadingHold time.Duration
	// PollInterval is the status polling period while storage initialises.
	// Zero means DefaultPollInterval.
	PollInterval time.Duration
}

func (c SyncConfig) withDefaults() SyncConfig {
	if c.Namespace == "" {
		c.Namespace = store.NamespaceFor(c.Platform)
	}
	if c.ItemKey == "" {
		c.ItemKey = DefaultItemKey
	}
	if c.LabelField == "" {
		c.LabelField = DefaultLabelField
	}
	if c.LoadingHold <= 0 {
		c.LoadingHold = DefaultLoadingHold
	}
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	return c
}

func (c SyncConfig) validate() error {
	if c.Platform == "" {
		return ErrEmptyPlatform
	}
	if c.Items == nil {
		return ErrNoItemCollection
	}
	return nil
}

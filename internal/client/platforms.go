// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-account-sync/internal/config"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/service"
	"github.com/MKhiriev/go-account-sync/internal/store"
	"github.com/MKhiriev/go-account-sync/models"
)

// Platform describes one sync instance of the client.
type Platform struct {
	Name       string
	ItemKey    string
	LabelField string
}

// DefaultPlatforms are the instances the client runs: augment tokens and the
// accounts of windsurf and antigravity.
var DefaultPlatforms = []Platform{
	{Name: "augment", ItemKey: "token", LabelField: "email_note"},
	{Name: "windsurf", ItemKey: "account", LabelField: "email"},
	{Name: "antigravity", ItemKey: "account", LabelField: "email"},
}

// SyncConfigs builds the sync config of every platform. The live collection
// of each is seeded from its item mirror and written back to it after every
// successful sync. An unreadable mirror starts the collection empty.
func SyncConfigs(
	ctx context.Context,
	platforms []Platform,
	storages *store.ClientStorages,
	workers config.ClientWorkers,
	log *logger.Logger,
) []service.SyncConfig {
	configs := make([]service.SyncConfig, 0, len(platforms))
	for _, p := range platforms {
		mirror := storages.Mirror(p.Name)

		items, err := mirror.Load(ctx)
		if err != nil {
			log.Warn().Err(err).Str("platform", p.Name).Msg("item mirror unreadable, starting empty")
		}
		list := models.NewItemList(items...)

		configs = append(configs, service.SyncConfig{
			Platform:   p.Name,
			ItemKey:    p.ItemKey,
			LabelField: p.LabelField,
			Items:      list,
			Selection:  models.NewSelection(""),
			OnSyncComplete: func(ctx context.Context) error {
				return mirror.Save(ctx, list.All())
			},
			LoadingHold:  workers.LoadingHold,
			PollInterval: workers.StatusPollInterval,
		})
	}
	return configs
}

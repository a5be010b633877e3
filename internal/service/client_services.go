// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-account-sync/internal/adapter"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/notify"
	"github.com/MKhiriev/go-account-sync/internal/store"
)

// SyncInstance pairs a sync service with its periodic job.
type SyncInstance struct {
	Service ClientSyncService
	Job     ClientSyncJob
}

// ClientServices holds every sync instance of the client and the settings cache.
type ClientServices struct {
	Instances []SyncInstance
	Settings  SettingsService
}

// NewClientServices builds one sync instance per config. Each instance gets its
// own namespaced repository over the shared key-value store.
func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	notifier notify.Notifier,
	translator notify.Translator,
	log *logger.Logger,
	configs ...SyncConfig,
) (*ClientServices, error) {
	services := &ClientServices{
		Settings: NewSettingsService(serverAdapter, log),
	}

	seen := make(map[string]struct{}, len(configs))
	for _, cfg := range configs {
		if _, dup := seen[cfg.Platform]; dup {
			return nil, fmt.Errorf("duplicate sync instance for platform %q", cfg.Platform)
		}
		seen[cfg.Platform] = struct{}{}

		full := cfg.withDefaults()
		repo := storages.SyncState(full.Namespace, full.ItemKey, full.LabelField)

		svc, err := NewClientSyncService(cfg, repo, serverAdapter, notifier, translator, log)
		if err != nil {
			return nil, fmt.Errorf("create %s sync instance: %w", cfg.Platform, err)
		}
		services.Instances = append(services.Instances, SyncInstance{
			Service: svc,
			Job:     NewClientSyncJob(svc),
		})
	}

	return services, nil
}

// Instance returns the sync service of platform, or nil.
func (s *ClientServices) Instance(platform string) ClientSyncService {
	for _, inst := range s.Instances {
		if inst.Service.Platform() == platform {
			return inst.Service
		}
	}
	return nil
}

// Init initialises every instance and joins their errors.
func (s *ClientServices) Init(ctx context.Context) error {
	var errs []error
	for _, inst := range s.Instances {
		if err := inst.Service.Init(ctx); err != nil {
			errs = append(errs, fmt.Errorf("init %s: %w", inst.Service.Platform(), err))
		}
	}
	return errors.Join(errs...)
}

// Close stops every job and status poller.
func (s *ClientServices) Close() {
	for _, inst := range s.Instances {
		inst.Job.Stop()
		inst.Service.Close()
	}
}

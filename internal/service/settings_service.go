// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-account-sync/internal/logger"
)

// Settings documents served by the remote.
const (
	SettingAppVersion      = "app_version"
	SettingAPIServerStatus = "api_server_status"
	SettingProxyConfig     = "proxy_config"
	SettingDatabaseConfig  = "database_config"
)

// settingsFetcher is the part of the server adapter the cache needs.
type settingsFetcher interface {
	GetSetting(ctx context.Context, name string) (json.RawMessage, error)
}

type settingsService struct {
	fetcher settingsFetcher
	logger  *logger.Logger

	mu     sync.Mutex
	loaded map[string]json.RawMessage
}

// NewSettingsService returns a cache in front of the remote settings endpoint.
func NewSettingsService(fetcher settingsFetcher, log *logger.Logger) SettingsService {
	return &settingsService{
		fetcher: fetcher,
		logger:  log,
		loaded:  make(map[string]json.RawMessage),
	}
}

// Load implements SettingsService. Concurrent loads of the same name may both
// reach the remote; the last successful answer is kept.
func (s *settingsService) Load(ctx context.Context, name string, force bool) (json.RawMessage, error) {
	if name == "" {
		return nil, ErrEmptySettingName
	}

	if !force {
		s.mu.Lock()
		cached, ok := s.loaded[name]
		s.mu.Unlock()
		if ok {
			return cached, nil
		}
	}

	doc, err := s.fetcher.GetSetting(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("setting", name).Msg("failed to load setting")
		return nil, fmt.Errorf("load setting %s: %w", name, err)
	}

	s.mu.Lock()
	s.loaded[name] = doc
	s.mu.Unlock()
	return doc, nil
}

// LoadAll loads every known settings document concurrently and joins the
// failures.
func (s *settingsService) LoadAll(ctx context.Context, force bool) error {
	names := []string{SettingAppVersion, SettingAPIServerStatus, SettingProxyConfig, SettingDatabaseConfig}
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Go(func() {
			_, errs[i] = s.Load(ctx, name, force)
		})
	}
	wg.Wait()

	return errors.Join(errs...)
}

func (s *settingsService) Loaded(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.loaded[name]
	return ok
}

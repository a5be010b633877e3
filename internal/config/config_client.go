// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-wide settings.
type ClientApp struct {
	Locale  string
	LogDir  string
	Version string
}

// ClientAdapter configures the HTTP connection to the remote.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	Token          string
}

// ClientDB selects the sync state backend.
type ClientDB struct {
	Driver string
	DSN    string
}

// ClientStorage groups local persistence settings.
type ClientStorage struct {
	DB         ClientDB
	MirrorDir  string
	Passphrase string
}

// ClientWorkers configures the sync job, status polling and the loading hold.
type ClientWorkers struct {
	SyncInterval       time.Duration
	StatusPollInterval time.Duration
	LoadingHold        time.Duration
}

// ClientConfig is the validated configuration consumed by the client.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig loads the structured config and narrows it to the client's view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps a structured config to a [ClientConfig] without validating it.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Locale:  cfg.App.Locale,
			LogDir:  cfg.App.LogDir,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				Driver: cfg.Storage.DB.Driver,
				DSN:    cfg.Storage.DB.DSN,
			},
			MirrorDir:  cfg.Storage.Files.MirrorDir,
			Passphrase: cfg.Storage.Passphrase,
		},
		Workers: ClientWorkers{
			SyncInterval:       cfg.Workers.SyncInterval,
			StatusPollInterval: cfg.Workers.StatusPollInterval,
			LoadingHold:        cfg.Workers.LoadingHold,
		},
	}
}

// DevServerConfig configures the development server.
type DevServerConfig struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	InitDelay      time.Duration
	TokenSignKey   string
	Version        string
}

// GetDevServerConfig loads the structured config and narrows it to the
// development server's view.
func GetDevServerConfig() (*DevServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &DevServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		InitDelay:      cfg.Server.InitDelay,
		TokenSignKey:   cfg.Server.TokenSignKey,
		Version:        cfg.App.Version,
	}
	return serverCfg, serverCfg.validate()
}

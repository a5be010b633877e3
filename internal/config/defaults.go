// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
	DriverBolt     = "bolt"
	DriverMemory   = "memory"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Locale: "en",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "account-sync.db",
			},
			Files: Files{
				MirrorDir: "data",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			SyncInterval:       5 * time.Minute,
			StatusPollInterval: 500 * time.Millisecond,
			LoadingHold:        1200 * time.Millisecond,
		},
	}
}

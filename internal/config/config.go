// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the merged view of every configuration source.
// Field tags describe the environment variable names; nested structs add
// their envPrefix.
type StructuredConfig struct {
	App App `envPrefix:"APP_"`

	Storage Storage `envPrefix:"STORAGE_"`

	Server Server `envPrefix:"SERVER_"`

	Adapter Adapter `envPrefix:"ADAPTER_"`

	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath points to an optional JSON (JSONC) config file.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// Locale selects the translation catalog ("en", "zh-CN", ...).
	Locale string `env:"LOCALE"`

	// LogDir is where the client log file is written.
	LogDir string `env:"LOG_DIR"`

	Version string `env:"VERSION"`
}

// Storage configures local persistence.
type Storage struct {
	DB DB `envPrefix:"DB_"`

	Files Files `envPrefix:"FILES_"`

	// Passphrase enables sealing of persisted sync state when non-empty.
	Passphrase string `env:"PASSPHRASE"`
}

// DB selects the key-value backend for sync state.
type DB struct {
	// Driver is one of "sqlite3", "postgres", "bolt" or "memory".
	Driver string `env:"DRIVER"`

	DSN string `env:"DATABASE_URI"`
}

// Files configures on-disk artefacts other than the database.
type Files struct {
	// MirrorDir holds the JSON mirrors of the live item collections.
	MirrorDir string `env:"MIRROR_DIR"`
}

// Server configures the development server.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// InitDelay keeps the reported storage status "initializing" for this
	// long after start-up.
	InitDelay time.Duration `env:"INIT_DELAY"`

	// TokenSignKey enables bearer JWT checks on the sync endpoints.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`
}

// Adapter configures the client's connection to the remote.
type Adapter struct {
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is an optional bearer token sent with every request.
	Token string `env:"TOKEN"`
}

// Workers configures background activity.
type Workers struct {
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	StatusPollInterval time.Duration `env:"STATUS_POLL_INTERVAL"`

	LoadingHold time.Duration `env:"LOADING_HOLD"`
}

// GetStructuredConfig assembles the configuration from the environment,
// the process command line, the optional JSON file and the defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}

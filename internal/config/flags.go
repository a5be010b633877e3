// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a flag.Value accepting "host:port" where host is
// "localhost" or an IP address.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a partial config. Unknown flags are an error.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("account-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var adapterAddress string
	var adapterToken string
	var driver string
	var databaseDSN string
	var mirrorDir string
	var passphrase string
	var jsonConfigPath string
	var locale string
	var logDir string
	var requestTimeout time.Duration
	var initDelay time.Duration
	var tokenSignKey string
	var syncInterval time.Duration
	var pollInterval time.Duration
	var loadingHold time.Duration

	fs.Var(&serverAddress, "a", "Dev server listen address host:port")
	fs.StringVar(&adapterAddress, "s", "", "Remote base URL, e.g. http://localhost:8080")
	fs.StringVar(&adapterToken, "token", "", "Bearer token for the remote")
	fs.StringVar(&driver, "driver", "", "Storage driver: sqlite3, postgres, bolt, memory")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN or file path")
	fs.StringVar(&mirrorDir, "mirror-dir", "", "Directory for item collection mirrors")
	fs.StringVar(&passphrase, "passphrase", "", "Passphrase sealing persisted sync state")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&locale, "locale", "", "UI locale, e.g. en or zh-CN")
	fs.StringVar(&logDir, "log-dir", "", "Client log directory")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	fs.DurationVar(&initDelay, "init-delay", 0, "Dev server storage initialisation delay")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Dev server JWT signing key; empty disables auth")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Storage status poll interval while initializing")
	fs.DurationVar(&loadingHold, "loading-hold", 0, "How long the post-sync loading state is held")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Locale: locale,
			LogDir: logDir,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
			Files: Files{
				MirrorDir: mirrorDir,
			},
			Passphrase: passphrase,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			InitDelay:      initDelay,
			TokenSignKey:   tokenSignKey,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
			Token:          adapterToken,
		},
		Workers: Workers{
			SyncInterval:       syncInterval,
			StatusPollInterval: pollInterval,
			LoadingHold:        loadingHold,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-account-sync/internal/adapter"
	"github.com/MKhiriev/go-account-sync/internal/client"
	"github.com/MKhiriev/go-account-sync/internal/config"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/notify"
	"github.com/MKhiriev/go-account-sync/internal/service"
	"github.com/MKhiriev/go-account-sync/internal/store"
	"github.com/MKhiriev/go-account-sync/internal/tui"
	"github.com/MKhiriev/go-account-sync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const toastBacklog = 20

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("account-sync-client", cfg.App.LogDir)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	recorder := notify.NewRecorder(toastBacklog)
	notifier := notify.Fanout{recorder, notify.NewLogNotifier(log)}
	translator := notify.NewTranslator(cfg.App.Locale)

	configs := client.SyncConfigs(ctx, client.DefaultPlatforms, storages, cfg.Workers, log)
	services, err := service.NewClientServices(storages, serverAdapter, notifier, translator, log, configs...)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui := tui.New(services, recorder, notifier, translator, log)
	bg := workers.NewWorkers(log, workers.FromServices(services, cfg.Workers.SyncInterval)...)

	app, err := client.NewApp(services, ui, bg, log, storages.Close)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

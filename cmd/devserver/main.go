// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-account-sync/internal/config"
	"github.com/MKhiriev/go-account-sync/internal/devserver"
	"github.com/MKhiriev/go-account-sync/internal/handler"
	"github.com/MKhiriev/go-account-sync/internal/handler/http"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/server"
	"github.com/MKhiriev/go-account-sync/internal/utils"
	"github.com/MKhiriev/go-account-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const devTokenTTL = 24 * time.Hour

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("account-sync-devserver")
	cfg, err := config.GetDevServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.TokenSignKey != "" {
		token, err := utils.GenerateJWTToken(http.TokenIssuer, "account-sync-client", devTokenTTL, cfg.TokenSignKey)
		if err != nil {
			log.Fatal().Err(err).Msg("error generating development token")
		}
		log.Info().Str("token", token.String()).Time("expires_at", token.ExpiresAt.Time).Msg("development token issued")
	}

	remote := devserver.NewRemote(devserver.Options{
		InitDelay: cfg.InitDelay,
		BuildInfo: buildInfo,
	}, log)

	handlers, err := handler.NewHandlers(remote, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.AppBuildInfo {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())

	return info
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler builds the transport handlers of the development server.
package handler

import (
	"github.com/MKhiriev/go-account-sync/internal/config"
	"github.com/MKhiriev/go-account-sync/internal/devserver"
	"github.com/MKhiriev/go-account-sync/internal/handler/http"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(remote devserver.Remote, cfg config.DevServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(remote, cfg.TokenSignKey, buildInfo, logger),
	}, nil
}

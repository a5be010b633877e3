// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-account-sync/internal/devserver"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/models"
)

// TokenIssuer is the iss claim of tokens accepted by the auth middleware.
const TokenIssuer = "account-sync-devserver"

type Handler struct {
	remote devserver.Remote

	// tokenSignKey enables the auth middleware when non-empty.
	tokenSignKey string
	buildInfo    models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(remote devserver.Remote, tokenSignKey string, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth", tokenSignKey != "").Msg("http handler created")
	return &Handler{
		remote:       remote,
		tokenSignKey: tokenSignKey,
		buildInfo:    buildInfo,
		logger:       logger,
	}
}

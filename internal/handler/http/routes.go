// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// probes are open so that the client can poll before it holds a token
	router.Group(func(r chi.Router) {
		r.Get("/api/storage/status", h.getStorageStatus)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/{platform}/sync", h.sync)
		r.Get("/api/settings/{name}", h.getSetting)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

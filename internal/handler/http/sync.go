// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-account-sync/internal/app"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/utils"
	"github.com/MKhiriev/go-account-sync/models"
)

func (h *Handler) getStorageStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.remote.StorageStatus(r.Context()), http.StatusOK)
}

func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	platform := chi.URLParam(r, "platform")

	var syncRequest models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&syncRequest); err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	subject, _ := utils.GetSubjectFromContext(ctx)
	response, err := h.remote.Sync(ctx, platform, syncRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.sync").
			Str("platform", platform).
			Str("subject", subject).
			Msg("sync failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) getSetting(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "name")

	doc, err := h.remote.Setting(r.Context(), name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSetting").Str("name", name).Send()
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, doc, http.StatusOK)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-account-sync/internal/app"
	"github.com/MKhiriev/go-account-sync/internal/devserver"
)

var errorStatusMap = map[error]int{
	devserver.ErrStorageInitializing: http.StatusServiceUnavailable,
	devserver.ErrDatabaseUnavailable: http.StatusServiceUnavailable,
	devserver.ErrEmptyPlatform:       http.StatusBadRequest,
	devserver.ErrInvalidSyncRequest:  http.StatusBadRequest,
	devserver.ErrSettingNotFound:     http.StatusNotFound,
	devserver.ErrInvalidSetting:      http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Unmapped errors are
// reported as a bare internal server error.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	switch status {
	case http.StatusInternalServerError:
		http.Error(w, app.MsgInternalServerError, status)
	case http.StatusServiceUnavailable:
		http.Error(w, app.MsgStorageUnavailable+": "+err.Error(), status)
	default:
		http.Error(w, err.Error(), status)
	}
}

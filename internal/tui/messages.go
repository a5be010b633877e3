// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-account-sync/internal/service"
)

type refreshMsg time.Time

type syncDoneMsg struct {
	platform string
	outcome  service.SyncOutcome
	err      error
}

type copiedMsg struct {
	err error
}

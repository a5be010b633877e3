// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal surface of the client: per-platform storage
// status, the pending-change review and notification toasts.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/notify"
	"github.com/MKhiriev/go-account-sync/internal/service"
)

type TUI struct {
	services   *service.ClientServices
	recorder   *notify.Recorder
	notifier   notify.Notifier
	translator notify.Translator
	logger     *logger.Logger
}

// New builds the terminal UI. recorder must be one of the sinks notifier
// delivers to, toasts are drained from it.
func New(
	services *service.ClientServices,
	recorder *notify.Recorder,
	notifier notify.Notifier,
	translator notify.Translator,
	log *logger.Logger,
) *TUI {
	return &TUI{
		services:   services,
		recorder:   recorder,
		notifier:   notifier,
		translator: translator,
		logger:     log,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	instances := make([]service.ClientSyncService, 0, len(t.services.Instances))
	for _, inst := range t.services.Instances {
		instances = append(instances, inst.Service)
	}

	model := newReviewModel(ctx, instances, t.recorder, t.notifier, t.translator)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			t.logger.Info().Msg("tui stopped by context")
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

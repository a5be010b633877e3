// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/service"
	"github.com/MKhiriev/go-account-sync/internal/workers"
)

// UI is the interactive surface the client blocks on.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	closers  []func() error
	logger   *logger.Logger
}

// NewApp assembles the client runtime. closers run in order once Run returns,
// after every sync instance has stopped.
func NewApp(
	services *service.ClientServices,
	ui UI,
	bg *workers.Workers,
	log *logger.Logger,
	closers ...func() error,
) (Client, error) {
	if services == nil || ui == nil {
		return nil, ErrIncompleteApp
	}
	if bg == nil {
		bg = workers.NewWorkers(log)
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  bg,
		closers:  closers,
		logger:   log,
	}, nil
}

// Run initialises every sync instance, warms the settings cache, starts the
// background workers and blocks on the UI until it exits or the process is
// interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.close()

	if err := a.services.Init(ctx); err != nil {
		return fmt.Errorf("init sync instances: %w", err)
	}

	if err := a.services.Settings.LoadAll(ctx, false); err != nil {
		a.logger.Warn().Err(err).Msg("settings are not loaded, will retry on demand")
	}

	a.workers.Start(ctx)

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

func (a *App) close() {
	a.workers.Stop()
	a.services.Close()

	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			a.logger.Error().Err(err).Msg("error closing client resources")
		}
	}
	a.logger.Info().Msg("client stopped")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/models"
)

// statusProber is the part of the server adapter the monitor needs.
type statusProber interface {
	GetStorageStatus(ctx context.Context) (models.StorageStatus, error)
}

// storageMonitor tracks whether remote storage is usable. While the remote
// reports it is initialising, a poller re-probes every interval until the
// answer settles. Each monitor owns its poller.
type storageMonitor struct {
	prober   statusProber
	interval time.Duration
	logger   *logger.Logger

	baseCtx    context.Context
	baseCancel context.CancelFunc

	mu         sync.Mutex
	state      models.StorageState
	pollCancel context.CancelFunc
	wg         sync.WaitGroup
}

func newStorageMonitor(prober statusProber, interval time.Duration, log *logger.Logger) *storageMonitor {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	baseCtx, baseCancel := context.WithCancel(log.WithContext(context.Background()))

	return &storageMonitor{
		prober:     prober,
		interval:   interval,
		logger:     log,
		baseCtx:    baseCtx,
		baseCancel: baseCancel,
		state:      models.StorageUnavailable,
	}
}

// State returns the last probed state.
func (m *storageMonitor) State() models.StorageState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Probe asks the remote for its storage status and updates the state. A probe
// that fails because ctx was cancelled leaves the state as it was.
func (m *storageMonitor) Probe(ctx context.Context) models.StorageState {
	status, err := m.prober.GetStorageStatus(ctx)
	if err != nil && ctx.Err() != nil {
		return m.State()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	previous := m.state
	switch {
	case err != nil:
		m.logger.Error().Err(err).Msg("failed to get storage status")
		m.state = models.StorageUnavailable
		m.stopPollingLocked()
	case status.IsInitializing:
		m.state = models.StorageInitializing
		m.startPollingLocked()
	default:
		m.state = models.StateFromStatus(status)
		m.stopPollingLocked()
	}

	if m.state != previous {
		m.logger.Info().
			Str("from", previous.String()).
			Str("to", m.state.String()).
			Msg("storage state changed")
	}
	return m.state
}

// IsPolling reports whether the initialisation poller is running.
func (m *storageMonitor) IsPolling() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pollCancel != nil
}

// Close stops the poller and waits for it to exit. Probes after Close still
// update the state but never start a poller.
func (m *storageMonitor) Close() {
	m.mu.Lock()
	m.baseCancel()
	m.stopPollingLocked()
	m.mu.Unlock()

	m.wg.Wait()
}

func (m *storageMonitor) startPollingLocked() {
	if m.pollCancel != nil || m.baseCtx.Err() != nil {
		return
	}

	pollCtx, cancel := context.WithCancel(m.baseCtx)
	m.pollCancel = cancel
	m.wg.Add(1)

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(m.interval)
		defer t.Stop()

		for {
			select {
			case <-pollCtx.Done():
				return
			case <-t.C:
				m.Probe(pollCtx)
			}
		}
	}()
}

// stopPollingLocked only cancels: it runs on the poller goroutine itself when
// a poll settles the state, so it must not wait.
func (m *storageMonitor) stopPollingLocked() {
	if m.pollCancel == nil {
		return
	}
	m.pollCancel()
	m.pollCancel = nil
}

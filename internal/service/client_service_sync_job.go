// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-account-sync/models"
)

// syncTarget is the part of ClientSyncService the job drives.
type syncTarget interface {
	Sync(ctx context.Context) (SyncOutcome, error)
	IsSyncNeeded() bool
	State() models.StorageState
}

type clientSyncJob struct {
	syncService syncTarget

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that syncs syncService on a ticker.
// The job is idle until Start is called.
func NewClientSyncJob(syncService syncTarget) ClientSyncJob {
	return &clientSyncJob{syncService: syncService}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that, every interval, calls Sync when the
// instance has pending work and storage is available. A zero or negative
// interval defaults to DefaultSyncInterval. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if !j.syncService.IsSyncNeeded() || j.syncService.State() != models.StorageAvailable {
					continue
				}
				// failures are notified and logged by the service
				_, _ = j.syncService.Sync(jobCtx)
			}
		}
	}()
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

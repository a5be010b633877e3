// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-account-sync/internal/notify"
	"github.com/MKhiriev/go-account-sync/models"
)

// Status badge classes.
const (
	StatusClassAccent  = "badge--accent-tech"
	StatusClassWarning = "badge--warning-tech"
	StatusClassSuccess = "badge--success-tech"
)

func (s *clientSyncService) PendingUpserts() []models.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.upsertList()
}

func (s *clientSyncService) PendingDeletions() []models.Tombstone {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.deletionList()
}

func (s *clientSyncService) HasPendingChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.ledger.isEmpty()
}

// CheckPendingChanges implements ClientSyncService. HasChanges is filled in
// even when Err reports that storage is unavailable.
func (s *clientSyncService) CheckPendingChanges() PendingCheck {
	check := PendingCheck{HasChanges: s.HasPendingChanges()}
	if s.monitor.State() != models.StorageAvailable {
		check.Err = ErrStorageUnavailable
	}
	return check
}

// StorageStatusText implements ClientSyncService.
func (s *clientSyncService) StorageStatusText() string {
	switch s.monitor.State() {
	case models.StorageInitializing:
		return s.translator.T(notify.KeyStorageInitializing)
	case models.StorageAvailable:
		if s.HasPendingChanges() {
			return s.translator.T(notify.KeyStorageDualStorage) + "-" + s.translator.T(notify.KeyStorageNotSynced)
		}
		return s.translator.T(notify.KeyStorageDualStorage)
	default:
		return s.translator.T(notify.KeyStorageLocalStorage)
	}
}

// StorageStatusClass implements ClientSyncService.
func (s *clientSyncService) StorageStatusClass() string {
	switch s.monitor.State() {
	case models.StorageAvailable:
		if s.HasPendingChanges() {
			return StatusClassWarning
		}
		return StatusClassSuccess
	default:
		return StatusClassAccent
	}
}

// OpenQueueReview implements ClientSyncService.
func (s *clientSyncService) OpenQueueReview() bool {
	if s.monitor.State() != models.StorageAvailable {
		s.notifier.Info(s.translator.T(notify.KeyStorageDatabaseNotAvailable))
		return false
	}
	s.reviewOpen.Store(true)
	return true
}

func (s *clientSyncService) CloseQueueReview() {
	s.reviewOpen.Store(false)
}

func (s *clientSyncService) IsQueueReviewOpen() bool {
	return s.reviewOpen.Load()
}

func (s *clientSyncService) IsSyncing() bool {
	return s.syncing.Load()
}

func (s *clientSyncService) IsSyncNeeded() bool {
	return s.syncNeeded.Load()
}

func (s *clientSyncService) IsLoadingFromSync() bool {
	return s.loadingFromSync.Load()
}

func (s *clientSyncService) State() models.StorageState {
	return s.monitor.State()
}

func (s *clientSyncService) LastVersion() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

func (s *clientSyncService) Platform() string {
	return s.cfg.Platform
}

func (s *clientSyncService) LabelField() string {
	return s.cfg.LabelField
}

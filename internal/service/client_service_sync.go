// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-account-sync/internal/adapter"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/notify"
	"github.com/MKhiriev/go-account-sync/internal/store"
	"github.com/MKhiriev/go-account-sync/models"
)

type clientSyncService struct {
	cfg        SyncConfig
	repo       store.SyncStateRepository
	adapter    adapter.ServerAdapter
	notifier   notify.Notifier
	translator notify.Translator
	logger     *logger.Logger
	monitor    *storageMonitor

	// mu orders ledger mutations and their persistence.
	mu      sync.Mutex
	ledger  *pendingLedger
	version int64

	syncing         atomic.Bool
	syncNeeded      atomic.Bool
	loadingFromSync atomic.Bool
	reviewOpen      atomic.Bool
}

// NewClientSyncService builds one sync instance. The instance is idle until
// Init is called.
func NewClientSyncService(
	cfg SyncConfig,
	repo store.SyncStateRepository,
	serverAdapter adapter.ServerAdapter,
	notifier notify.Notifier,
	translator notify.Translator,
	log *logger.Logger,
) (ClientSyncService, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if serverAdapter == nil {
		return nil, ErrNoRemoteAvailable
	}
	cfg = cfg.withDefaults()
	log = log.ForPlatform(cfg.Platform)

	return &clientSyncService{
		cfg:        cfg,
		repo:       repo,
		adapter:    serverAdapter,
		notifier:   notifier,
		translator: translator,
		logger:     log,
		monitor:    newStorageMonitor(serverAdapter, cfg.PollInterval, log),
		ledger:     newPendingLedger(),
	}, nil
}

// Init implements ClientSyncService. Unreadable persisted state is logged and
// replaced by empty defaults; only a cancelled ctx is returned as an error.
func (s *clientSyncService) Init(ctx context.Context) error {
	ctx = s.logger.WithContext(ctx)

	version, err := s.repo.LoadVersion(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load last version, starting from 0")
	}
	ledgerState, err := s.repo.LoadLedger(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load pending changes")
	}
	known, knownErr := s.repo.LoadKnownIDs(ctx)
	if knownErr != nil {
		s.logger.Warn().Err(knownErr).Msg("failed to load known ids")
	}

	s.mu.Lock()
	s.version = version
	s.ledger.load(ledgerState)

	if known == nil && knownErr == nil {
		// nothing recorded yet: every live item without a pending upsert
		// came from an earlier merge
		for _, item := range s.cfg.Items.All() {
			if id := item.ID(); id != "" && !s.ledger.hasUpsert(id) {
				known = append(known, id)
			}
		}
		s.ledger.setKnown(known)
		s.persistKnownLocked(ctx)
	} else {
		s.ledger.setKnown(known)
	}

	if !s.ledger.isEmpty() {
		s.syncNeeded.Store(true)
	}
	pendingUpserts, pendingDeletions := len(s.ledger.upserts), len(s.ledger.deletions)
	s.mu.Unlock()

	s.logger.Info().
		Int64("last_version", version).
		Int("pending_upserts", pendingUpserts).
		Int("pending_deletions", pendingDeletions).
		Msg("sync state loaded")

	s.Probe(ctx)
	return ctx.Err()
}

// Close implements ClientSyncService.
func (s *clientSyncService) Close() {
	s.monitor.Close()
}

// Probe implements ClientSyncService.
func (s *clientSyncService) Probe(ctx context.Context) models.StorageState {
	return s.monitor.Probe(ctx)
}

// Sync implements ClientSyncService.
//
// Steps: snapshot the ledger, send it with the version cursor, merge the
// response into the live collection, advance the cursor, acknowledge the
// snapshot, run OnSyncComplete and hold the loading flag. Entries modified
// while the request was in flight stay pending.
func (s *clientSyncService) Sync(ctx context.Context) (SyncOutcome, error) {
	if !s.syncing.CompareAndSwap(false, true) {
		return SyncSkippedInFlight, nil
	}
	defer s.syncing.Store(false)

	if s.monitor.State() != models.StorageAvailable {
		s.notifier.Warning(s.translator.T(notify.KeyDatabaseNotAvailable))
		return SyncSkippedUnavailable, nil
	}

	ctx = s.logger.WithContext(ctx)
	s.notifier.Info(s.translator.T(notify.KeySyncingData))

	s.mu.Lock()
	snap := s.ledger.snapshot()
	req := buildSyncRequest(s.version, s.cfg.ItemKey, snap)
	s.mu.Unlock()

	started := time.Now()
	resp, err := s.adapter.Sync(ctx, s.cfg.Platform, req)
	if err != nil {
		s.mu.Lock()
		s.ledger.release(snap)
		s.mu.Unlock()

		s.logger.Error().Err(err).Int64("last_version", req.LastVersion).Msg("sync request failed")
		s.notifier.Error(fmt.Sprintf("%s: %v", s.translator.T(notify.KeySyncFailed), err))
		return SyncFailed, fmt.Errorf("sync %s: %w", s.cfg.Platform, err)
	}

	s.loadingFromSync.Store(true)

	s.mu.Lock()
	returnedIDs := s.mergeLocked(resp, snap)
	s.advanceVersionLocked(ctx, resp.NewVersion)
	s.ledger.acknowledge(snap, returnedIDs, resp.Deletions)
	s.persistLedgerLocked(ctx)
	s.persistKnownLocked(ctx)
	remaining := !s.ledger.isEmpty()
	s.mu.Unlock()

	s.logger.Info().
		Int("sent_upserts", len(req.Upserts)).
		Int("sent_deletions", len(req.Deletions)).
		Int("received_upserts", len(resp.Upserts)).
		Int("received_deletions", len(resp.Deletions)).
		Int64("new_version", resp.NewVersion).
		Dur("took", time.Since(started)).
		Msg("sync completed")

	if s.cfg.OnSyncComplete != nil {
		if err := s.cfg.OnSyncComplete(ctx); err != nil {
			s.logger.Error().Err(err).Msg("sync completion callback failed")
		}
	}

	hold := time.NewTimer(s.cfg.LoadingHold)
	select {
	case <-hold.C:
	case <-ctx.Done():
		hold.Stop()
	}

	s.loadingFromSync.Store(false)
	s.syncNeeded.Store(remaining)
	s.notifier.Success(s.translator.T(notify.KeySyncComplete))
	return SyncCompleted, nil
}

func buildSyncRequest(version int64, itemKey string, snap ledgerSnapshot) models.SyncRequest {
	req := models.SyncRequest{
		LastVersion: version,
		Upserts:     make([]map[string]models.Entity, 0, len(snap.upserts)),
		Deletions:   make([]models.DeletionRef, 0, len(snap.deletions)),
	}
	for _, e := range snap.upserts {
		req.Upserts = append(req.Upserts, map[string]models.Entity{itemKey: e})
	}
	for _, t := range snap.deletions {
		req.Deletions = append(req.Deletions, models.DeletionRef{ID: t.ID})
	}
	return req
}

// mergeLocked applies server upserts (replace in place or append) and server
// deletions to the live collection. An upsert for an id changed locally since
// snap is not written: the local edit or tombstone is newer than the echo.
// It returns the ids of all returned upserts.
func (s *clientSyncService) mergeLocked(resp models.SyncResponse, snap ledgerSnapshot) []string {
	ids := make([]string, 0, len(resp.Upserts))
	for _, e := range resp.Upserts {
		id := e.ID()
		if id == "" {
			s.logger.Warn().Msg("server returned an entity without id, skipping")
			continue
		}
		ids = append(ids, id)

		if s.ledger.changedSince(snap, id) {
			s.logger.Debug().Str("id", id).Msg("local change is newer than server copy, keeping it")
			continue
		}
		s.cfg.Items.Upsert(e)
	}

	for _, id := range resp.Deletions {
		s.cfg.Items.Remove(id)
		if s.cfg.Selection != nil && s.cfg.Selection.Current() == id {
			s.cfg.Selection.Clear()
		}
	}
	return ids
}

// advanceVersionLocked moves the cursor forward. A lower version from the
// server is ignored so the cursor never goes back.
func (s *clientSyncService) advanceVersionLocked(ctx context.Context, newVersion int64) {
	if newVersion < s.version {
		s.logger.Warn().
			Int64("last_version", s.version).
			Int64("new_version", newVersion).
			Msg("server returned an older version, keeping the current one")
		return
	}

	s.version = newVersion
	if err := s.repo.SaveVersion(ctx, newVersion); err != nil {
		s.logger.Error().Err(err).Int64("version", newVersion).Msg("failed to save last version")
	}
}

// MarkUpsert implements ClientSyncService.
func (s *clientSyncService) MarkUpsert(ctx context.Context, e models.Entity) {
	if e.ID() == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.markUpsert(e.Clone())
	s.persistLedgerLocked(ctx)

	if s.monitor.State() == models.StorageAvailable {
		s.syncNeeded.Store(true)
	}
}

// MarkDeletion implements ClientSyncService.
func (s *clientSyncService) MarkDeletion(ctx context.Context, e models.Entity) {
	id := e.ID()
	if id == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ledger.markDeletion(id, e.Label(s.cfg.LabelField)) {
		s.logger.Debug().Str("id", id).Msg("local-only item deleted, pending upsert dropped")
	}
	s.persistLedgerLocked(ctx)

	if s.monitor.State() == models.StorageAvailable {
		s.syncNeeded.Store(!s.ledger.isEmpty())
	}
}

// MarkUpsertByID implements ClientSyncService.
func (s *clientSyncService) MarkUpsertByID(ctx context.Context, id string) {
	if item, ok := s.cfg.Items.Find(id); ok {
		s.MarkUpsert(ctx, item)
	}
}

// MarkAllForSync implements ClientSyncService.
func (s *clientSyncService) MarkAllForSync(ctx context.Context) bool {
	items := s.cfg.Items.All()
	if len(items) == 0 {
		return false
	}

	clones := make([]models.Entity, 0, len(items))
	for _, item := range items {
		clones = append(clones, item.Clone())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.replaceUpserts(clones)
	s.persistLedgerLocked(ctx)
	s.syncNeeded.Store(true)
	return true
}

// persistLedgerLocked writes both pending sets. Failures are logged; the
// in-memory ledger stays authoritative.
func (s *clientSyncService) persistLedgerLocked(ctx context.Context) {
	if err := s.repo.SaveUpserts(ctx, s.ledger.upsertList()); err != nil {
		s.logger.Error().Err(err).Msg("failed to save pending upserts")
	}
	if err := s.repo.SaveDeletions(ctx, s.ledger.deletionList()); err != nil {
		s.logger.Error().Err(err).Msg("failed to save pending deletions")
	}
}

func (s *clientSyncService) persistKnownLocked(ctx context.Context) {
	if err := s.repo.SaveKnownIDs(ctx, s.ledger.knownList()); err != nil {
		s.logger.Error().Err(err).Msg("failed to save known ids")
	}
}

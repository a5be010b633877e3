// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/validators"
	"github.com/MKhiriev/go-account-sync/models"
)

// StorageType is reported in every status answer.
const StorageType = "memory"

// Options configures a [Remote].
type Options struct {
	// InitDelay keeps the status "initializing" for this long after creation.
	InitDelay time.Duration

	// BuildInfo feeds the app_version settings document.
	BuildInfo models.AppBuildInfo

	// Now overrides the clock; time.Now when nil.
	Now func() time.Time
}

type versionedEntity struct {
	entity  models.Entity
	version int64
}

// changeLog is the versioned state of one platform. Every applied upsert or
// deletion takes the next version.
type changeLog struct {
	version  int64
	entities map[string]versionedEntity
	deleted  map[string]int64
}

func newChangeLog() *changeLog {
	return &changeLog{
		entities: make(map[string]versionedEntity),
		deleted:  make(map[string]int64),
	}
}

func (c *changeLog) upsert(e models.Entity) int64 {
	c.version++
	id := e.ID()
	c.entities[id] = versionedEntity{entity: e.Clone(), version: c.version}
	delete(c.deleted, id)
	return c.version
}

func (c *changeLog) delete(id string) int64 {
	c.version++
	delete(c.entities, id)
	c.deleted[id] = c.version
	return c.version
}

// since lists changes after version, oldest first.
func (c *changeLog) since(version int64) ([]models.Entity, []string) {
	changed := make([]versionedEntity, 0)
	for _, ve := range c.entities {
		if ve.version > version {
			changed = append(changed, ve)
		}
	}
	slices.SortFunc(changed, func(a, b versionedEntity) int {
		return cmp.Compare(a.version, b.version)
	})

	upserts := make([]models.Entity, 0, len(changed))
	for _, ve := range changed {
		upserts = append(upserts, ve.entity.Clone())
	}

	deletions := make([]string, 0)
	for id, v := range c.deleted {
		if v > version {
			deletions = append(deletions, id)
		}
	}
	slices.SortFunc(deletions, func(a, b string) int {
		return cmp.Compare(c.deleted[a], c.deleted[b])
	})

	return upserts, deletions
}

type memoryRemote struct {
	mu        sync.RWMutex
	platforms map[string]*changeLog
	settings  map[string]json.RawMessage
	dbDown    bool

	readyAt time.Time
	now     func() time.Time

	validator validators.Validator
	logger    *logger.Logger
}

// NewRemote builds an empty in-memory [Remote].
func NewRemote(opts Options, log *logger.Logger) Remote {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	r := &memoryRemote{
		platforms: make(map[string]*changeLog),
		settings:  defaultSettings(opts.BuildInfo),
		readyAt:   now().Add(opts.InitDelay),
		now:       now,
		validator: validators.NewSyncRequestValidator(),
		logger:    log,
	}
	log.Info().Dur("init_delay", opts.InitDelay).Msg("in-memory remote created")
	return r
}

func defaultSettings(info models.AppBuildInfo) map[string]json.RawMessage {
	appVersion, _ := json.Marshal(info.AsSetting())

	return map[string]json.RawMessage{
		"app_version":       appVersion,
		"api_server_status": json.RawMessage(`{"status":"ok"}`),
		"proxy_config":      json.RawMessage(`{"enabled":false}`),
		"database_config":   json.RawMessage(`{"driver":"` + StorageType + `"}`),
	}
}

func (r *memoryRemote) StorageStatus(_ context.Context) models.StorageStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	initializing := r.now().Before(r.readyAt)
	return models.StorageStatus{
		IsInitializing:      initializing,
		IsDatabaseAvailable: !initializing && !r.dbDown,
		IsAvailable:         true,
		StorageType:         StorageType,
	}
}

func (r *memoryRemote) SetDatabaseAvailable(available bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dbDown = !available
}

func (r *memoryRemote) Sync(ctx context.Context, platform string, req models.SyncRequest) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	if platform == "" {
		return models.SyncResponse{}, ErrEmptyPlatform
	}
	upserts, deletions, err := r.unwrapSyncRequest(ctx, req)
	if err != nil {
		return models.SyncResponse{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err = r.readyLocked(); err != nil {
		return models.SyncResponse{}, err
	}

	cl := r.changeLogLocked(platform)

	// A cursor ahead of the log means the log was lost (restart). Fast-forward
	// so new changes sort after the client's cursor, and answer a full snapshot.
	since := req.LastVersion
	if req.LastVersion > cl.version {
		log.Warn().
			Str("platform", platform).
			Int64("last_version", req.LastVersion).
			Int64("server_version", cl.version).
			Msg("client is ahead of the change log, answering a full snapshot")
		cl.version = req.LastVersion
		since = 0
	}

	for _, e := range upserts {
		cl.upsert(e)
	}
	for _, id := range deletions {
		cl.delete(id)
	}

	respUpserts, respDeletions := cl.since(since)

	log.Info().
		Str("platform", platform).
		Int64("last_version", req.LastVersion).
		Int("applied_upserts", len(upserts)).
		Int("applied_deletions", len(deletions)).
		Int64("new_version", cl.version).
		Msg("sync applied")

	return models.SyncResponse{
		Upserts:    respUpserts,
		Deletions:  respDeletions,
		NewVersion: cl.version,
	}, nil
}

func (r *memoryRemote) Setting(_ context.Context, name string) (json.RawMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.settings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSettingNotFound, name)
	}
	return slices.Clone(doc), nil
}

func (r *memoryRemote) SetSetting(name string, doc json.RawMessage) error {
	if name == "" || !json.Valid(doc) {
		return fmt.Errorf("%w: %q", ErrInvalidSetting, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[name] = slices.Clone(doc)
	return nil
}

func (r *memoryRemote) Upsert(platform string, e models.Entity) (int64, error) {
	if platform == "" {
		return 0, ErrEmptyPlatform
	}
	if err := r.validator.Validate(context.Background(), e); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSyncRequest, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.changeLogLocked(platform).upsert(e), nil
}

func (r *memoryRemote) Delete(platform, id string) (int64, error) {
	if platform == "" {
		return 0, ErrEmptyPlatform
	}
	if id == "" {
		return 0, fmt.Errorf("%w: empty deletion id", ErrInvalidSyncRequest)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.changeLogLocked(platform).delete(id), nil
}

func (r *memoryRemote) Version(platform string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if cl, ok := r.platforms[platform]; ok {
		return cl.version
	}
	return 0
}

func (r *memoryRemote) readyLocked() error {
	if r.now().Before(r.readyAt) {
		return ErrStorageInitializing
	}
	if r.dbDown {
		return ErrDatabaseUnavailable
	}
	return nil
}

func (r *memoryRemote) changeLogLocked(platform string) *changeLog {
	cl, ok := r.platforms[platform]
	if !ok {
		cl = newChangeLog()
		r.platforms[platform] = cl
	}
	return cl
}

// unwrapSyncRequest validates req and strips the item-key wrapper off every
// upsert.
func (r *memoryRemote) unwrapSyncRequest(ctx context.Context, req models.SyncRequest) ([]models.Entity, []string, error) {
	if err := r.validator.Validate(ctx, req); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidSyncRequest, err)
	}

	upserts := make([]models.Entity, 0, len(req.Upserts))
	for _, wrapped := range req.Upserts {
		for _, e := range wrapped {
			upserts = append(upserts, e)
		}
	}

	deletions := make([]string, 0, len(req.Deletions))
	for _, ref := range req.Deletions {
		deletions = append(deletions, ref.ID)
	}

	return upserts, deletions, nil
}

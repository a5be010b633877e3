// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-account-sync/internal/config"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/internal/utils"
	"github.com/MKhiriev/go-account-sync/models"
)

// TraceIDHeader carries the per-request trace id.
const TraceIDHeader = "X-Trace-ID"

const (
	storageStatusPath = "/api/storage/status"
	syncPath          = "/api/{platform}/sync"
	settingsPath      = "/api/settings/{name}"

	defaultBaseURL = "http://localhost:8080"
	defaultTimeout = 15 * time.Second
)

// httpServerAdapter implements [ServerAdapter] over JSON/HTTP with resty.
type httpServerAdapter struct {
	client  *utils.HTTPClient
	traceID *utils.UUIDGenerator
	logger  *logger.Logger

	mu    sync.RWMutex
	token string

	now func() time.Time
}

// NewHTTPServerAdapter builds a [ServerAdapter] for cfg.HTTPAddress. A token
// in cfg is installed immediately.
func NewHTTPServerAdapter(cfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL := strings.TrimRight(cfg.HTTPAddress, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("adapter address %q must start with http:// or https://", cfg.HTTPAddress)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	h := &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, timeout),
		traceID: utils.NewUUIDGenerator(),
		logger:  log,
		now:     time.Now,
	}
	h.client.OnBeforeRequest(h.attachTraceID)
	h.SetToken(cfg.Token)

	return h, nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) GetStorageStatus(ctx context.Context) (models.StorageStatus, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.StorageStatus{}, err
	}

	resp, err := req.Get(storageStatusPath)
	if err != nil {
		return models.StorageStatus{}, fmt.Errorf("storage status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StorageStatus{}, err
	}

	var status models.StorageStatus
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return models.StorageStatus{}, fmt.Errorf("%w: storage status: %w", ErrDecodeResponse, err)
	}
	return status, nil
}

func (h *httpServerAdapter) Sync(ctx context.Context, platform string, syncReq models.SyncRequest) (models.SyncResponse, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.SyncResponse{}, err
	}

	resp, err := req.
		SetPathParam("platform", platform).
		SetHeader("Content-Type", "application/json").
		SetBody(syncReq).
		Post(syncPath)
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncResponse{}, err
	}

	var syncResp models.SyncResponse
	if err = json.Unmarshal(resp.Body(), &syncResp); err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: sync response: %w", ErrDecodeResponse, err)
	}
	return syncResp, nil
}

func (h *httpServerAdapter) GetSetting(ctx context.Context, name string) (json.RawMessage, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.SetPathParam("name", name).Get(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: setting %s", ErrDecodeResponse, name)
	}
	return json.RawMessage(body), nil
}

// authedRequest returns a request carrying the bearer token, if any. An
// expired JWT fails with [ErrTokenExpired]; opaque tokens are sent as is.
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	req := h.client.R().SetContext(ctx)

	token := h.Token()
	if token == "" {
		return req, nil
	}
	if tokenExpired(token, h.now()) {
		return nil, ErrTokenExpired
	}
	return req.SetAuthToken(token), nil
}

func (h *httpServerAdapter) attachTraceID(_ *resty.Client, r *resty.Request) error {
	traceID := h.traceID.Generate()
	r.SetHeader(TraceIDHeader, traceID)

	h.logger.Debug().
		Str("trace_id", traceID).
		Str("method", r.Method).
		Str("url", r.URL).
		Msg("outgoing request")
	return nil
}

// tokenExpired reports whether token is a JWT whose exp claim is before now.
func tokenExpired(token string, now time.Time) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(now)
}

// IsTransient reports whether err is worth retrying later: transport
// failures and 5xx responses, but not auth or client errors.
func IsTransient(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrForbidden),
		errors.Is(err, ErrBadRequest),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrDecodeResponse):
		return false
	default:
		return true
	}
}

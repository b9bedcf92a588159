// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/utils"
	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/go-resty/resty/v2"
)

const (
	defaultRequestTimeout = 15 * time.Second
	userIDHeader          = "X-User-ID"
)

// Config configures an HTTP adapter.
type Config struct {
	// HTTPAddress is the server base URL; a bare host:port gets "http://".
	HTTPAddress string

	// ServerID must match the server's configured OPAQUE identity.
	ServerID string

	RequestTimeout time.Duration

	// Retries applies to transport failures and gateway errors only.
	Retries int
}

type httpServerAdapter struct {
	client   *utils.HTTPClient
	serverID string

	mu     sync.RWMutex
	userID int64

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It normalises the base URL from cfg.HTTPAddress and configures the
// underlying resty client with the request timeout and retry policy.
func NewHTTPServerAdapter(cfg Config, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	return &httpServerAdapter{
		client:   utils.NewHTTPClient(baseURL, cfg.RequestTimeout, cfg.Retries),
		serverID: cfg.ServerID,
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetUserID(userID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.userID = userID
}

func (h *httpServerAdapter) UserID() int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.userID
}

// RegisterStart implements [ServerAdapter] for
// POST /api/v1/secret-tags/register/start.
func (h *httpServerAdapter) RegisterStart(ctx context.Context, req models.RegisterStartRequest) (models.RegisterStartResponse, error) {
	var result models.RegisterStartResponse
	if err := h.post(ctx, "/api/v1/secret-tags/register/start", req, &result); err != nil {
		return models.RegisterStartResponse{}, fmt.Errorf("register start request: %w", err)
	}
	return result, nil
}

// RegisterFinish implements [ServerAdapter] for
// POST /api/v1/secret-tags/register/finish.
func (h *httpServerAdapter) RegisterFinish(ctx context.Context, req models.RegisterFinishRequest) (models.SecretTagSummary, error) {
	var result models.SecretTagSummary
	if err := h.post(ctx, "/api/v1/secret-tags/register/finish", req, &result); err != nil {
		return models.SecretTagSummary{}, fmt.Errorf("register finish request: %w", err)
	}
	return result, nil
}

// LoginStart implements [ServerAdapter] for
// POST /api/v1/secret-tags/login/start.
func (h *httpServerAdapter) LoginStart(ctx context.Context, req models.LoginStartRequest) (models.LoginStartResponse, error) {
	var result models.LoginStartResponse
	if err := h.post(ctx, "/api/v1/secret-tags/login/start", req, &result); err != nil {
		return models.LoginStartResponse{}, fmt.Errorf("login start request: %w", err)
	}
	return result, nil
}

// LoginFinish implements [ServerAdapter] for
// POST /api/v1/secret-tags/login/finish.
func (h *httpServerAdapter) LoginFinish(ctx context.Context, req models.LoginFinishRequest) (models.LoginFinishResponse, error) {
	var result models.LoginFinishResponse
	if err := h.post(ctx, "/api/v1/secret-tags/login/finish", req, &result); err != nil {
		return models.LoginFinishResponse{}, fmt.Errorf("login finish request: %w", err)
	}
	return result, nil
}

func (h *httpServerAdapter) ListSecretTags(ctx context.Context) ([]models.SecretTagSummary, error) {
	req, err := h.userRequest(ctx)
	if err != nil {
		return nil, err
	}

	var tags []models.SecretTagSummary
	resp, err := req.SetResult(&tags).Get("/api/v1/secret-tags")
	if err != nil {
		return nil, fmt.Errorf("list secret tags request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return tags, nil
}

func (h *httpServerAdapter) GetSecretTag(ctx context.Context, tagID models.TagID) (models.SecretTagSummary, error) {
	req, err := h.userRequest(ctx)
	if err != nil {
		return models.SecretTagSummary{}, err
	}

	var tag models.SecretTagSummary
	resp, err := req.
		SetPathParam("tagID", tagID.String()).
		SetResult(&tag).
		Get("/api/v1/secret-tags/{tagID}")
	if err != nil {
		return models.SecretTagSummary{}, fmt.Errorf("get secret tag request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SecretTagSummary{}, err
	}
	return tag, nil
}

func (h *httpServerAdapter) UpdateSecretTag(ctx context.Context, tagID models.TagID, update models.SecretTagUpdate) (models.SecretTagSummary, error) {
	req, err := h.userRequest(ctx)
	if err != nil {
		return models.SecretTagSummary{}, err
	}

	var tag models.SecretTagSummary
	resp, err := req.
		SetPathParam("tagID", tagID.String()).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&tag).
		Patch("/api/v1/secret-tags/{tagID}")
	if err != nil {
		return models.SecretTagSummary{}, fmt.Errorf("update secret tag request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SecretTagSummary{}, err
	}
	return tag, nil
}

func (h *httpServerAdapter) DeleteSecretTag(ctx context.Context, tagID models.TagID) error {
	req, err := h.userRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("tagID", tagID.String()).
		Delete("/api/v1/secret-tags/{tagID}")
	if err != nil {
		return fmt.Errorf("delete secret tag request: %w", err)
	}
	return mapHTTPError(resp)
}

// UnwrapVaultKey implements [ServerAdapter] for POST /api/v1/vault/keys/unwrap.
func (h *httpServerAdapter) UnwrapVaultKey(ctx context.Context, token string, req models.UnwrapKeyRequest) (models.UnwrapKeyResponse, error) {
	r, err := h.userRequest(ctx)
	if err != nil {
		return models.UnwrapKeyResponse{}, err
	}

	var result models.UnwrapKeyResponse
	resp, err := r.
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/v1/vault/keys/unwrap")
	if err != nil {
		return models.UnwrapKeyResponse{}, fmt.Errorf("unwrap vault key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UnwrapKeyResponse{}, err
	}
	return result, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/v1/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}
	return version, nil
}

// post sends body as JSON to path on behalf of the current user and decodes
// a 2xx response into result.
func (h *httpServerAdapter) post(ctx context.Context, path string, body, result any) error {
	req, err := h.userRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(result).
		Post(path)
	if err != nil {
		return err
	}
	return mapHTTPError(resp)
}

// userRequest returns a request carrying the X-User-ID header.
func (h *httpServerAdapter) userRequest(ctx context.Context) (*resty.Request, error) {
	userID := h.UserID()
	if userID <= 0 {
		return nil, ErrNoUserID
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader(userIDHeader, strconv.FormatInt(userID, 10)), nil
}

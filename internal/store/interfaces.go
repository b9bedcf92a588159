// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists secret tags, their wrapped vault keys, in-flight
// OPAQUE sessions, login attempt counters and the OPAQUE server setup in
// PostgreSQL.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secret-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SecretTagRepository is the durable registry of secret tags and the
// wrapped keys bound to them.
type SecretTagRepository interface {
	// CreateSecretTag inserts tag and keys in one transaction. The per-user
	// quota is re-checked under an advisory lock inside the same transaction.
	CreateSecretTag(ctx context.Context, tag models.SecretTag, keys []models.WrappedKey, quota int) (models.SecretTag, error)
	GetSecretTag(ctx context.Context, userID int64, tagID models.TagID) (models.SecretTag, error)
	ListSecretTags(ctx context.Context, userID int64) ([]models.SecretTag, error)
	UpdateSecretTag(ctx context.Context, userID int64, tagID models.TagID, update models.SecretTagUpdate) (models.SecretTag, error)
	// DeleteSecretTag removes the tag together with its wrapped keys.
	DeleteSecretTag(ctx context.Context, userID int64, tagID models.TagID) error
	ListWrappedKeys(ctx context.Context, tagID models.TagID) ([]models.WrappedKey, error)
	CountSecretTags(ctx context.Context, userID int64) (int, error)
}

// SessionRepository stores short-lived OPAQUE protocol sessions. A session
// can be claimed exactly once.
type SessionRepository interface {
	// CreateSession assigns a fresh session id, sets the expiry to now+ttl
	// in database time and persists the session.
	CreateSession(ctx context.Context, session models.OpaqueSession, ttl time.Duration) (models.OpaqueSession, error)
	// ClaimSession atomically deletes and returns the session. An expired
	// session is deleted as well and reported with ErrSessionExpired.
	ClaimSession(ctx context.Context, sessionID string) (models.OpaqueSession, error)
	// SweepExpiredSessions deletes at most batchSize expired sessions.
	SweepExpiredSessions(ctx context.Context, batchSize int) (int64, error)
}

// RateLimitRepository keeps failed login counters per (ip, bucket).
type RateLimitRepository interface {
	Attempts(ctx context.Context, ip, bucket string, window time.Duration) (int, error)
	IncrementAttempts(ctx context.Context, ip, bucket string, window time.Duration) (int, error)
	DecrementAttempts(ctx context.Context, ip, bucket string) error
	ResetAttempts(ctx context.Context, ip, bucket string) error
	SweepExpiredCounters(ctx context.Context, window time.Duration) (int64, error)
}

// ServerSetupRepository persists the single OPAQUE server setup.
type ServerSetupRepository interface {
	GetServerSetup(ctx context.Context) (string, error)
	// SaveServerSetup stores encoded unless a setup already exists, and
	// returns whichever setup is stored afterwards.
	SaveServerSetup(ctx context.Context, encoded string) (string, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

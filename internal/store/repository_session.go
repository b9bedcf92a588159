// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/models"
)

// sessionIDBytes is the entropy of a session id; base64url renders it as
// 43 characters.
const sessionIDBytes = 32

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository] over the "opaque_sessions" table.
type sessionRepository struct {
	*DB
	logger *logger.Logger
	rand   io.Reader
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		DB:     db,
		logger: logger,
		rand:   rand.Reader,
	}
}

func (r *sessionRepository) newSessionID() (string, error) {
	buf := make([]byte, sessionIDBytes)
	if _, err := io.ReadFull(r.rand, buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.OpaqueSession, ttl time.Duration) (models.OpaqueSession, error) {
	log := logger.FromContext(ctx)

	id, err := r.newSessionID()
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.CreateSession").Msg("failed to generate session id")
		return models.OpaqueSession{}, fmt.Errorf("error generating session id: %w", err)
	}
	session.SessionID = id

	var tagID any
	if session.TagID != nil {
		tagID = session.TagID.Bytes()
	}

	err = r.DB.QueryRowContext(ctx, insertSession, session.SessionID, session.UserID, tagID, string(session.State),
		session.SessionData, ttl.Seconds()).Scan(&session.ExpiresAt, &session.LastActivity)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.CreateSession").
			Int64("user_id", session.UserID).
			Str("state", string(session.State)).
			Msg("failed to insert session")
		if r.IsConflict(err) {
			return models.OpaqueSession{}, fmt.Errorf("%w: session id collision", ErrExecutingStatement)
		}
		return models.OpaqueSession{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().
		Str("func", "sessionRepository.CreateSession").
		Int64("user_id", session.UserID).
		Str("state", string(session.State)).
		Time("expires_at", session.ExpiresAt).
		Msg("session created")

	return session, nil
}

// ClaimSession is the single serialization point of every protocol flow:
// whichever caller's DELETE … RETURNING sees the row owns the session.
func (r *sessionRepository) ClaimSession(ctx context.Context, sessionID string) (models.OpaqueSession, error) {
	log := logger.FromContext(ctx)

	var (
		session models.OpaqueSession
		tagID   []byte
		state   string
		expired bool
	)
	err := r.DB.QueryRowContext(ctx, claimSession, sessionID).Scan(&session.SessionID, &session.UserID, &tagID,
		&state, &session.SessionData, &session.ExpiresAt, &session.LastActivity, &expired)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.OpaqueSession{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "sessionRepository.ClaimSession").Msg("failed to claim session")
		return models.OpaqueSession{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	session.State = models.SessionState(state)
	if tagID != nil {
		id, idErr := models.TagIDFromBytes(tagID)
		if idErr != nil {
			return models.OpaqueSession{}, fmt.Errorf("%w: %w", ErrScanningRow, idErr)
		}
		session.TagID = &id
	}

	if expired {
		log.Info().
			Str("func", "sessionRepository.ClaimSession").
			Int64("user_id", session.UserID).
			Time("expires_at", session.ExpiresAt).
			Msg("claimed expired session")
		return session, ErrSessionExpired
	}

	return session, nil
}

func (r *sessionRepository) SweepExpiredSessions(ctx context.Context, batchSize int) (int64, error) {
	log := logger.FromContext(ctx)

	var deleted int64
	err := r.withRetry(ctx, func() error {
		result, err := r.DB.ExecContext(ctx, sweepSessions, batchSize)
		if err != nil {
			return err
		}
		deleted, err = result.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.SweepExpiredSessions").Msg("failed to sweep expired sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

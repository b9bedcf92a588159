// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
)

// rateLimitRepository keeps failed-attempt counters in
// "rate_limit_counters" so every instance shares the same view.
type rateLimitRepository struct {
	*DB
	logger *logger.Logger
}

// NewRateLimitRepository constructs a [RateLimitRepository] backed by db.
func NewRateLimitRepository(db *DB, logger *logger.Logger) RateLimitRepository {
	logger.Debug().Msg("creating rate limit repository")
	return &rateLimitRepository{
		DB:     db,
		logger: logger,
	}
}

// Attempts returns the failures counted for (ip, bucket) inside the current
// window, or zero when the window has lapsed.
func (r *rateLimitRepository) Attempts(ctx context.Context, ip, bucket string, window time.Duration) (int, error) {
	log := logger.FromContext(ctx)

	var attempts int
	err := r.DB.QueryRowContext(ctx, selectAttempts, ip, bucket, window.Seconds()).Scan(&attempts)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		log.Err(err).Str("func", "rateLimitRepository.Attempts").Str("bucket", bucket).Msg("failed to read attempts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return attempts, nil
}

// IncrementAttempts atomically bumps the counter, restarting it when the
// previous window has lapsed, and returns the new value.
func (r *rateLimitRepository) IncrementAttempts(ctx context.Context, ip, bucket string, window time.Duration) (int, error) {
	log := logger.FromContext(ctx)

	var attempts int
	err := r.withRetry(ctx, func() error {
		return r.DB.QueryRowContext(ctx, upsertAttempts, ip, bucket, window.Seconds()).Scan(&attempts)
	})
	if err != nil {
		log.Err(err).Str("func", "rateLimitRepository.IncrementAttempts").Str("bucket", bucket).Msg("failed to increment attempts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return attempts, nil
}

// DecrementAttempts gives one attempt back. The counter never drops below
// zero and the window is left untouched.
func (r *rateLimitRepository) DecrementAttempts(ctx context.Context, ip, bucket string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, decrementAttempts, ip, bucket); err != nil {
		log.Err(err).Str("func", "rateLimitRepository.DecrementAttempts").Str("bucket", bucket).Msg("failed to decrement attempts")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *rateLimitRepository) ResetAttempts(ctx context.Context, ip, bucket string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteAttempts, ip, bucket); err != nil {
		log.Err(err).Str("func", "rateLimitRepository.ResetAttempts").Str("bucket", bucket).Msg("failed to reset attempts")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *rateLimitRepository) SweepExpiredCounters(ctx context.Context, window time.Duration) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, sweepAttempts, window.Seconds())
	if err != nil {
		log.Err(err).Str("func", "rateLimitRepository.SweepExpiredCounters").Msg("failed to sweep counters")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return result.RowsAffected()
}

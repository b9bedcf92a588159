// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secret-vault/internal/config"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/store"
)

const (
	defaultSweepInterval  = time.Minute
	defaultSweepBatchSize = 500

	// maxBatchesPerTick keeps one tick from monopolizing the database after
	// a long outage; the rest is picked up on the next tick.
	maxBatchesPerTick = 20
)

// tick calls fn immediately and then every interval until ctx is done.
func tick(ctx context.Context, interval time.Duration, fn func(ctx context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		fn(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// SessionSweeper deletes expired OPAQUE sessions. Abandoned flows leave
// their session behind; this reclaims them. Claims never depend on it:
// an expired session is rejected at claim time regardless.
type SessionSweeper struct {
	repository store.SessionRepository
	interval   time.Duration
	batchSize  int

	logger *logger.Logger
}

func NewSessionSweeper(repository store.SessionRepository, cfg config.Workers, logger *logger.Logger) *SessionSweeper {
	s := &SessionSweeper{
		repository: repository,
		interval:   cfg.SweepInterval,
		batchSize:  cfg.SweepBatchSize,
		logger:     logger,
	}
	if s.interval <= 0 {
		s.interval = defaultSweepInterval
	}
	if s.batchSize <= 0 {
		s.batchSize = defaultSweepBatchSize
	}
	return s
}

func (s *SessionSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Int("batch_size", s.batchSize).Msg("session sweeper started")
	tick(ctx, s.interval, func(ctx context.Context) {
		s.Sweep(ctx)
	})
	s.logger.Info().Msg("session sweeper stopped")
}

// Sweep deletes expired sessions batch by batch until a short batch comes
// back, and returns the number deleted.
func (s *SessionSweeper) Sweep(ctx context.Context) int64 {
	var total int64
	for i := 0; i < maxBatchesPerTick; i++ {
		if ctx.Err() != nil {
			break
		}

		swept, err := s.repository.SweepExpiredSessions(ctx, s.batchSize)
		if err != nil {
			s.logger.Err(err).Str("func", "SessionSweeper.Sweep").Msg("failed to sweep expired sessions")
			break
		}
		total += swept
		if swept < int64(s.batchSize) {
			break
		}
	}

	if total > 0 {
		s.logger.Debug().Str("func", "SessionSweeper.Sweep").Int64("swept", total).Msg("expired sessions deleted")
	}
	return total
}

// CounterSweeper deletes rate-limit counters whose window has elapsed.
// Expired counters already count as zero, so this only bounds table growth.
type CounterSweeper struct {
	repository store.RateLimitRepository
	interval   time.Duration
	window     time.Duration

	logger *logger.Logger
}

func NewCounterSweeper(repository store.RateLimitRepository, cfg config.Workers, rateLimit config.RateLimit, logger *logger.Logger) *CounterSweeper {
	s := &CounterSweeper{
		repository: repository,
		interval:   cfg.SweepInterval,
		window:     rateLimit.Window,
		logger:     logger,
	}
	if s.interval <= 0 {
		s.interval = defaultSweepInterval
	}
	return s
}

func (s *CounterSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("rate limit counter sweeper started")
	tick(ctx, s.interval, func(ctx context.Context) {
		s.Sweep(ctx)
	})
	s.logger.Info().Msg("rate limit counter sweeper stopped")
}

// Sweep deletes expired counters and returns how many were removed.
func (s *CounterSweeper) Sweep(ctx context.Context) int64 {
	swept, err := s.repository.SweepExpiredCounters(ctx, s.window)
	if err != nil {
		s.logger.Err(err).Str("func", "CounterSweeper.Sweep").Msg("failed to sweep rate limit counters")
		return 0
	}
	if swept > 0 {
		s.logger.Debug().Str("func", "CounterSweeper.Sweep").Int64("swept", swept).Msg("expired counters deleted")
	}
	return swept
}

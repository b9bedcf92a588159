// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secret-vault/internal/config"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/store"
	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/rs/zerolog"
)

// GlobalBucket counts every failure of an address regardless of tag.
const GlobalBucket = "-"

// globalLimitFactor scales MaxAttempts for the per-address bucket.
const globalLimitFactor = 4

// securityService backs SecurityHooks with Postgres counters and the audit
// logger.
type securityService struct {
	counters    store.RateLimitRepository
	maxAttempts int
	window      time.Duration

	audit *logger.Logger
}

// NewSecurityHooks constructs [SecurityHooks] on top of the rate-limit
// counters.
//
// Parameters:
//   - counters: persistent per (ip, bucket) attempt counters.
//   - cfg: per-tag attempt limit and counting window. The global bucket
//     allows four times the per-tag limit.
//   - log: base logger. Audit events go to its audit child.
func NewSecurityHooks(counters store.RateLimitRepository, cfg config.RateLimit, log *logger.Logger) SecurityHooks {
	return &securityService{
		counters:    counters,
		maxAttempts: cfg.MaxAttempts,
		window:      cfg.Window,
		audit:       log.Audit(),
	}
}

func (s *securityService) limit(bucket string) int {
	if bucket == GlobalBucket {
		return s.maxAttempts * globalLimitFactor
	}
	return s.maxAttempts
}

// AuditLog writes event to the audit logger. Identifiers in event are
// already pseudonymised.
func (s *securityService) AuditLog(ctx context.Context, event models.AuditEvent) {
	entry := s.audit.Info()
	switch event.Severity {
	case models.AuditSeverityWarning:
		entry = s.audit.Warn()
	case models.AuditSeverityCritical:
		entry = s.audit.Error()
	}

	dict := zerolog.Dict()
	for k, v := range event.Data {
		dict = dict.Str(k, v)
	}

	entry.
		Str("event_type", string(event.EventType)).
		Str("category", string(event.Category)).
		Str("severity", string(event.Severity)).
		Str("user_id_hash", event.UserIDHash).
		Str("ip_hash", event.IPHash).
		Bool("success", event.Success).
		Dict("data", dict).
		Str("trace_id", traceID(ctx)).
		Msg("audit event")
}

func (s *securityService) IsRateLimited(ctx context.Context, ip, bucket string) (bool, error) {
	attempts, err := s.counters.Attempts(ctx, ip, bucket, s.window)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return attempts >= s.limit(bucket), nil
}

func (s *securityService) RecordFailure(ctx context.Context, ip, bucket string) (bool, error) {
	attempts, err := s.counters.IncrementAttempts(ctx, ip, bucket, s.window)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "securityService.RecordFailure").
		Str("bucket", bucket).
		Int("attempts", attempts).
		Msg("login attempt recorded")
	return attempts > s.limit(bucket), nil
}

func (s *securityService) RefundAttempt(ctx context.Context, ip, bucket string) error {
	if err := s.counters.DecrementAttempts(ctx, ip, bucket); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

func (s *securityService) ResetFailures(ctx context.Context, ip, bucket string) error {
	if err := s.counters.ResetAttempts(ctx, ip, bucket); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-secret-vault/internal/config"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/mock"
	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var rateLimitConfig = config.RateLimit{MaxAttempts: 5, Window: 15 * time.Minute}

func TestSecurityHooks_IsRateLimited(t *testing.T) {
	tests := []struct {
		name     string
		bucket   string
		attempts int
		want     bool
	}{
		{name: "tag below limit", bucket: "abcd", attempts: 4, want: false},
		{name: "tag at limit", bucket: "abcd", attempts: 5, want: true},
		{name: "global below scaled limit", bucket: service.GlobalBucket, attempts: 19, want: false},
		{name: "global at scaled limit", bucket: service.GlobalBucket, attempts: 20, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			counters := mock.NewMockRateLimitRepository(ctrl)
			hooks := service.NewSecurityHooks(counters, rateLimitConfig, logger.Nop())
			ctx := context.Background()

			counters.EXPECT().Attempts(ctx, "10.0.0.1", tt.bucket, 15*time.Minute).Return(tt.attempts, nil)

			limited, err := hooks.IsRateLimited(ctx, "10.0.0.1", tt.bucket)
			require.NoError(t, err)
			assert.Equal(t, tt.want, limited)
		})
	}
}

func TestSecurityHooks_StorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	counters := mock.NewMockRateLimitRepository(ctrl)
	hooks := service.NewSecurityHooks(counters, rateLimitConfig, logger.Nop())
	ctx := context.Background()
	boom := errors.New("boom")

	counters.EXPECT().Attempts(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(0, boom)
	counters.EXPECT().IncrementAttempts(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(0, boom)
	counters.EXPECT().DecrementAttempts(ctx, gomock.Any(), gomock.Any()).Return(boom)
	counters.EXPECT().ResetAttempts(ctx, gomock.Any(), gomock.Any()).Return(boom)

	_, err := hooks.IsRateLimited(ctx, "ip", "b")
	assert.ErrorIs(t, err, service.ErrStorage)
	limited, err := hooks.RecordFailure(ctx, "ip", "b")
	assert.ErrorIs(t, err, service.ErrStorage)
	assert.False(t, limited)
	assert.ErrorIs(t, hooks.RefundAttempt(ctx, "ip", "b"), service.ErrStorage)
	assert.ErrorIs(t, hooks.ResetFailures(ctx, "ip", "b"), service.ErrStorage)
}

// The post-increment count decides, so the attempt that reaches the limit
// is still admitted and the next one is not.
func TestSecurityHooks_RecordFailure(t *testing.T) {
	tests := []struct {
		name     string
		bucket   string
		attempts int
		want     bool
	}{
		{name: "first attempt", bucket: "abcd", attempts: 1, want: false},
		{name: "tag reaches limit", bucket: "abcd", attempts: 5, want: false},
		{name: "tag over limit", bucket: "abcd", attempts: 6, want: true},
		{name: "global reaches scaled limit", bucket: service.GlobalBucket, attempts: 20, want: false},
		{name: "global over scaled limit", bucket: service.GlobalBucket, attempts: 21, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			counters := mock.NewMockRateLimitRepository(ctrl)
			hooks := service.NewSecurityHooks(counters, rateLimitConfig, logger.Nop())
			ctx := context.Background()

			counters.EXPECT().IncrementAttempts(ctx, "ip", tt.bucket, 15*time.Minute).Return(tt.attempts, nil)

			limited, err := hooks.RecordFailure(ctx, "ip", tt.bucket)
			require.NoError(t, err)
			assert.Equal(t, tt.want, limited)
		})
	}
}

func TestSecurityHooks_RefundAndReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	counters := mock.NewMockRateLimitRepository(ctrl)
	hooks := service.NewSecurityHooks(counters, rateLimitConfig, logger.Nop())
	ctx := context.Background()

	counters.EXPECT().DecrementAttempts(ctx, "ip", service.GlobalBucket).Return(nil)
	counters.EXPECT().ResetAttempts(ctx, "ip", "b").Return(nil)

	assert.NoError(t, hooks.RefundAttempt(ctx, "ip", service.GlobalBucket))
	assert.NoError(t, hooks.ResetFailures(ctx, "ip", "b"))
}

func TestSecurityHooks_AuditLog(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	hooks := service.NewSecurityHooks(nil, rateLimitConfig, log)

	hooks.AuditLog(context.Background(), models.AuditEvent{
		EventType:  models.AuditLoginFailed,
		Category:   models.AuditCategoryAuthentication,
		Severity:   models.AuditSeverityWarning,
		UserIDHash: "uh",
		IPHash:     "ih",
		Data:       map[string]string{"reason": "verification_failed"},
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "audit", entry["component"])
	assert.Equal(t, "secret_tag_login_failed", entry["event_type"])
	assert.Equal(t, "uh", entry["user_id_hash"])
	assert.Equal(t, "ih", entry["ip_hash"])
	assert.Equal(t, false, entry["success"])
	assert.Equal(t, map[string]any{"reason": "verification_failed"}, entry["data"])
}

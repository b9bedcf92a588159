// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func requiredOnly() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey: "sign-key",
			HashKey:      "hash-key",
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/vault"}},
	}
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.NotNil(t, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// Earlier sources win, defaults fill what is left.
func TestBuild_MergePriority(t *testing.T) {
	b := newConfigBuilder()
	first := requiredOnly()
	first.App.TagQuota = 7
	b.configs = append(b.configs,
		first,
		&StructuredConfig{App: App{TagQuota: 99, TokenIssuer: "second"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.App.TagQuota)
	assert.Equal(t, "second", cfg.App.TokenIssuer)
	assert.Equal(t, defaultSessionTTL, cfg.Session.TTL)
	assert.Equal(t, defaultColor, cfg.App.DefaultColor)
	assert.Equal(t, defaultSweepBatchSize, cfg.Workers.SweepBatchSize)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Session.TTL = Duration(2 * time.Minute)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, 2*time.Minute, b.configs[1].Session.TTL)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		b := newConfigBuilder()
		b.configs = append(b.configs, requiredOnly())
		b.withDefaults()
		cfg, err := b.build()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *StructuredConfig) {}},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero quota", mutate: func(c *StructuredConfig) { c.App.TagQuota = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "malformed default color", mutate: func(c *StructuredConfig) { c.App.DefaultColor = "purple" }, wantErr: ErrInvalidAppConfigs},
		{name: "malformed trusted proxy", mutate: func(c *StructuredConfig) { c.Server.TrustedProxies = []string{"10.0.0.0/33"} }, wantErr: ErrInvalidServerConfigs},
		{name: "trusted proxies", mutate: func(c *StructuredConfig) { c.Server.TrustedProxies = []string{"10.0.0.0/8", "fd00::/8"} }},
		{name: "ttl above ten minutes", mutate: func(c *StructuredConfig) { c.Session.TTL = 11 * time.Minute }, wantErr: ErrInvalidSessionConfigs},
		{name: "zero attempts", mutate: func(c *StructuredConfig) { c.RateLimit.MaxAttempts = 0 }, wantErr: ErrInvalidRateLimitConfigs},
		{name: "zero batch", mutate: func(c *StructuredConfig) { c.Workers.SweepBatchSize = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_NormalizesDefaultColor(t *testing.T) {
	b := newConfigBuilder()
	cfg := requiredOnly()
	cfg.App.DefaultColor = "a1b2c3"
	b.configs = append(b.configs, cfg)
	b.withDefaults()

	got, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "#A1B2C3", got.App.DefaultColor)
}

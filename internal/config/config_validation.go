// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/netip"
	"time"

	"github.com/MKhiriev/go-secret-vault/internal/validators"
)

const maxSessionTTL = 10 * time.Minute

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.HashKey == "" {
		return fmt.Errorf("%w: token sign key and hash key are required", ErrInvalidAppConfigs)
	}

	if cfg.App.TagQuota <= 0 || cfg.App.VaultTokenTTL <= 0 {
		return fmt.Errorf("%w: tag quota and vault token ttl must be positive", ErrInvalidAppConfigs)
	}

	color, err := validators.NormalizeColor(cfg.App.DefaultColor, "")
	if err != nil {
		return fmt.Errorf("%w: default color %q", ErrInvalidAppConfigs, cfg.App.DefaultColor)
	}
	cfg.App.DefaultColor = color

	for _, cidr := range cfg.Server.TrustedProxies {
		if _, err := netip.ParsePrefix(cidr); err != nil {
			return fmt.Errorf("%w: trusted proxy %q: %w", ErrInvalidServerConfigs, cidr, err)
		}
	}

	if cfg.Session.TTL <= 0 || cfg.Session.TTL > maxSessionTTL {
		return fmt.Errorf("%w: ttl %s out of range", ErrInvalidSessionConfigs, cfg.Session.TTL)
	}

	if cfg.RateLimit.MaxAttempts <= 0 || cfg.RateLimit.Window <= 0 {
		return ErrInvalidRateLimitConfigs
	}

	if cfg.Workers.SweepInterval <= 0 || cfg.Workers.SweepBatchSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

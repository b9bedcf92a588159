// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

// Defaults applied when no source provides a value.
const (
	defaultHTTPAddress     = "0.0.0.0:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultSessionTTL      = 5 * time.Minute
	defaultVaultTokenTTL   = 5 * time.Minute
	defaultTokenIssuer     = "go-secret-vault"
	defaultServerID        = "go-secret-vault"
	defaultTagQuota        = 50
	defaultColor           = "#6366F1"
	defaultMaxAttempts     = 5
	defaultRateWindow      = 15 * time.Minute
	defaultSweepInterval   = time.Minute
	defaultSweepBatchSize  = 500
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			VaultTokenTTL: defaultVaultTokenTTL,
			ServerID:      defaultServerID,
			TagQuota:      defaultTagQuota,
			DefaultColor:  defaultColor,
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Session: Session{TTL: defaultSessionTTL},
		RateLimit: RateLimit{
			MaxAttempts: defaultMaxAttempts,
			Window:      defaultRateWindow,
		},
		Workers: Workers{
			SweepInterval:  defaultSweepInterval,
			SweepBatchSize: defaultSweepBatchSize,
		},
	})
	return b
}

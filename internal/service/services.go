// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-secret-vault/internal/config"
	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/pake"
	"github.com/MKhiriev/go-secret-vault/internal/store"
	"github.com/MKhiriev/go-secret-vault/models"
)

type Services struct {
	PakeGateway      PakeGateway
	SecretTagService SecretTagService
	AppInfoService   AppInfoService
}

// NewServices wires the service layer.
//
// Parameters:
//   - storages: repositories backing every service.
//   - setup: OPAQUE server setup shared by every key exchange.
//   - buildInfo: linker-injected build metadata.
//   - cfg: full application configuration.
//   - logger: structured logger shared by the services.
//
// Returns an error when no application version can be determined.
func NewServices(storages *store.Storages, setup *pake.ServerSetup, buildInfo models.AppBuildInfo, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	security := NewSecurityHooks(storages.RateLimitRepository, cfg.RateLimit, logger)
	registry := NewSecretTagService(storages.SecretTagRepository, security, cfg.App, logger)

	gateway := NewPakeGateway(GatewayDependencies{
		Sessions: storages.SessionRepository,
		Tags:     storages.SecretTagRepository,
		Registry: registry,
		Engine:   pake.NewOpaqueEngine(cfg.App.ServerID),
		Deriver:  crypto.NewVaultKeyDeriver(),
		Tokens:   NewTokenIssuer(cfg.App, logger),
		Security: security,
		Setup:    setup,
	}, cfg, logger)

	return &Services{
		PakeGateway:      NewPakeGatewayValidationService().Wrap(gateway),
		SecretTagService: registry,
		AppInfoService:   appInfo,
	}, nil
}

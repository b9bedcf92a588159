// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-secret-vault/internal/logger"

// Storages bundles every repository the service layer depends on.
type Storages struct {
	SecretTagRepository   SecretTagRepository
	SessionRepository     SessionRepository
	RateLimitRepository   RateLimitRepository
	ServerSetupRepository ServerSetupRepository
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	logger.Debug().Msg("creating storages")

	return &Storages{
		SecretTagRepository:   NewSecretTagRepository(db, logger),
		SessionRepository:     NewSessionRepository(db, logger),
		RateLimitRepository:   NewRateLimitRepository(db, logger),
		ServerSetupRepository: NewServerSetupRepository(db, logger),
	}
}

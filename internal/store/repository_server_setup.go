// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
)

// serverSetupRepository stores the encoded OPAQUE server setup in the
// single-row "opaque_server_setup" table.
type serverSetupRepository struct {
	*DB
	logger *logger.Logger
}

// NewServerSetupRepository constructs a [ServerSetupRepository] backed by db.
func NewServerSetupRepository(db *DB, logger *logger.Logger) ServerSetupRepository {
	logger.Debug().Msg("creating server setup repository")
	return &serverSetupRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *serverSetupRepository) GetServerSetup(ctx context.Context) (string, error) {
	var encoded string
	if err := r.DB.QueryRowContext(ctx, selectServerSetup).Scan(&encoded); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrServerSetupNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "serverSetupRepository.GetServerSetup").Msg("failed to read server setup")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return encoded, nil
}

// SaveServerSetup inserts encoded unless another instance won the race,
// then re-reads so that every instance converges on one setup.
func (r *serverSetupRepository) SaveServerSetup(ctx context.Context, encoded string) (string, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, insertServerSetup, encoded)
	if err != nil {
		log.Err(err).Str("func", "serverSetupRepository.SaveServerSetup").Msg("failed to insert server setup")
		return "", fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		log.Info().Str("func", "serverSetupRepository.SaveServerSetup").Msg("server setup already present, using stored one")
	}

	return r.GetServerSetup(ctx)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secret-vault/internal/config"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/pake"
	"github.com/MKhiriev/go-secret-vault/internal/store"
)

// LoadServerSetup resolves the OPAQUE server setup in this order: the
// configured value, the stored value, a freshly generated one. A generated
// setup is saved with insert-if-absent so concurrent instances converge on
// the same row.
func LoadServerSetup(ctx context.Context, cfg config.Opaque, repository store.ServerSetupRepository, log *logger.Logger) (*pake.ServerSetup, error) {
	if cfg.ServerSetup != "" {
		setup, err := pake.DecodeServerSetup(cfg.ServerSetup)
		if err != nil {
			return nil, fmt.Errorf("invalid configured server setup: %w", err)
		}
		log.Info().Str("func", "LoadServerSetup").Str("source", "config").Msg("opaque server setup loaded")
		return setup, nil
	}

	encoded, err := repository.GetServerSetup(ctx)
	switch {
	case err == nil:
		setup, decodeErr := pake.DecodeServerSetup(encoded)
		if decodeErr != nil {
			return nil, fmt.Errorf("invalid stored server setup: %w", decodeErr)
		}
		log.Info().Str("func", "LoadServerSetup").Str("source", "database").Msg("opaque server setup loaded")
		return setup, nil
	case !errors.Is(err, store.ErrServerSetupNotFound):
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	encoded, err = repository.SaveServerSetup(ctx, pake.GenerateServerSetup().Encode())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	setup, err := pake.DecodeServerSetup(encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid stored server setup: %w", err)
	}
	log.Info().Str("func", "LoadServerSetup").Str("source", "generated").Msg("opaque server setup loaded")
	return setup, nil
}

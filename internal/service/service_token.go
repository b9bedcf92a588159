// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secret-vault/internal/config"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/utils"
	"github.com/MKhiriev/go-secret-vault/models"
)

// tokenService issues HS256 vault-access tokens through utils.GenerateVaultToken.
type tokenService struct {
	signKey string
	issuer  string
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

// NewTokenIssuer constructs a [TokenIssuer] that signs vault-access tokens
// with HMAC-SHA256.
//
// Parameters:
//   - cfg: application config providing the sign key and the "iss" claim.
//   - logger: structured logger used for diagnostic output.
func NewTokenIssuer(cfg config.App, logger *logger.Logger) TokenIssuer {
	return &tokenService{
		signKey: cfg.TokenSignKey,
		issuer:  cfg.TokenIssuer,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

func (t *tokenService) Issue(ctx context.Context, userID int64, tagID models.TagID, vaultID string, ttl time.Duration) (models.VaultToken, time.Time, error) {
	token, expiresAt, err := utils.GenerateVaultToken(t.issuer, userID, tagID, vaultID, t.ids.Generate(), ttl, t.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "tokenService.Issue").Msg("failed to issue vault token")
		return models.VaultToken{}, time.Time{}, fmt.Errorf("error issuing vault token: %w", err)
	}

	return token, expiresAt, nil
}

func (t *tokenService) Parse(ctx context.Context, token string) (models.VaultToken, error) {
	parsed, err := utils.ValidateAndParseVaultToken(token, t.signKey, t.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "tokenService.Parse").Msg("vault token rejected")
		return models.VaultToken{}, fmt.Errorf("%w: %w", ErrInvalidVaultToken, err)
	}

	return parsed, nil
}

// Validate reports whether token is genuine, unexpired and bound to userID
// and tagID.
func (t *tokenService) Validate(ctx context.Context, token string, userID int64, tagID models.TagID) bool {
	parsed, err := t.Parse(ctx, token)
	if err != nil {
		return false
	}

	return parsed.UserID == userID && subtle.ConstantTimeCompare(parsed.TagID[:], tagID[:]) == 1
}

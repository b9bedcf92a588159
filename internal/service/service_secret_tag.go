// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secret-vault/internal/config"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/store"
	"github.com/MKhiriev/go-secret-vault/internal/utils"
	"github.com/MKhiriev/go-secret-vault/internal/validators"
	"github.com/MKhiriev/go-secret-vault/models"
)

// secretTagService is the registry facade over store.SecretTagRepository.
type secretTagService struct {
	repository   store.SecretTagRepository
	validator    validators.Validator
	security     SecurityHooks
	hasher       *utils.Hasher
	quota        int
	defaultColor string

	logger *logger.Logger
}

// NewSecretTagService constructs the [SecretTagService] that lists, reads,
// renames, recolors and deletes the tags of a user.
//
// Parameters:
//   - repository: persistent secret-tag store.
//   - security: hooks used to audit registry changes.
//   - cfg: application config providing the tag quota, the default color
//     and the audit hash key.
//   - logger: structured logger used for diagnostic output.
func NewSecretTagService(repository store.SecretTagRepository, security SecurityHooks, cfg config.App, logger *logger.Logger) SecretTagService {
	return &secretTagService{
		repository:   repository,
		validator:    validators.NewSecretTagValidator(),
		security:     security,
		hasher:       utils.NewHasher(cfg.HashKey),
		quota:        cfg.TagQuota,
		defaultColor: cfg.DefaultColor,
		logger:       logger,
	}
}

func (s *secretTagService) ListSecretTags(ctx context.Context, userID int64) ([]models.SecretTagSummary, error) {
	tags, err := s.repository.ListSecretTags(ctx, userID)
	if err != nil {
		return nil, storageError(err)
	}

	summaries := make([]models.SecretTagSummary, 0, len(tags))
	for _, tag := range tags {
		summaries = append(summaries, tag.Summary())
	}
	return summaries, nil
}

func (s *secretTagService) GetSecretTag(ctx context.Context, userID int64, tagID models.TagID) (models.SecretTagSummary, error) {
	tag, err := s.repository.GetSecretTag(ctx, userID, tagID)
	if err != nil {
		return models.SecretTagSummary{}, storageError(err)
	}
	return tag.Summary(), nil
}

// UpdateSecretTag validates and normalizes the provided fields before they
// reach the repository.
func (s *secretTagService) UpdateSecretTag(ctx context.Context, userID int64, tagID models.TagID, update models.SecretTagUpdate) (models.SecretTagSummary, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Debug().Err(err).Str("func", "secretTagService.UpdateSecretTag").Msg("invalid tag update")
		return models.SecretTagSummary{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	normalized := models.SecretTagUpdate{}
	if update.TagName != nil {
		name, err := validators.NormalizeTagName(*update.TagName)
		if err != nil {
			return models.SecretTagSummary{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		normalized.TagName = &name
	}
	if update.Color != nil {
		color, err := validators.NormalizeColor(*update.Color, s.defaultColor)
		if err != nil {
			return models.SecretTagSummary{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		normalized.Color = &color
	}

	tag, err := s.repository.UpdateSecretTag(ctx, userID, tagID, normalized)
	if err != nil {
		return models.SecretTagSummary{}, storageError(err)
	}

	s.security.AuditLog(ctx, models.AuditEvent{
		EventType:  models.AuditTagUpdated,
		Category:   models.AuditCategoryRegistry,
		Severity:   models.AuditSeverityInfo,
		UserIDHash: s.hasher.HashString(userIdentifier(userID)),
		Success:    true,
	})

	return tag.Summary(), nil
}

func (s *secretTagService) DeleteSecretTag(ctx context.Context, userID int64, tagID models.TagID) error {
	if err := s.repository.DeleteSecretTag(ctx, userID, tagID); err != nil {
		return storageError(err)
	}

	s.security.AuditLog(ctx, models.AuditEvent{
		EventType:  models.AuditTagDeleted,
		Category:   models.AuditCategoryRegistry,
		Severity:   models.AuditSeverityWarning,
		UserIDHash: s.hasher.HashString(userIdentifier(userID)),
		Success:    true,
	})

	return nil
}

// EnforceQuota fails with ErrQuotaExceeded once the user owns quota tags.
func (s *secretTagService) EnforceQuota(ctx context.Context, userID int64) error {
	count, err := s.repository.CountSecretTags(ctx, userID)
	if err != nil {
		return storageError(err)
	}

	if err = validators.CheckQuota(count, s.quota); err != nil {
		logger.FromContext(ctx).Info().
			Str("func", "secretTagService.EnforceQuota").
			Int("count", count).
			Msg("tag quota reached")
		return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
	}
	return nil
}

// storageError translates repository sentinels into service error kinds.
func storageError(err error) error {
	switch {
	case errors.Is(err, store.ErrSecretTagNotFound):
		return ErrSecretTagNotFound
	case errors.Is(err, store.ErrDuplicateSecretTag):
		return ErrDuplicateTag
	case errors.Is(err, store.ErrQuotaExceeded):
		return ErrQuotaExceeded
	case errors.Is(err, store.ErrSessionNotFound):
		return ErrSessionNotFound
	case errors.Is(err, store.ErrSessionExpired):
		return ErrSessionExpired
	default:
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
}

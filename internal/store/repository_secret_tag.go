// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/models"
)

// secretTagRepository is the PostgreSQL-backed implementation of
// [SecretTagRepository]. Tags live in "secret_tags", their keys in
// "wrapped_keys" with an ON DELETE CASCADE foreign key.
type secretTagRepository struct {
	*DB
	logger *logger.Logger
}

// NewSecretTagRepository constructs a [SecretTagRepository] backed by db.
func NewSecretTagRepository(db *DB, logger *logger.Logger) SecretTagRepository {
	logger.Debug().Msg("creating secret tag repository")
	return &secretTagRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSecretTag(row rowScanner) (models.SecretTag, error) {
	var (
		tag   models.SecretTag
		tagID []byte
	)
	if err := row.Scan(&tagID, &tag.UserID, &tag.TagName, &tag.Color, &tag.Salt, &tag.VerifierKV,
		&tag.OpaqueEnvelope, &tag.CreatedAt, &tag.UpdatedAt); err != nil {
		return models.SecretTag{}, err
	}

	id, err := models.TagIDFromBytes(tagID)
	if err != nil {
		return models.SecretTag{}, err
	}
	tag.TagID = id

	return tag, nil
}

// CreateSecretTag persists tag and keys atomically.
//
// Within one transaction it takes a per-user advisory lock, re-counts the
// user's tags against quota, inserts the tag and then every wrapped key.
// A unique_violation on either the tag id or the (user_id, tag_name) pair
// is reported as [ErrDuplicateSecretTag] and leaves nothing behind.
func (r *secretTagRepository) CreateSecretTag(ctx context.Context, tag models.SecretTag, keys []models.WrappedKey, quota int) (models.SecretTag, error) {
	log := logger.FromContext(ctx)

	if len(keys) == 0 {
		return models.SecretTag{}, ErrNoWrappedKeys
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "secretTagRepository.CreateSecretTag").Msg("failed to begin transaction")
		return models.SecretTag{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, lockUserTags, tag.UserID); err != nil {
		log.Err(err).Str("func", "secretTagRepository.CreateSecretTag").Int64("user_id", tag.UserID).Msg("failed to lock user tags")
		return models.SecretTag{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	var count int
	if err = tx.QueryRowContext(ctx, countUserTags, tag.UserID).Scan(&count); err != nil {
		log.Err(err).Str("func", "secretTagRepository.CreateSecretTag").Int64("user_id", tag.UserID).Msg("failed to count user tags")
		return models.SecretTag{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if count >= quota {
		log.Warn().Str("func", "secretTagRepository.CreateSecretTag").Int64("user_id", tag.UserID).Int("count", count).Msg("tag quota reached")
		return models.SecretTag{}, ErrQuotaExceeded
	}

	err = tx.QueryRowContext(ctx, insertSecretTag, tag.TagID.Bytes(), tag.UserID, tag.TagName, tag.Color,
		tag.Salt, tag.VerifierKV, tag.OpaqueEnvelope).Scan(&tag.CreatedAt, &tag.UpdatedAt)
	if err != nil {
		log.Err(err).Str("func", "secretTagRepository.CreateSecretTag").Int64("user_id", tag.UserID).Msg("failed to insert secret tag")
		if r.IsConflict(err) {
			return models.SecretTag{}, ErrDuplicateSecretTag
		}
		return models.SecretTag{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for idx, key := range keys {
		_, err = tx.ExecContext(ctx, insertWrappedKey, key.VaultID, tag.TagID.Bytes(), key.WrappedKey,
			key.KeyPurpose, key.KeyVersion)
		if err != nil {
			log.Err(err).
				Str("func", "secretTagRepository.CreateSecretTag").
				Int("iteration", idx+1).
				Str("vault_id", key.VaultID).
				Msg("failed to insert wrapped key")
			if r.IsConflict(err) {
				return models.SecretTag{}, ErrDuplicateSecretTag
			}
			return models.SecretTag{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "secretTagRepository.CreateSecretTag").Msg("failed to commit transaction")
		return models.SecretTag{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "secretTagRepository.CreateSecretTag").
		Int64("user_id", tag.UserID).
		Int("wrapped_keys", len(keys)).
		Msg("secret tag created")

	return tag, nil
}

func (r *secretTagRepository) GetSecretTag(ctx context.Context, userID int64, tagID models.TagID) (models.SecretTag, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSecretTagQuery(userID, tagID.Bytes())
	if err != nil {
		return models.SecretTag{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tag, err := scanSecretTag(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SecretTag{}, ErrSecretTagNotFound
		}
		log.Err(err).Str("func", "secretTagRepository.GetSecretTag").Int64("user_id", userID).Msg("failed to get secret tag")
		return models.SecretTag{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return tag, nil
}

func (r *secretTagRepository) ListSecretTags(ctx context.Context, userID int64) ([]models.SecretTag, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSecretTagsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "secretTagRepository.ListSecretTags").Int64("user_id", userID).Msg("failed to list secret tags")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]models.SecretTag, 0)
	for rows.Next() {
		tag, scanErr := scanSecretTag(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "secretTagRepository.ListSecretTags").Int64("user_id", userID).Msg("failed to scan secret tag row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		tags = append(tags, tag)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "secretTagRepository.ListSecretTags").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tags, nil
}

// UpdateSecretTag applies the non-nil fields of update and returns the
// stored row. Renaming onto an existing name yields [ErrDuplicateSecretTag].
func (r *secretTagRepository) UpdateSecretTag(ctx context.Context, userID int64, tagID models.TagID, update models.SecretTagUpdate) (models.SecretTag, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateSecretTagQuery(userID, tagID.Bytes(), update.TagName, update.Color)
	if err != nil {
		return models.SecretTag{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tag, err := scanSecretTag(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.SecretTag{}, ErrSecretTagNotFound
		case r.IsConflict(err):
			return models.SecretTag{}, ErrDuplicateSecretTag
		}
		log.Err(err).Str("func", "secretTagRepository.UpdateSecretTag").Int64("user_id", userID).Msg("failed to update secret tag")
		return models.SecretTag{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return tag, nil
}

// DeleteSecretTag removes the wrapped keys and then the tag in one
// transaction.
func (r *secretTagRepository) DeleteSecretTag(ctx context.Context, userID int64, tagID models.TagID) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "secretTagRepository.DeleteSecretTag").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, deleteSecretTag, userID, tagID.Bytes())
	if err != nil {
		log.Err(err).Str("func", "secretTagRepository.DeleteSecretTag").Int64("user_id", userID).Msg("failed to delete secret tag")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSecretTagNotFound
	}

	// no-op when the foreign key cascade already ran
	if _, err = tx.ExecContext(ctx, deleteWrappedKeysByTag, tagID.Bytes()); err != nil {
		log.Err(err).Str("func", "secretTagRepository.DeleteSecretTag").Msg("failed to delete wrapped keys")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "secretTagRepository.DeleteSecretTag").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().Str("func", "secretTagRepository.DeleteSecretTag").Int64("user_id", userID).Msg("secret tag deleted")
	return nil
}

func (r *secretTagRepository) ListWrappedKeys(ctx context.Context, tagID models.TagID) ([]models.WrappedKey, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListWrappedKeysQuery(tagID.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "secretTagRepository.ListWrappedKeys").Msg("failed to list wrapped keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]models.WrappedKey, 0, 1)
	for rows.Next() {
		var (
			key   models.WrappedKey
			rawID []byte
		)
		if err = rows.Scan(&key.VaultID, &rawID, &key.WrappedKey, &key.KeyPurpose, &key.KeyVersion, &key.CreatedAt); err != nil {
			log.Err(err).Str("func", "secretTagRepository.ListWrappedKeys").Msg("failed to scan wrapped key row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if key.TagID, err = models.TagIDFromBytes(rawID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		keys = append(keys, key)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}

func (r *secretTagRepository) CountSecretTags(ctx context.Context, userID int64) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := r.DB.QueryRowContext(ctx, countUserTags, userID).Scan(&count); err != nil {
		log.Err(err).Str("func", "secretTagRepository.CountSecretTags").Int64("user_id", userID).Msg("failed to count secret tags")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

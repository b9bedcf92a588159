// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// psql builds Postgres-flavoured statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var secretTagColumns = []string{
	"tag_id", "user_id", "tag_name", "color", "salt", "verifier_kv", "opaque_envelope", "created_at", "updated_at",
}

var wrappedKeyColumns = []string{
	"vault_id", "tag_id", "wrapped_key", "key_purpose", "key_version", "created_at",
}

const (
	lockUserTags = `SELECT pg_advisory_xact_lock($1);`

	countUserTags = `SELECT count(*) FROM secret_tags WHERE user_id = $1;`

	insertSecretTag = `INSERT INTO secret_tags (tag_id, user_id, tag_name, color, salt, verifier_kv, opaque_envelope)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at;`

	insertWrappedKey = `INSERT INTO wrapped_keys (vault_id, tag_id, wrapped_key, key_purpose, key_version)
		VALUES ($1, $2, $3, $4, $5);`

	deleteWrappedKeysByTag = `DELETE FROM wrapped_keys WHERE tag_id = $1;`

	deleteSecretTag = `DELETE FROM secret_tags WHERE user_id = $1 AND tag_id = $2;`

	insertSession = `INSERT INTO opaque_sessions (session_id, user_id, tag_id, session_state, session_data, expires_at)
		VALUES ($1, $2, $3, $4, $5, now() + make_interval(secs => $6))
		RETURNING expires_at, last_activity;`

	claimSession = `DELETE FROM opaque_sessions
		WHERE session_id = $1
		RETURNING session_id, user_id, tag_id, session_state, session_data, expires_at, last_activity, expires_at < now();`

	sweepSessions = `DELETE FROM opaque_sessions
		WHERE session_id IN (
			SELECT session_id FROM opaque_sessions
			WHERE expires_at < now()
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		);`

	selectAttempts = `SELECT attempts FROM rate_limit_counters
		WHERE client_ip = $1 AND bucket = $2 AND window_start >= now() - make_interval(secs => $3);`

	upsertAttempts = `INSERT INTO rate_limit_counters (client_ip, bucket, attempts, window_start)
		VALUES ($1, $2, 1, now())
		ON CONFLICT (client_ip, bucket) DO UPDATE SET
			attempts = CASE
				WHEN rate_limit_counters.window_start < now() - make_interval(secs => $3) THEN 1
				ELSE rate_limit_counters.attempts + 1
			END,
			window_start = CASE
				WHEN rate_limit_counters.window_start < now() - make_interval(secs => $3) THEN now()
				ELSE rate_limit_counters.window_start
			END
		RETURNING attempts;`

	decrementAttempts = `UPDATE rate_limit_counters SET attempts = attempts - 1
		WHERE client_ip = $1 AND bucket = $2 AND attempts > 0;`

	deleteAttempts = `DELETE FROM rate_limit_counters WHERE client_ip = $1 AND bucket = $2;`

	sweepAttempts = `DELETE FROM rate_limit_counters WHERE window_start < now() - make_interval(secs => $1);`

	selectServerSetup = `SELECT setup FROM opaque_server_setup WHERE id = 1;`

	insertServerSetup = `INSERT INTO opaque_server_setup (id, setup) VALUES (1, $1) ON CONFLICT (id) DO NOTHING;`
)

func buildGetSecretTagQuery(userID int64, tagID []byte) (string, []any, error) {
	return psql.Select(secretTagColumns...).
		From("secret_tags").
		Where(sq.Eq{"user_id": userID, "tag_id": tagID}).
		ToSql()
}

func buildListSecretTagsQuery(userID int64) (string, []any, error) {
	return psql.Select(secretTagColumns...).
		From("secret_tags").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "tag_name").
		ToSql()
}

func buildUpdateSecretTagQuery(userID int64, tagID []byte, name, color *string) (string, []any, error) {
	update := psql.Update("secret_tags").Set("updated_at", sq.Expr("now()"))
	if name != nil {
		update = update.Set("tag_name", *name)
	}
	if color != nil {
		update = update.Set("color", *color)
	}

	return update.
		Where(sq.Eq{"user_id": userID, "tag_id": tagID}).
		Suffix("RETURNING " + strings.Join(secretTagColumns, ", ")).
		ToSql()
}

func buildListWrappedKeysQuery(tagID []byte) (string, []any, error) {
	return psql.Select(wrappedKeyColumns...).
		From("wrapped_keys").
		Where(sq.Eq{"tag_id": tagID}).
		OrderBy("key_version", "created_at").
		ToSql()
}

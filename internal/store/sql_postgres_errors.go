// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells a repository what to do with a failed statement.
type ErrorClassification int

const (
	// NonRetryable failures are returned to the caller as storage errors.
	NonRetryable ErrorClassification = iota

	// Retryable failures are transient: lost connections, serialization
	// failures, deadlocks and lock timeouts under SKIP LOCKED contention.
	Retryable

	// Conflict is a unique-constraint violation. Repositories translate it
	// into a domain error such as a duplicate tag name.
	Conflict
)

// PostgresErrorClassifier implements [ErrorClassificator] from the SQLSTATE
// carried by *pgconn.PgError.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify returns [NonRetryable] for nil and for errors that did not come
// from the server.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a SQLSTATE to an [ErrorClassification]. Whole classes
// 08 (connection) and 40 (transaction rollback) are retryable, as are 57P03
// and 55P03. A 23505 is a [Conflict]; every other code is [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code
	switch {
	case code == pgerrcode.UniqueViolation:
		return Conflict
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.CannotConnectNow,
		code == pgerrcode.LockNotAvailable:
		return Retryable
	default:
		return NonRetryable
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSecretTagNotFound is returned when no tag matches the given owner
	// and tag id.
	ErrSecretTagNotFound = errors.New("secret tag was not found")

	// ErrDuplicateSecretTag is returned when an insert or rename hits the
	// tag_id primary key or the (user_id, tag_name) unique constraint.
	ErrDuplicateSecretTag = errors.New("secret tag already exists")

	// ErrQuotaExceeded is returned by CreateSecretTag when the owner already
	// holds the maximum number of tags.
	ErrQuotaExceeded = errors.New("secret tag quota exceeded")

	// ErrNoWrappedKeys is returned when a tag is created without any key.
	ErrNoWrappedKeys = errors.New("secret tag must have at least one wrapped key")

	// ErrSessionNotFound is returned when a session id is unknown or was
	// already claimed.
	ErrSessionNotFound = errors.New("opaque session was not found")

	// ErrSessionExpired is returned when a claimed session had outlived its
	// expiry. The row is gone afterwards.
	ErrSessionExpired = errors.New("opaque session has expired")

	// ErrServerSetupNotFound is returned when no server setup was stored yet.
	ErrServerSetupNotFound = errors.New("opaque server setup was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Error kinds returned by the gateway and the registry. Handlers map each
// kind to one HTTP status; match with [errors.Is].
var (
	// ErrValidation wraps a validators sentinel describing the bad field.
	ErrValidation = errors.New("validation failed")

	ErrQuotaExceeded = errors.New("secret tag quota exceeded")
	ErrDuplicateTag  = errors.New("secret tag already exists")

	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")

	// ErrProtocol marks an engine failure. It never leaves this package:
	// every protocol failure is reported as ErrAuthenticationFailed.
	ErrProtocol             = errors.New("pake protocol error")
	ErrAuthenticationFailed = errors.New("authentication failed")

	ErrRateLimited = errors.New("too many failed attempts")
	// ErrTooManyAttempts is kept for callers that use the hook's vocabulary.
	ErrTooManyAttempts = ErrRateLimited

	// ErrStorage wraps any persistence failure. Partial writes are rolled back.
	ErrStorage = errors.New("storage error")

	ErrSecretTagNotFound = errors.New("secret tag not found")
	ErrInvalidVaultToken = errors.New("invalid vault access token")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

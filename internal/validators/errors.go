// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID            = errors.New("invalid user ID")
	ErrEmptyTagName             = errors.New("tag name is required")
	ErrTagNameTooLong           = errors.New("tag name must be at most 100 characters")
	ErrInvalidColor             = errors.New("color must be six hex digits")
	ErrEmptyRegistrationRequest = errors.New("registration request is required")
	ErrEmptyRegistrationRecord  = errors.New("registration record is required")
	ErrEmptyLoginRequest        = errors.New("login request is required")
	ErrEmptyLoginFinalization   = errors.New("login finalization is required")
	ErrEmptySessionID           = errors.New("session id is required")
	ErrInvalidTagID             = errors.New("tag id is required")
	ErrInvalidVaultID           = errors.New("vault id is required")
	ErrEmptyVaultToken          = errors.New("vault access token is required")
	ErrNoFieldsToUpdate         = errors.New("at least one field must be provided for update")
	ErrQuotaExceeded            = errors.New("secret tag quota exceeded")
	ErrMessageTooLarge          = errors.New("protocol message too large")
)

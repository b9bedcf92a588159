// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the pure business rules of the secret-tag
// registry: tag name and color normalization, the per-user quota check, and
// structural validation of every gateway request.
//
// Validation never touches storage or cryptographic state, so a request that
// fails here leaves no session behind.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

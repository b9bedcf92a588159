// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrInvalidExportKey = errors.New("export key must be 32 bytes")
	ErrInvalidVaultID   = errors.New("vault id is required")
	ErrInvalidKeySize   = errors.New("key must be 32 bytes")
	ErrInvalidWrapSize  = errors.New("wrapped key must be 40 bytes")
	ErrUnwrapFailed     = errors.New("key unwrap failed")
	ErrRandomSource     = errors.New("random source failure")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pake

import "errors"

var (
	ErrInvalidSetup   = errors.New("invalid opaque server setup")
	ErrInvalidMessage = errors.New("malformed opaque protocol message")
	ErrInvalidRecord  = errors.New("malformed opaque registration record")
	ErrInvalidState   = errors.New("malformed opaque server state")
	ErrAuthentication = errors.New("opaque authentication failed")
	ErrClientState    = errors.New("opaque client used out of order")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyUserIDHeader is returned by the user middleware when the
	// upstream session layer did not set the "X-User-ID" header.
	ErrEmptyUserIDHeader = errors.New("empty `X-User-ID` header")

	// ErrInvalidUserIDHeader is returned when "X-User-ID" is not a positive
	// integer.
	ErrInvalidUserIDHeader = errors.New("invalid `X-User-ID` header")

	// ErrEmptyAuthorizationHeader is returned when a vault endpoint is called
	// without a vault-access token.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when "Authorization" is not
	// of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidTagIDParam is returned when the {tagID} path segment is not
	// 32 hex characters.
	ErrInvalidTagIDParam = errors.New("invalid tag id in path")

	// ErrRouteNotFound is returned for unknown paths and for known paths
	// requested with a method they do not serve.
	ErrRouteNotFound = errors.New("route not found")
)

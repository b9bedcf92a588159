// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest           = errors.New("bad request")
	ErrUnauthenticated      = errors.New("user not authenticated")
	ErrAuthenticationFailed = errors.New("secret tag authentication failed")
	ErrInvalidVaultToken    = errors.New("invalid vault access token")
	ErrForbidden            = errors.New("forbidden")
	ErrQuotaExceeded        = errors.New("secret tag quota exceeded")
	ErrNotFound             = errors.New("not found")
	ErrSessionNotFound      = errors.New("session not found")
	ErrConflict             = errors.New("conflict")
	ErrDuplicateTag         = errors.New("secret tag already exists")
	ErrSessionExpired       = errors.New("session expired")
	ErrRateLimited          = errors.New("too many attempts")
	ErrInternalServerError  = errors.New("internal server error")
	ErrBadGateway           = errors.New("bad gateway")

	// ErrInvalidAddress is returned by NewHTTPServerAdapter for an unusable
	// base URL.
	ErrInvalidAddress = errors.New("invalid server address")

	// ErrNoUserID is returned when a request is attempted before SetUserID.
	ErrNoUserID = errors.New("user id is not set")
)

// APIError is a non-2xx response from the server. It wraps the sentinel for
// its error kind, so errors.Is works on it directly.
type APIError struct {
	StatusCode    int
	Kind          string
	Message       string
	CorrelationID string

	err error
}

func (e *APIError) Error() string {
	if e.CorrelationID == "" {
		return fmt.Sprintf("%s: http %d: %s", e.err, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: http %d: %s (correlation id %s)", e.err, e.StatusCode, e.Message, e.CorrelationID)
}

func (e *APIError) Unwrap() error {
	return e.err
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/internal/utils"
	"github.com/MKhiriev/go-secret-vault/models"
)

// errorKind is the stable client-facing description of one error class.
type errorKind struct {
	status  int
	kind    string
	message string
}

// errorKinds is checked in order; the first match wins. Internal details
// never reach the client: the message is fixed per kind.
var errorKinds = []struct {
	target error
	errorKind
}{
	{ErrEmptyUserIDHeader, errorKind{http.StatusUnauthorized, "unauthenticated", "missing user identity"}},
	{ErrInvalidUserIDHeader, errorKind{http.StatusUnauthorized, "unauthenticated", "invalid user identity"}},
	{ErrEmptyAuthorizationHeader, errorKind{http.StatusUnauthorized, "invalid_vault_token", "vault access token required"}},
	{ErrInvalidAuthorizationHeader, errorKind{http.StatusUnauthorized, "invalid_vault_token", "vault access token required"}},
	{ErrInvalidJSON, errorKind{http.StatusBadRequest, "validation_error", "malformed request body"}},
	{ErrInvalidTagIDParam, errorKind{http.StatusBadRequest, "validation_error", "tag id must be 32 hex characters"}},
	{ErrRouteNotFound, errorKind{http.StatusNotFound, "not_found", "not found"}},

	{service.ErrValidation, errorKind{http.StatusBadRequest, "validation_error", ""}},
	{service.ErrQuotaExceeded, errorKind{http.StatusForbidden, "quota_exceeded", "secret tag quota exceeded"}},
	{service.ErrDuplicateTag, errorKind{http.StatusConflict, "duplicate_tag", "a secret tag with this name already exists"}},
	{service.ErrSessionNotFound, errorKind{http.StatusNotFound, "session_not_found", "session not found"}},
	{service.ErrSessionExpired, errorKind{http.StatusGone, "session_expired", "session expired"}},
	{service.ErrAuthenticationFailed, errorKind{http.StatusUnauthorized, "authentication_failed", "authentication failed"}},
	{service.ErrRateLimited, errorKind{http.StatusTooManyRequests, "too_many_attempts", "too many failed attempts, try again later"}},
	{service.ErrSecretTagNotFound, errorKind{http.StatusNotFound, "not_found", "secret tag not found"}},
	{service.ErrInvalidVaultToken, errorKind{http.StatusUnauthorized, "invalid_vault_token", "invalid vault access token"}},
	{service.ErrStorage, errorKind{http.StatusInternalServerError, "storage_error", "internal storage error"}},
}

var internalError = errorKind{http.StatusInternalServerError, "internal_error", "internal server error"}

func classifyError(err error) errorKind {
	for _, candidate := range errorKinds {
		if errors.Is(err, candidate.target) {
			kind := candidate.errorKind
			if kind.message == "" {
				// validation messages name the offending field and are safe to echo
				kind.message = validationMessage(err)
			}
			return kind
		}
	}
	return internalError
}

// validationMessage returns the innermost message of a validation error.
func validationMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		errs := multi.Unwrap()
		if len(errs) > 0 {
			return validationMessage(errs[len(errs)-1])
		}
	}
	return err.Error()
}

// statusFromError returns the HTTP status err maps to.
func statusFromError(err error) int {
	return classifyError(err).status
}

// writeError logs err and writes the uniform error body.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	kind := classifyError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if kind.status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", kind.status).Msg(kind.kind)

	utils.WriteJSON(w, models.ErrorResponse{
		Error:         kind.kind,
		Message:       kind.message,
		CorrelationID: utils.GetTraceIDFromContext(r.Context()),
	}, kind.status)
}

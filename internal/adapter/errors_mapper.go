// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/go-resty/resty/v2"
)

// kindErrors maps the server's stable error kinds to sentinels.
var kindErrors = map[string]error{
	"validation_error":      ErrBadRequest,
	"unauthenticated":       ErrUnauthenticated,
	"authentication_failed": ErrAuthenticationFailed,
	"invalid_vault_token":   ErrInvalidVaultToken,
	"quota_exceeded":        ErrQuotaExceeded,
	"duplicate_tag":         ErrDuplicateTag,
	"session_not_found":     ErrSessionNotFound,
	"session_expired":       ErrSessionExpired,
	"too_many_attempts":     ErrRateLimited,
	"not_found":             ErrNotFound,
	"storage_error":         ErrInternalServerError,
	"internal_error":        ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode()}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		apiErr.Kind = body.Error
		apiErr.Message = body.Message
		apiErr.CorrelationID = body.CorrelationID
		if sentinel, ok := kindErrors[body.Error]; ok {
			apiErr.err = sentinel
			return apiErr
		}
	} else {
		apiErr.Message = strings.TrimSpace(string(resp.Body()))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}

	apiErr.err = statusError(resp.StatusCode())
	return apiErr
}

// statusError is the fallback for responses that did not come from the API
// itself, such as a proxy error page.
func statusError(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusGone:
		return ErrSessionExpired
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return ErrInternalServerError
	}
}

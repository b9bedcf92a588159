// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-secret-vault/internal/utils"
	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps request bodies. The largest legitimate body is a
// registration record of a few hundred bytes in base64.
const maxBodyBytes = 64 << 10

// decodeJSON reads a single JSON object from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after JSON object", ErrInvalidJSON)
	}
	return nil
}

// userIDFromRequest returns the user id stored by withUserID.
func userIDFromRequest(r *http.Request) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, ErrEmptyUserIDHeader
	}
	return userID, nil
}

// tagIDFromPath parses the {tagID} route parameter.
func tagIDFromPath(r *http.Request) (models.TagID, error) {
	tagID, err := models.ParseTagID(chi.URLParam(r, "tagID"))
	if err != nil {
		return models.TagID{}, ErrInvalidTagIDParam
	}
	return tagID, nil
}

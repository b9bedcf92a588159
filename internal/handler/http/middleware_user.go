// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-secret-vault/internal/utils"
)

// userIDHeader is set by the upstream session layer after it has
// authenticated the caller's primary login.
const userIDHeader = "X-User-ID"

// withUserID resolves the authenticated user from the "X-User-ID" header
// and stores it in the request context under [utils.UserIDCtxKey].
//
// Requests without the header, or with a value that is not a positive
// integer, are rejected with 401 before reaching any handler.
func (h *Handler) withUserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			writeError(w, r, ErrEmptyUserIDHeader, "Handler.withUserID")
			return
		}

		userID, err := parseUserID(raw)
		if err != nil {
			writeError(w, r, err, "Handler.withUserID")
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func parseUserID(raw string) (int64, error) {
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrInvalidUserIDHeader
	}
	return userID, nil
}

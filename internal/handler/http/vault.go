// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-secret-vault/internal/utils"
	"github.com/MKhiriev/go-secret-vault/models"
)

// unwrapVaultKey handles POST /api/v1/vault/keys/unwrap. The vault-access
// token from login finish travels in "Authorization: Bearer <token>".
func (h *Handler) unwrapVaultKey(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Handler.unwrapVaultKey")
		return
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		writeError(w, r, ErrEmptyAuthorizationHeader, "Handler.unwrapVaultKey")
		return
	}
	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		writeError(w, r, ErrInvalidAuthorizationHeader, "Handler.unwrapVaultKey")
		return
	}

	var req models.UnwrapKeyRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "Handler.unwrapVaultKey")
		return
	}
	req.UserID = userID
	req.VaultAccessToken = token

	resp, err := h.services.PakeGateway.UnwrapVaultKey(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "Handler.unwrapVaultKey")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-secret-vault/internal/utils"
	"github.com/MKhiriev/go-secret-vault/models"
)

// registerStart handles POST /api/v1/secret-tags/register/start.
func (h *Handler) registerStart(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Handler.registerStart")
		return
	}

	var req models.RegisterStartRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "Handler.registerStart")
		return
	}
	req.UserID = userID

	resp, err := h.services.PakeGateway.RegisterStart(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "Handler.registerStart")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// registerFinish handles POST /api/v1/secret-tags/register/finish.
func (h *Handler) registerFinish(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Handler.registerFinish")
		return
	}

	var req models.RegisterFinishRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "Handler.registerFinish")
		return
	}
	req.UserID = userID

	tag, err := h.services.PakeGateway.RegisterFinish(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "Handler.registerFinish")
		return
	}

	utils.WriteJSON(w, tag, http.StatusCreated)
}

// loginStart handles POST /api/v1/secret-tags/login/start.
func (h *Handler) loginStart(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Handler.loginStart")
		return
	}

	var req models.LoginStartRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "Handler.loginStart")
		return
	}
	req.UserID = userID
	req.ClientIP = utils.GetClientIPFromContext(r.Context())

	resp, err := h.services.PakeGateway.LoginStart(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "Handler.loginStart")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// loginFinish handles POST /api/v1/secret-tags/login/finish.
func (h *Handler) loginFinish(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Handler.loginFinish")
		return
	}

	var req models.LoginFinishRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "Handler.loginFinish")
		return
	}
	req.UserID = userID
	req.ClientIP = utils.GetClientIPFromContext(r.Context())

	resp, err := h.services.PakeGateway.LoginFinish(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "Handler.loginFinish")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// listSecretTags handles GET /api/v1/secret-tags.
func (h *Handler) listSecretTags(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Handler.listSecretTags")
		return
	}

	tags, err := h.services.SecretTagService.ListSecretTags(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "Handler.listSecretTags")
		return
	}

	utils.WriteJSON(w, tags, http.StatusOK)
}

// getSecretTag handles GET /api/v1/secret-tags/{tagID}.
func (h *Handler) getSecretTag(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Handler.getSecretTag")
		return
	}
	tagID, err := tagIDFromPath(r)
	if err != nil {
		writeError(w, r, err, "Handler.getSecretTag")
		return
	}

	tag, err := h.services.SecretTagService.GetSecretTag(r.Context(), userID, tagID)
	if err != nil {
		writeError(w, r, err, "Handler.getSecretTag")
		return
	}

	utils.WriteJSON(w, tag, http.StatusOK)
}

// updateSecretTag handles PATCH /api/v1/secret-tags/{tagID}.
func (h *Handler) updateSecretTag(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Handler.updateSecretTag")
		return
	}
	tagID, err := tagIDFromPath(r)
	if err != nil {
		writeError(w, r, err, "Handler.updateSecretTag")
		return
	}

	var update models.SecretTagUpdate
	if err = decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err, "Handler.updateSecretTag")
		return
	}

	tag, err := h.services.SecretTagService.UpdateSecretTag(r.Context(), userID, tagID, update)
	if err != nil {
		writeError(w, r, err, "Handler.updateSecretTag")
		return
	}

	utils.WriteJSON(w, tag, http.StatusOK)
}

// deleteSecretTag handles DELETE /api/v1/secret-tags/{tagID}. The tag's
// wrapped keys are removed with it.
func (h *Handler) deleteSecretTag(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Handler.deleteSecretTag")
		return
	}
	tagID, err := tagIDFromPath(r)
	if err != nil {
		writeError(w, r, err, "Handler.deleteSecretTag")
		return
	}

	if err = h.services.SecretTagService.DeleteSecretTag(r.Context(), userID, tagID); err != nil {
		writeError(w, r, err, "Handler.deleteSecretTag")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

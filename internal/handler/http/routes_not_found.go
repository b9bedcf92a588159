// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// routeNotFound serves both unknown paths and unsupported methods on known
// paths. Answering 405 would confirm that a path exists, so both get the same
// 404 error body.
func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound, "routeNotFound")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	// routes without a user identity
	router.Group(func(r chi.Router) {
		r.Get("/api/v1/version", h.getServerVersion)
	})

	// routes behind the upstream session layer
	router.Group(func(r chi.Router) {
		r.Use(h.withUserID)

		r.Post("/api/v1/secret-tags/register/start", h.registerStart)
		r.Post("/api/v1/secret-tags/register/finish", h.registerFinish)
		r.Post("/api/v1/secret-tags/login/start", h.loginStart)
		r.Post("/api/v1/secret-tags/login/finish", h.loginFinish)

		r.Get("/api/v1/secret-tags", h.listSecretTags)
		r.Get("/api/v1/secret-tags/{tagID}", h.getSecretTag)
		r.Patch("/api/v1/secret-tags/{tagID}", h.updateSecretTag)
		r.Delete("/api/v1/secret-tags/{tagID}", h.deleteSecretTag)

		r.Post("/api/v1/vault/keys/unwrap", h.unwrapVaultKey)
	})

	return router
}

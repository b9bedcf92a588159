// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/netip"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/service"
)

// Handler serves the /api/v1 REST API on top of the service layer.
type Handler struct {
	services *service.Services

	// trustedProxies are the peers allowed to report the client address
	// through X-Forwarded-For.
	trustedProxies []netip.Prefix

	logger *logger.Logger
}

// NewHandler creates a new HTTP Handler.
//
// Parameters:
//   - services: service layer used by the route handlers
//   - logger: base logger, enriched per request with the trace id
//   - trustedProxies: reverse proxy ranges whose X-Forwarded-For header is
//     honoured. Without any, the socket peer is the client address.
func NewHandler(services *service.Services, logger *logger.Logger, trustedProxies ...netip.Prefix) *Handler {
	logger.Info().Int("trusted_proxies", len(trustedProxies)).Msg("http handler created")
	return &Handler{
		services:       services,
		trustedProxies: trustedProxies,
		logger:         logger,
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers served by the process.
package handler

import (
	"fmt"
	"net/netip"

	"github.com/MKhiriev/go-secret-vault/internal/config"
	"github.com/MKhiriev/go-secret-vault/internal/handler/http"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg.
//
// Parameters:
//   - services: service layer shared by every transport.
//   - cfg: server config. HTTPAddress enables the REST handler and
//     TrustedProxies lists the CIDR ranges allowed to forward client
//     addresses.
//   - logger: structured logger used for diagnostic output.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		proxies := make([]netip.Prefix, 0, len(cfg.TrustedProxies))
		for _, cidr := range cfg.TrustedProxies {
			p, err := netip.ParsePrefix(cidr)
			if err != nil {
				return nil, fmt.Errorf("trusted proxy %q: %w", cidr, err)
			}
			proxies = append(proxies, p)
		}
		handlers.HTTP = http.NewHandler(services, logger, proxies...)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/MKhiriev/go-secret-vault/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// maxTraceIDLength bounds a client-supplied trace id before it is echoed
// into logs and error bodies.
const maxTraceIDLength = 64

// withTraceID tags the request with a trace id taken from "X-Trace-ID" or
// freshly generated. The id is stored in the request logger, in the context
// under [utils.TraceIDCtxKey] and echoed back in the response header. The
// client address resolved by clientIP is stored under [utils.ClientIPCtxKey].
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx = context.WithValue(ctx, utils.TraceIDCtxKey, traceID)
		ctx = context.WithValue(ctx, utils.ClientIPCtxKey, h.clientIP(r))
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

const forwardedForHeader = "X-Forwarded-For"

// clientIP returns the address that keys rate-limit buckets. It is the socket
// peer unless the peer is a trusted proxy, in which case X-Forwarded-For is
// walked right to left and the first hop outside the trusted ranges wins.
// Forwarding headers from any other peer are ignored.
func (h *Handler) clientIP(r *http.Request) string {
	peer := remoteHost(r.RemoteAddr)
	if !h.isTrustedProxy(peer) {
		return peer
	}

	hops := strings.Split(strings.Join(r.Header.Values(forwardedForHeader), ","), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		addr, err := netip.ParseAddr(hop)
		if err != nil {
			// a malformed hop ends the trusted chain
			return peer
		}
		if !h.isTrustedProxy(addr.Unmap().String()) {
			return addr.Unmap().String()
		}
	}

	return peer
}

func (h *Handler) isTrustedProxy(ip string) bool {
	if len(h.trustedProxies) == 0 {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range h.trustedProxies {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// remoteHost strips the port from a RemoteAddr when there is one.
func remoteHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the secret-tag
// service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API under /api/v1. Request tracing, access logging, and resolution of the
// caller's user id are handled in this package before requests are delegated
// to the service layer. Every error response has the same JSON shape and
// carries the request's trace id as its correlation id.
package http

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the body of every non-2xx API response. It never carries
// stack traces, database identifiers, or cryptographic material.
type ErrorResponse struct {
	// Error is a stable machine-readable error kind.
	Error string `json:"error"`

	// Message is a short human-readable description.
	Message string `json:"message"`

	// CorrelationID matches the trace_id of the server-side log lines.
	CorrelationID string `json:"correlation_id"`
}

// VersionResponse is the body of GET /api/v1/version.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

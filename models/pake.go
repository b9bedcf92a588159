// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Byte fields are transported as standard base64 by encoding/json.

// RegisterStartRequest opens a secret-tag registration.
type RegisterStartRequest struct {
	UserID              int64  `json:"-"`
	TagName             string `json:"tag_name"`
	Color               string `json:"color,omitempty"`
	RegistrationRequest []byte `json:"registration_request"`
}

// RegisterStartResponse carries the server's OPAQUE registration response.
type RegisterStartResponse struct {
	SessionID            string    `json:"session_id"`
	RegistrationResponse []byte    `json:"registration_response"`
	TagHandle            []byte    `json:"tag_handle"`
	ExpiresAt            time.Time `json:"expires_at"`
}

// RegisterFinishRequest uploads the client's OPAQUE registration record.
type RegisterFinishRequest struct {
	UserID             int64  `json:"-"`
	SessionID          string `json:"session_id"`
	RegistrationRecord []byte `json:"registration_record"`
}

// LoginStartRequest opens a secret-tag login.
type LoginStartRequest struct {
	UserID       int64  `json:"-"`
	TagID        TagID  `json:"tag_id"`
	LoginRequest []byte `json:"login_request"`
	ClientIP     string `json:"-"`
}

// LoginStartResponse carries the server's OPAQUE KE2 message.
type LoginStartResponse struct {
	SessionID     string    `json:"session_id"`
	LoginResponse []byte    `json:"login_response"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// LoginFinishRequest uploads the client's OPAQUE KE3 message.
type LoginFinishRequest struct {
	UserID            int64  `json:"-"`
	SessionID         string `json:"session_id"`
	LoginFinalization []byte `json:"login_finalization"`
	ClientIP          string `json:"-"`
}

// LoginFinishResponse grants access to the tag's vault.
type LoginFinishResponse struct {
	VaultAccessToken string       `json:"vault_access_token"`
	VaultID          string       `json:"vault_id"`
	WrappedKeys      []WrappedKey `json:"wrapped_keys"`
	ExpiresAt        time.Time    `json:"expires_at"`
}

// UnwrapKeyRequest asks for the data key of a vault the caller holds a
// vault-access token for.
type UnwrapKeyRequest struct {
	UserID           int64  `json:"-"`
	VaultAccessToken string `json:"-"`
	TagID            TagID  `json:"tag_id"`
	VaultID          string `json:"vault_id"`
}

// UnwrapKeyResponse returns the raw 32-byte vault data key.
type UnwrapKeyResponse struct {
	VaultID string `json:"vault_id"`
	DataKey []byte `json:"data_key"`
}

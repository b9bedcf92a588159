// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the Go client SDK for the secret-tag server.
//
// [ServerAdapter] mirrors every /api/v1 endpoint one to one. The helpers in
// flows.go drive a full registration or unlock with a local OPAQUE client, so
// callers only ever hand over a phrase and never see protocol messages.
//
// Non-2xx responses are mapped to the sentinel errors in errors.go and carry
// the server's correlation id; match them with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-secret-vault/models"
)

// ServerAdapter defines communication with the secret-tag server on behalf
// of one authenticated user. The user id is sent in "X-User-ID", the way the
// upstream session layer forwards it.
type ServerAdapter interface {
	// SetUserID sets the user on whose behalf subsequent requests are made.
	SetUserID(userID int64)

	// UserID returns the current user id, or 0 when none has been set.
	UserID() int64

	RegisterStart(ctx context.Context, req models.RegisterStartRequest) (models.RegisterStartResponse, error)
	RegisterFinish(ctx context.Context, req models.RegisterFinishRequest) (models.SecretTagSummary, error)
	LoginStart(ctx context.Context, req models.LoginStartRequest) (models.LoginStartResponse, error)
	LoginFinish(ctx context.Context, req models.LoginFinishRequest) (models.LoginFinishResponse, error)

	ListSecretTags(ctx context.Context) ([]models.SecretTagSummary, error)
	GetSecretTag(ctx context.Context, tagID models.TagID) (models.SecretTagSummary, error)
	UpdateSecretTag(ctx context.Context, tagID models.TagID, update models.SecretTagUpdate) (models.SecretTagSummary, error)
	DeleteSecretTag(ctx context.Context, tagID models.TagID) error

	// UnwrapVaultKey exchanges a vault-access token for the vault data key.
	UnwrapVaultKey(ctx context.Context, token string, req models.UnwrapKeyRequest) (models.UnwrapKeyResponse, error)

	// Version returns the server's build information.
	Version(ctx context.Context) (models.VersionResponse, error)
}

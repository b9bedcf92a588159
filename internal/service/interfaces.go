// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the secret-tag protocol gateway, the tag
// registry operations, vault-access tokens and the security hooks
// (rate limiting and audit) on top of the store, crypto and pake packages.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secret-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PakeGateway drives the two-round OPAQUE registration and login flows.
// It holds no protocol state in memory; every round trip goes through the
// session store.
type PakeGateway interface {
	RegisterStart(ctx context.Context, req models.RegisterStartRequest) (models.RegisterStartResponse, error)
	RegisterFinish(ctx context.Context, req models.RegisterFinishRequest) (models.SecretTagSummary, error)
	LoginStart(ctx context.Context, req models.LoginStartRequest) (models.LoginStartResponse, error)
	LoginFinish(ctx context.Context, req models.LoginFinishRequest) (models.LoginFinishResponse, error)

	// UnwrapVaultKey returns the data key of a vault to the holder of a
	// valid vault-access token.
	UnwrapVaultKey(ctx context.Context, req models.UnwrapKeyRequest) (models.UnwrapKeyResponse, error)
}

// PakeGatewayWrapper defines middleware composition for PakeGateway.
// Implementations wrap an existing PakeGateway to add behavior such as
// validation.
type PakeGatewayWrapper interface {
	Wrap(PakeGateway) PakeGateway
}

// SecretTagService manages tag metadata. Tags are only ever created by
// PakeGateway.RegisterFinish.
type SecretTagService interface {
	ListSecretTags(ctx context.Context, userID int64) ([]models.SecretTagSummary, error)
	GetSecretTag(ctx context.Context, userID int64, tagID models.TagID) (models.SecretTagSummary, error)
	UpdateSecretTag(ctx context.Context, userID int64, tagID models.TagID, update models.SecretTagUpdate) (models.SecretTagSummary, error)
	DeleteSecretTag(ctx context.Context, userID int64, tagID models.TagID) error
	EnforceQuota(ctx context.Context, userID int64) error
}

// TokenIssuer mints and checks vault-access tokens.
type TokenIssuer interface {
	Issue(ctx context.Context, userID int64, tagID models.TagID, vaultID string, ttl time.Duration) (models.VaultToken, time.Time, error)
	Validate(ctx context.Context, token string, userID int64, tagID models.TagID) bool
	Parse(ctx context.Context, token string) (models.VaultToken, error)
}

// SecurityHooks is the gateway's view of rate limiting and auditing.
type SecurityHooks interface {
	AuditLog(ctx context.Context, event models.AuditEvent)
	IsRateLimited(ctx context.Context, ip, bucket string) (bool, error)
	// RecordFailure counts one attempt and reports whether the bucket is
	// now over its limit.
	RecordFailure(ctx context.Context, ip, bucket string) (bool, error)
	// RefundAttempt takes back one counted attempt.
	RefundAttempt(ctx context.Context, ip, bucket string) error
	ResetFailures(ctx context.Context, ip, bucket string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.VersionResponse
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-secret-vault/internal/pake"
	"github.com/MKhiriev/go-secret-vault/models"
)

// SecretTagClient runs complete OPAQUE flows against a [ServerAdapter].
// The phrase never leaves the process; only blinded protocol messages do.
type SecretTagClient struct {
	adapter  ServerAdapter
	serverID string
}

func NewSecretTagClient(adapter ServerAdapter, serverID string) *SecretTagClient {
	return &SecretTagClient{adapter: adapter, serverID: serverID}
}

// Register creates a secret tag protected by phrase and returns its summary.
func (c *SecretTagClient) Register(ctx context.Context, name, color string, phrase []byte) (models.SecretTagSummary, error) {
	client, err := pake.NewClient(c.serverID)
	if err != nil {
		return models.SecretTagSummary{}, err
	}

	request, err := client.RegistrationStart(phrase)
	if err != nil {
		return models.SecretTagSummary{}, fmt.Errorf("error starting registration: %w", err)
	}

	start, err := c.adapter.RegisterStart(ctx, models.RegisterStartRequest{
		TagName:             name,
		Color:               color,
		RegistrationRequest: request,
	})
	if err != nil {
		return models.SecretTagSummary{}, err
	}

	record, _, err := client.RegistrationFinish(start.RegistrationResponse, c.userIdentifier())
	if err != nil {
		return models.SecretTagSummary{}, fmt.Errorf("error finishing registration: %w", err)
	}

	return c.adapter.RegisterFinish(ctx, models.RegisterFinishRequest{
		SessionID:          start.SessionID,
		RegistrationRecord: record,
	})
}

// Unlock proves knowledge of phrase for tagID and returns the vault-access
// grant. A wrong phrase, and an unknown tag, both end in
// ErrAuthenticationFailed; the client detects it locally from the server's
// response and never sends a finalization.
func (c *SecretTagClient) Unlock(ctx context.Context, tagID models.TagID, phrase []byte) (models.LoginFinishResponse, error) {
	client, err := pake.NewClient(c.serverID)
	if err != nil {
		return models.LoginFinishResponse{}, err
	}

	ke1, err := client.LoginStart(phrase)
	if err != nil {
		return models.LoginFinishResponse{}, fmt.Errorf("error starting login: %w", err)
	}

	start, err := c.adapter.LoginStart(ctx, models.LoginStartRequest{
		TagID:        tagID,
		LoginRequest: ke1,
	})
	if err != nil {
		return models.LoginFinishResponse{}, err
	}

	ke3, _, _, err := client.LoginFinish(start.LoginResponse, c.userIdentifier())
	if err != nil {
		if errors.Is(err, pake.ErrAuthentication) {
			return models.LoginFinishResponse{}, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
		}
		return models.LoginFinishResponse{}, fmt.Errorf("error finishing login: %w", err)
	}

	return c.adapter.LoginFinish(ctx, models.LoginFinishRequest{
		SessionID:         start.SessionID,
		LoginFinalization: ke3,
	})
}

// UnlockDataKey unlocks tagID and immediately exchanges the grant for the
// data key of its vault.
func (c *SecretTagClient) UnlockDataKey(ctx context.Context, tagID models.TagID, phrase []byte) (models.UnwrapKeyResponse, error) {
	grant, err := c.Unlock(ctx, tagID, phrase)
	if err != nil {
		return models.UnwrapKeyResponse{}, err
	}

	return c.adapter.UnwrapVaultKey(ctx, grant.VaultAccessToken, models.UnwrapKeyRequest{
		TagID:   tagID,
		VaultID: grant.VaultID,
	})
}

// userIdentifier must match the server's binding of the OPAQUE client
// identity to the authenticated user.
func (c *SecretTagClient) userIdentifier() []byte {
	return []byte(strconv.FormatInt(c.adapter.UserID(), 10))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/rand"
	"strconv"
	"testing"

	"github.com/MKhiriev/go-secret-vault/internal/pake"
	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testServerID = "vault.test"

// engineAdapter is an in-process ServerAdapter that answers protocol
// messages with a real OPAQUE engine and keeps one pending session at a time.
type engineAdapter struct {
	ServerAdapter

	t      *testing.T
	engine pake.Engine
	setup  *pake.ServerSetup
	userID int64

	credentialID []byte
	tagName      string
	record       []byte
	tagID        models.TagID

	loginState    []byte
	finishCalls   int
	unwrapToken   string
	unwrapRequest models.UnwrapKeyRequest
}

func newEngineAdapter(t *testing.T) *engineAdapter {
	t.Helper()
	return &engineAdapter{
		t:      t,
		engine: pake.NewOpaqueEngine(testServerID),
		setup:  pake.GenerateServerSetup(),
		userID: 42,
	}
}

func (a *engineAdapter) user() []byte {
	return []byte(strconv.FormatInt(a.userID, 10))
}

func (a *engineAdapter) UserID() int64 { return a.userID }

func (a *engineAdapter) RegisterStart(_ context.Context, req models.RegisterStartRequest) (models.RegisterStartResponse, error) {
	a.credentialID = make([]byte, 16)
	_, err := rand.Read(a.credentialID)
	require.NoError(a.t, err)
	a.tagName = req.TagName

	resp, err := a.engine.CreateRegistrationResponse(a.setup, a.user(), a.credentialID, req.RegistrationRequest)
	if err != nil {
		return models.RegisterStartResponse{}, err
	}
	return models.RegisterStartResponse{SessionID: "reg", RegistrationResponse: resp, TagHandle: a.credentialID}, nil
}

func (a *engineAdapter) RegisterFinish(_ context.Context, req models.RegisterFinishRequest) (models.SecretTagSummary, error) {
	if _, err := a.engine.RecordPublicKey(req.RegistrationRecord); err != nil {
		return models.SecretTagSummary{}, err
	}
	a.record = req.RegistrationRecord
	copy(a.tagID[:], a.credentialID)
	return models.SecretTagSummary{TagID: a.tagID, TagName: a.tagName}, nil
}

func (a *engineAdapter) LoginStart(_ context.Context, req models.LoginStartRequest) (models.LoginStartResponse, error) {
	credentialID, record := a.credentialID, a.record
	if req.TagID != a.tagID {
		var err error
		credentialID, record, err = a.engine.DummyRecord(a.setup, a.user(), req.TagID[:])
		require.NoError(a.t, err)
	}

	resp, state, err := a.engine.StartLogin(a.setup, a.user(), credentialID, record, req.LoginRequest)
	if err != nil {
		return models.LoginStartResponse{}, err
	}
	a.loginState = state
	return models.LoginStartResponse{SessionID: "login", LoginResponse: resp}, nil
}

func (a *engineAdapter) LoginFinish(_ context.Context, req models.LoginFinishRequest) (models.LoginFinishResponse, error) {
	a.finishCalls++
	if _, err := a.engine.FinishLogin(a.setup, req.LoginFinalization, a.loginState); err != nil {
		return models.LoginFinishResponse{}, ErrAuthenticationFailed
	}
	return models.LoginFinishResponse{VaultAccessToken: "jwt", VaultID: "vault-1"}, nil
}

func (a *engineAdapter) UnwrapVaultKey(_ context.Context, token string, req models.UnwrapKeyRequest) (models.UnwrapKeyResponse, error) {
	a.unwrapToken, a.unwrapRequest = token, req
	return models.UnwrapKeyResponse{VaultID: req.VaultID, DataKey: make([]byte, 32)}, nil
}

func TestSecretTagClient_RegisterThenUnlock(t *testing.T) {
	server := newEngineAdapter(t)
	client := NewSecretTagClient(server, testServerID)
	ctx := context.Background()

	tag, err := client.Register(ctx, "Work", "#6366F1", []byte("correct horse"))
	require.NoError(t, err)
	assert.Equal(t, "Work", tag.TagName)

	grant, err := client.Unlock(ctx, tag.TagID, []byte("correct horse"))
	require.NoError(t, err)
	assert.Equal(t, "jwt", grant.VaultAccessToken)
	assert.Equal(t, 1, server.finishCalls)
}

func TestSecretTagClient_Unlock_WrongPhraseStopsBeforeFinish(t *testing.T) {
	server := newEngineAdapter(t)
	client := NewSecretTagClient(server, testServerID)
	ctx := context.Background()

	tag, err := client.Register(ctx, "Work", "", []byte("correct horse"))
	require.NoError(t, err)

	_, err = client.Unlock(ctx, tag.TagID, []byte("battery staple"))

	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.ErrorIs(t, err, pake.ErrAuthentication)
	assert.Zero(t, server.finishCalls)
}

func TestSecretTagClient_Unlock_UnknownTagLooksLikeWrongPhrase(t *testing.T) {
	server := newEngineAdapter(t)
	client := NewSecretTagClient(server, testServerID)
	ctx := context.Background()

	_, err := client.Register(ctx, "Work", "", []byte("correct horse"))
	require.NoError(t, err)

	var unknown models.TagID
	unknown[0] = 0xff

	_, err = client.Unlock(ctx, unknown, []byte("correct horse"))

	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Zero(t, server.finishCalls)
}

func TestSecretTagClient_Unlock_DifferentUserCannotUseRecord(t *testing.T) {
	server := newEngineAdapter(t)
	client := NewSecretTagClient(server, testServerID)
	ctx := context.Background()

	tag, err := client.Register(ctx, "Work", "", []byte("correct horse"))
	require.NoError(t, err)

	server.userID = 7

	_, err = client.Unlock(ctx, tag.TagID, []byte("correct horse"))
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestSecretTagClient_UnlockDataKey(t *testing.T) {
	server := newEngineAdapter(t)
	client := NewSecretTagClient(server, testServerID)
	ctx := context.Background()

	tag, err := client.Register(ctx, "Work", "", []byte("correct horse"))
	require.NoError(t, err)

	resp, err := client.UnlockDataKey(ctx, tag.TagID, []byte("correct horse"))
	require.NoError(t, err)

	assert.Len(t, resp.DataKey, 32)
	assert.Equal(t, "jwt", server.unwrapToken)
	assert.Equal(t, tag.TagID, server.unwrapRequest.TagID)
	assert.Equal(t, "vault-1", server.unwrapRequest.VaultID)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTagIDHex = "00112233445566778899aabbccddeeff"

func testTagID(t *testing.T) models.TagID {
	t.Helper()
	id, err := models.ParseTagID(testTagIDHex)
	require.NoError(t, err)
	return id
}

// newTestAdapter creates an adapter pointed at the test server, acting as
// user 42.
func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(Config{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	a.SetUserID(42)
	return a
}

func writeAPIError(w http.ResponseWriter, status int, kind string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: kind, Message: "msg", CorrelationID: "corr-1"})
}

// ── Construction ──

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://vault.example.com/", want: "https://vault.example.com"},
		{raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(Config{}, logger.Nop())

	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestUserID_RequiredForUserRoutes(t *testing.T) {
	a, err := NewHTTPServerAdapter(Config{HTTPAddress: "http://127.0.0.1:1"}, logger.Nop())
	require.NoError(t, err)

	assert.Zero(t, a.UserID())
	_, err = a.ListSecretTags(context.Background())
	assert.ErrorIs(t, err, ErrNoUserID)
}

// ── Protocol endpoints ──

func TestRegisterStart_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/secret-tags/register/start", r.URL.Path)
		assert.Equal(t, "42", r.Header.Get(userIDHeader))

		var req models.RegisterStartRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Work", req.TagName)
		assert.Equal(t, []byte{1, 2, 3}, req.RegistrationRequest)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.RegisterStartResponse{SessionID: "sess-1", RegistrationResponse: []byte{4}})
	}))
	defer srv.Close()

	resp, err := newTestAdapter(t, srv.URL).RegisterStart(context.Background(), models.RegisterStartRequest{
		TagName:             "Work",
		RegistrationRequest: []byte{1, 2, 3},
	})

	require.NoError(t, err)
	assert.Equal(t, "sess-1", resp.SessionID)
	assert.Equal(t, []byte{4}, resp.RegistrationResponse)
}

func TestRegisterFinish_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   string
		want   error
	}{
		{"duplicate", http.StatusConflict, "duplicate_tag", ErrDuplicateTag},
		{"quota", http.StatusForbidden, "quota_exceeded", ErrQuotaExceeded},
		{"session gone", http.StatusNotFound, "session_not_found", ErrSessionNotFound},
		{"session expired", http.StatusGone, "session_expired", ErrSessionExpired},
		{"bad record", http.StatusUnauthorized, "authentication_failed", ErrAuthenticationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeAPIError(w, tt.status, tt.kind)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).RegisterFinish(context.Background(), models.RegisterFinishRequest{SessionID: "s"})

			require.ErrorIs(t, err, tt.want)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "corr-1", apiErr.CorrelationID)
		})
	}
}

func TestLoginStart_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/secret-tags/login/start", r.URL.Path)
		writeAPIError(w, http.StatusTooManyRequests, "too_many_attempts")
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).LoginStart(context.Background(), models.LoginStartRequest{TagID: testTagID(t)})

	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestLoginFinish_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/secret-tags/login/finish", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.LoginFinishResponse{VaultAccessToken: "jwt", VaultID: "vault-1"})
	}))
	defer srv.Close()

	resp, err := newTestAdapter(t, srv.URL).LoginFinish(context.Background(), models.LoginFinishRequest{SessionID: "s"})

	require.NoError(t, err)
	assert.Equal(t, "jwt", resp.VaultAccessToken)
	assert.Equal(t, "vault-1", resp.VaultID)
}

// ── Tag metadata ──

func TestListSecretTags(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/secret-tags", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"tag_id":"` + testTagIDHex + `","tag_name":"Work","color":"#6366F1"}]`))
	}))
	defer srv.Close()

	tags, err := newTestAdapter(t, srv.URL).ListSecretTags(context.Background())

	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, testTagID(t), tags[0].TagID)
}

func TestGetSecretTag_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/secret-tags/"+testTagIDHex, r.URL.Path)
		writeAPIError(w, http.StatusNotFound, "not_found")
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetSecretTag(context.Background(), testTagID(t))

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateSecretTag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/secret-tags/"+testTagIDHex, r.URL.Path)

		var update models.SecretTagUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&update))
		require.NotNil(t, update.Color)
		assert.Nil(t, update.TagName)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SecretTagSummary{TagID: testTagID(t), Color: *update.Color})
	}))
	defer srv.Close()

	color := "#A1B2C3"
	tag, err := newTestAdapter(t, srv.URL).UpdateSecretTag(context.Background(), testTagID(t), models.SecretTagUpdate{Color: &color})

	require.NoError(t, err)
	assert.Equal(t, color, tag.Color)
}

func TestDeleteSecretTag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	assert.NoError(t, newTestAdapter(t, srv.URL).DeleteSecretTag(context.Background(), testTagID(t)))
}

// ── Vault ──

func TestUnwrapVaultKey_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/vault/keys/unwrap", r.URL.Path)
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))

		var req models.UnwrapKeyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "vault-1", req.VaultID)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.UnwrapKeyResponse{VaultID: "vault-1", DataKey: make([]byte, 32)})
	}))
	defer srv.Close()

	resp, err := newTestAdapter(t, srv.URL).UnwrapVaultKey(context.Background(), "jwt-token",
		models.UnwrapKeyRequest{TagID: testTagID(t), VaultID: "vault-1"})

	require.NoError(t, err)
	assert.Len(t, resp.DataKey, 32)
}

func TestUnwrapVaultKey_InvalidToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusUnauthorized, "invalid_vault_token")
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).UnwrapVaultKey(context.Background(), "stale", models.UnwrapKeyRequest{})

	assert.ErrorIs(t, err, ErrInvalidVaultToken)
}

// ── Version and fallbacks ──

func TestVersion_NoUserNeeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(userIDHeader))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"version":"1.0.0","date":"N/A","commit":"abc"}`))
	}))
	defer srv.Close()

	a, err := NewHTTPServerAdapter(Config{HTTPAddress: srv.URL}, logger.Nop())
	require.NoError(t, err)

	version, err := a.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", version.Version)
}

func TestMapHTTPError_NonAPIBody(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"proxy 400", http.StatusBadRequest, ErrBadRequest},
		{"proxy 401", http.StatusUnauthorized, ErrUnauthenticated},
		{"proxy 404", http.StatusNotFound, ErrNotFound},
		{"proxy 409", http.StatusConflict, ErrConflict},
		{"proxy 500", http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("<html>upstream error</html>"))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).ListSecretTags(context.Background())

			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "upstream error")
		})
	}
}

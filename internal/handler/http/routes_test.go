// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testTagIDHex = "00112233445566778899aabbccddeeff"

func TestInit_ReturnsRouter(t *testing.T) {
	router := newMockedHandler(t).Init()

	require.NotNil(t, router)
}

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// protectedRoutes lists every route behind withUserID.
var protectedRoutes = []routeCase{
	{http.MethodPost, "/api/v1/secret-tags/register/start"},
	{http.MethodPost, "/api/v1/secret-tags/register/finish"},
	{http.MethodPost, "/api/v1/secret-tags/login/start"},
	{http.MethodPost, "/api/v1/secret-tags/login/finish"},
	{http.MethodGet, "/api/v1/secret-tags"},
	{http.MethodGet, "/api/v1/secret-tags/" + testTagIDHex},
	{http.MethodPatch, "/api/v1/secret-tags/" + testTagIDHex},
	{http.MethodDelete, "/api/v1/secret-tags/" + testTagIDHex},
	{http.MethodPost, "/api/v1/vault/keys/unwrap"},
}

func TestInit_ProtectedRoutesRequireUser(t *testing.T) {
	m := newMockedHandler(t)

	for _, tc := range protectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			// no services are expected to be called: the middleware rejects first
			rec := m.serve(t, tc.method, tc.path, nil, 0)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "unauthenticated", decodeError(t, rec).Error)
		})
	}
}

func TestInit_VersionIsPublic(t *testing.T) {
	m := newMockedHandler(t)
	m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(testBuildInfo)

	rec := m.serve(t, http.MethodGet, "/api/v1/version", nil, 0)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newMockedHandler(t).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newMockedHandler(t).Init()

	// POST /api/v1/version is not registered, only GET is.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_EchoesTraceID(t *testing.T) {
	m := newMockedHandler(t)

	rec := m.serve(t, http.MethodGet, "/api/v1/secret-tags", nil, 0, traceIDHeader, "trace-123")

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
	assert.Equal(t, "trace-123", decodeError(t, rec).CorrelationID)
}

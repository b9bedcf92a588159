// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testBuildInfo = models.VersionResponse{Version: "1.2.3", Date: "2026-01-01", Commit: "abc123"}

func TestGetServerVersion_WritesBuildInfo(t *testing.T) {
	m := newMockedHandler(t)
	m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(testBuildInfo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/version", nil)
	rec := httptest.NewRecorder()

	m.getServerVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, testBuildInfo, got)
}

func TestGetServerVersion_EmptyFields(t *testing.T) {
	m := newMockedHandler(t)
	m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.VersionResponse{Version: "N/A", Date: "N/A", Commit: "N/A"})

	rec := m.serve(t, http.MethodGet, "/api/v1/version", nil, 0)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"N/A","date":"N/A","commit":"N/A"}`, rec.Body.String())
}

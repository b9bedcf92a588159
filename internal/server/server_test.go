// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-secret-vault/internal/config"
	"github.com/MKhiriev/go-secret-vault/internal/handler"
	myHTTP "github.com/MKhiriev/go-secret-vault/internal/handler/http"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandlers() *handler.Handlers {
	return &handler.Handlers{HTTP: myHTTP.NewHandler(nil, logger.Nop())}
}

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(testHandlers(), config.Server{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NilHandlers(t *testing.T) {
	s, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_DefaultShutdownTimeout(t *testing.T) {
	s, err := NewServer(testHandlers(), config.Server{HTTPAddress: ":0"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, defaultShutdownTimeout, s.(*server).shutdownTimeout)
}

func TestRunServer_StopsOnContextCancel(t *testing.T) {
	s, err := NewServer(testHandlers(), config.Server{
		HTTPAddress:     "127.0.0.1:0",
		ShutdownTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}

func TestRunServer_ListenError(t *testing.T) {
	s, err := NewServer(testHandlers(), config.Server{HTTPAddress: "not-an-address"}, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, s.RunServer(context.Background()))
}

func TestHTTPServer_RequestTimeout(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})

	h := newHTTPServer(slow, config.Server{HTTPAddress: ":0", RequestTimeout: 20 * time.Millisecond}, logger.Nop())

	rec := httptest.NewRecorder()
	h.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"timeout"`)
}

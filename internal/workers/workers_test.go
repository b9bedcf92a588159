// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-secret-vault/internal/config"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/mock"
	"github.com/MKhiriev/go-secret-vault/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// countingWorker records how many times Run was called and returns when
// the context is cancelled.
type countingWorker struct {
	runs atomic.Int32
}

func (c *countingWorker) Run(ctx context.Context) {
	c.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersRunUntilCancel(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}
	ws := &Workers{workers: []Worker{w1, w2, w3}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1 && w3.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Workers.Run did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// returns immediately with nothing to wait for
	ws.Run(context.Background())
}

func TestNewWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		SessionRepository:   mock.NewMockSessionRepository(ctrl),
		RateLimitRepository: mock.NewMockRateLimitRepository(ctrl),
	}

	ws := NewWorkers(storages, config.StructuredConfig{}, logger.Nop())

	require.Len(t, ws.workers, 2)
	assert.IsType(t, &SessionSweeper{}, ws.workers[0])
	assert.IsType(t, &CounterSweeper{}, ws.workers[1])
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-secret-vault/internal/config"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the session and rate-limit counter sweepers.
func NewWorkers(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Workers {
	logger.Info().Msg("creating background workers")

	return &Workers{workers: []Worker{
		NewSessionSweeper(storages.SessionRepository, cfg.Workers, logger),
		NewCounterSweeper(storages.RateLimitRepository, cfg.Workers, cfg.RateLimit, logger),
	}}
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}

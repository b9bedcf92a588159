// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background workers of the server process.
// It defines the Worker interface and a Workers aggregate that runs every
// worker until the shared context is cancelled.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled. Failures of a single iteration are
// logged and retried on the next tick; they never stop the worker.
type Worker interface {
	Run(ctx context.Context)
}

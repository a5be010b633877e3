// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the client.
// It defines the Worker interface and a Workers aggregate that starts and
// stops multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutines, bound to
// ctx. Stop cancels them and waits until they have exited.
//
// Example implementation:
//
//	type MyWorker struct{ job service.ClientSyncJob }
//
//	func (w *MyWorker) Start(ctx context.Context) { w.job.Start(ctx, time.Minute) }
//	func (w *MyWorker) Stop()                     { w.job.Stop() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their own goroutine and stop
// when ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// Pruner removes expired entries and reports how many were dropped.
type Pruner interface {
	Prune(ctx context.Context) int
}

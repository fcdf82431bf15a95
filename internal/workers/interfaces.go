// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to return quickly and spawn goroutines
// internally that live until ctx ends.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    go func() { <-ctx.Done() }()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Stopper is implemented by workers that can be stopped before their
// context ends.
type Stopper interface {
	Stop()
}

// Refresher is the periodic job driven by RefreshWorker.
type Refresher interface {
	Start(ctx context.Context, region string, userID int64, interval time.Duration)
	Stop()
}

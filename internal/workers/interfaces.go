// Package workers runs the background jobs of the API.
//
// Every job implements Worker and stops when the context passed to Run is
// cancelled. Workers starts them together and waits for all of them.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// HealthReporter receives the outcome of the database probe. It is
// implemented by the gRPC handler.
type HealthReporter interface {
	SetServing(serving bool)
}

package monitor

import "context"

// Monitor is a long-running background task probing external dependencies on a fixed cadence
type Monitor interface {
	// Start runs the monitor loop, blocking until the context is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop signals the loop to exit and waits for the in-flight cycle to finish
	Stop(ctx context.Context) error

	// Name identifies the monitor in logs
	Name() string
}

package server

// Server runs the HTTP API, the gRPC health listener and the background
// workers as one unit.
type Server interface {
	// RunServer blocks until SIGTERM, SIGINT or SIGQUIT, then drains the
	// listeners and waits for the workers.
	RunServer()

	// Shutdown stops the listeners. Workers stop with the run context.
	Shutdown()
}

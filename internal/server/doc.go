// Package server runs the Last Words API process: the chi HTTP server, the
// optional gRPC health listener and the background workers, with graceful
// shutdown on termination signals.
package server

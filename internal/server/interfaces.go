package server

import "context"

// Server is the lifecycle of the whole application.
//
// RunServer blocks until a stop signal arrives and every listener and
// worker has stopped.
type Server interface {
	RunServer()
	Shutdown()
}

// Runner is a background job bound to the server's lifetime.
type Runner interface {
	Run(ctx context.Context)
}

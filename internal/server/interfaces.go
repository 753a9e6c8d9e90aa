package server

// Server is the companion HTTP server as seen by cmd/server.
type Server interface {
	// RunServer listens on the configured address and blocks until a stop
	// signal arrives or the listener fails.
	RunServer()

	// Shutdown drains in-flight requests and closes the listener.
	Shutdown()
}

package server

// Server is the lifecycle contract of the application server.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives or
	// the listener fails. A graceful stop returns nil.
	RunServer() error

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}

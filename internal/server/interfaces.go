package server

// Server is the lifecycle contract of the application's transport servers.
// RunServer blocks until a shutdown signal arrives; Shutdown stops accepting
// new requests and lets in-flight ones drain.
type Server interface {
	RunServer()
	Shutdown()
}

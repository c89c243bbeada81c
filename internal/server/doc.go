// Package server runs the HTTP server of the link directory.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown that lets in-flight requests finish.
package server

// Package http implements the JSON API of the link directory.
//
// It exposes route wiring, request handlers and middleware. Session
// resolution, request tracing and access logging happen here before a
// request reaches the service layer. Login and ordering requests run
// inside one unit of work opened by the handler.
package http

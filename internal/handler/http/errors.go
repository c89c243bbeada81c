// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrNoSessionToken is returned by tokenFromRequest when neither the
// "Authorization" header nor the session cookie carries a token.
var ErrNoSessionToken = errors.New("no session token")

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidPathID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidPathID = errors.New("invalid id in path")

	// ErrNotAuthenticated is the answer of protected routes to a request
	// without a valid session.
	ErrNotAuthenticated = errors.New("authentication required")
)

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, client addresses, HTTP client initialization and
// JWT session token generation and validation.
package utils

import (
	"context"

	"github.com/maxazure/home/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key used to store the request principal in the
// context.
var PrincipalCtxKey = contextKey("principal")

// ContextWithPrincipal returns a copy of ctx carrying p.
func ContextWithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}

// PrincipalFromContext returns the principal stored in ctx, or
// [models.Anonymous] when none is present.
//
// Example usage:
//
//	p := utils.PrincipalFromContext(r.Context())
//	if !p.IsAuthenticated() {
//	    // reject
//	}
func PrincipalFromContext(ctx context.Context) models.Principal {
	p, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	if !ok || p == nil {
		return models.Anonymous{}
	}
	return p
}

// GetUserIDFromContext retrieves the authenticated user identifier from
// the context.
//
// Returns ok == false when the request is anonymous.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	p := PrincipalFromContext(ctx)
	if !p.IsAuthenticated() {
		return 0, false
	}
	return p.GetID(), true
}

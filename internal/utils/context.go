// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// password hashing, HTTP response writing, JWT token generation
// and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-motors/models"
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

// SessionCtxKey is the key used to store the decoded session token in the
// context. The token is decoded once per request and read through
// GetIdentityFromContext and GetSessionFromContext.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying token.
func WithSession(ctx context.Context, token models.Token) context.Context {
	return context.WithValue(ctx, SessionCtxKey, token)
}

// GetSessionFromContext retrieves the decoded session token from the context.
//
// Returns ok == false when the request is anonymous.
func GetSessionFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(SessionCtxKey).(models.Token)
	return token, ok
}

// GetIdentityFromContext retrieves the authenticated identity from the context.
//
// Example usage:
//
//	identity, ok := utils.GetIdentityFromContext(ctx)
//	if !ok {
//	    // anonymous request
//	}
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	token, ok := GetSessionFromContext(ctx)
	if !ok {
		return models.Identity{}, false
	}
	return token.Identity(), true
}

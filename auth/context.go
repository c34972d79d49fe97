// Package auth, request-context plumbing. The access-control middleware
// stores the verified identity here and downstream handlers read it back.
package auth

import (
	"context"
)

// contextKey is a private type for context keys, preventing collisions with
// keys defined by other packages.
type contextKey string

const (
	// claimsContextKey stores the verified *Claims of the caller.
	claimsContextKey contextKey = "auth_claims"
	// bearerContextKey stores the raw bearer credential string. The chat
	// relay forwards it to the assistant service; handlers never re-verify
	// it, verification happened exactly once in the middleware.
	bearerContextKey contextKey = "auth_bearer"
)

// NewContextWithClaims returns a child context carrying the verified claims.
func NewContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext extracts the verified claims set by the middleware.
// The bool reports whether claims were present and of the right type.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	return claims, ok
}

// NewContextWithBearer returns a child context carrying the raw credential.
func NewContextWithBearer(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerContextKey, token)
}

// BearerFromContext extracts the raw bearer credential of the caller.
func BearerFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(bearerContextKey).(string)
	return token, ok
}

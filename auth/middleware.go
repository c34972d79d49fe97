// Package auth, access-control middleware. Every protected route group is
// wrapped by RequireRoles, which extracts the bearer credential, delegates
// verification to the token codec, enforces the allowed-role set, and
// attaches the verified identity to the request context. The gate is
// attached declaratively per route group at startup; no handler compares
// role strings at runtime.
package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/user/archon-go/apperror"
)

// RequireRoles returns a middleware enforcing authentication and, when the
// allowed set is non-empty, role membership. An empty set means any
// authenticated identity passes. Failure paths write their response and
// stop; they have no other side effects.
func RequireRoles(codec *TokenCodec, allowedRoles ...string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := bearerToken(r.Header.Get("Authorization"))
			if err != nil {
				WriteError(w, r, apperror.NewAuthError("Access denied. No token provided.", err))
				return
			}

			claims, err := codec.Verify(tokenString)
			if err != nil {
				// All codec failure classes collapse to the same generic
				// message; the caller learns nothing about why the token was
				// rejected beyond invalid-or-expired.
				WriteError(w, r, apperror.NewAuthError("Access denied. Invalid or expired token.", err))
				return
			}

			if len(allowedRoles) > 0 && !roleAllowed(claims.Role, allowedRoles) {
				WriteError(w, r, apperror.NewUnauthorizedError(
					fmt.Sprintf("Access denied. Required role: %s", strings.Join(allowedRoles, " or ")), nil))
				return
			}

			// Attach the verified identity and the raw credential. Downstream
			// handlers read these from the context and never re-parse the
			// Authorization header themselves.
			ctx := NewContextWithClaims(r.Context(), claims)
			ctx = NewContextWithBearer(ctx, tokenString)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the credential from an `Authorization: Bearer <token>`
// header value.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", fmt.Errorf("missing authorization header")
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", fmt.Errorf("authorization header format must be Bearer {token}")
	}
	return parts[1], nil
}

// roleAllowed reports whether role is a member of the allowed set.
func roleAllowed(role string, allowed []string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

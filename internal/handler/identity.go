package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/bankcore/customer-service/internal/models"
)

// Identity headers set by the upstream gateway. Identity is trusted from
// these headers; no authentication happens in this service.
const (
	headerUserID    = "X-User-Id"
	headerUserRoles = "X-User-Roles"
)

// RoleAdmin may list all customers
const RoleAdmin = "ROLE_ADMIN"

type contextKey string

const identityContextKey contextKey = "identity"

// Identity carries the caller identity extracted from request headers
type Identity struct {
	UserID string
	Roles  []string
}

// Authenticated reports whether the request carried a user id
func (i Identity) Authenticated() bool {
	return i.UserID != ""
}

// HasRole checks if the caller holds the given role
func (i Identity) HasRole(role string) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// identityFromHeaders parses the gateway headers into a typed identity.
// A missing roles header yields an empty role set, not an error.
func identityFromHeaders(r *http.Request) Identity {
	identity := Identity{UserID: r.Header.Get(headerUserID)}

	if rolesHeader := r.Header.Get(headerUserRoles); rolesHeader != "" {
		for _, role := range strings.Split(rolesHeader, ",") {
			if role = strings.TrimSpace(role); role != "" {
				identity.Roles = append(identity.Roles, role)
			}
		}
	}

	return identity
}

// IdentityMiddleware attaches the caller identity to the request context so
// nothing downstream has to parse headers.
func IdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), identityContextKey, identityFromHeaders(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext returns the identity attached by IdentityMiddleware.
// Returns a zero identity when the middleware did not run.
func IdentityFromContext(ctx context.Context) Identity {
	if identity, ok := ctx.Value(identityContextKey).(Identity); ok {
		return identity
	}
	return Identity{}
}

// RequireRole fails with an unauthenticated error when no user id was
// supplied, and a forbidden error when the role is missing.
func RequireRole(ctx context.Context, role string) error {
	identity := IdentityFromContext(ctx)

	if !identity.Authenticated() {
		return models.ErrUnauthenticated()
	}
	if !identity.HasRole(role) {
		return models.ErrForbidden(role)
	}

	return nil
}

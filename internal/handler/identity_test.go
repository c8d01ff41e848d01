package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankcore/customer-service/internal/models"
)

func TestIdentityFromHeaders(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		roles      string
		wantUserID string
		wantRoles  []string
	}{
		{
			name:       "user with roles",
			userID:     "user-1",
			roles:      "ROLE_ADMIN,ROLE_TELLER",
			wantUserID: "user-1",
			wantRoles:  []string{"ROLE_ADMIN", "ROLE_TELLER"},
		},
		{
			name:       "roles with spaces",
			userID:     "user-2",
			roles:      " ROLE_ADMIN , ROLE_TELLER ",
			wantUserID: "user-2",
			wantRoles:  []string{"ROLE_ADMIN", "ROLE_TELLER"},
		},
		{
			name:       "no roles header",
			userID:     "user-3",
			wantUserID: "user-3",
			wantRoles:  nil,
		},
		{
			name:      "anonymous",
			wantRoles: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/customers", nil)
			if tt.userID != "" {
				r.Header.Set(headerUserID, tt.userID)
			}
			if tt.roles != "" {
				r.Header.Set(headerUserRoles, tt.roles)
			}

			identity := identityFromHeaders(r)
			assert.Equal(t, tt.wantUserID, identity.UserID)
			assert.Equal(t, tt.wantRoles, identity.Roles)
		})
	}
}

func TestRequireRole(t *testing.T) {
	withIdentity := func(identity Identity) context.Context {
		return context.WithValue(context.Background(), identityContextKey, identity)
	}

	// Missing user id fails as unauthenticated even if roles are present.
	err := RequireRole(withIdentity(Identity{Roles: []string{RoleAdmin}}), RoleAdmin)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)

	// Authenticated but missing the role fails as forbidden.
	err = RequireRole(withIdentity(Identity{UserID: "user-1", Roles: []string{"ROLE_TELLER"}}), RoleAdmin)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.Code)

	// Authenticated with the role passes.
	err = RequireRole(withIdentity(Identity{UserID: "user-1", Roles: []string{"ROLE_TELLER", RoleAdmin}}), RoleAdmin)
	assert.NoError(t, err)

	// No middleware at all behaves like an anonymous caller.
	err = RequireRole(context.Background(), RoleAdmin)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

func TestIdentityMiddleware(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/customers", nil)
	r.Header.Set(headerUserID, "user-1")
	r.Header.Set(headerUserRoles, RoleAdmin)

	var captured Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = IdentityFromContext(r.Context())
	})
	IdentityMiddleware(next).ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "user-1", captured.UserID)
	assert.True(t, captured.HasRole(RoleAdmin))
}

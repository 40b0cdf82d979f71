package identity_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go-jobtracker-backend/internal/domain"
	"go-jobtracker-backend/internal/identity"
	"go-jobtracker-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func authedContext(userID string, roles []string) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, userID)
	ctx = context.WithValue(ctx, domain.KeyUserEmail, "jane@example.com")
	if roles != nil {
		ctx = context.WithValue(ctx, domain.KeyUserRoles, roles)
	}
	return ctx
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.Code)
}

func TestFromContext(t *testing.T) {
	userID := uuid.New()

	t.Run("Should extract the identity installed by the middleware", func(t *testing.T) {
		ctx := authedContext(userID.String(), []string{"admin"})
		ident, err := identity.FromContext(ctx)
		assert.NoError(t, err)
		assert.Equal(t, userID, ident.UserID)
		assert.Equal(t, "jane@example.com", ident.Email)
		assert.Equal(t, []string{"admin"}, ident.Roles)
	})

	t.Run("Should fail safe when the context carries no identity", func(t *testing.T) {
		_, err := identity.FromContext(context.Background())
		assertUnauthorized(t, err)
	})

	t.Run("Should fail when the user id claim is not a UUID", func(t *testing.T) {
		ctx := authedContext("not-a-uuid", nil)
		_, err := identity.FromContext(ctx)
		assertUnauthorized(t, err)
	})

	t.Run("Should tolerate missing email and roles", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserID, userID.String())
		ident, err := identity.FromContext(ctx)
		assert.NoError(t, err)
		assert.Empty(t, ident.Email)
		assert.Empty(t, ident.Roles)
	})
}

func TestHasRole(t *testing.T) {
	ident := identity.Identity{Roles: []string{"support", "admin"}}
	assert.True(t, ident.HasRole("admin"))
	assert.True(t, ident.IsAdmin())
	assert.False(t, ident.HasRole("auditor"))
	assert.False(t, identity.Identity{}.IsAdmin())
}

func TestCanAccess(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	cases := []struct {
		name     string
		caller   identity.Identity
		expected bool
	}{
		{"owner may access own resource", identity.Identity{UserID: owner}, true},
		{"stranger is rejected", identity.Identity{UserID: stranger}, false},
		{"admin bypasses ownership", identity.Identity{UserID: stranger, Roles: []string{"admin"}}, true},
		{"non-admin role does not bypass", identity.Identity{UserID: stranger, Roles: []string{"support"}}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, identity.CanAccess(owner, tc.caller))
		})
	}
}

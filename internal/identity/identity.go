// Package identity reads the caller's verified identity out of the request
// context and decides what that caller may touch. The auth middleware is the
// only writer of these values; everything below the delivery layer is a reader.
package identity

import (
	"context"

	"go-jobtracker-backend/internal/domain"
	"go-jobtracker-backend/pkg/apperror"

	"github.com/google/uuid"
)

const RoleAdmin = "admin"

// Identity is the verified caller: account id plus the roles carried by the
// token. Immutable once extracted.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Roles  []string
}

// FromContext extracts the caller identity set by the auth middleware.
// Fails with an unauthorized error when the context carries no verified
// identity or the id claim is not a well-formed UUID.
func FromContext(ctx context.Context) (Identity, error) {
	raw, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || raw == "" {
		return Identity{}, apperror.Unauthorized("User not authenticated")
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return Identity{}, apperror.Unauthorized("User not authenticated")
	}

	ident := Identity{UserID: userID}
	if email, ok := ctx.Value(domain.KeyUserEmail).(string); ok {
		ident.Email = email
	}
	if roles, ok := ctx.Value(domain.KeyUserRoles).([]string); ok {
		ident.Roles = roles
	}
	return ident, nil
}

// HasRole reports whether the verified token carried the named role.
func (i Identity) HasRole(role string) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (i Identity) IsAdmin() bool {
	return i.HasRole(RoleAdmin)
}

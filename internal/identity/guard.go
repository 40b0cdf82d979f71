package identity

import "github.com/google/uuid"

// CanAccess is the ownership guard: a caller may act on a resource iff they
// are an admin or they own it. Repository queries are already owner-filtered
// for non-admin paths; this re-check runs anyway so that a query bug cannot
// silently widen access, and so guard rejections can be logged distinctly
// from genuine not-found results.
func CanAccess(resourceOwnerID uuid.UUID, caller Identity) bool {
	return caller.IsAdmin() || resourceOwnerID == caller.UserID
}

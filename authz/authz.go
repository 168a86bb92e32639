// Package authz holds the central authorization predicate. Every
// role-gated or ownership-gated operation goes through Authorize rather
// than comparing role strings at the call site.
package authz

import (
	"errors"

	"menuzy-api/models"
)

var (
	// ErrForbidden covers both an insufficient role and a failed
	// ownership check. Absent resources fail the same way so callers
	// cannot probe for rows they don't own.
	ErrForbidden = errors.New("forbidden")
)

// Caller is the authenticated identity behind a request.
type Caller struct {
	UserID uint
	Role   models.UserRole
}

// OwnerFunc resolves a resource's owner id. ok must be false when the
// resource does not exist.
type OwnerFunc func(resourceID uint) (ownerID uint, ok bool)

// Authorize checks that the caller's role is one of allowed and, when an
// owner lookup is supplied, that a restaurant_admin caller actually owns
// the resource. Super admins pass ownership checks unconditionally.
func Authorize(caller Caller, allowed []models.UserRole, resourceID uint, ownerOf OwnerFunc) error {
	if !roleAllowed(caller.Role, allowed) {
		return ErrForbidden
	}
	if ownerOf != nil && caller.Role == models.RoleRestaurantAdmin {
		owner, ok := ownerOf(resourceID)
		if !ok || owner != caller.UserID {
			return ErrForbidden
		}
	}
	return nil
}

func roleAllowed(role models.UserRole, allowed []models.UserRole) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

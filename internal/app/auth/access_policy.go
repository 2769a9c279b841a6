// Package auth decides which complaint records and fields a caller may see.
// Identity and role arrive from the JWT middleware as trusted input.
package auth

import (
	"strconv"

	"github.com/palikatech/gunaso/internal/app/models"
)

// Caller is the authenticated identity attached to every request.
type Caller struct {
	UserID int64
	Role   models.Role
}

// Visibility selects which projection of a complaint the caller receives.
type Visibility int

const (
	// VisibilityPublic hides the submitter id, supporter ids, and the
	// rating/feedback maps.
	VisibilityPublic Visibility = iota
	// VisibilityPrivileged exposes the full projection.
	VisibilityPrivileged
)

// ResolveScope returns the effective user id for "list my complaints"
// queries. Privileged roles, or a caller targeting themselves, get the
// requested target (falling back to the caller's own id when the target
// does not parse). Everyone else is contained to their own id no matter
// what they requested.
func ResolveScope(caller Caller, requestedTargetID string) int64 {
	target, err := strconv.ParseInt(requestedTargetID, 10, 64)
	targetValid := err == nil

	if caller.Role.IsPrivileged() || (targetValid && target == caller.UserID) {
		if !targetValid {
			return caller.UserID
		}
		return target
	}

	return caller.UserID
}

// VisibilityFor maps the caller's role to a projection variant.
func VisibilityFor(role models.Role) Visibility {
	if role.IsPrivileged() {
		return VisibilityPrivileged
	}
	return VisibilityPublic
}

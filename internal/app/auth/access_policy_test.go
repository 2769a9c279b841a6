package auth_test

import (
	"testing"

	"github.com/palikatech/gunaso/internal/app/auth"
	"github.com/palikatech/gunaso/internal/app/models"
	"github.com/stretchr/testify/assert"
)

func TestResolveScope_PlainUserIsContained(t *testing.T) {
	caller := auth.Caller{UserID: 10, Role: models.RoleUser}

	// A plain user asking for someone else still gets themselves.
	assert.Equal(t, int64(10), auth.ResolveScope(caller, "99"))
	assert.Equal(t, int64(10), auth.ResolveScope(caller, "abc"))
	assert.Equal(t, int64(10), auth.ResolveScope(caller, ""))
}

func TestResolveScope_PlainUserMayTargetThemselves(t *testing.T) {
	caller := auth.Caller{UserID: 10, Role: models.RoleUser}
	assert.Equal(t, int64(10), auth.ResolveScope(caller, "10"))
}

func TestResolveScope_PrivilegedRolesMayTargetAnyone(t *testing.T) {
	for _, role := range []models.Role{models.RoleWardAdmin, models.RoleMunicipalityAdmin} {
		caller := auth.Caller{UserID: 10, Role: role}
		assert.Equal(t, int64(99), auth.ResolveScope(caller, "99"), "role %s", role)
	}
}

func TestResolveScope_PrivilegedWithBadTargetFallsBackToSelf(t *testing.T) {
	caller := auth.Caller{UserID: 10, Role: models.RoleMunicipalityAdmin}

	assert.Equal(t, int64(10), auth.ResolveScope(caller, "not-a-number"))
	assert.Equal(t, int64(10), auth.ResolveScope(caller, ""))
}

func TestVisibilityFor(t *testing.T) {
	assert.Equal(t, auth.VisibilityPublic, auth.VisibilityFor(models.RoleUser))
	assert.Equal(t, auth.VisibilityPrivileged, auth.VisibilityFor(models.RoleWardAdmin))
	assert.Equal(t, auth.VisibilityPrivileged, auth.VisibilityFor(models.RoleMunicipalityAdmin))

	// Unknown roles never get the privileged view.
	assert.Equal(t, auth.VisibilityPublic, auth.VisibilityFor(models.Role("superuser")))
}

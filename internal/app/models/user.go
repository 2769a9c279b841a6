package models

import "time"

// Role represents a caller's role. Roles are authenticated upstream and
// arrive through the JWT claims as trusted input.
type Role string

// Role constants
const (
	RoleUser              Role = "user"
	RoleWardAdmin         Role = "ward_admin"
	RoleMunicipalityAdmin Role = "municipality_admin"
)

// IsPrivileged reports whether the role may see submitter and supporter identities.
func (r Role) IsPrivileged() bool {
	return r == RoleWardAdmin || r == RoleMunicipalityAdmin
}

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleWardAdmin, RoleMunicipalityAdmin:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	Role      Role      `json:"role" db:"role"`
	WardID    *int64    `json:"ward_id,omitempty" db:"ward_id"` // set for ward admins
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

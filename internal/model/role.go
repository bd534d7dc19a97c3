package model

import (
	"fmt"
	"strings"
)

// Role is a user authorization tier.
type Role string

const (
	// RoleUser is a regular account.
	RoleUser Role = "user"
	// RoleModerator may read user data of regular users.
	RoleModerator Role = "moderator"
	// RoleAdmin manages regular users.
	RoleAdmin Role = "admin"
	// RoleSuperadmin is the bootstrap account with full access.
	RoleSuperadmin Role = "superadmin"
)

// Roles lists all roles from the least to the most privileged.
var Roles = []Role{RoleUser, RoleModerator, RoleAdmin, RoleSuperadmin}

// ParseRole converts a stored or user supplied role name into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

// Level returns the position of the role in the privilege order. Unknown roles rank below RoleUser.
func (r Role) Level() int {
	switch r {
	case RoleUser:
		return 1
	case RoleModerator:
		return 2
	case RoleAdmin:
		return 3
	case RoleSuperadmin:
		return 4
	}
	return 0
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r.Level() > 0
}

// AtLeast reports whether r is as privileged as other or more.
func (r Role) AtLeast(other Role) bool {
	return r.Level() >= other.Level()
}

func (r Role) String() string {
	return string(r)
}

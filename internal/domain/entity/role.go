package entity

import "slices"

// Role represents the type of role an account can have in the system.
// The value comes from the identity provider's custom claims and is
// trusted as-is.
type Role string

const (
	// RoleUser indicates a regular event-planning user.
	RoleUser Role = "user"
	// RoleServiceProvider indicates a service-provider account that owns
	// business listings.
	RoleServiceProvider Role = "serviceProvider"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleServiceProvider:
		return true
	default:
		return false
	}
}

// RoleFromString maps a raw claim value to a Role, falling back to the
// default user role for anything unrecognized.
func RoleFromString(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleUser
	}

	return role
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

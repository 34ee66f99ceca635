// Package entity contains the core business objects of the print marketplace.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser is a consumer placing print orders.
	RoleUser Role = "USER"
	// RoleOwner owns exactly one shop.
	RoleOwner Role = "OWNER"
	// RoleEmployee works at the shop referenced by User.AssociatedShopID.
	RoleEmployee Role = "EMPLOYEE"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleOwner, RoleEmployee:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role operates a shop.
func (r Role) IsStaff() bool {
	return r == RoleOwner || r == RoleEmployee
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

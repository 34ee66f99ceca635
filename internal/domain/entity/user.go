package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrUserCredentials is returned when a user has neither or both credential kinds.
	ErrUserCredentials = errors.New("user must have exactly one of password hash or google id")
	// ErrEmployeeWithoutShop is returned when an employee has no associated shop.
	ErrEmployeeWithoutShop = errors.New("employee must have an associated shop")
	// ErrInvalidRole is returned for unknown roles.
	ErrInvalidRole = errors.New("invalid role")
)

// User is an account of any role.
type User struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Role             Role       `json:"role"`
	PasswordHash     string     `json:"-"`                        // set for password logins
	GoogleID         string     `json:"-"`                        // set for federated logins
	AssociatedShopID *uuid.UUID `json:"associatedShop,omitempty"` // employees only
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// Validate checks the credential and role invariants.
func (u *User) Validate() error {
	if !u.Role.IsValid() {
		return ErrInvalidRole
	}

	hasPassword := u.PasswordHash != ""
	hasGoogle := u.GoogleID != ""
	if hasPassword == hasGoogle {
		return ErrUserCredentials
	}

	if u.Role == RoleEmployee && u.AssociatedShopID == nil {
		return ErrEmployeeWithoutShop
	}

	return nil
}

// IsStaff reports whether the user acts on behalf of a shop.
func (u *User) IsStaff() bool {
	return u.Role.IsStaff()
}

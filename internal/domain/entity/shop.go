package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ShopStatus is the public availability of a shop.
type ShopStatus string

const (
	ShopStatusOpen   ShopStatus = "OPEN"
	ShopStatusClosed ShopStatus = "CLOSED"
	ShopStatusBusy   ShopStatus = "BUSY"
)

// IsValid reports whether the status is known.
func (s ShopStatus) IsValid() bool {
	switch s {
	case ShopStatusOpen, ShopStatusClosed, ShopStatusBusy:
		return true
	default:
		return false
	}
}

// Toggled flips OPEN to CLOSED and anything else to OPEN.
func (s ShopStatus) Toggled() ShopStatus {
	if s == ShopStatusOpen {
		return ShopStatusClosed
	}

	return ShopStatusOpen
}

// Shop is a print shop owned by exactly one OWNER.
type Shop struct {
	ID        uuid.UUID    `json:"id"`
	OwnerID   uuid.UUID    `json:"ownerId"`
	Name      string       `json:"name"`
	Address   string       `json:"address"`
	Location  *orb.Point   `json:"location,omitempty"` // lng/lat, optional
	Image     string       `json:"image,omitempty"`    // storage key or absolute URL
	Status    ShopStatus   `json:"status"`
	Pricing   PricingTable `json:"pricing"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// IsStaff reports whether user acts for this shop.
func (s *Shop) IsStaff(user *User) bool {
	if user == nil {
		return false
	}

	switch user.Role {
	case RoleOwner:
		return user.ID == s.OwnerID
	case RoleEmployee:
		return user.AssociatedShopID != nil && *user.AssociatedShopID == s.ID
	default:
		return false
	}
}

package usecase

import (
	"context"

	"printshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// CreateShopInput defines the data required to set up an owner's shop.
type CreateShopInput struct {
	Name     string
	Address  string
	Location *orb.Point
	// Image is a temp upload key (moved under the shop folder) or an absolute URL.
	Image string
}

// UpdateShopInput changes the general details of a shop. Nil fields are left untouched.
type UpdateShopInput struct {
	Name     *string
	Address  *string
	Location *orb.Point
	Image    *string
}

// ListShopsInput optionally restricts the listing to shops near a point.
type ListShopsInput struct {
	Near     *orb.Point
	RadiusKm float64
}

// ShopListing is a publicly visible shop with a browser-loadable image.
type ShopListing struct {
	*entity.Shop
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

// SetShopStatusInput sets an explicit status; a nil Status toggles OPEN/CLOSED.
type SetShopStatusInput struct {
	Status *entity.ShopStatus
}

// AddEmployeeInput defines the account created for a new employee.
type AddEmployeeInput struct {
	Name     string
	Email    string
	Password string
}

// ShopQRCode is the rendered scan-to-order code of a shop.
type ShopQRCode struct {
	ShopID  uuid.UUID
	Payload string
	PNG     []byte
}

// ShopUsecase defines shop setup and management operations.
type ShopUsecase interface {
	CreateShop(ctx context.Context, owner *entity.User, input *CreateShopInput) (*entity.Shop, error)
	// GetMyShop resolves the shop the actor works for: owned shop or associated shop.
	GetMyShop(ctx context.Context, actor *entity.User) (*entity.Shop, error)
	ListShops(ctx context.Context, input *ListShopsInput) ([]*ShopListing, error)
	GetShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error)
	UpdateShop(ctx context.Context, owner *entity.User, shopID uuid.UUID, input *UpdateShopInput) (*entity.Shop, error)
	SetStatus(ctx context.Context, actor *entity.User, input *SetShopStatusInput) (*entity.Shop, error)
	UpdatePricing(ctx context.Context, owner *entity.User, pricing entity.PricingTable) (*entity.Shop, error)
	AddEmployee(ctx context.Context, owner *entity.User, input *AddEmployeeInput) (*entity.User, error)
	ListEmployees(ctx context.Context, owner *entity.User) ([]*entity.User, error)
	QRCode(ctx context.Context, shopID uuid.UUID) (*ShopQRCode, error)
}

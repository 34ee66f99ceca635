package repository

import (
	"context"
	"errors"

	"printshop/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShopNotFound is returned when a shop is not found.
var ErrShopNotFound = errors.New("shop not found")

// ShopRepository defines persistence for shops.
type ShopRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// FindByOwner returns the shop owned by ownerID.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error)

	// ListVisible returns every shop that is not CLOSED.
	ListVisible(ctx context.Context) ([]*entity.Shop, error)

	Create(ctx context.Context, shop *entity.Shop) error
	Update(ctx context.Context, shop *entity.Shop) error
}

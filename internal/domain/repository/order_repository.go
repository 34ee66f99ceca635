package repository

import (
	"context"
	"errors"
	"time"

	"printshop/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderHistoryFilter narrows a shop's order history.
type OrderHistoryFilter struct {
	From   *time.Time
	To     *time.Time
	Search string // case-insensitive match on customer name or order id
}

// OrderRepository defines persistence for orders. Listings are newest first.
type OrderRepository interface {
	// FindByID loads an order together with its customer.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	History(ctx context.Context, shopID uuid.UUID, filter OrderHistoryFilter) ([]*entity.Order, error)

	Create(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, order *entity.Order) error
}

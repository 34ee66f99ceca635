package usecase

import (
	"context"
	"time"

	"printshop/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is one uploaded file with its print configuration.
type OrderItemInput struct {
	StorageKey   string
	OriginalName string
	FileHash     string
	FileType     string
	PageCount    int
	Config       entity.PrintConfig
}

// CreateOrderInput defines a new order at one shop.
type CreateOrderInput struct {
	ShopID uuid.UUID
	Items  []OrderItemInput
}

// CheckoutOutput mirrors a payment-gateway order. Amount is in the minor unit.
type CheckoutOutput struct {
	ID       string `json:"id"`
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

// VerifyPaymentInput confirms a captured payment. An empty PaymentID gets a mock id.
type VerifyPaymentInput struct {
	OrderID   uuid.UUID
	PaymentID string
}

// ShopHistoryInput filters a shop's order history. EndDate is inclusive to the end of its day.
type ShopHistoryInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
}

// OrderUsecase defines order placement, payment and fulfilment operations.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, customer *entity.User, input *CreateOrderInput) (*entity.Order, error)
	Checkout(ctx context.Context, customer *entity.User, orderID uuid.UUID) (*CheckoutOutput, error)
	// VerifyPayment marks the order paid, notifies the shop and enqueues conversion.
	VerifyPayment(ctx context.Context, customer *entity.User, input *VerifyPaymentInput) (*entity.Order, error)
	ShopOrders(ctx context.Context, actor *entity.User) ([]*entity.Order, error)
	ShopHistory(ctx context.Context, actor *entity.User, input *ShopHistoryInput) ([]*entity.Order, error)
	MyOrders(ctx context.Context, customer *entity.User) ([]*entity.Order, error)
	GetOrder(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error)
	// UpdateStatus applies a staff-chosen status to an order of the actor's shop.
	UpdateStatus(ctx context.Context, actor *entity.User, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
	Cancel(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error)
}

package model

import (
	"time"

	"printshop/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. Line items are stored inline as JSONB.
type OrderModel struct {
	ID            uuid.UUID                            `gorm:"type:uuid;primary_key"`
	ShopID        uuid.UUID                            `gorm:"type:uuid;not null;index:idx_orders_shop_created,priority:1"`
	UserID        uuid.UUID                            `gorm:"type:uuid;not null;index"`
	Items         datatypes.JSONSlice[entity.LineItem] `gorm:"type:jsonb;not null"`
	TotalAmount   float64                              `gorm:"type:double precision;not null"`
	PaymentStatus string                               `gorm:"type:varchar(16);not null;default:'PENDING'"`
	PaymentID     string                               `gorm:"type:varchar(100)"`
	OrderStatus   string                               `gorm:"type:varchar(16);not null;default:'QUEUED'"`
	PickupCode    string                               `gorm:"type:varchar(4);not null"`
	CreatedAt     time.Time                            `gorm:"index:idx_orders_shop_created,priority:2,sort:desc"`
	UpdatedAt     time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

package model

import (
	"time"

	"printshop/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ShopModel mirrors the 'shops' table. The pricing table is a JSONB document.
type ShopModel struct {
	ID        uuid.UUID                               `gorm:"type:uuid;primary_key"`
	OwnerID   uuid.UUID                               `gorm:"type:uuid;not null;index"`
	Name      string                                  `gorm:"type:varchar(200);not null"`
	Address   string                                  `gorm:"type:text"`
	Longitude *float64                                `gorm:"type:double precision"`
	Latitude  *float64                                `gorm:"type:double precision"`
	Image     string                                  `gorm:"type:text"`
	Status    string                                  `gorm:"type:varchar(16);not null;default:'OPEN';index"`
	Pricing   datatypes.JSONType[entity.PricingTable] `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}

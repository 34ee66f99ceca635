// Package model contains the GORM persistence models. Types are exported for the gen tool.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key"`
	Name             string     `gorm:"type:varchar(100);not null"`
	Email            string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Role             string     `gorm:"type:varchar(16);not null;default:'USER';index"`
	PasswordHash     *string    `gorm:"type:varchar(255)"`
	GoogleID         *string    `gorm:"type:varchar(255);uniqueIndex"`
	AssociatedShopID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

package impl

import (
	"io"
	"log/slog"
	"time"

	"printshop/config"
	"printshop/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Storage: &config.StorageConfig{SignedURLExpiry: time.Hour},
		Cleanup: &config.CleanupConfig{
			Enabled:   true,
			Retention: 24 * time.Hour,
			BatchSize: 2,
		},
	}
}

func newOwner() *entity.User {
	return &entity.User{ID: uuid.New(), Name: "Olive Owner", Email: "owner@example.com", Role: entity.RoleOwner, PasswordHash: "h"}
}

func newEmployee(shopID uuid.UUID) *entity.User {
	return &entity.User{ID: uuid.New(), Name: "Eli Employee", Email: "staff@example.com", Role: entity.RoleEmployee, PasswordHash: "h", AssociatedShopID: &shopID}
}

func newCustomer() *entity.User {
	return &entity.User{ID: uuid.New(), Name: "Cara Customer", Email: "cara@example.com", Role: entity.RoleUser, PasswordHash: "h"}
}

func newShop(owner *entity.User) *entity.Shop {
	return &entity.Shop{
		ID:      uuid.New(),
		OwnerID: owner.ID,
		Name:    "Copy Corner",
		Address: "1 Main St",
		Status:  entity.ShopStatusOpen,
		Pricing: entity.DefaultPricingTable(),
	}
}

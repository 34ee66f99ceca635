package postgres

import (
	"testing"
	"time"

	"printshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMapper_OptionalCredentials(t *testing.T) {
	shopID := uuid.New()
	user := &entity.User{
		ID:               uuid.New(),
		Name:             "Emp",
		Email:            "emp@example.com",
		Role:             entity.RoleEmployee,
		PasswordHash:     "hash",
		AssociatedShopID: &shopID,
	}

	m := fromUserDomain(user)
	require.NotNil(t, m.PasswordHash)
	assert.Nil(t, m.GoogleID)
	assert.Equal(t, "EMPLOYEE", m.Role)

	back := toUserDomain(m)
	assert.Equal(t, user.PasswordHash, back.PasswordHash)
	assert.Empty(t, back.GoogleID)
	assert.Equal(t, &shopID, back.AssociatedShopID)
}

func TestShopMapper_LocationAndPricing(t *testing.T) {
	pricing := entity.DefaultPricingTable()
	pricing.BW.Single = 2.5
	shop := &entity.Shop{
		ID:       uuid.New(),
		OwnerID:  uuid.New(),
		Name:     "Print Hub",
		Location: &orb.Point{77.59, 12.97},
		Status:   entity.ShopStatusOpen,
		Pricing:  pricing,
	}

	m := fromShopDomain(shop)
	require.NotNil(t, m.Longitude)
	require.NotNil(t, m.Latitude)
	assert.InDelta(t, 77.59, *m.Longitude, 1e-9)
	assert.InDelta(t, 12.97, *m.Latitude, 1e-9)

	back := toShopDomain(m)
	require.NotNil(t, back.Location)
	assert.Equal(t, *shop.Location, *back.Location)
	assert.Equal(t, pricing, back.Pricing)

	shop.Location = nil
	assert.Nil(t, toShopDomain(fromShopDomain(shop)).Location)
}

func TestOrderMapper(t *testing.T) {
	order := &entity.Order{
		ID:            uuid.New(),
		ShopID:        uuid.New(),
		UserID:        uuid.New(),
		Items:         []entity.LineItem{{StorageKey: "a/b/c.pdf", PageCount: 3, CalculatedCost: 18}},
		TotalAmount:   18,
		PaymentStatus: entity.PaymentPending,
		Status:        entity.OrderStatusQueued,
		PickupCode:    "1234",
		CreatedAt:     time.Now(),
	}

	back := toOrderDomain(fromOrderDomain(order))

	assert.Equal(t, order.Items, back.Items)
	assert.Equal(t, order.Status, back.Status)
	assert.Equal(t, order.PaymentStatus, back.PaymentStatus)
	assert.Nil(t, back.User)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off\\`, escapeLike(`50%_off\`))
}

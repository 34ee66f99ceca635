package impl

import (
	"context"
	"testing"

	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/domain/service"
	mockRepo "printshop/internal/mocks/repository"
	mockSvc "printshop/internal/mocks/service"
	"printshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shopServiceFixtures struct {
	service  usecase.ShopUsecase
	shopRepo *mockRepo.MockShopRepository
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
	store    *mockSvc.MockObjectStore
	qrcode   *mockSvc.MockQRCodeService
}

func createTestShopService(t *testing.T) shopServiceFixtures {
	shopRepo := mockRepo.NewMockShopRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	store := mockSvc.NewMockObjectStore(t)
	qr := mockSvc.NewMockQRCodeService(t)

	svc := NewShopService(ShopServiceParams{
		ShopRepo: shopRepo,
		UserRepo: userRepo,
		Hasher:   hasher,
		Store:    store,
		QRCode:   qr,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	})

	return shopServiceFixtures{
		service:  svc,
		shopRepo: shopRepo,
		userRepo: userRepo,
		hasher:   hasher,
		store:    store,
		qrcode:   qr,
	}
}

func TestShopService_CreateShop_MovesTempImage(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	owner := newOwner()
	input := &usecase.CreateShopInput{Name: "Copy Corner", Address: "1 Main St", Image: "temp/logo.png"}

	fx.shopRepo.EXPECT().FindByOwner(ctx, owner.ID).Return(nil, repository.ErrShopNotFound)
	fx.store.EXPECT().Copy(ctx, mock.MatchedBy(func(dst string) bool {
		return len(dst) > 0 && dst != input.Image
	}), input.Image).Return(nil)
	fx.store.EXPECT().Delete(ctx, input.Image).Return(nil)
	fx.shopRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Shop")).Return(nil)

	shop, err := fx.service.CreateShop(ctx, owner, input)

	require.NoError(t, err)
	assert.Equal(t, owner.ID, shop.OwnerID)
	assert.Equal(t, entity.ShopStatusOpen, shop.Status)
	assert.Equal(t, entity.DefaultPricingTable(), shop.Pricing)
	assert.Equal(t, "Copy_Corner_"+shop.ID.String()+"/profile-logo.png", shop.Image)
}

func TestShopService_CreateShop_KeepsTempImageWhenCopyFails(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	input := &usecase.CreateShopInput{Name: "Copy Corner", Address: "1 Main St", Image: "temp/logo.png"}

	fx.shopRepo.EXPECT().FindByOwner(ctx, mock.Anything).Return(nil, repository.ErrShopNotFound)
	fx.store.EXPECT().Copy(ctx, mock.Anything, input.Image).
		Return(&service.StorageError{Op: service.StorageOpCopy, Key: input.Image, Err: errors.New("timeout")})
	fx.shopRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Shop")).Return(nil)

	shop, err := fx.service.CreateShop(ctx, newOwner(), input)

	require.NoError(t, err)
	assert.Equal(t, input.Image, shop.Image)
}

func TestShopService_CreateShop_AlreadyOwnsShop(t *testing.T) {
	fx := createTestShopService(t)

	owner := newOwner()
	fx.shopRepo.EXPECT().FindByOwner(mock.Anything, owner.ID).Return(newShop(owner), nil)

	_, err := fx.service.CreateShop(context.Background(), owner, &usecase.CreateShopInput{Name: "x", Address: "y"})

	assert.ErrorIs(t, err, domainerrors.ErrShopAlreadyExists)
}

func TestShopService_CreateShop_NotOwner(t *testing.T) {
	fx := createTestShopService(t)

	_, err := fx.service.CreateShop(context.Background(), newCustomer(), &usecase.CreateShopInput{Name: "x", Address: "y"})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestShopService_ListShops_PresignsImages(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	withKey := newShop(newOwner())
	withKey.Image = "Copy_Corner_x/profile-logo.png"
	withURL := newShop(newOwner())
	withURL.Image = "https://cdn.example.com/logo.png"
	unsigned := newShop(newOwner())
	unsigned.Image = "Other_y/profile-logo.png"

	fx.shopRepo.EXPECT().ListVisible(ctx).Return([]*entity.Shop{withKey, withURL, unsigned}, nil)
	fx.store.EXPECT().SignedURL(ctx, withKey.Image, newTestConfig().Storage.SignedURLExpiry).Return("https://signed/1", nil)
	fx.store.EXPECT().SignedURL(ctx, unsigned.Image, mock.Anything).
		Return("", &service.StorageError{Op: service.StorageOpSign, Key: unsigned.Image, Err: errors.New("denied")})

	listings, err := fx.service.ListShops(ctx, &usecase.ListShopsInput{})

	require.NoError(t, err)
	require.Len(t, listings, 3)
	assert.Equal(t, "https://signed/1", listings[0].Image)
	assert.Equal(t, "Copy_Corner_x/profile-logo.png", withKey.Image, "stored shop must not be mutated")
	assert.Equal(t, withURL.Image, listings[1].Image)
	assert.Equal(t, unsigned.Image, listings[2].Image)
}

func TestShopService_ListShops_NearbySortedByDistance(t *testing.T) {
	fx := createTestShopService(t)

	far := newShop(newOwner())
	far.Location = &orb.Point{77.30, 28.60}
	near := newShop(newOwner())
	near.Location = &orb.Point{77.21, 28.61}
	tooFar := newShop(newOwner())
	tooFar.Location = &orb.Point{72.87, 19.07}
	unplaced := newShop(newOwner())

	fx.shopRepo.EXPECT().ListVisible(mock.Anything).Return([]*entity.Shop{far, tooFar, near, unplaced}, nil)

	listings, err := fx.service.ListShops(context.Background(), &usecase.ListShopsInput{
		Near:     &orb.Point{77.20, 28.61},
		RadiusKm: 50,
	})

	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, near.ID, listings[0].ID)
	assert.Equal(t, far.ID, listings[1].ID)
	assert.Less(t, *listings[0].DistanceKm, *listings[1].DistanceKm)
}

func TestShopService_UpdateShop_NotOwner(t *testing.T) {
	fx := createTestShopService(t)

	shop := newShop(newOwner())
	fx.shopRepo.EXPECT().FindByID(mock.Anything, shop.ID).Return(shop, nil)

	name := "Hijacked"
	_, err := fx.service.UpdateShop(context.Background(), newOwner(), shop.ID, &usecase.UpdateShopInput{Name: &name})

	assert.ErrorIs(t, err, domainerrors.ErrShopOwnership)
}

func TestShopService_SetStatus(t *testing.T) {
	busy := entity.ShopStatusBusy
	bogus := entity.ShopStatus("GONE")

	tests := []struct {
		name    string
		actor   func(shop *entity.Shop) *entity.User
		from    entity.ShopStatus
		input   *usecase.SetShopStatusInput
		want    entity.ShopStatus
		wantErr error
	}{
		{
			name:  "owner toggles open to closed",
			actor: func(shop *entity.Shop) *entity.User { return &entity.User{ID: shop.OwnerID, Role: entity.RoleOwner} },
			from:  entity.ShopStatusOpen,
			input: &usecase.SetShopStatusInput{},
			want:  entity.ShopStatusClosed,
		},
		{
			name:  "employee toggles busy to open",
			actor: func(shop *entity.Shop) *entity.User { return newEmployee(shop.ID) },
			from:  entity.ShopStatusBusy,
			input: &usecase.SetShopStatusInput{},
			want:  entity.ShopStatusOpen,
		},
		{
			name:  "explicit status",
			actor: func(shop *entity.Shop) *entity.User { return &entity.User{ID: shop.OwnerID, Role: entity.RoleOwner} },
			from:  entity.ShopStatusOpen,
			input: &usecase.SetShopStatusInput{Status: &busy},
			want:  entity.ShopStatusBusy,
		},
		{
			name:    "unknown status",
			actor:   func(shop *entity.Shop) *entity.User { return &entity.User{ID: shop.OwnerID, Role: entity.RoleOwner} },
			from:    entity.ShopStatusOpen,
			input:   &usecase.SetShopStatusInput{Status: &bogus},
			wantErr: domainerrors.ErrInvalidShopStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestShopService(t)

			shop := newShop(newOwner())
			shop.Status = tt.from
			actor := tt.actor(shop)

			if actor.Role == entity.RoleOwner {
				fx.shopRepo.EXPECT().FindByOwner(mock.Anything, actor.ID).Return(shop, nil)
			} else {
				fx.shopRepo.EXPECT().FindByID(mock.Anything, shop.ID).Return(shop, nil)
			}
			if tt.wantErr == nil {
				fx.shopRepo.EXPECT().Update(mock.Anything, shop).Return(nil)
			}

			got, err := fx.service.SetStatus(context.Background(), actor, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)
		})
	}
}

func TestShopService_UpdatePricing(t *testing.T) {
	t.Run("invalid table rejected before lookup", func(t *testing.T) {
		fx := createTestShopService(t)

		pricing := entity.DefaultPricingTable()
		pricing.BW.Single = -1

		_, err := fx.service.UpdatePricing(context.Background(), newOwner(), pricing)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidPricing)
	})

	t.Run("valid table saved", func(t *testing.T) {
		fx := createTestShopService(t)

		owner := newOwner()
		shop := newShop(owner)
		pricing := entity.DefaultPricingTable()
		pricing.Color.Single = 12

		fx.shopRepo.EXPECT().FindByOwner(mock.Anything, owner.ID).Return(shop, nil)
		fx.shopRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(s *entity.Shop) bool {
			return s.Pricing.Color.Single == 12
		})).Return(nil)

		got, err := fx.service.UpdatePricing(context.Background(), owner, pricing)

		require.NoError(t, err)
		assert.Equal(t, pricing, got.Pricing)
	})
}

func TestShopService_AddEmployee(t *testing.T) {
	owner := newOwner()
	shop := newShop(owner)
	input := &usecase.AddEmployeeInput{Name: "Eli", Email: "eli@example.com", Password: "secret"}

	t.Run("creates employee bound to shop", func(t *testing.T) {
		fx := createTestShopService(t)

		fx.shopRepo.EXPECT().FindByOwner(mock.Anything, owner.ID).Return(shop, nil)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, input.Email).Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
		fx.userRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)

		employee, err := fx.service.AddEmployee(context.Background(), owner, input)

		require.NoError(t, err)
		assert.Equal(t, entity.RoleEmployee, employee.Role)
		require.NotNil(t, employee.AssociatedShopID)
		assert.Equal(t, shop.ID, *employee.AssociatedShopID)
		assert.NoError(t, employee.Validate())
	})

	t.Run("rejects employee without credential", func(t *testing.T) {
		fx := createTestShopService(t)

		fx.shopRepo.EXPECT().FindByOwner(mock.Anything, owner.ID).Return(shop, nil)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, input.Email).Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash(input.Password).Return("", nil)

		_, err := fx.service.AddEmployee(context.Background(), owner, input)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("owner without shop", func(t *testing.T) {
		fx := createTestShopService(t)

		fx.shopRepo.EXPECT().FindByOwner(mock.Anything, owner.ID).Return(nil, repository.ErrShopNotFound)

		_, err := fx.service.AddEmployee(context.Background(), owner, input)

		assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
	})

	t.Run("email already used", func(t *testing.T) {
		fx := createTestShopService(t)

		fx.shopRepo.EXPECT().FindByOwner(mock.Anything, owner.ID).Return(shop, nil)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, input.Email).Return(newCustomer(), nil)

		_, err := fx.service.AddEmployee(context.Background(), owner, input)

		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})
}

func TestShopService_QRCode(t *testing.T) {
	fx := createTestShopService(t)

	shop := newShop(newOwner())
	fx.shopRepo.EXPECT().FindByID(mock.Anything, shop.ID).Return(shop, nil)
	fx.qrcode.EXPECT().GenerateShopQR(shop.ID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	qr, err := fx.service.QRCode(context.Background(), shop.ID)

	require.NoError(t, err)
	assert.Equal(t, "SHOP:"+shop.ID.String(), qr.Payload)
	assert.NotEmpty(t, qr.PNG)
}

func TestShopService_GetShop_NotFound(t *testing.T) {
	fx := createTestShopService(t)

	id := uuid.New()
	fx.shopRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrShopNotFound)

	_, err := fx.service.GetShop(context.Background(), id)

	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

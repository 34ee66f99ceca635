package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"printshop/config"
	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/domain/service"
	"printshop/internal/domain/storagekey"
	"printshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const qrPayloadPrefix = "SHOP:"

// shopService implements the ShopUsecase interface.
type shopService struct {
	shopRepo repository.ShopRepository
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	store    service.ObjectStore
	qrcode   service.QRCodeService
	config   *config.Config
	logger   *slog.Logger
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	ShopRepo repository.ShopRepository
	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Store    service.ObjectStore
	QRCode   service.QRCodeService
	Config   *config.Config
	Logger   *slog.Logger
}

// NewShopService creates a new shop service.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		shopRepo: params.ShopRepo,
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		store:    params.Store,
		qrcode:   params.QRCode,
		config:   params.Config,
		logger:   params.Logger,
	}
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateShop sets up the single shop of an owner with the default price list.
func (srv *shopService) CreateShop(ctx context.Context, owner *entity.User, input *usecase.CreateShopInput) (*entity.Shop, error) {
	if owner.Role != entity.RoleOwner {
		return nil, domainerrors.ErrForbidden.WithDetails("only owners can create shops")
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Address) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Name and address are required")
	}

	_, err := srv.shopRepo.FindByOwner(ctx, owner.ID)
	if err == nil {
		return nil, domainerrors.ErrShopAlreadyExists
	}
	if !errors.Is(err, repository.ErrShopNotFound) {
		return nil, errors.Wrap(err, "failed to look up owner shop")
	}

	shop := &entity.Shop{
		ID:       uuid.Must(uuid.NewV7()),
		OwnerID:  owner.ID,
		Name:     input.Name,
		Address:  input.Address,
		Location: input.Location,
		Status:   entity.ShopStatusOpen,
		Pricing:  entity.DefaultPricingTable(),
	}
	shop.Image = srv.adoptImage(ctx, shop, input.Image)

	if err := srv.shopRepo.Create(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to create shop")
	}

	srv.log(ctx).Info("Shop created",
		slog.String("shop_id", shop.ID.String()),
		slog.String("owner_id", owner.ID.String()),
	)

	return shop, nil
}

// adoptImage moves a temp upload under the shop folder. Absolute URLs and
// already committed keys are kept as given.
func (srv *shopService) adoptImage(ctx context.Context, shop *entity.Shop, image string) string {
	if image == "" || storagekey.IsAbsoluteURL(image) || !storagekey.IsTemp(image) {
		return image
	}

	dst := storagekey.ProfileKey(storagekey.ShopFolder(shop.Name, shop.ID), image)
	if err := moveObject(ctx, srv.store, srv.log(ctx), dst, image); err != nil {
		srv.log(ctx).Warn("Failed to move shop image, keeping temp key",
			slog.String("key", image),
			slog.Any("error", err),
		)

		return image
	}

	return dst
}

func (srv *shopService) GetMyShop(ctx context.Context, actor *entity.User) (*entity.Shop, error) {
	return shopForActor(ctx, srv.shopRepo, actor)
}

// ListShops returns every shop that is not CLOSED. Image keys are replaced by
// presigned URLs; a shop whose image cannot be signed keeps its key.
func (srv *shopService) ListShops(ctx context.Context, input *usecase.ListShopsInput) ([]*usecase.ShopListing, error) {
	shops, err := srv.shopRepo.ListVisible(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	listings := make([]*usecase.ShopListing, 0, len(shops))
	for _, shop := range shops {
		listing := &usecase.ShopListing{Shop: shop}

		if input != nil && input.Near != nil {
			if shop.Location == nil {
				continue
			}
			km := geo.Distance(*input.Near, *shop.Location) / 1000
			if input.RadiusKm > 0 && km > input.RadiusKm {
				continue
			}
			listing.DistanceKm = &km
		}

		srv.presignImage(ctx, listing)
		listings = append(listings, listing)
	}

	if input != nil && input.Near != nil {
		slices.SortStableFunc(listings, func(a, b *usecase.ShopListing) int {
			switch {
			case *a.DistanceKm < *b.DistanceKm:
				return -1
			case *a.DistanceKm > *b.DistanceKm:
				return 1
			default:
				return 0
			}
		})
	}

	return listings, nil
}

func (srv *shopService) presignImage(ctx context.Context, listing *usecase.ShopListing) {
	image := listing.Image
	if image == "" || storagekey.IsAbsoluteURL(image) {
		return
	}

	url, err := srv.store.SignedURL(ctx, image, srv.config.Storage.SignedURLExpiry)
	if err != nil {
		srv.log(ctx).Warn("Failed to sign shop image",
			slog.String("shop_id", listing.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	shop := *listing.Shop
	shop.Image = url
	listing.Shop = &shop
}

func (srv *shopService) GetShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindByID(ctx, shopID)
	if errors.Is(err, repository.ErrShopNotFound) {
		return nil, domainerrors.ErrShopNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shop")
	}

	return shop, nil
}

// UpdateShop changes the general details of a shop the caller owns.
func (srv *shopService) UpdateShop(ctx context.Context, owner *entity.User, shopID uuid.UUID, input *usecase.UpdateShopInput) (*entity.Shop, error) {
	shop, err := srv.GetShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if shop.OwnerID != owner.ID {
		return nil, domainerrors.ErrShopOwnership
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		shop.Name = *input.Name
	}
	if input.Address != nil && strings.TrimSpace(*input.Address) != "" {
		shop.Address = *input.Address
	}
	if input.Location != nil {
		shop.Location = input.Location
	}
	if input.Image != nil {
		shop.Image = srv.adoptImage(ctx, shop, *input.Image)
	}

	if err := srv.shopRepo.Update(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to update shop")
	}

	return shop, nil
}

// SetStatus sets an explicit status, or toggles OPEN/CLOSED when none is given.
func (srv *shopService) SetStatus(ctx context.Context, actor *entity.User, input *usecase.SetShopStatusInput) (*entity.Shop, error) {
	shop, err := shopForActor(ctx, srv.shopRepo, actor)
	if err != nil {
		return nil, err
	}

	next := shop.Status.Toggled()
	if input != nil && input.Status != nil {
		if !input.Status.IsValid() {
			return nil, domainerrors.ErrInvalidShopStatus
		}
		next = *input.Status
	}
	shop.Status = next

	if err := srv.shopRepo.Update(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to update shop status")
	}

	srv.log(ctx).Info("Shop status changed",
		slog.String("shop_id", shop.ID.String()),
		slog.String("status", string(next)),
	)

	return shop, nil
}

// UpdatePricing replaces the price list of the owner's shop after validating it.
func (srv *shopService) UpdatePricing(ctx context.Context, owner *entity.User, pricing entity.PricingTable) (*entity.Shop, error) {
	if err := pricing.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidPricing.WithDetails(err.Error())
	}

	shop, err := shopForActor(ctx, srv.shopRepo, owner)
	if err != nil {
		return nil, err
	}
	if shop.OwnerID != owner.ID {
		return nil, domainerrors.ErrShopOwnership
	}

	shop.Pricing = pricing
	if err := srv.shopRepo.Update(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to update pricing")
	}

	return shop, nil
}

// AddEmployee creates a password account bound to the owner's shop.
func (srv *shopService) AddEmployee(ctx context.Context, owner *entity.User, input *usecase.AddEmployeeInput) (*entity.User, error) {
	if err := requireFields(input.Name, input.Email, input.Password); err != nil {
		return nil, err
	}

	shop, err := shopForActor(ctx, srv.shopRepo, owner)
	if err != nil {
		return nil, err
	}
	if shop.OwnerID != owner.ID {
		return nil, domainerrors.ErrShopOwnership
	}

	_, err = srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	shopID := shop.ID
	employee := &entity.User{
		ID:               uuid.Must(uuid.NewV7()),
		Name:             input.Name,
		Email:            input.Email,
		Role:             entity.RoleEmployee,
		PasswordHash:     hash,
		AssociatedShopID: &shopID,
	}
	if err := validateNewUser(employee); err != nil {
		return nil, err
	}
	if err := srv.userRepo.Create(ctx, employee); err != nil {
		return nil, mapCreateUserError(err)
	}

	srv.log(ctx).Info("Employee added",
		slog.String("shop_id", shop.ID.String()),
		slog.String("user_id", employee.ID.String()),
	)

	return employee, nil
}

func (srv *shopService) ListEmployees(ctx context.Context, owner *entity.User) ([]*entity.User, error) {
	shop, err := shopForActor(ctx, srv.shopRepo, owner)
	if err != nil {
		return nil, err
	}

	employees, err := srv.userRepo.FindEmployeesByShop(ctx, shop.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	return employees, nil
}

// QRCode renders the scan-to-order code of a shop.
func (srv *shopService) QRCode(ctx context.Context, shopID uuid.UUID) (*usecase.ShopQRCode, error) {
	shop, err := srv.GetShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateShopQR(shop.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render QR code")
	}

	return &usecase.ShopQRCode{
		ShopID:  shop.ID,
		Payload: qrPayloadPrefix + shop.ID.String(),
		PNG:     png,
	}, nil
}

package postgres

import (
	"context"

	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// shopRepository implements repository.ShopRepository using GORM.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	return repo.first(ctx, "id = ?", id)
}

func (repo *shopRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	return repo.first(ctx, "owner_id = ?", ownerID)
}

func (repo *shopRepository) first(ctx context.Context, query string, arg any) (*entity.Shop, error) {
	var shopM model.ShopModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return toShopDomain(&shopM), nil
}

func (repo *shopRepository) ListVisible(ctx context.Context) ([]*entity.Shop, error) {
	var shopModels []*model.ShopModel
	if err := repo.db.WithContext(ctx).
		Where("status <> ?", string(entity.ShopStatusClosed)).
		Order("created_at DESC").
		Find(&shopModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	shops := make([]*entity.Shop, 0, len(shopModels))
	for _, shopM := range shopModels {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops, nil
}

func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	if shop.ID == uuid.Nil {
		shop.ID = uuid.Must(uuid.NewV7())
	}

	shopM := fromShopDomain(shop)
	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)
	if err := repo.db.WithContext(ctx).Save(shopM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update shop")
	}

	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	shop := &entity.Shop{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Address:   data.Address,
		Image:     data.Image,
		Status:    entity.ShopStatus(data.Status),
		Pricing:   data.Pricing.Data(),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Longitude != nil && data.Latitude != nil {
		shop.Location = &orb.Point{*data.Longitude, *data.Latitude}
	}

	return shop
}

func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	shopM := &model.ShopModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Address:   data.Address,
		Image:     data.Image,
		Status:    string(data.Status),
		Pricing:   datatypes.NewJSONType(data.Pricing),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Location != nil {
		lng, lat := data.Location.Lon(), data.Location.Lat()
		shopM.Longitude = &lng
		shopM.Latitude = &lat
	}

	return shopM
}

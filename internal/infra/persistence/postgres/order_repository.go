package postgres

import (
	"context"
	"strings"

	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// orderRepository implements repository.OrderRepository using GORM.
// Reads go to the primary: an order is usually re-read right after a write.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) reader(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Write).Preload("User")
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.reader(ctx).Where("orders.id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Order, error) {
	return repo.list(ctx, repo.reader(ctx).Where("orders.shop_id = ?", shopID))
}

func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	return repo.list(ctx, repo.reader(ctx).Where("orders.user_id = ?", userID))
}

func (repo *orderRepository) History(ctx context.Context, shopID uuid.UUID, filter repository.OrderHistoryFilter) ([]*entity.Order, error) {
	query := repo.reader(ctx).Where("orders.shop_id = ?", shopID)

	if filter.From != nil {
		query = query.Where("orders.created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("orders.created_at <= ?", *filter.To)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + escapeLike(search) + "%"
		customers := repo.db.WithContext(ctx).Model(&model.UserModel{}).Select("id").Where("name ILIKE ?", like)
		query = query.Where("orders.user_id IN (?) OR CAST(orders.id AS TEXT) ILIKE ?", customers, like)
	}

	return repo.list(ctx, query)
}

func (repo *orderRepository) list(_ context.Context, query *gorm.DB) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	if err := query.Order("orders.created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.Must(uuid.NewV7())
	}

	orderM := fromOrderDomain(order)
	if err := repo.db.WithContext(ctx).Omit("User").Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrShopNotFound.WrapMessage("invalid shop or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	if err := repo.db.WithContext(ctx).Omit("User").Save(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order")
	}

	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.LineItem, len(data.Items))
	copy(items, data.Items)

	return &entity.Order{
		ID:            data.ID,
		ShopID:        data.ShopID,
		UserID:        data.UserID,
		Items:         items,
		TotalAmount:   data.TotalAmount,
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		PaymentID:     data.PaymentID,
		Status:        entity.OrderStatus(data.OrderStatus),
		PickupCode:    data.PickupCode,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		User:          toUserDomain(data.User),
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:            data.ID,
		ShopID:        data.ShopID,
		UserID:        data.UserID,
		Items:         datatypes.NewJSONSlice(data.Items),
		TotalAmount:   data.TotalAmount,
		PaymentStatus: string(data.PaymentStatus),
		PaymentID:     data.PaymentID,
		OrderStatus:   string(data.Status),
		PickupCode:    data.PickupCode,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/domain/service"
	"printshop/internal/domain/storagekey"
	"printshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	checkoutCurrency    = "INR"
	mockOrderIDPrefix   = "order_mock_"
	mockPaymentIDPrefix = "pay_mock_"
)

var minorUnits = decimal.NewFromInt(100)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	shopRepo  repository.ShopRepository
	store     service.ObjectStore
	policy    service.StoragePolicy
	notifier  service.Notifier
	queue     service.ConversionQueue
	metrics   service.Metrics
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	ShopRepo  repository.ShopRepository
	Store     service.ObjectStore
	Policy    service.StoragePolicy
	Notifier  service.Notifier
	Queue     service.ConversionQueue
	Metrics   service.Metrics
	Logger    *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		shopRepo:  params.ShopRepo,
		store:     params.Store,
		policy:    params.Policy,
		notifier:  params.Notifier,
		queue:     params.Queue,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder prices the items with the shop's table, moves their files out of
// the temp area and stores the order as QUEUED and unpaid.
func (srv *orderService) CreateOrder(ctx context.Context, customer *entity.User, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if input == nil || len(input.Items) == 0 {
		return nil, domainerrors.ErrOrderEmpty
	}

	shop, err := srv.loadShop(ctx, input.ShopID)
	if err != nil {
		return nil, err
	}

	order := entity.NewOrder(shop.ID, customer.ID)
	order.Items = make([]entity.LineItem, 0, len(input.Items))
	for _, in := range input.Items {
		if strings.TrimSpace(in.StorageKey) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("every item needs a storageKey")
		}

		cfg := in.Config.WithDefaults()
		if err := cfg.Validate(); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}

		order.Items = append(order.Items, entity.LineItem{
			StorageKey:   in.StorageKey,
			OriginalName: in.OriginalName,
			FileHash:     in.FileHash,
			FileType:     in.FileType,
			PageCount:    max(in.PageCount, 1),
			Config:       cfg,
		})
	}
	// Quote fills every item's calculatedCost.
	order.TotalAmount = shop.Pricing.Quote(order.Items)

	moved, err := srv.commitFiles(ctx, shop, customer, order)
	if err != nil {
		return nil, err
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.discardTemps(ctx, moved)
	srv.metrics.OrderCreated()

	srv.log(ctx).Info("Order created",
		slog.String("order_id", order.ID.String()),
		slog.String("shop_id", shop.ID.String()),
		slog.Int("items", len(order.Items)),
		slog.Float64("total", order.TotalAmount),
	)

	return order, nil
}

// commitFiles copies every temp item under the order folder and returns the
// temp keys that now have a committed copy.
func (srv *orderService) commitFiles(ctx context.Context, shop *entity.Shop, customer *entity.User, order *entity.Order) ([]string, error) {
	shopFolder := storagekey.ShopFolder(shop.Name, shop.ID)
	orderFolder := storagekey.OrderFolder(customer.Name, order.ID)

	var moved []string
	used := make(map[string]struct{}, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		if !storagekey.IsTemp(item.StorageKey) {
			continue
		}

		name := item.OriginalName
		if name == "" {
			name = path.Base(item.StorageKey)
		}
		dst := storagekey.CommittedKey(shopFolder, orderFolder, name)
		if _, taken := used[dst]; taken {
			dst = storagekey.CommittedKey(shopFolder, orderFolder, fmt.Sprintf("%d_%s", i+1, path.Base(name)))
		}

		if err := srv.store.Copy(ctx, dst, item.StorageKey); err != nil {
			storageErr := asStorageError(service.StorageOpCopy, item.StorageKey, err)
			if srv.policy.Decide(storageErr) == service.Abort {
				return nil, domainerrors.ErrUploadFailed.WrapMessage(storageErr.Error())
			}

			srv.log(ctx).Warn("Failed to commit file, keeping temp key",
				slog.String("order_id", order.ID.String()),
				slog.String("key", item.StorageKey),
				slog.Any("error", err),
			)

			continue
		}

		used[dst] = struct{}{}
		moved = append(moved, item.StorageKey)
		item.StorageKey = dst
	}

	return moved, nil
}

func (srv *orderService) discardTemps(ctx context.Context, keys []string) {
	if len(keys) == 0 {
		return
	}

	for _, res := range srv.store.DeleteMany(ctx, keys) {
		if res.Err == nil {
			continue
		}
		if srv.policy.Decide(res.Err) == service.Continue {
			srv.log(ctx).Warn("Failed to delete temp upload", slog.String("key", res.Key), slog.Any("error", res.Err))
		}
	}
}

// Checkout returns a mocked gateway order for the order total in minor units.
func (srv *orderService) Checkout(ctx context.Context, customer *entity.User, orderID uuid.UUID) (*usecase.CheckoutOutput, error) {
	order, err := srv.loadOwnOrder(ctx, customer, orderID)
	if err != nil {
		return nil, err
	}

	amount := decimal.NewFromFloat(order.TotalAmount).Mul(minorUnits).Round(0).IntPart()

	return &usecase.CheckoutOutput{
		ID:       mockOrderIDPrefix + shortuuid.New(),
		Currency: checkoutCurrency,
		Amount:   amount,
	}, nil
}

// VerifyPayment marks the order paid, tells the shop and schedules conversion.
// Verifying an already paid order is a no-op.
func (srv *orderService) VerifyPayment(ctx context.Context, customer *entity.User, input *usecase.VerifyPaymentInput) (*entity.Order, error) {
	order, err := srv.loadOwnOrder(ctx, customer, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus == entity.PaymentPaid {
		return order, nil
	}

	paymentID := input.PaymentID
	if paymentID == "" {
		paymentID = mockPaymentIDPrefix + shortuuid.New()
	}
	order.MarkPaid(paymentID)

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to record payment")
	}

	publish(ctx, srv.notifier, srv.log(ctx), service.Event{
		Name:    service.EventNewOrder,
		Room:    service.ShopRoom(order.ShopID),
		Payload: order,
	})

	job := service.ConversionJob{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:   order.ID,
	}
	if err := srv.queue.Enqueue(ctx, job); err != nil {
		srv.log(ctx).Error("Failed to enqueue conversion",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Payment verified",
		slog.String("order_id", order.ID.String()),
		slog.String("payment_id", paymentID),
	)

	return order, nil
}

func (srv *orderService) ShopOrders(ctx context.Context, actor *entity.User) ([]*entity.Order, error) {
	shop, err := shopForActor(ctx, srv.shopRepo, actor)
	if err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.ListByShop(ctx, shop.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop orders")
	}

	return orders, nil
}

// ShopHistory filters the actor's shop orders by creation date and customer.
func (srv *orderService) ShopHistory(ctx context.Context, actor *entity.User, input *usecase.ShopHistoryInput) ([]*entity.Order, error) {
	shop, err := shopForActor(ctx, srv.shopRepo, actor)
	if err != nil {
		return nil, err
	}

	filter := repository.OrderHistoryFilter{}
	if input != nil {
		filter.From = input.StartDate
		filter.Search = strings.TrimSpace(input.Search)
		if input.EndDate != nil {
			end := endOfDay(*input.EndDate)
			filter.To = &end
		}
	}

	orders, err := srv.orderRepo.History(ctx, shop.ID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order history")
	}

	return orders, nil
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func (srv *orderService) MyOrders(ctx context.Context, customer *entity.User) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, customer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns an order to its customer or to staff of its shop.
func (srv *orderService) GetOrder(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := srv.authorizeParticipant(ctx, actor, order); err != nil {
		return nil, err
	}

	return order, nil
}

// UpdateStatus applies a staff-chosen status. The order must belong to the
// shop the actor works for.
func (srv *orderService) UpdateStatus(ctx context.Context, actor *entity.User, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus
	}

	shop, err := shopForActor(ctx, srv.shopRepo, actor)
	if err != nil {
		return nil, err
	}

	order, err := srv.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.ShopID != shop.ID {
		srv.log(ctx).Warn("Status update for another shop's order",
			slog.String("order_id", order.ID.String()),
			slog.String("actor_shop_id", shop.ID.String()),
		)

		return nil, domainerrors.ErrOrderShopMismatch
	}

	if err := order.SetStatus(status); err != nil {
		return nil, domainerrors.ErrInvalidOrderStatus
	}
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.announceStatus(ctx, order)

	return order, nil
}

// Cancel cancels a QUEUED order on behalf of its customer or its shop staff.
func (srv *orderService) Cancel(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := srv.authorizeParticipant(ctx, actor, order); err != nil {
		return nil, err
	}

	if err := order.Cancel(); err != nil {
		return nil, domainerrors.ErrOrderNotCancellable
	}
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to cancel order")
	}

	srv.log(ctx).Info("Order cancelled",
		slog.String("order_id", order.ID.String()),
		slog.String("by", actor.ID.String()),
	)
	srv.announceStatus(ctx, order)

	return order, nil
}

func (srv *orderService) announceStatus(ctx context.Context, order *entity.Order) {
	publish(ctx, srv.notifier, srv.log(ctx),
		service.Event{Name: service.EventOrderStatusUpdated, Room: service.UserRoom(order.UserID), Payload: order},
		service.Event{Name: service.EventOrderUpdated, Room: service.UserRoom(order.UserID), Payload: order},
		service.Event{Name: service.EventOrderUpdated, Room: service.ShopRoom(order.ShopID), Payload: order},
	)
}

func (srv *orderService) authorizeParticipant(ctx context.Context, actor *entity.User, order *entity.Order) error {
	if order.UserID == actor.ID {
		return nil
	}
	if !actor.IsStaff() {
		return domainerrors.ErrForbidden.WithDetails("not your order")
	}

	shop, err := srv.loadShop(ctx, order.ShopID)
	if err != nil {
		return err
	}
	if !shop.IsStaff(actor) {
		return domainerrors.ErrForbidden.WithDetails("order belongs to another shop")
	}

	return nil
}

func (srv *orderService) loadOwnOrder(ctx context.Context, customer *entity.User, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != customer.ID {
		return nil, domainerrors.ErrForbidden.WithDetails("not your order")
	}

	return order, nil
}

func (srv *orderService) loadOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order")
	}

	return order, nil
}

func (srv *orderService) loadShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindByID(ctx, shopID)
	if errors.Is(err, repository.ErrShopNotFound) {
		return nil, domainerrors.ErrShopNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shop")
	}

	return shop, nil
}

package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/domain/service"
	"printshop/internal/domain/storagekey"
	"printshop/internal/infra/storage"
	mockRepo "printshop/internal/mocks/repository"
	mockSvc "printshop/internal/mocks/service"
	"printshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
	shopRepo  *mockRepo.MockShopRepository
	store     service.ObjectStore
	notifier  *mockSvc.MockNotifier
	queue     *mockSvc.MockConversionQueue
	metrics   *mockSvc.MockMetrics
}

// createTestOrderService wires the service to an in-memory bucket; pass a
// non-nil store to replace it.
func createTestOrderService(t *testing.T, store service.ObjectStore, policy service.StoragePolicy) orderServiceFixtures {
	if store == nil {
		bucket := memblob.OpenBucket(nil)
		t.Cleanup(func() { _ = bucket.Close() })
		store = storage.NewObjectStore(bucket, nil)
	}
	if policy == nil {
		policy = service.DefaultStoragePolicy{}
	}

	fx := orderServiceFixtures{
		orderRepo: mockRepo.NewMockOrderRepository(t),
		shopRepo:  mockRepo.NewMockShopRepository(t),
		store:     store,
		notifier:  mockSvc.NewMockNotifier(t),
		queue:     mockSvc.NewMockConversionQueue(t),
		metrics:   mockSvc.NewMockMetrics(t),
	}
	fx.service = NewOrderService(OrderServiceParams{
		OrderRepo: fx.orderRepo,
		ShopRepo:  fx.shopRepo,
		Store:     store,
		Policy:    policy,
		Notifier:  fx.notifier,
		Queue:     fx.queue,
		Metrics:   fx.metrics,
		Logger:    newDiscardLogger(),
	})

	return fx
}

func TestOrderService_CreateOrder_PricesAndCommitsFiles(t *testing.T) {
	fx := createTestOrderService(t, nil, nil)

	ctx := context.Background()
	customer := newCustomer()
	shop := newShop(newOwner())
	require.NoError(t, fx.store.Put(ctx, "temp/a.pdf", []byte("a"), ""))
	require.NoError(t, fx.store.Put(ctx, shop.ID.String()+"/temp/b.docx", []byte("b"), ""))

	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.metrics.EXPECT().OrderCreated().Return()

	order, err := fx.service.CreateOrder(ctx, customer, &usecase.CreateOrderInput{
		ShopID: shop.ID,
		Items: []usecase.OrderItemInput{
			{StorageKey: "temp/a.pdf", OriginalName: "a.pdf", PageCount: 10, Config: entity.PrintConfig{Copies: 2}},
			{
				StorageKey:   shop.ID.String() + "/temp/b.docx",
				OriginalName: "b.docx",
				PageCount:    5,
				Config:       entity.PrintConfig{Color: entity.ColorModeColor, Side: entity.SideDouble, Copies: 1},
			},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusQueued, order.Status)
	assert.Equal(t, entity.PaymentPending, order.PaymentStatus)
	assert.InDelta(t, 60.0, order.Items[0].CalculatedCost, 1e-9)
	assert.InDelta(t, 40.0, order.Items[1].CalculatedCost, 1e-9)
	assert.InDelta(t, 100.0, order.TotalAmount, 1e-9)
	assert.Equal(t, "A4_75gsm", order.Items[0].Config.PaperType)

	folder := storagekey.ShopFolder(shop.Name, shop.ID) + "/" + storagekey.OrderFolder(customer.Name, order.ID)
	assert.Equal(t, folder+"/a.pdf", order.Items[0].StorageKey)
	assert.Equal(t, folder+"/b.docx", order.Items[1].StorageKey)

	_, err = fx.store.Get(ctx, order.Items[0].StorageKey)
	require.NoError(t, err)
	_, err = fx.store.Get(ctx, "temp/a.pdf")
	assert.Error(t, err, "temp upload should be removed after commit")
}

func TestOrderService_CreateOrder_DuplicateNamesGetDistinctKeys(t *testing.T) {
	fx := createTestOrderService(t, nil, nil)

	ctx := context.Background()
	shop := newShop(newOwner())
	require.NoError(t, fx.store.Put(ctx, "temp/1.pdf", []byte("1"), ""))
	require.NoError(t, fx.store.Put(ctx, "temp/2.pdf", []byte("2"), ""))

	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.metrics.EXPECT().OrderCreated().Return()

	order, err := fx.service.CreateOrder(ctx, newCustomer(), &usecase.CreateOrderInput{
		ShopID: shop.ID,
		Items: []usecase.OrderItemInput{
			{StorageKey: "temp/1.pdf", OriginalName: "notes.pdf", PageCount: 1, Config: entity.PrintConfig{Copies: 1}},
			{StorageKey: "temp/2.pdf", OriginalName: "notes.pdf", PageCount: 1, Config: entity.PrintConfig{Copies: 1}},
		},
	})

	require.NoError(t, err)
	assert.NotEqual(t, order.Items[0].StorageKey, order.Items[1].StorageKey)
	assert.True(t, strings.HasSuffix(order.Items[1].StorageKey, "/2_notes.pdf"))
}

func TestOrderService_CreateOrder_CopyFailureKeepsTempKey(t *testing.T) {
	store := mockSvc.NewMockObjectStore(t)
	fx := createTestOrderService(t, store, nil)

	ctx := context.Background()
	shop := newShop(newOwner())

	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
	store.EXPECT().Copy(ctx, mock.Anything, "temp/a.pdf").
		Return(&service.StorageError{Op: service.StorageOpCopy, Key: "temp/a.pdf", Err: errors.New("throttled")})
	fx.orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.metrics.EXPECT().OrderCreated().Return()

	order, err := fx.service.CreateOrder(ctx, newCustomer(), &usecase.CreateOrderInput{
		ShopID: shop.ID,
		Items:  []usecase.OrderItemInput{{StorageKey: "temp/a.pdf", OriginalName: "a.pdf", PageCount: 0, Config: entity.PrintConfig{Copies: 1}}},
	})

	require.NoError(t, err)
	assert.Equal(t, "temp/a.pdf", order.Items[0].StorageKey)
	assert.Equal(t, 1, order.Items[0].PageCount, "page count is coerced to at least one")
}

func TestOrderService_CreateOrder_PolicyAbortsOnCopyFailure(t *testing.T) {
	store := mockSvc.NewMockObjectStore(t)
	policy := mockSvc.NewMockStoragePolicy(t)
	fx := createTestOrderService(t, store, policy)

	ctx := context.Background()
	shop := newShop(newOwner())
	copyErr := &service.StorageError{Op: service.StorageOpCopy, Key: "temp/a.pdf", Err: errors.New("denied")}

	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
	store.EXPECT().Copy(ctx, mock.Anything, "temp/a.pdf").Return(copyErr)
	policy.EXPECT().Decide(copyErr).Return(service.Abort)

	_, err := fx.service.CreateOrder(ctx, newCustomer(), &usecase.CreateOrderInput{
		ShopID: shop.ID,
		Items:  []usecase.OrderItemInput{{StorageKey: "temp/a.pdf", OriginalName: "a.pdf", PageCount: 1, Config: entity.PrintConfig{Copies: 1}}},
	})

	assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	fx := createTestOrderService(t, nil, nil)

	_, err := fx.service.CreateOrder(context.Background(), newCustomer(), &usecase.CreateOrderInput{ShopID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrOrderEmpty)

	missing := uuid.New()
	fx.shopRepo.EXPECT().FindByID(mock.Anything, missing).Return(nil, repository.ErrShopNotFound)
	_, err = fx.service.CreateOrder(context.Background(), newCustomer(), &usecase.CreateOrderInput{
		ShopID: missing,
		Items:  []usecase.OrderItemInput{{StorageKey: "temp/a.pdf"}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestOrderService_CreateOrder_RejectsInvalidPrintConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  entity.PrintConfig
	}{
		{name: "negative copies", cfg: entity.PrintConfig{Copies: -5}},
		{name: "zero copies", cfg: entity.PrintConfig{}},
		{name: "unknown color", cfg: entity.PrintConfig{Copies: 1, Color: "rainbow"}},
		{name: "unknown side", cfg: entity.PrintConfig{Copies: 1, Side: "triple"}},
		{name: "unknown paper size", cfg: entity.PrintConfig{Copies: 1, PaperSize: "A5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t, nil, nil)

			ctx := context.Background()
			shop := newShop(newOwner())
			fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)

			order, err := fx.service.CreateOrder(ctx, newCustomer(), &usecase.CreateOrderInput{
				ShopID: shop.ID,
				Items:  []usecase.OrderItemInput{{StorageKey: "temp/a.pdf", OriginalName: "a.pdf", PageCount: 3, Config: tt.cfg}},
			})

			assert.Nil(t, order)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestOrderService_Checkout(t *testing.T) {
	fx := createTestOrderService(t, nil, nil)

	customer := newCustomer()
	order := entity.NewOrder(uuid.New(), customer.ID)
	order.TotalAmount = 12.34
	fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

	out, err := fx.service.Checkout(context.Background(), customer, order.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(1234), out.Amount)
	assert.Equal(t, "INR", out.Currency)
	assert.True(t, strings.HasPrefix(out.ID, "order_mock_"))
}

func TestOrderService_Checkout_OtherCustomer(t *testing.T) {
	fx := createTestOrderService(t, nil, nil)

	order := entity.NewOrder(uuid.New(), uuid.New())
	fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

	_, err := fx.service.Checkout(context.Background(), newCustomer(), order.ID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_VerifyPayment_NotifiesShopAndEnqueues(t *testing.T) {
	fx := createTestOrderService(t, nil, nil)

	ctx := context.Background()
	customer := newCustomer()
	order := entity.NewOrder(uuid.New(), customer.ID)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)
	fx.notifier.EXPECT().
		Publish(ctx, service.Event{Name: service.EventNewOrder, Room: service.ShopRoom(order.ShopID), Payload: order}).
		Return(nil)
	fx.queue.EXPECT().Enqueue(ctx, service.ConversionJob{OrderID: order.ID}).Return(nil)

	got, err := fx.service.VerifyPayment(ctx, customer, &usecase.VerifyPaymentInput{OrderID: order.ID})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, got.PaymentStatus)
	assert.True(t, strings.HasPrefix(got.PaymentID, "pay_mock_"))
}

func TestOrderService_VerifyPayment_EnqueueFailureIsNotFatal(t *testing.T) {
	fx := createTestOrderService(t, nil, nil)

	ctx := context.Background()
	customer := newCustomer()
	order := entity.NewOrder(uuid.New(), customer.ID)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)
	fx.notifier.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("hub down"))
	fx.queue.EXPECT().Enqueue(ctx, mock.Anything).Return(errors.New("queue full"))

	got, err := fx.service.VerifyPayment(ctx, customer, &usecase.VerifyPaymentInput{OrderID: order.ID, PaymentID: "pay_1"})

	require.NoError(t, err)
	assert.Equal(t, "pay_1", got.PaymentID)
}

func TestOrderService_VerifyPayment_AlreadyPaid(t *testing.T) {
	fx := createTestOrderService(t, nil, nil)

	customer := newCustomer()
	order := entity.NewOrder(uuid.New(), customer.ID)
	order.MarkPaid("pay_1")
	fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

	got, err := fx.service.VerifyPayment(context.Background(), customer, &usecase.VerifyPaymentInput{OrderID: order.ID, PaymentID: "pay_2"})

	require.NoError(t, err)
	assert.Equal(t, "pay_1", got.PaymentID)
}

func TestOrderService_UpdateStatus_RejectsOrderOfAnotherShop(t *testing.T) {
	fx := createTestOrderService(t, nil, nil)

	ctx := context.Background()
	myShop := newShop(newOwner())
	employee := newEmployee(myShop.ID)
	otherShopOrder := entity.NewOrder(uuid.New(), uuid.New())

	fx.shopRepo.EXPECT().FindByID(ctx, myShop.ID).Return(myShop, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, otherShopOrder.ID).Return(otherShopOrder, nil)

	_, err := fx.service.UpdateStatus(ctx, employee, otherShopOrder.ID, entity.OrderStatusReady)

	assert.ErrorIs(t, err, domainerrors.ErrOrderShopMismatch)
	assert.Equal(t, entity.OrderStatusQueued, otherShopOrder.Status)
}

func TestOrderService_UpdateStatus_Success(t *testing.T) {
	fx := createTestOrderService(t, nil, nil)

	ctx := context.Background()
	owner := newOwner()
	shop := newShop(owner)
	order := entity.NewOrder(shop.ID, uuid.New())

	fx.shopRepo.EXPECT().FindByOwner(ctx, owner.ID).Return(shop, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)
	fx.notifier.EXPECT().
		Publish(ctx,
			service.Event{Name: service.EventOrderStatusUpdated, Room: service.UserRoom(order.UserID), Payload: order},
			service.Event{Name: service.EventOrderUpdated, Room: service.UserRoom(order.UserID), Payload: order},
			service.Event{Name: service.EventOrderUpdated, Room: service.ShopRoom(shop.ID), Payload: order},
		).
		Return(nil)

	got, err := fx.service.UpdateStatus(ctx, owner, order.ID, entity.OrderStatusReady)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReady, got.Status)
}

func TestOrderService_UpdateStatus_InvalidStatusOrRole(t *testing.T) {
	fx := createTestOrderService(t, nil, nil)

	_, err := fx.service.UpdateStatus(context.Background(), newOwner(), uuid.New(), "SHIPPED")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)

	_, err = fx.service.UpdateStatus(context.Background(), newCustomer(), uuid.New(), entity.OrderStatusReady)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_Cancel(t *testing.T) {
	owner := newOwner()
	shop := newShop(owner)

	tests := []struct {
		name    string
		actor   func(order *entity.Order) *entity.User
		status  entity.OrderStatus
		wantErr error
	}{
		{
			name:  "customer cancels queued order",
			actor: func(order *entity.Order) *entity.User { return &entity.User{ID: order.UserID, Role: entity.RoleUser} },
		},
		{
			name:  "employee of the shop cancels",
			actor: func(*entity.Order) *entity.User { return newEmployee(shop.ID) },
		},
		{
			name:    "another customer is forbidden",
			actor:   func(*entity.Order) *entity.User { return newCustomer() },
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "staff of another shop is forbidden",
			actor:   func(*entity.Order) *entity.User { return newEmployee(uuid.New()) },
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "printing order cannot be cancelled",
			actor:   func(order *entity.Order) *entity.User { return &entity.User{ID: order.UserID, Role: entity.RoleUser} },
			status:  entity.OrderStatusPrinting,
			wantErr: domainerrors.ErrOrderNotCancellable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t, nil, nil)

			order := entity.NewOrder(shop.ID, uuid.New())
			order.MarkPaid("pay_1")
			if tt.status != "" {
				order.Status = tt.status
			}
			actor := tt.actor(order)

			fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
			if actor.IsStaff() {
				fx.shopRepo.EXPECT().FindByID(mock.Anything, shop.ID).Return(shop, nil)
			}
			if tt.wantErr == nil {
				fx.orderRepo.EXPECT().Update(mock.Anything, order).Return(nil)
				fx.notifier.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
			}

			got, err := fx.service.Cancel(context.Background(), actor, order.ID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.OrderStatusCancelled, got.Status)
			assert.Equal(t, entity.PaymentRefunded, got.PaymentStatus)
		})
	}
}

func TestOrderService_ShopHistory_EndDateIsInclusive(t *testing.T) {
	fx := createTestOrderService(t, nil, nil)

	owner := newOwner()
	shop := newShop(owner)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	fx.shopRepo.EXPECT().FindByOwner(mock.Anything, owner.ID).Return(shop, nil)
	fx.orderRepo.EXPECT().
		History(mock.Anything, shop.ID, mock.MatchedBy(func(f repository.OrderHistoryFilter) bool {
			return f.From.Equal(start) &&
				f.To.Equal(time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC)) &&
				f.Search == "cara"
		})).
		Return([]*entity.Order{}, nil)

	orders, err := fx.service.ShopHistory(context.Background(), owner, &usecase.ShopHistoryInput{
		StartDate: &start,
		EndDate:   &end,
		Search:    "  cara ",
	})

	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_GetOrder_Authorization(t *testing.T) {
	fx := createTestOrderService(t, nil, nil)

	shop := newShop(newOwner())
	order := entity.NewOrder(shop.ID, uuid.New())
	fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

	_, err := fx.service.GetOrder(context.Background(), newCustomer(), order.ID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

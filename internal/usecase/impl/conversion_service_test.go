package impl

import (
	"context"
	"testing"

	"printshop/internal/domain/entity"
	"printshop/internal/domain/repository"
	"printshop/internal/domain/service"
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

type conversionServiceFixtures struct {
	service   usecase.ConversionUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	store     service.ObjectStore
	converter *mockSvc.MockDocumentConverter
	notifier  *mockSvc.MockNotifier
	metrics   *mockSvc.MockMetrics
}

func createTestConversionService(t *testing.T) conversionServiceFixtures {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	fx := conversionServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		orderRepo: mockRepo.NewMockOrderRepository(t),
		store:     storage.NewObjectStore(bucket, nil),
		converter: mockSvc.NewMockDocumentConverter(t),
		notifier:  mockSvc.NewMockNotifier(t),
		metrics:   mockSvc.NewMockMetrics(t),
	}
	fx.service = NewConversionService(ConversionServiceParams{
		TxManager: fx.txManager,
		OrderRepo: fx.orderRepo,
		Store:     fx.store,
		Converter: fx.converter,
		Notifier:  fx.notifier,
		Metrics:   fx.metrics,
		Logger:    newDiscardLogger(),
	})

	return fx
}

// expectPersist makes the transaction reload latest and capture what gets saved.
func (fx conversionServiceFixtures) expectPersist(t *testing.T, latest *entity.Order) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txOrders := mockRepo.NewMockOrderRepository(t)

			factory.EXPECT().NewOrderRepository().Return(txOrders)
			txOrders.EXPECT().FindByID(ctx, latest.ID).Return(latest, nil)
			txOrders.EXPECT().Update(ctx, latest).Return(nil)

			return fn(factory)
		})
}

func cloneOrder(order *entity.Order) *entity.Order {
	clone := *order
	clone.Items = append([]entity.LineItem(nil), order.Items...)

	return &clone
}

func TestConversionService_ConvertOrder_IsolatesItems(t *testing.T) {
	fx := createTestConversionService(t)

	ctx := context.Background()
	order := entity.NewOrder(uuid.New(), uuid.New())
	order.Items = []entity.LineItem{
		{StorageKey: "Shop_1/Cara_1/a.pdf", OriginalName: "a.pdf"},
		{StorageKey: "Shop_1/Cara_1/b.png", OriginalName: "b.png"},
		{StorageKey: "Shop_1/Cara_1/c.docx", OriginalName: "c.docx"},
		{StorageKey: "Shop_1/Cara_1/d.pptx", OriginalName: "d.pptx"},
		{StorageKey: "Shop_1/Cara_1/e.docx", OriginalName: "e.docx", ConvertedKey: "Shop_1/Cara_1/converted/e.pdf"},
		{StorageKey: "Shop_1/Cara_1/f.xlsx", OriginalName: "f.xlsx"},
	}
	require.NoError(t, fx.store.Put(ctx, "Shop_1/Cara_1/c.docx", []byte("docx"), ""))
	require.NoError(t, fx.store.Put(ctx, "Shop_1/Cara_1/d.pptx", []byte("pptx"), ""))
	require.NoError(t, fx.store.Put(ctx, "Shop_1/Cara_1/f.xlsx", []byte("xlsx"), ""))

	latest := cloneOrder(order)
	latest.Status = entity.OrderStatusProcessing

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.converter.EXPECT().ConvertToPDF(ctx, "c.docx", []byte("docx")).Return([]byte("pdf-c"), nil)
	fx.converter.EXPECT().ConvertToPDF(ctx, "d.pptx", []byte("pptx")).Return(nil, errors.New("soffice crashed"))
	fx.converter.EXPECT().ConvertToPDF(ctx, "f.xlsx", []byte("xlsx")).Return([]byte("pdf-f"), nil)
	fx.metrics.EXPECT().ConversionItem(mock.AnythingOfType("string")).Return().Times(6)
	fx.expectPersist(t, latest)
	fx.notifier.EXPECT().Publish(ctx,
		service.Event{Name: service.EventNewOrder, Room: service.ShopRoom(order.ShopID), Payload: latest},
		service.Event{Name: service.EventOrderStatusUpdated, Room: service.UserRoom(order.UserID), Payload: latest},
		service.Event{Name: service.EventOrderUpdated, Room: service.UserRoom(order.UserID), Payload: latest},
	).Return(nil)

	var seen []usecase.ItemResult
	report, err := fx.service.ConvertOrder(ctx, order.ID, func(r usecase.ItemResult) { seen = append(seen, r) })

	require.NoError(t, err)
	assert.Equal(t, report.Items, seen)

	outcomes := make([]usecase.ItemOutcome, 0, len(report.Items))
	for _, item := range report.Items {
		outcomes = append(outcomes, item.Outcome)
	}
	assert.Equal(t, []usecase.ItemOutcome{
		usecase.ItemSkipped,
		usecase.ItemSkipped,
		usecase.ItemConverted,
		usecase.ItemFailed,
		usecase.ItemSkipped,
		usecase.ItemConverted,
	}, outcomes)
	assert.Equal(t, 1, report.Failed())
	assert.True(t, report.Requeued)

	assert.Equal(t, entity.OrderStatusQueued, latest.Status)
	assert.Equal(t, "Shop_1/Cara_1/converted/c.pdf", latest.Items[2].ConvertedKey)
	assert.Empty(t, latest.Items[3].ConvertedKey)
	assert.Equal(t, "Shop_1/Cara_1/converted/f.pdf", latest.Items[5].ConvertedKey)

	pdf, err := fx.store.Get(ctx, "Shop_1/Cara_1/converted/c.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf-c", string(pdf))
}

func TestConversionService_ConvertOrder_KeepsStaffStatus(t *testing.T) {
	fx := createTestConversionService(t)

	ctx := context.Background()
	order := entity.NewOrder(uuid.New(), uuid.New())
	order.Items = []entity.LineItem{{StorageKey: "S/U/a.pdf", OriginalName: "a.pdf"}}

	latest := cloneOrder(order)
	latest.Status = entity.OrderStatusReady

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.metrics.EXPECT().ConversionItem(string(usecase.ItemSkipped)).Return()
	fx.expectPersist(t, latest)
	fx.notifier.EXPECT().Publish(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	report, err := fx.service.ConvertOrder(ctx, order.ID, nil)

	require.NoError(t, err)
	assert.False(t, report.Requeued)
	assert.Equal(t, entity.OrderStatusReady, latest.Status)
}

func TestConversionService_ConvertOrder_MissingSource(t *testing.T) {
	fx := createTestConversionService(t)

	ctx := context.Background()
	order := entity.NewOrder(uuid.New(), uuid.New())
	order.Items = []entity.LineItem{{StorageKey: "temp/gone.docx", OriginalName: "gone.docx"}}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.metrics.EXPECT().ConversionItem(string(usecase.ItemFailed)).Return()
	fx.expectPersist(t, cloneOrder(order))
	fx.notifier.EXPECT().Publish(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	report, err := fx.service.ConvertOrder(ctx, order.ID, nil)

	require.NoError(t, err)
	require.Len(t, report.Items, 1)
	assert.Equal(t, usecase.ItemFailed, report.Items[0].Outcome)

	var storageErr *service.StorageError
	require.ErrorAs(t, report.Items[0].Err, &storageErr)
	assert.True(t, storageErr.NotFound)
}

func TestConversionService_HandleConversionJob_MissingOrderIsAcked(t *testing.T) {
	fx := createTestConversionService(t)

	job := service.ConversionJob{RequestID: "req-1", OrderID: uuid.New()}
	fx.orderRepo.EXPECT().FindByID(mock.Anything, job.OrderID).Return(nil, repository.ErrOrderNotFound)

	assert.NoError(t, fx.service.HandleConversionJob(context.Background(), job))
}

func TestConversionService_HandleConversionJob_RepositoryErrorIsRetried(t *testing.T) {
	fx := createTestConversionService(t)

	job := service.ConversionJob{OrderID: uuid.New()}
	fx.orderRepo.EXPECT().FindByID(mock.Anything, job.OrderID).Return(nil, errors.New("connection refused"))

	assert.Error(t, fx.service.HandleConversionJob(context.Background(), job))
}

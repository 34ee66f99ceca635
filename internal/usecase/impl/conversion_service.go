package impl

import (
	"context"
	"log/slog"

	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/domain/service"
	"printshop/internal/domain/storagekey"
	"printshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// conversionService implements the ConversionUsecase interface.
type conversionService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	store     service.ObjectStore
	converter service.DocumentConverter
	notifier  service.Notifier
	metrics   service.Metrics
	logger    *slog.Logger
}

// ConversionServiceParams holds dependencies for ConversionService, injected by Fx.
type ConversionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Store     service.ObjectStore
	Converter service.DocumentConverter
	Notifier  service.Notifier
	Metrics   service.Metrics
	Logger    *slog.Logger
}

// NewConversionService creates a new conversion service.
func NewConversionService(params ConversionServiceParams) usecase.ConversionUsecase {
	return &conversionService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		store:     params.Store,
		converter: params.Converter,
		notifier:  params.Notifier,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *conversionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleConversionJob runs one queued job. Jobs for orders that no longer
// exist are acknowledged so they are not redelivered.
func (srv *conversionService) HandleConversionJob(ctx context.Context, job service.ConversionJob) error {
	if job.RequestID != "" {
		ctx = deliverycontext.WithLogger(ctx, srv.logger.With(slog.String("request_id", job.RequestID)))
	}

	report, err := srv.ConvertOrder(ctx, job.OrderID, nil)
	if errors.Is(err, domainerrors.ErrOrderNotFound) {
		srv.log(ctx).Warn("Dropping conversion job for missing order", slog.String("order_id", job.OrderID.String()))

		return nil
	}
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Conversion finished",
		slog.String("order_id", job.OrderID.String()),
		slog.Int("items", len(report.Items)),
		slog.Int("failed", report.Failed()),
		slog.Bool("requeued", report.Requeued),
	)

	return nil
}

// ConvertOrder converts every office document of the order to PDF, one at a time.
func (srv *conversionService) ConvertOrder(ctx context.Context, orderID uuid.UUID, onItem usecase.ItemCallback) (*usecase.ConversionReport, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order")
	}

	report := &usecase.ConversionReport{
		OrderID: order.ID,
		Items:   make([]usecase.ItemResult, 0, len(order.Items)),
	}
	converted := make(map[int]string)

	for i := range order.Items {
		result := srv.convertItem(ctx, i, &order.Items[i])
		if result.Outcome == usecase.ItemConverted {
			converted[i] = result.ConvertedKey
		}

		srv.metrics.ConversionItem(string(result.Outcome))
		report.Items = append(report.Items, result)
		if onItem != nil {
			onItem(result)
		}
	}

	final, err := srv.persist(ctx, orderID, converted, report)
	if err != nil {
		return nil, err
	}

	publish(ctx, srv.notifier, srv.log(ctx),
		service.Event{Name: service.EventNewOrder, Room: service.ShopRoom(final.ShopID), Payload: final},
		service.Event{Name: service.EventOrderStatusUpdated, Room: service.UserRoom(final.UserID), Payload: final},
		service.Event{Name: service.EventOrderUpdated, Room: service.UserRoom(final.UserID), Payload: final},
	)

	return report, nil
}

func (srv *conversionService) convertItem(ctx context.Context, index int, item *entity.LineItem) usecase.ItemResult {
	result := usecase.ItemResult{Index: index, OriginalName: item.OriginalName}

	if item.ConvertedKey != "" || !needsConversion(item) {
		result.Outcome = usecase.ItemSkipped
		result.ConvertedKey = item.ConvertedKey

		return result
	}

	fail := func(err error) usecase.ItemResult {
		srv.log(ctx).Error("Item conversion failed",
			slog.Int("index", index),
			slog.String("key", item.StorageKey),
			slog.Any("error", err),
		)
		result.Outcome = usecase.ItemFailed
		result.Err = err

		return result
	}

	data, err := srv.store.Get(ctx, item.StorageKey)
	if err != nil {
		return fail(err)
	}

	name := item.OriginalName
	if name == "" {
		name = item.StorageKey
	}
	pdf, err := srv.converter.ConvertToPDF(ctx, name, data)
	if err != nil {
		return fail(err)
	}

	key := storagekey.ConvertedKey(item.StorageKey)
	if err := srv.store.Put(ctx, key, pdf, contentTypePDF); err != nil {
		return fail(err)
	}

	item.ConvertedKey = key
	result.Outcome = usecase.ItemConverted
	result.ConvertedKey = key

	return result
}

// persist records the converted keys on a fresh copy of the order so status
// changes made by staff during conversion survive.
func (srv *conversionService) persist(ctx context.Context, orderID uuid.UUID, converted map[int]string, report *usecase.ConversionReport) (*entity.Order, error) {
	var final *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		latest, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return errors.Wrap(err, "failed to reload order")
		}

		for i, key := range converted {
			if i < len(latest.Items) {
				latest.Items[i].ConvertedKey = key
			}
		}
		report.Requeued = latest.ConfirmQueued()

		if err := orderRepo.Update(ctx, latest); err != nil {
			return errors.Wrap(err, "failed to save converted items")
		}
		final = latest

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return final, nil
}

// needsConversion reports whether an item is an office document rather than
// something the shop can print directly.
func needsConversion(item *entity.LineItem) bool {
	ext := storagekey.Extension(item.StorageKey)
	if ext == "" {
		ext = storagekey.Extension(item.OriginalName)
	}
	if ext == service.DocumentPDF {
		return false
	}
	_, isImage := imageContentTypes[ext]

	return !isImage
}

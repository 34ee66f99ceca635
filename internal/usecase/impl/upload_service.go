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
	"printshop/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	contentTypePDF   = "application/pdf"
	contentTypeOctet = "application/octet-stream"
)

var imageContentTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
}

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	shopRepo  repository.ShopRepository
	store     service.ObjectStore
	analyzer  service.DocumentAnalyzer
	converter service.DocumentConverter
	logger    *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	ShopRepo  repository.ShopRepository
	Store     service.ObjectStore
	Analyzer  service.DocumentAnalyzer
	Converter service.DocumentConverter
	Logger    *slog.Logger
}

// NewUploadService creates a new upload service.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	return &uploadService{
		shopRepo:  params.ShopRepo,
		store:     params.Store,
		analyzer:  params.Analyzer,
		converter: params.Converter,
		logger:    params.Logger,
	}
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload stores a file under a fresh temp key and reports its page count.
func (srv *uploadService) Upload(ctx context.Context, input *usecase.UploadInput) (*usecase.UploadOutput, error) {
	if input == nil || len(input.Data) == 0 {
		return nil, domainerrors.ErrNoFileUploaded
	}

	scope := ""
	if input.ShopID != "" {
		shopID, err := uuid.Parse(input.ShopID)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("invalid shopId")
		}
		scope = shopID.String()
	}

	key := storagekey.TempKey(scope, storagekey.Extension(input.FileName))
	contentType := input.ContentType
	if contentType == "" {
		contentType = contentTypeOctet
	}

	if err := srv.store.Put(ctx, key, input.Data, contentType); err != nil {
		srv.log(ctx).Error("Failed to store upload",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrUploadFailed.WrapMessage(err.Error())
	}

	info := srv.analyzer.Analyze(ctx, input.FileName, input.Data)

	srv.log(ctx).Info("File uploaded",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(input.Data)))),
		slog.Int("pages", info.PageCount),
	)

	return &usecase.UploadOutput{
		OriginalName: input.FileName,
		StorageKey:   key,
		FileHash:     util.HashBytes(input.Data),
		Location:     srv.store.Location(key),
		PageCount:    info.PageCount,
		FileType:     info.Type,
	}, nil
}

// PreviewPDF returns a printable rendition of a key within the actor's shop.
func (srv *uploadService) PreviewPDF(ctx context.Context, actor *entity.User, storageKey string) (*usecase.PreviewOutput, error) {
	if storageKey == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("key is required")
	}

	shop, err := shopForActor(ctx, srv.shopRepo, actor)
	if err != nil {
		return nil, err
	}
	if !storagekey.WithinShop(storageKey, shop.ID, storagekey.ShopFolder(shop.Name, shop.ID)) {
		return nil, domainerrors.ErrForbidden.WithDetails("file does not belong to your shop")
	}

	data, err := srv.store.Get(ctx, storageKey)
	if err != nil {
		if asStorageError(service.StorageOpGet, storageKey, err).NotFound {
			return nil, domainerrors.ErrFileNotFound
		}

		return nil, errors.Wrap(err, "failed to read file")
	}

	ext := storagekey.Extension(storageKey)
	if ext == service.DocumentPDF {
		return &usecase.PreviewOutput{ContentType: contentTypePDF, Data: data}, nil
	}
	if contentType, ok := imageContentTypes[ext]; ok {
		return &usecase.PreviewOutput{ContentType: contentType, Data: data}, nil
	}

	pdf, err := srv.converter.ConvertToPDF(ctx, storageKey, data)
	if err != nil {
		srv.log(ctx).Error("Preview conversion failed",
			slog.String("key", storageKey),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrPreviewFailed.WrapMessage(err.Error())
	}

	return &usecase.PreviewOutput{ContentType: contentTypePDF, Data: pdf}, nil
}

package impl

import (
	"context"
	"strings"
	"testing"

	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/service"
	"printshop/internal/domain/storagekey"
	"printshop/internal/infra/storage"
	mockRepo "printshop/internal/mocks/repository"
	mockSvc "printshop/internal/mocks/service"
	"printshop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

type uploadServiceFixtures struct {
	service   usecase.UploadUsecase
	shopRepo  *mockRepo.MockShopRepository
	store     service.ObjectStore
	analyzer  *mockSvc.MockDocumentAnalyzer
	converter *mockSvc.MockDocumentConverter
}

func createTestUploadService(t *testing.T) uploadServiceFixtures {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	shopRepo := mockRepo.NewMockShopRepository(t)
	store := storage.NewObjectStore(bucket, func(key string) string { return "mem://" + key })
	analyzer := mockSvc.NewMockDocumentAnalyzer(t)
	converter := mockSvc.NewMockDocumentConverter(t)

	svc := NewUploadService(UploadServiceParams{
		ShopRepo:  shopRepo,
		Store:     store,
		Analyzer:  analyzer,
		Converter: converter,
		Logger:    newDiscardLogger(),
	})

	return uploadServiceFixtures{
		service:   svc,
		shopRepo:  shopRepo,
		store:     store,
		analyzer:  analyzer,
		converter: converter,
	}
}

func TestUploadService_Upload(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()
	data := []byte("%PDF-1.4 fake")
	shop := newShop(newOwner())

	fx.analyzer.EXPECT().Analyze(ctx, "thesis.PDF", data).Return(service.DocumentInfo{PageCount: 12, Type: service.DocumentPDF})

	out, err := fx.service.Upload(ctx, &usecase.UploadInput{
		FileName:    "thesis.PDF",
		ContentType: "application/pdf",
		Data:        data,
		ShopID:      shop.ID.String(),
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.StorageKey, shop.ID.String()+"/temp/"))
	assert.True(t, strings.HasSuffix(out.StorageKey, ".pdf"))
	assert.True(t, storagekey.IsTemp(out.StorageKey))
	assert.Equal(t, 12, out.PageCount)
	assert.Equal(t, service.DocumentPDF, out.FileType)
	assert.Len(t, out.FileHash, 64)
	assert.Equal(t, "mem://"+out.StorageKey, out.Location)

	stored, err := fx.store.Get(ctx, out.StorageKey)
	require.NoError(t, err)
	assert.Equal(t, data, stored)
}

func TestUploadService_Upload_Validation(t *testing.T) {
	fx := createTestUploadService(t)

	_, err := fx.service.Upload(context.Background(), &usecase.UploadInput{FileName: "a.pdf"})
	assert.ErrorIs(t, err, domainerrors.ErrNoFileUploaded)

	_, err = fx.service.Upload(context.Background(), &usecase.UploadInput{FileName: "a.pdf", Data: []byte("x"), ShopID: "../etc"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUploadService_Upload_StoreFailure(t *testing.T) {
	store := mockSvc.NewMockObjectStore(t)
	svc := NewUploadService(UploadServiceParams{
		ShopRepo:  mockRepo.NewMockShopRepository(t),
		Store:     store,
		Analyzer:  mockSvc.NewMockDocumentAnalyzer(t),
		Converter: mockSvc.NewMockDocumentConverter(t),
		Logger:    newDiscardLogger(),
	})

	store.EXPECT().Put(mock.Anything, mock.Anything, mock.Anything, "application/octet-stream").
		Return(&service.StorageError{Op: service.StorageOpPut, Err: errors.New("bucket gone")})

	_, err := svc.Upload(context.Background(), &usecase.UploadInput{FileName: "a.docx", Data: []byte("x")})

	assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
}

func TestUploadService_PreviewPDF(t *testing.T) {
	owner := newOwner()
	shop := newShop(owner)
	folder := storagekey.ShopFolder(shop.Name, shop.ID)

	tests := []struct {
		name        string
		key         string
		convert     bool
		wantType    string
		wantData    string
		wantErr     error
		skipStoring bool
	}{
		{name: "pdf passthrough", key: folder + "/Cara_1/a.pdf", wantType: "application/pdf", wantData: "pdf-bytes"},
		{name: "image passthrough", key: shop.ID.String() + "/temp/b.jpg", wantType: "image/jpeg", wantData: "pdf-bytes"},
		{name: "office converted", key: "temp/c.docx", convert: true, wantType: "application/pdf", wantData: "converted"},
		{name: "other shop rejected", key: "Other_Shop_x/Cara_1/a.pdf", wantErr: domainerrors.ErrForbidden},
		{name: "missing file", key: folder + "/Cara_1/gone.pdf", wantErr: domainerrors.ErrFileNotFound, skipStoring: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUploadService(t)
			ctx := context.Background()

			fx.shopRepo.EXPECT().FindByOwner(ctx, owner.ID).Return(shop, nil)
			if !tt.skipStoring {
				require.NoError(t, fx.store.Put(ctx, tt.key, []byte("pdf-bytes"), ""))
			}
			if tt.convert {
				fx.converter.EXPECT().ConvertToPDF(ctx, tt.key, []byte("pdf-bytes")).Return([]byte("converted"), nil)
			}

			out, err := fx.service.PreviewPDF(ctx, owner, tt.key)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, out.ContentType)
			assert.Equal(t, tt.wantData, string(out.Data))
		})
	}
}

func TestUploadService_PreviewPDF_ConversionFailure(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()
	owner := newOwner()
	fx.shopRepo.EXPECT().FindByOwner(ctx, owner.ID).Return(newShop(owner), nil)
	require.NoError(t, fx.store.Put(ctx, "temp/deck.pptx", []byte("pptx"), ""))
	fx.converter.EXPECT().ConvertToPDF(ctx, "temp/deck.pptx", []byte("pptx")).Return(nil, errors.New("soffice crashed"))

	_, err := fx.service.PreviewPDF(ctx, owner, "temp/deck.pptx")

	assert.ErrorIs(t, err, domainerrors.ErrPreviewFailed)
}

func TestUploadService_PreviewPDF_CustomerForbidden(t *testing.T) {
	fx := createTestUploadService(t)

	_, err := fx.service.PreviewPDF(context.Background(), &entity.User{Role: entity.RoleUser}, "temp/a.pdf")

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

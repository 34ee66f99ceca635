package usecase

import (
	"context"

	"printshop/internal/domain/entity"
)

// UploadInput is one file received from a customer.
type UploadInput struct {
	FileName    string
	ContentType string
	Data        []byte
	// ShopID scopes the temp key under a shop when set.
	ShopID string
}

// UploadOutput describes the stored temp object and its analysis.
type UploadOutput struct {
	OriginalName string `json:"originalName"`
	StorageKey   string `json:"storageKey"`
	FileHash     string `json:"fileHash"`
	Location     string `json:"location"`
	PageCount    int    `json:"pageCount"`
	FileType     string `json:"fileType"`
}

// PreviewOutput is a printable rendition of a stored file.
type PreviewOutput struct {
	ContentType string
	Data        []byte
}

// UploadUsecase defines the temp-upload phase of the file lifecycle.
type UploadUsecase interface {
	Upload(ctx context.Context, input *UploadInput) (*UploadOutput, error)
	// PreviewPDF returns a PDF (or image) for a key in the actor's shop namespace,
	// converting office documents on the fly.
	PreviewPDF(ctx context.Context, actor *entity.User, storageKey string) (*PreviewOutput, error)
}

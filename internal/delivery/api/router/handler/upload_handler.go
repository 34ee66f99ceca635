package handler

import (
	"io"
	"log/slog"
	"net/http"

	"printshop/config"
	"printshop/internal/delivery/api/middleware"
	"printshop/internal/delivery/api/response"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const formFile = "file"

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// UploadHandler receives customer files and renders previews for staff.
type UploadHandler struct {
	uploadUC    usecase.UploadUsecase
	maxFileSize int64
	logger      *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler. The size limit is
// parsed from upload.maxFileSize ("50M").
func NewUploadHandler(params UploadHandlerParams) (*UploadHandler, error) {
	limit, err := bytes.Parse(params.Config.Upload.MaxFileSize)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid upload.maxFileSize %q", params.Config.Upload.MaxFileSize)
	}

	return &UploadHandler{
		uploadUC:    params.UploadUC,
		maxFileSize: limit,
		logger:      params.Logger,
	}, nil
}

// UploadResponse is the analysed temp object plus a human message.
type UploadResponse struct {
	Message string `json:"message"`
	*usecase.UploadOutput
}

// PreviewRequest names the stored object to render.
type PreviewRequest struct {
	StorageKey string `json:"storageKey" validate:"required"`
}

// Upload stores a multipart "file" under a temp key and analyses it.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile(formFile)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrNoFileUploaded)
	}

	if fileHeader.Size > h.maxFileSize {
		return response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE",
			"File exceeds the "+bytes.Format(h.maxFileSize)+" limit", nil)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrUploadFailed)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, h.maxFileSize+1))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrUploadFailed)
	}

	out, err := h.uploadUC.Upload(c.Request().Context(), &usecase.UploadInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Data:        data,
		ShopID:      c.FormValue("shopId"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, UploadResponse{
		Message:      "File uploaded successfully",
		UploadOutput: out,
	})
}

// PreviewPDF streams a printable rendition of a file in the caller's shop.
func (h *UploadHandler) PreviewPDF(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	var req PreviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.uploadUC.PreviewPDF(c.Request().Context(), user, req.StorageKey)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, out.ContentType, out.Data)
}

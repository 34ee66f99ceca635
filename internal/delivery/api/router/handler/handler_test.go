package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"printshop/config"
	"printshop/internal/delivery/api/response"
	"printshop/internal/delivery/api/validator"
	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	mockUC "printshop/internal/mocks/usecase"
	"printshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth:   &config.AuthConfig{CookieName: "jwt", TokenTTL: 720 * time.Hour},
		Upload: &config.UploadConfig{MaxFileSize: "1KB"},
	}
}

// newContext builds an echo context with the production validator; a non-nil
// user is stored the way AuthMiddleware does.
func newContext(method, target string, body any, user *entity.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set("user", user)
	}

	return c, rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func TestAuthHandler_LoginSetsSessionCookie(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Config: newTestConfig()})

	user := &entity.User{ID: uuid.New(), Name: "Cara", Email: "cara@example.com", Role: entity.RoleUser}
	authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "cara@example.com", Password: "pw"}).
		Return(&usecase.AuthOutput{User: user, Token: "signed"}, nil)

	c, rec := newContext(http.MethodPost, "/api/auth/login", LoginRequest{Email: "cara@example.com", Password: "pw"}, nil)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var out AuthResponse
	decodeData(t, rec, &out)
	assert.Equal(t, "signed", out.Token)
	assert.Equal(t, user.ID, out.User.ID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "jwt", cookies[0].Name)
	assert.Equal(t, "signed", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
	assert.Equal(t, int((720 * time.Hour).Seconds()), cookies[0].MaxAge)
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	h := NewAuthHandler(AuthHandlerParams{AuthUC: mockUC.NewMockAuthUsecase(t), Config: newTestConfig()})

	c, rec := newContext(http.MethodPost, "/api/auth/register-user", RegisterRequest{Email: "not-an-email"}, nil)
	require.NoError(t, h.RegisterUser(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), decodeErrorCode(t, rec))
}

func TestAuthHandler_RegisterDuplicate(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Config: newTestConfig()})

	authUC.EXPECT().RegisterShopOwner(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

	c, rec := newContext(http.MethodPost, "/api/auth/register-shop",
		RegisterRequest{Name: "Olu", Email: "olu@example.com", Password: "pw"}, nil)
	require.NoError(t, h.RegisterShopOwner(c))

	assert.Equal(t, domainerrors.ErrUserAlreadyExists.HTTPCode(), rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_LogoutExpiresCookie(t *testing.T) {
	h := NewAuthHandler(AuthHandlerParams{AuthUC: mockUC.NewMockAuthUsecase(t), Config: newTestConfig()})

	c, rec := newContext(http.MethodPost, "/api/auth/logout", nil, nil)
	require.NoError(t, h.Logout(c))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestShopHandler_ListShopsNearby(t *testing.T) {
	shopUC := mockUC.NewMockShopUsecase(t)
	h := NewShopHandler(ShopHandlerParams{ShopUC: shopUC, Logger: newDiscardLogger()})

	shopUC.EXPECT().ListShops(mock.Anything, &usecase.ListShopsInput{Near: &orb.Point{77.6, 12.9}, RadiusKm: 5}).
		Return([]*usecase.ShopListing{{Shop: &entity.Shop{Name: "Copy Corner"}}}, nil)

	c, rec := newContext(http.MethodGet, "/api/shops?lat=12.9&lng=77.6&radiusKm=5", nil, nil)
	require.NoError(t, h.ListShops(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestShopHandler_ListShopsRejectsHalfPoint(t *testing.T) {
	h := NewShopHandler(ShopHandlerParams{ShopUC: mockUC.NewMockShopUsecase(t), Logger: newDiscardLogger()})

	c, rec := newContext(http.MethodGet, "/api/shops?lat=12.9", nil, nil)
	require.NoError(t, h.ListShops(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShopHandler_QRCodePNG(t *testing.T) {
	shopUC := mockUC.NewMockShopUsecase(t)
	h := NewShopHandler(ShopHandlerParams{ShopUC: shopUC, Logger: newDiscardLogger()})

	shopID := uuid.New()
	shopUC.EXPECT().QRCode(mock.Anything, shopID).
		Return(&usecase.ShopQRCode{ShopID: shopID, Payload: "SHOP:" + shopID.String(), PNG: []byte("\x89PNG")}, nil)

	c, rec := newContext(http.MethodGet, "/api/shops/"+shopID.String()+"/qr.png", nil, nil)
	c.SetParamNames("id")
	c.SetParamValues(shopID.String())
	require.NoError(t, h.QRCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "SHOP:"+shopID.String(), rec.Header().Get("X-QR-Payload"))
}

func TestShopHandler_SetStatusEmptyBodyToggles(t *testing.T) {
	shopUC := mockUC.NewMockShopUsecase(t)
	h := NewShopHandler(ShopHandlerParams{ShopUC: shopUC, Logger: newDiscardLogger()})

	owner := &entity.User{ID: uuid.New(), Role: entity.RoleOwner}
	shopUC.EXPECT().SetStatus(mock.Anything, owner, &usecase.SetShopStatusInput{}).
		Return(&entity.Shop{Status: entity.ShopStatusClosed}, nil)

	c, rec := newContext(http.MethodPut, "/api/shops/status", nil, owner)
	require.NoError(t, h.SetStatus(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrderHandler_UpdateStatusOfAnotherShopIsForbidden(t *testing.T) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()})

	employee := &entity.User{ID: uuid.New(), Role: entity.RoleEmployee}
	orderID := uuid.New()
	orderUC.EXPECT().UpdateStatus(mock.Anything, employee, orderID, entity.OrderStatusReady).
		Return(nil, domainerrors.ErrOrderShopMismatch)

	c, rec := newContext(http.MethodPut, "/api/orders/"+orderID.String()+"/status",
		UpdateStatusRequest{Status: entity.OrderStatusReady}, employee)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())
	require.NoError(t, h.UpdateStatus(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, domainerrors.ErrOrderShopMismatch.ErrorCode(), decodeErrorCode(t, rec))
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()})

	customer := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	shopID := uuid.New()
	cfg := entity.PrintConfig{Color: entity.ColorModeColor, Side: entity.SideDouble, Copies: 2}

	orderUC.EXPECT().CreateOrder(mock.Anything, customer, &usecase.CreateOrderInput{
		ShopID: shopID,
		Items: []usecase.OrderItemInput{{
			StorageKey:   "temp/a.pdf",
			OriginalName: "a.pdf",
			PageCount:    3,
			Config:       cfg,
		}},
	}).Return(entity.NewOrder(shopID, customer.ID), nil)

	c, rec := newContext(http.MethodPost, "/api/orders", CreateOrderRequest{
		ShopID: shopID,
		Items: []OrderItemRequest{{
			StorageKey:   "temp/a.pdf",
			OriginalName: "a.pdf",
			PageCount:    3,
			Config:       PrintConfigRequest{Color: entity.ColorModeColor, Side: entity.SideDouble, Copies: 2},
		}},
	}, customer)
	require.NoError(t, h.CreateOrder(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestOrderHandler_CreateOrderRejectsBadPrintConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  PrintConfigRequest
	}{
		{name: "negative copies", cfg: PrintConfigRequest{Copies: -5}},
		{name: "missing copies", cfg: PrintConfigRequest{}},
		{name: "unknown color", cfg: PrintConfigRequest{Copies: 1, Color: "rainbow"}},
		{name: "unknown side", cfg: PrintConfigRequest{Copies: 1, Side: "triple"}},
		{name: "unknown paper size", cfg: PrintConfigRequest{Copies: 1, PaperSize: "A5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewOrderHandler(OrderHandlerParams{OrderUC: mockUC.NewMockOrderUsecase(t), Logger: newDiscardLogger()})

			c, rec := newContext(http.MethodPost, "/api/orders", CreateOrderRequest{
				ShopID: uuid.New(),
				Items:  []OrderItemRequest{{StorageKey: "temp/a.pdf", OriginalName: "a.pdf", PageCount: 3, Config: tt.cfg}},
			}, &entity.User{ID: uuid.New(), Role: entity.RoleUser})
			require.NoError(t, h.CreateOrder(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), decodeErrorCode(t, rec))
		})
	}
}

func TestOrderHandler_HistoryRejectsBadDate(t *testing.T) {
	h := NewOrderHandler(OrderHandlerParams{OrderUC: mockUC.NewMockOrderUsecase(t), Logger: newDiscardLogger()})

	c, rec := newContext(http.MethodGet, "/api/orders/history?startDate=yesterday", nil, &entity.User{Role: entity.RoleOwner})
	require.NoError(t, h.ShopHistory(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_HistoryParsesDates(t *testing.T) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()})

	owner := &entity.User{ID: uuid.New(), Role: entity.RoleOwner}
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	orderUC.EXPECT().ShopHistory(mock.Anything, owner, &usecase.ShopHistoryInput{StartDate: &start, EndDate: &end, Search: "cara"}).
		Return([]*entity.Order{}, nil)

	c, rec := newContext(http.MethodGet, "/api/orders/history?startDate=2026-03-01&endDate=2026-03-31&search=cara", nil, owner)
	require.NoError(t, h.ShopHistory(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func newMultipartContext(t *testing.T, name string, content []byte, fields map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUploadHandler_Upload(t *testing.T) {
	uploadUC := mockUC.NewMockUploadUsecase(t)
	h, err := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Config: newTestConfig(), Logger: newDiscardLogger()})
	require.NoError(t, err)

	shopID := uuid.New().String()
	uploadUC.EXPECT().Upload(mock.Anything, mock.MatchedBy(func(in *usecase.UploadInput) bool {
		return in.FileName == "notes.pdf" && string(in.Data) == "%PDF" && in.ShopID == shopID
	})).Return(&usecase.UploadOutput{OriginalName: "notes.pdf", StorageKey: shopID + "/temp/x.pdf", PageCount: 1, FileType: "pdf"}, nil)

	c, rec := newMultipartContext(t, "notes.pdf", []byte("%PDF"), map[string]string{"shopId": shopID})
	require.NoError(t, h.Upload(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var out map[string]any
	decodeData(t, rec, &out)
	assert.Equal(t, "File uploaded successfully", out["message"])
	assert.Equal(t, shopID+"/temp/x.pdf", out["storageKey"])
}

func TestUploadHandler_UploadTooLarge(t *testing.T) {
	h, err := NewUploadHandler(UploadHandlerParams{UploadUC: mockUC.NewMockUploadUsecase(t), Config: newTestConfig(), Logger: newDiscardLogger()})
	require.NoError(t, err)

	c, rec := newMultipartContext(t, "big.pdf", bytes.Repeat([]byte("x"), 2048), nil)
	require.NoError(t, h.Upload(c))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestUploadHandler_UploadWithoutFile(t *testing.T) {
	h, err := NewUploadHandler(UploadHandlerParams{UploadUC: mockUC.NewMockUploadUsecase(t), Config: newTestConfig(), Logger: newDiscardLogger()})
	require.NoError(t, err)

	c, rec := newContext(http.MethodPost, "/api/upload", map[string]string{}, nil)
	require.NoError(t, h.Upload(c))

	assert.Equal(t, domainerrors.ErrNoFileUploaded.HTTPCode(), rec.Code)
}

func TestNewUploadHandler_RejectsBadLimit(t *testing.T) {
	cfg := newTestConfig()
	cfg.Upload.MaxFileSize = "lots"

	_, err := NewUploadHandler(UploadHandlerParams{UploadUC: mockUC.NewMockUploadUsecase(t), Config: cfg, Logger: newDiscardLogger()})

	assert.Error(t, err)
}

func TestUploadHandler_PreviewStreamsBytes(t *testing.T) {
	uploadUC := mockUC.NewMockUploadUsecase(t)
	h, err := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Config: newTestConfig(), Logger: newDiscardLogger()})
	require.NoError(t, err)

	owner := &entity.User{ID: uuid.New(), Role: entity.RoleOwner}
	uploadUC.EXPECT().PreviewPDF(mock.Anything, owner, "temp/deck.pptx").
		Return(&usecase.PreviewOutput{ContentType: "application/pdf", Data: []byte("%PDF-1.7")}, nil)

	c, rec := newContext(http.MethodPost, "/api/upload/preview-pdf", PreviewRequest{StorageKey: "temp/deck.pptx"}, owner)
	require.NoError(t, h.PreviewPDF(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "%PDF-1.7", rec.Body.String())
}

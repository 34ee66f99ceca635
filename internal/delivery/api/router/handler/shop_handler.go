package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"printshop/internal/delivery/api/middleware"
	"printshop/internal/delivery/api/response"
	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	Logger *slog.Logger
}

// ShopHandler holds dependencies for shop-related handlers
type ShopHandler struct {
	shopUC usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC: params.ShopUC,
		logger: params.Logger,
	}
}

// LocationRequest is a WGS84 point.
type LocationRequest struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

func (l *LocationRequest) point() *orb.Point {
	if l == nil {
		return nil
	}

	return &orb.Point{l.Lng, l.Lat}
}

// CreateShopRequest represents the request body for creating a shop
type CreateShopRequest struct {
	Name     string           `json:"name" validate:"required"`
	Address  string           `json:"address" validate:"required"`
	Location *LocationRequest `json:"location"`
	Image    string           `json:"image"`
}

// UpdateShopRequest changes general shop details; omitted fields are kept.
type UpdateShopRequest struct {
	Name     *string          `json:"name"`
	Address  *string          `json:"address"`
	Location *LocationRequest `json:"location"`
	Image    *string          `json:"image"`
}

// SetStatusRequest sets an explicit status, or toggles when empty.
type SetStatusRequest struct {
	Status *entity.ShopStatus `json:"status"`
}

// AddEmployeeRequest represents the request body for adding an employee
type AddEmployeeRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ListShops returns every shop that is not CLOSED, optionally near a point.
func (h *ShopHandler) ListShops(c echo.Context) error {
	input, err := listShopsInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shops, err := h.shopUC.ListShops(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shops)
}

func listShopsInput(c echo.Context) (*usecase.ListShopsInput, error) {
	lat, lng := c.QueryParam("lat"), c.QueryParam("lng")
	if lat == "" && lng == "" {
		return &usecase.ListShopsInput{}, nil
	}

	latF, errLat := strconv.ParseFloat(lat, 64)
	lngF, errLng := strconv.ParseFloat(lng, 64)
	if errLat != nil || errLng != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("lat and lng must both be numbers")
	}

	input := &usecase.ListShopsInput{Near: &orb.Point{lngF, latF}}
	if radius := c.QueryParam("radiusKm"); radius != "" {
		r, err := strconv.ParseFloat(radius, 64)
		if err != nil || r < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("radiusKm must be a positive number")
		}
		input.RadiusKm = r
	}

	return input, nil
}

// GetShop returns a shop by id; used by the scan-to-order page.
func (h *ShopHandler) GetShop(c echo.Context) error {
	shopID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shop, err := h.shopUC.GetShop(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// QRCode renders the scan-to-order QR code of a shop as PNG.
func (h *ShopHandler) QRCode(c echo.Context) error {
	shopID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	qr, err := h.shopUC.QRCode(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("X-QR-Payload", qr.Payload)

	return c.Blob(http.StatusOK, "image/png", qr.PNG)
}

// CreateShop handles shop creation by its owner
func (h *ShopHandler) CreateShop(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	var req CreateShopRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	shop, err := h.shopUC.CreateShop(c.Request().Context(), user, &usecase.CreateShopInput{
		Name:     req.Name,
		Address:  req.Address,
		Location: req.Location.point(),
		Image:    req.Image,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, shop)
}

// GetMyShop returns the shop the caller owns or works for
func (h *ShopHandler) GetMyShop(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	shop, err := h.shopUC.GetMyShop(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// UpdateShop handles general shop detail changes
func (h *ShopHandler) UpdateShop(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	shopID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateShopRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	shop, err := h.shopUC.UpdateShop(c.Request().Context(), user, shopID, &usecase.UpdateShopInput{
		Name:     req.Name,
		Address:  req.Address,
		Location: req.Location.point(),
		Image:    req.Image,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// SetStatus toggles OPEN/CLOSED or applies the requested status
func (h *ShopHandler) SetStatus(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	var req SetStatusRequest
	// An empty body toggles.
	if c.Request().ContentLength != 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	shop, err := h.shopUC.SetStatus(c.Request().Context(), user, &usecase.SetShopStatusInput{Status: req.Status})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// UpdatePricing replaces the shop's pricing table
func (h *ShopHandler) UpdatePricing(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	var pricing entity.PricingTable
	if err := c.Bind(&pricing); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidPricing.WithDetails("Invalid pricing body"))
	}

	shop, err := h.shopUC.UpdatePricing(c.Request().Context(), user, pricing)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// AddEmployee creates an employee account for the owner's shop
func (h *ShopHandler) AddEmployee(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	var req AddEmployeeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	employee, err := h.shopUC.AddEmployee(c.Request().Context(), user, &usecase.AddEmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, employee)
}

// ListEmployees returns the employees of the owner's shop
func (h *ShopHandler) ListEmployees(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	employees, err := h.shopUC.ListEmployees(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, employees)
}

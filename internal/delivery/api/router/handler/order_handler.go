package handler

import (
	"log/slog"
	"net/http"

	"printshop/internal/delivery/api/middleware"
	"printshop/internal/delivery/api/response"
	"printshop/internal/domain/entity"
	"printshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// PrintConfigRequest is the customer's print options; empty options take defaults.
type PrintConfigRequest struct {
	Color       entity.ColorMode   `json:"color" validate:"omitempty,oneof=bw color"`
	Side        entity.Sidedness   `json:"side" validate:"omitempty,oneof=single double"`
	Copies      int                `json:"copies" validate:"gte=1"`
	PaperType   string             `json:"paperType"`
	PageRange   string             `json:"pageRange"`
	Orientation entity.Orientation `json:"orientation" validate:"omitempty,oneof=portrait landscape"`
	PaperSize   entity.PaperSize   `json:"paperSize" validate:"omitempty,oneof=A4 A3 A2 A1"`
}

func (r PrintConfigRequest) toEntity() entity.PrintConfig {
	return entity.PrintConfig{
		Color:       r.Color,
		Side:        r.Side,
		Copies:      r.Copies,
		PaperType:   r.PaperType,
		PageRange:   r.PageRange,
		Orientation: r.Orientation,
		PaperSize:   r.PaperSize,
	}
}

// OrderItemRequest is one uploaded file with its print configuration.
type OrderItemRequest struct {
	StorageKey   string             `json:"storageKey" validate:"required"`
	OriginalName string             `json:"originalName" validate:"required"`
	FileHash     string             `json:"fileHash"`
	FileType     string             `json:"fileType"`
	PageCount    int                `json:"pageCount" validate:"gte=0"`
	Config       PrintConfigRequest `json:"config"`
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	ShopID uuid.UUID          `json:"shopId" validate:"required"`
	Items  []OrderItemRequest `json:"items" validate:"dive"`
}

// CheckoutRequest opens a payment for an order
type CheckoutRequest struct {
	OrderID uuid.UUID `json:"orderId" validate:"required"`
}

// VerifyPaymentRequest confirms a payment
type VerifyPaymentRequest struct {
	OrderID   uuid.UUID `json:"orderId" validate:"required"`
	PaymentID string    `json:"paymentId"`
}

// UpdateStatusRequest carries the staff-chosen status
type UpdateStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// CreateOrder handles order placement
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			StorageKey:   item.StorageKey,
			OriginalName: item.OriginalName,
			FileHash:     item.FileHash,
			FileType:     item.FileType,
			PageCount:    item.PageCount,
			Config:       item.Config.toEntity(),
		})
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), user, &usecase.CreateOrderInput{
		ShopID: req.ShopID,
		Items:  items,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// Checkout opens a mock payment for an order
func (h *OrderHandler) Checkout(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	var req CheckoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.orderUC.Checkout(c.Request().Context(), user, req.OrderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// VerifyPayment marks an order paid and hands it to the shop
func (h *OrderHandler) VerifyPayment(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	var req VerifyPaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.VerifyPayment(c.Request().Context(), user, &usecase.VerifyPaymentInput{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ShopOrders lists the paid orders of the caller's shop
func (h *OrderHandler) ShopOrders(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	orders, err := h.orderUC.ShopOrders(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// ShopHistory filters the caller's shop orders by date range and search text
func (h *OrderHandler) ShopHistory(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	start, err := queryDate(c, "startDate")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	end, err := queryDate(c, "endDate")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.ShopHistory(c.Request().Context(), user, &usecase.ShopHistoryInput{
		StartDate: start,
		EndDate:   end,
		Search:    c.QueryParam("search"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// MyOrders lists the caller's own orders
func (h *OrderHandler) MyOrders(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	orders, err := h.orderUC.MyOrders(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder returns one order to its customer or the shop's staff
func (h *OrderHandler) GetOrder(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), user, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdateStatus applies a staff-chosen status
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), user, orderID, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// Cancel cancels a queued order
func (h *OrderHandler) Cancel(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.Cancel(c.Request().Context(), user, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

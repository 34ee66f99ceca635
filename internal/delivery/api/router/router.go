// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"printshop/config"
	"printshop/internal/delivery/api/middleware"
	"printshop/internal/delivery/api/router/handler"
	"printshop/internal/domain/entity"
	"printshop/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ShopHandler     *handler.ShopHandler
	UploadHandler   *handler.UploadHandler
	OrderHandler    *handler.OrderHandler
	RealtimeHandler *handler.RealtimeHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Registry
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	shopHandler     *handler.ShopHandler
	uploadHandler   *handler.UploadHandler
	orderHandler    *handler.OrderHandler
	realtimeHandler *handler.RealtimeHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Registry
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		shopHandler:     params.ShopHandler,
		uploadHandler:   params.UploadHandler,
		orderHandler:    params.OrderHandler,
		realtimeHandler: params.RealtimeHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	staff := r.authMiddleware.RequireRole(entity.RoleOwner, entity.RoleEmployee)
	owner := r.authMiddleware.RequireRole(entity.RoleOwner)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register-user", r.authHandler.RegisterUser)
		authGroup.POST("/register-shop", r.authHandler.RegisterShopOwner)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/google", r.authHandler.GoogleLogin)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	shopsGroup := api.Group("/shops")
	{
		// Public
		shopsGroup.GET("", r.shopHandler.ListShops)
		shopsGroup.GET("/qr/:id", r.shopHandler.GetShop)
		shopsGroup.GET("/:id/qr.png", r.shopHandler.QRCode)

		protected := shopsGroup.Group("", r.authMiddleware.Authenticate)
		protected.POST("", r.shopHandler.CreateShop, owner)
		protected.GET("/my-shop", r.shopHandler.GetMyShop, staff)
		protected.PUT("/status", r.shopHandler.SetStatus, staff)
		protected.PUT("/pricing", r.shopHandler.UpdatePricing, owner)
		protected.POST("/employees", r.shopHandler.AddEmployee, owner)
		protected.GET("/employees", r.shopHandler.ListEmployees, owner)
		protected.PUT("/:id", r.shopHandler.UpdateShop, owner)
	}

	uploadGroup := api.Group("/upload", r.authMiddleware.Authenticate)
	{
		uploadGroup.POST("", r.uploadHandler.Upload)
		uploadGroup.POST("/preview-pdf", r.uploadHandler.PreviewPDF, staff)
	}

	ordersGroup := api.Group("/orders", r.authMiddleware.Authenticate)
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.POST("/checkout", r.orderHandler.Checkout)
		ordersGroup.POST("/verify", r.orderHandler.VerifyPayment)
		ordersGroup.GET("/shop", r.orderHandler.ShopOrders, staff)
		ordersGroup.GET("/history", r.orderHandler.ShopHistory, staff)
		ordersGroup.GET("/my", r.orderHandler.MyOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.PUT("/:id/status", r.orderHandler.UpdateStatus, staff)
		ordersGroup.PUT("/:id/cancel", r.orderHandler.Cancel)
	}

	api.GET("/ws", r.realtimeHandler.Connect, r.authMiddleware.AuthenticateQuery)
}

// RegisterMetricsRoute exposes Prometheus metrics when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}

package handler

import (
	"log/slog"
	"net/http"
	"slices"

	"printshop/config"
	"printshop/internal/delivery/api/middleware"
	"printshop/internal/delivery/api/response"
	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/entity"
	"printshop/internal/domain/service"
	"printshop/internal/infra/realtime"
	"printshop/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RealtimeHandlerParams holds dependencies for RealtimeHandler, injected by Fx.
type RealtimeHandlerParams struct {
	fx.In

	Hub    *realtime.Hub
	ShopUC usecase.ShopUsecase
	Config *config.Config
	Logger *slog.Logger
}

// RealtimeHandler upgrades authenticated requests to WebSocket room subscriptions.
type RealtimeHandler struct {
	hub      *realtime.Hub
	shopUC   usecase.ShopUsecase
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewRealtimeHandler is the constructor for RealtimeHandler
func NewRealtimeHandler(params RealtimeHandlerParams) *RealtimeHandler {
	origins := params.Config.HTTP.AllowedOrigins

	return &RealtimeHandler{
		hub:    params.Hub,
		shopUC: params.ShopUC,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")

				return origin == "" || len(origins) == 0 || slices.Contains(origins, "*") || slices.Contains(origins, origin)
			},
		},
		logger: params.Logger,
	}
}

// Connect serves one WebSocket connection until the client leaves.
func (h *RealtimeHandler) Connect(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHORIZED", "Not authorized")
	}

	ctx := c.Request().Context()
	authorize := h.authorizer(c, user)

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		h.logger.Debug("WebSocket upgrade failed", slog.Any("error", err))

		return nil
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger).With(slog.String("user_id", user.ID.String()))
	h.hub.Serve(ctx, conn, authorize, logger)

	return nil
}

// authorizer admits the user's own room and, for staff, their shop's room.
func (h *RealtimeHandler) authorizer(c echo.Context, user *entity.User) realtime.Authorizer {
	allowed := map[service.Room]struct{}{service.UserRoom(user.ID): {}}

	if user.IsStaff() {
		shop, err := h.shopUC.GetMyShop(c.Request().Context(), user)
		if err != nil {
			h.logger.Warn("Staff without a resolvable shop", slog.String("user_id", user.ID.String()), slog.Any("error", err))
		} else {
			allowed[service.ShopRoom(shop.ID)] = struct{}{}
		}
	}

	return func(room service.Room) bool {
		_, ok := allowed[room]

		return ok
	}
}

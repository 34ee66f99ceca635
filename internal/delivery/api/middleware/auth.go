package middleware

import (
	"strings"

	"printshop/config"
	"printshop/internal/delivery/api/response"
	"printshop/internal/domain/entity"
	"printshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	contextKeyUser = "user"
	bearerPrefix   = "Bearer "
	// queryToken lets browsers authenticate the WebSocket upgrade, which cannot carry headers.
	queryToken = "token"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
}

// AuthMiddleware resolves the session token to a user and enforces roles.
type AuthMiddleware struct {
	authUC     usecase.AuthUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authUC:     params.AuthUC,
		cookieName: params.Config.Auth.CookieName,
	}
}

// Authenticate accepts a Bearer token and falls back to the session cookie.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(next, false)
}

// AuthenticateQuery additionally accepts ?token=, for the WebSocket endpoint only.
func (m *AuthMiddleware) AuthenticateQuery(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(next, true)
}

func (m *AuthMiddleware) authenticate(next echo.HandlerFunc, allowQuery bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.extractToken(c, allowQuery)
		if token == "" {
			return response.Unauthorized(c, "NOT_AUTHORIZED", "Not authorized, no token")
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(contextKeyUser, user)

		return next(c)
	}
}

func (m *AuthMiddleware) extractToken(c echo.Context, allowQuery bool) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}

	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	if allowQuery {
		return c.QueryParam(queryToken)
	}

	return ""
}

// RequireRole is a middleware factory that admits users holding any of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := GetUser(c)
			if !ok {
				return response.Unauthorized(c, "NOT_AUTHORIZED", "Not authorized")
			}

			if !allowed.Contains(user.Role) {
				return response.Forbidden(c, "FORBIDDEN", "User role "+user.Role.String()+" is not authorized to access this route")
			}

			return next(c)
		}
	}
}

// GetUser returns the user set by Authenticate.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(contextKeyUser).(*entity.User)

	return user, ok && user != nil
}

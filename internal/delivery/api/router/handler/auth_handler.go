package handler

import (
	"net/http"
	"time"

	"printshop/config"
	"printshop/internal/delivery/api/middleware"
	"printshop/internal/delivery/api/response"
	"printshop/internal/domain/entity"
	"printshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
}

// AuthHandler serves registration, login and session endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	cfg    *config.AuthConfig
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		cfg:    params.Config.Auth,
	}
}

// RegisterRequest is shared by customer and shop-owner registration.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents the request body for a password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest carries the Google Sign-In credential
type GoogleLoginRequest struct {
	Credential string `json:"credential" validate:"required"`
}

// AuthResponse is returned by every endpoint that opens a session.
type AuthResponse struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

// RegisterUser handles customer registration
func (h *AuthHandler) RegisterUser(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.openSession(c, http.StatusCreated, out)
}

// RegisterShopOwner handles shop owner registration; the shop is created afterwards.
func (h *AuthHandler) RegisterShopOwner(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.RegisterShopOwner(c.Request().Context(), &usecase.RegisterShopOwnerInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.openSession(c, http.StatusCreated, out)
}

// Login handles password login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.openSession(c, http.StatusOK, out)
}

// GoogleLogin handles Google Sign-In
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req GoogleLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.GoogleLogin(c.Request().Context(), &usecase.GoogleLoginInput{Credential: req.Credential})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.openSession(c, http.StatusOK, out)
}

// Logout clears the session cookie. Tokens are stateless and simply expire.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.cookie("", -1))

	return response.Success(c, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me returns the authenticated user
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHORIZED", "Not authorized")
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *AuthHandler) openSession(c echo.Context, status int, out *usecase.AuthOutput) error {
	c.SetCookie(h.cookie(out.Token, int(h.cfg.TokenTTL/time.Second)))

	return response.Success(c, status, AuthResponse{User: out.User, Token: out.Token})
}

func (h *AuthHandler) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	}
}

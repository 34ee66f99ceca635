package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"printshop/config"
	"printshop/internal/delivery/api/response"
	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	mockUC "printshop/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockUC.MockAuthUsecase) {
	authUC := mockUC.NewMockAuthUsecase(t)
	cfg := &config.Config{Auth: &config.AuthConfig{CookieName: "jwt"}}

	return NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC, Config: cfg}), authUC
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return *body.Error
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}

	tests := []struct {
		name       string
		prepare    func(req *http.Request)
		query      bool
		token      string
		authErr    error
		wantStatus int
	}{
		{
			name:       "bearer header",
			prepare:    func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Bearer tok-1") },
			token:      "tok-1",
			wantStatus: http.StatusOK,
		},
		{
			name:       "cookie fallback",
			prepare:    func(req *http.Request) { req.AddCookie(&http.Cookie{Name: "jwt", Value: "tok-2"}) },
			token:      "tok-2",
			wantStatus: http.StatusOK,
		},
		{
			name:       "query token only for websocket",
			prepare:    func(req *http.Request) { req.URL.RawQuery = "token=tok-3" },
			query:      true,
			token:      "tok-3",
			wantStatus: http.StatusOK,
		},
		{
			name:       "query token ignored elsewhere",
			prepare:    func(req *http.Request) { req.URL.RawQuery = "token=tok-3" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			prepare:    func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Bearer bad") },
			token:      "bad",
			authErr:    domainerrors.ErrTokenInvalid,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, authUC := newTestAuthMiddleware(t)
			if tt.token != "" {
				if tt.authErr != nil {
					authUC.EXPECT().Authenticate(mock.Anything, tt.token).Return(nil, tt.authErr)
				} else {
					authUC.EXPECT().Authenticate(mock.Anything, tt.token).Return(user, nil)
				}
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			next := func(c echo.Context) error {
				got, ok := GetUser(c)
				require.True(t, ok)
				assert.Equal(t, user.ID, got.ID)

				return c.NoContent(http.StatusOK)
			}

			handler := m.Authenticate(next)
			if tt.query {
				handler = m.AuthenticateQuery(next)
			}

			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)
	e := echo.New()

	run := func(user *entity.User) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/shops/my-shop", nil), rec)
		if user != nil {
			c.Set(contextKeyUser, user)
		}
		_ = m.RequireRole(entity.RoleOwner, entity.RoleEmployee)(func(c echo.Context) error {
			return c.NoContent(http.StatusNoContent)
		})(c)

		return rec
	}

	assert.Equal(t, http.StatusNoContent, run(&entity.User{Role: entity.RoleEmployee}).Code)
	assert.Equal(t, http.StatusUnauthorized, run(nil).Code)

	rec := run(&entity.User{Role: entity.RoleUser})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decodeError(t, rec).Code)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "app error keeps client details",
			err:         errors.Wrap(domainerrors.ErrInvalidPricing.WithDetails("bw.single must not be negative"), "update pricing"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_PRICING",
			wantDetails: "bw.single must not be negative",
		},
		{
			name:       "forbidden hides details",
			err:        domainerrors.ErrOrderShopMismatch.WithDetails("order belongs elsewhere"),
			wantStatus: http.StatusForbidden,
			wantCode:   domainerrors.ErrOrderShopMismatch.ErrorCode(),
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPut, "/api/shops/pricing", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			info := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.Equal(t, tt.wantDetails, info.Details)
		})
	}
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"printshop/config"
	"printshop/internal/domain/constants"
	"printshop/internal/domain/service"
	"printshop/internal/infra/pubsub"
	mockSvc "printshop/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, provider, env string) (*PushHandler, *mockSvc.MockConversionJobHandler) {
	jobHandler := mockSvc.NewMockConversionJobHandler(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
	cfg.Env.Env = env

	return NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		JobHandler: jobHandler,
	}), jobHandler
}

func pushRequest(t *testing.T, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(raw))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	job := service.ConversionJob{RequestID: "req-9", OrderID: uuid.New()}

	tests := []struct {
		name       string
		handlerErr error
		wantStatus int
	}{
		{name: "acknowledged", wantStatus: http.StatusOK},
		{name: "redelivered on failure", handlerErr: errors.New("db down"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, jobHandler := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)
			jobHandler.EXPECT().HandleConversionJob(mock.Anything, job).Return(tt.handlerErr)

			msg, err := pubsub.NewPushMessage(job, "local")
			require.NoError(t, err)

			c, rec := pushRequest(t, msg)
			require.NoError(t, h.HandlePush(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_GeneratesRequestIDWhenMissing(t *testing.T) {
	h, jobHandler := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

	orderID := uuid.New()
	jobHandler.EXPECT().HandleConversionJob(mock.Anything, mock.MatchedBy(func(job service.ConversionJob) bool {
		return job.OrderID == orderID && job.RequestID != ""
	})).Return(nil)

	msg, err := pubsub.NewPushMessage(service.ConversionJob{OrderID: orderID}, "local")
	require.NoError(t, err)

	c, rec := pushRequest(t, msg)
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RejectsGarbage(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

	msg := &pubsub.PushMessage{}
	msg.Message.Data = "%%%"

	c, rec := pushRequest(t, msg)
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	h, jobHandler := newTestPushHandler(t, constants.PubSubProviderGoogle, constants.EnvProduction)
	require.True(t, h.verifyPushAuth)

	h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		if token != "good" {
			return nil, errors.New("bad signature")
		}
		assert.Equal(t, "http://example.com/push", audience)

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	job := service.ConversionJob{OrderID: uuid.New()}
	msg, err := pubsub.NewPushMessage(job, "projects/p/subscriptions/s")
	require.NoError(t, err)

	c, rec := pushRequest(t, msg)
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer forged")
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	jobHandler.EXPECT().HandleConversionJob(mock.Anything, mock.Anything).Return(nil)
	c, rec = pushRequest(t, msg)
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer good")
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"printshop/config"
	"printshop/internal/domain/constants"
	"printshop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type handlerFunc func(ctx context.Context, job service.ConversionJob) error

func (f handlerFunc) HandleConversionJob(ctx context.Context, job service.ConversionJob) error {
	return f(ctx, job)
}

func TestInProcessQueue_RunsJobs(t *testing.T) {
	var mu sync.Mutex
	var seen []uuid.UUID

	handler := handlerFunc(func(_ context.Context, job service.ConversionJob) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, job.OrderID)

		return nil
	})

	q := NewInProcessQueue(handler, 2, 8, time.Second, newDiscardLogger())

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		require.NoError(t, q.Enqueue(context.Background(), service.ConversionJob{OrderID: id}))
	}
	require.NoError(t, q.Close())

	assert.ElementsMatch(t, ids, seen)
}

func TestInProcessQueue_FullAndClosed(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	handler := handlerFunc(func(context.Context, service.ConversionJob) error {
		started <- struct{}{}
		<-release

		return nil
	})

	q := NewInProcessQueue(handler, 1, 1, 0, newDiscardLogger())

	require.NoError(t, q.Enqueue(context.Background(), service.ConversionJob{OrderID: uuid.New()}))
	<-started
	require.NoError(t, q.Enqueue(context.Background(), service.ConversionJob{OrderID: uuid.New()}))

	err := q.Enqueue(context.Background(), service.ConversionJob{OrderID: uuid.New()})
	assert.ErrorIs(t, err, ErrQueueFull)

	close(release)
	require.NoError(t, q.Close())

	err = q.Enqueue(context.Background(), service.ConversionJob{OrderID: uuid.New()})
	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestInProcessQueue_HandlerPanicDoesNotKillWorker(t *testing.T) {
	var calls int
	var mu sync.Mutex
	handler := handlerFunc(func(context.Context, service.ConversionJob) error {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			panic("boom")
		}

		return nil
	})

	q := NewInProcessQueue(handler, 1, 4, 0, newDiscardLogger())
	require.NoError(t, q.Enqueue(context.Background(), service.ConversionJob{OrderID: uuid.New()}))
	require.NoError(t, q.Enqueue(context.Background(), service.ConversionJob{OrderID: uuid.New()}))
	require.NoError(t, q.Close())

	assert.Equal(t, 2, calls)
}

func TestLocalHTTPQueue_Enqueue(t *testing.T) {
	orderID := uuid.New()

	var got PushMessage
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	q := NewLocalHTTPQueue(srv.URL, newDiscardLogger())
	err := q.Enqueue(context.Background(), service.ConversionJob{RequestID: "req-1", OrderID: orderID})
	require.NoError(t, err)

	assert.Equal(t, "req-1", gotHeader)
	assert.Equal(t, constants.EventTypeConvertOrder, got.Message.Attributes[constants.AttrEventType])
	assert.Equal(t, "req-1", got.Message.Attributes[constants.AttrRequestID])

	job, err := got.DecodeJob()
	require.NoError(t, err)
	assert.Equal(t, orderID, job.OrderID)
}

func TestLocalHTTPQueue_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	q := NewLocalHTTPQueue(srv.URL, newDiscardLogger())
	err := q.Enqueue(context.Background(), service.ConversionJob{OrderID: uuid.New()})

	assert.ErrorContains(t, err, "503")
}

func TestPushMessage_DecodeJobRejectsGarbage(t *testing.T) {
	msg := &PushMessage{}
	msg.Message.Data = "not base64!"

	_, err := msg.DecodeJob()
	assert.Error(t, err)
}

func TestNewConversionQueue_Validation(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		handler service.ConversionJobHandler
		wantErr string
	}{
		{
			name:    "inprocess without handler",
			pubsub:  nil,
			wantErr: "conversion job handler is required",
		},
		{
			name:    "local without endpoint",
			pubsub:  &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			wantErr: "local endpoint is required",
		},
		{
			name:    "google without project",
			pubsub:  &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"},
			wantErr: "project ID is required",
		},
		{
			name:    "unknown provider",
			pubsub:  &config.PubSubConfig{Provider: "kafka"},
			wantErr: "unknown pubsub provider: kafka",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: tt.pubsub}
			cfg.ApplyDefaults()

			_, err := NewConversionQueue(QueueParams{
				Lc:      fxtest.NewLifecycle(t),
				Ctx:     context.Background(),
				Config:  cfg,
				Logger:  newDiscardLogger(),
				Handler: tt.handler,
			})

			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewConversionQueue_InProcessClosesOnStop(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	lc := fxtest.NewLifecycle(t)
	q, err := NewConversionQueue(QueueParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: cfg,
		Logger: newDiscardLogger(),
		Handler: handlerFunc(func(context.Context, service.ConversionJob) error {
			return nil
		}),
	})
	require.NoError(t, err)

	lc.RequireStart()
	lc.RequireStop()

	assert.ErrorIs(t, q.Enqueue(context.Background(), service.ConversionJob{}), ErrQueueClosed)
}

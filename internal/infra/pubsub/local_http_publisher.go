package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localHTTPQueue implements ConversionQueue by POSTing push envelopes straight
// to the converter worker, simulating a Pub/Sub push subscription in development.
type localHTTPQueue struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage is the envelope Google Pub/Sub sends to push endpoints
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps a job into a push envelope
func NewPushMessage(job service.ConversionJob, subscription string) (*PushMessage, error) {
	data, err := json.Marshal(job)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = jobAttributes(job)
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg, nil
}

// DecodeJob extracts the conversion job carried by a push envelope
func (m *PushMessage) DecodeJob() (service.ConversionJob, error) {
	var job service.ConversionJob

	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return job, errors.Wrap(err, "decode message data")
	}
	if err := json.Unmarshal(data, &job); err != nil {
		return job, errors.Wrap(err, "parse conversion job")
	}

	return job, nil
}

// NewLocalHTTPQueue creates a new local HTTP queue for development
func NewLocalHTTPQueue(endpoint string, logger *slog.Logger) service.ConversionQueue {
	return &localHTTPQueue{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Enqueue sends the push envelope to the worker endpoint
func (q *localHTTPQueue) Enqueue(ctx context.Context, job service.ConversionJob) error {
	pushMsg, err := NewPushMessage(job, "projects/local/subscriptions/conversion-sub")
	if err != nil {
		return err
	}

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, q.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if job.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, job.RequestID)
	}

	resp, err := q.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	q.logger.Info("[LocalPubSub] Conversion job delivered",
		slog.String("endpoint", q.endpoint),
		slog.String("order_id", job.OrderID.String()),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (q *localHTTPQueue) Close() error {
	return nil
}

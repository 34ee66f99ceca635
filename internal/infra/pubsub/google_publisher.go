package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"printshop/internal/domain/constants"
	"printshop/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googleConversionQueue implements ConversionQueue using Google Cloud Pub/Sub.
// The converter worker receives jobs through a push subscription.
type googleConversionQueue struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGoogleConversionQueue creates a queue publishing to an existing topic
func NewGoogleConversionQueue(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.ConversionQueue, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	return &googleConversionQueue{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// Enqueue publishes the job and waits for the server acknowledgement
func (q *googleConversionQueue) Enqueue(ctx context.Context, job service.ConversionJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return errors.WithStack(err)
	}

	result := q.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: jobAttributes(job),
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	q.logger.Info("[GooglePubSub] Conversion job published",
		slog.String("order_id", job.OrderID.String()),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases client resources
func (q *googleConversionQueue) Close() error {
	if q.publisher != nil {
		q.publisher.Stop()
	}
	if q.client != nil {
		return errors.WithStack(q.client.Close())
	}

	return nil
}

func jobAttributes(job service.ConversionJob) map[string]string {
	attributes := map[string]string{
		constants.AttrEventType: constants.EventTypeConvertOrder,
		"order_id":              job.OrderID.String(),
	}
	if job.RequestID != "" {
		attributes[constants.AttrRequestID] = job.RequestID
	}

	return attributes
}

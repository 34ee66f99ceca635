package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"printshop/internal/domain/entity"
	"printshop/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// maxDataPayload keeps the serialized order under the FCM 4KB data limit.
const maxDataPayload = 3072

type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// firebaseNotifier mirrors room events onto FCM topics so mobile clients
// subscribed to "shop-<id>" or "user-<id>" get pushes while the socket is closed.
type firebaseNotifier struct {
	client messagingClient
	logger *slog.Logger
}

// NewFirebaseNotifier creates a Firebase topic notifier
func NewFirebaseNotifier(ctx context.Context, projectID, credentialsPath string, logger *slog.Logger) (service.Notifier, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var fbConfig *firebase.Config
	if projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseNotifier{client: client, logger: logger}, nil
}

// Publish sends one topic message per event
func (n *firebaseNotifier) Publish(ctx context.Context, events ...service.Event) error {
	var errs []error
	for _, event := range events {
		msg := buildMessage(event)
		if _, err := n.client.Send(ctx, msg); err != nil {
			errs = append(errs, fmt.Errorf("failed to send %s to topic %s: %w", event.Name, msg.Topic, err))
		}
	}

	return errors.WithStack(joinErrors(errs))
}

// topicForRoom maps "shop:<id>" to "shop-<id>"; FCM topics cannot contain ':'.
func topicForRoom(room service.Room) string {
	return strings.ReplaceAll(string(room), ":", "-")
}

func buildMessage(event service.Event) *messaging.Message {
	data := map[string]string{
		"event": string(event.Name),
		"room":  string(event.Room),
	}

	title, body := "Order update", "Your order has been updated"
	if order, ok := event.Payload.(*entity.Order); ok && order != nil {
		data["order_id"] = order.ID.String()
		data["order_status"] = string(order.Status)
		data["pickup_code"] = order.PickupCode
		title, body = describe(event.Name, order)
	} else if raw, err := json.Marshal(event.Payload); err == nil && len(raw) <= maxDataPayload {
		data["payload"] = string(raw)
	}

	return &messaging.Message{
		Topic: topicForRoom(event.Room),
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
}

func describe(name service.EventName, order *entity.Order) (title, body string) {
	switch name {
	case service.EventNewOrder:
		return "New order", fmt.Sprintf("Order with pickup code %s is in the queue", order.PickupCode)
	case service.EventOrderStatusUpdated:
		if order.Status == entity.OrderStatusReady {
			return "Ready for pickup", fmt.Sprintf("Show pickup code %s at the counter", order.PickupCode)
		}

		return "Order update", fmt.Sprintf("Your order is now %s", strings.ToLower(string(order.Status)))
	default:
		return "Order update", fmt.Sprintf("Order %s was updated", order.PickupCode)
	}
}

package service

import (
	"context"

	"github.com/google/uuid"
)

// EventName is a real-time event pushed to clients.
type EventName string

const (
	EventNewOrder           EventName = "new_order"
	EventOrderStatusUpdated EventName = "order_status_updated"
	EventOrderUpdated       EventName = "order_updated"
)

// Room addresses a set of subscribers.
type Room string

// ShopRoom is joined by a shop's staff.
func ShopRoom(shopID uuid.UUID) Room {
	return Room("shop:" + shopID.String())
}

// UserRoom is joined by a single customer.
func UserRoom(userID uuid.UUID) Room {
	return Room("user:" + userID.String())
}

// Event is one message for one room. Payload is JSON-encodable.
type Event struct {
	Name    EventName `json:"event"`
	Room    Room      `json:"room"`
	Payload any       `json:"data"`
}

// Notifier publishes events. Delivery is at-most-once; callers log and ignore errors.
type Notifier interface {
	Publish(ctx context.Context, events ...Event) error
}

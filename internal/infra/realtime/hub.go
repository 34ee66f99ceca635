// Package realtime fans order events out to WebSocket clients grouped in rooms.
package realtime

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"sync"

	"printshop/internal/domain/service"

	"github.com/pkg/errors"
)

// wireMessage is the frame pushed to browsers.
type wireMessage struct {
	Event service.EventName `json:"event"`
	Data  any               `json:"data"`
}

// Hub tracks room membership for the connections of this process.
type Hub struct {
	mu    sync.RWMutex
	rooms map[service.Room]map[*Client]struct{}

	metrics service.Metrics
	logger  *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(metrics service.Metrics, logger *slog.Logger) *Hub {
	if metrics == nil {
		metrics = service.NopMetrics{}
	}

	return &Hub{
		rooms:   make(map[service.Room]map[*Client]struct{}),
		metrics: metrics,
		logger:  logger,
	}
}

// Publish delivers events to the local members of each event's room. Slow
// clients whose buffers are full miss the event.
func (h *Hub) Publish(_ context.Context, events ...service.Event) error {
	var errs []error

	for _, event := range events {
		frame, err := json.Marshal(wireMessage{Event: event.Name, Data: event.Payload})
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "encode %s", event.Name))

			continue
		}

		h.mu.RLock()
		for client := range h.rooms[event.Room] {
			if !client.enqueue(frame) {
				h.logger.Warn("Dropping event for slow client",
					slog.String("event", string(event.Name)),
					slog.String("room", string(event.Room)),
				)
			}
		}
		h.mu.RUnlock()
	}

	return errors.WithStack(stderrors.Join(errs...))
}

// RoomSize returns the number of local members of room.
func (h *Hub) RoomSize(room service.Room) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[room])
}

func (h *Hub) join(c *Client, room service.Room) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[room] = members
	}
	members[c] = struct{}{}
	c.rooms[room] = struct{}{}
}

func (h *Hub) leave(c *Client, room service.Room) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.leaveLocked(c, room)
}

func (h *Hub) leaveLocked(c *Client, room service.Room) {
	delete(c.rooms, room)
	members := h.rooms[room]
	delete(members, c)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}

func (h *Hub) register() {
	h.metrics.WebSocketConnections(1)
}

// unregister removes c from every room. Safe to call once per client.
func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	for room := range c.rooms {
		h.leaveLocked(c, room)
	}
	h.mu.Unlock()

	h.metrics.WebSocketConnections(-1)
}

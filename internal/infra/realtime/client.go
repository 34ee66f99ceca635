package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"printshop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	sendBuffer     = 64
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 4096
)

// Client commands.
const (
	CommandJoinShop = "join_shop"
	CommandJoinUser = "join_user"
	CommandLeave    = "leave"
)

// Server replies to commands.
const (
	replyJoined = "joined"
	replyError  = "error"
)

// Authorizer decides whether the connection's user may join room.
type Authorizer func(room service.Room) bool

type clientMessage struct {
	Event string `json:"event"`
	Data  string `json:"data"`
}

// Client is one WebSocket connection.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	rooms     map[service.Room]struct{} // guarded by hub.mu
	authorize Authorizer
	logger    *slog.Logger

	done      chan struct{}
	closeOnce sync.Once
}

// Serve runs the connection until the peer disconnects or ctx ends.
func (h *Hub) Serve(ctx context.Context, conn *websocket.Conn, authorize Authorizer, logger *slog.Logger) {
	c := &Client{
		hub:       h,
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
		rooms:     make(map[service.Room]struct{}),
		authorize: authorize,
		logger:    logger,
		done:      make(chan struct{}),
	}

	h.register()
	defer h.unregister(c)

	go c.writePump()
	go func() {
		select {
		case <-ctx.Done():
			c.close()
		case <-c.done:
		}
	}()

	c.readPump()
	c.close()
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// enqueue reports false when the buffer is full and the frame was dropped.
func (c *Client) enqueue(frame []byte) bool {
	select {
	case <-c.done:
		return true
	default:
	}

	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

func (c *Client) readPump() {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg clientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("WebSocket closed unexpectedly", slog.Any("error", err))
			}

			return
		}
		c.handle(msg)
	}
}

func (c *Client) handle(msg clientMessage) {
	id, err := uuid.Parse(msg.Data)
	if err != nil {
		c.reply(replyError, "invalid id")

		return
	}

	switch msg.Event {
	case CommandJoinShop:
		c.joinIfAllowed(service.ShopRoom(id))
	case CommandJoinUser:
		c.joinIfAllowed(service.UserRoom(id))
	case CommandLeave:
		c.hub.leave(c, service.ShopRoom(id))
		c.hub.leave(c, service.UserRoom(id))
	default:
		c.reply(replyError, "unknown event")
	}
}

func (c *Client) joinIfAllowed(room service.Room) {
	if c.authorize != nil && !c.authorize(room) {
		c.logger.Warn("WebSocket join rejected", slog.String("room", string(room)))
		c.reply(replyError, "forbidden")

		return
	}

	c.hub.join(c, room)
	c.reply(replyJoined, string(room))
}

func (c *Client) reply(event, data string) {
	frame, err := json.Marshal(wireMessage{Event: service.EventName(event), Data: data})
	if err != nil {
		return
	}
	c.enqueue(frame)
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case frame := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				c.close()

				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()

				return
			}
		}
	}
}

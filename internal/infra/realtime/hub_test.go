package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"printshop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func startHubServer(t *testing.T, hub *Hub, authorize Authorizer) string {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Serve(context.Background(), conn, authorize, newDiscardLogger())
	}))
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) frame {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var f frame
	require.NoError(t, conn.ReadJSON(&f))

	return f
}

func TestHub_JoinAndReceive(t *testing.T) {
	hub := NewHub(nil, newDiscardLogger())
	url := startHubServer(t, hub, nil)
	conn := dial(t, url)

	shopID := uuid.New()
	require.NoError(t, conn.WriteJSON(clientMessage{Event: CommandJoinShop, Data: shopID.String()}))

	joined := readFrame(t, conn)
	assert.Equal(t, replyJoined, joined.Event)
	assert.Equal(t, 1, hub.RoomSize(service.ShopRoom(shopID)))

	err := hub.Publish(context.Background(), service.Event{
		Name:    service.EventNewOrder,
		Room:    service.ShopRoom(shopID),
		Payload: map[string]string{"pickupCode": "4821"},
	}, service.Event{
		Name:    service.EventOrderUpdated,
		Room:    service.UserRoom(uuid.New()),
		Payload: "not for this client",
	})
	require.NoError(t, err)

	got := readFrame(t, conn)
	assert.Equal(t, string(service.EventNewOrder), got.Event)
	assert.JSONEq(t, `{"pickupCode":"4821"}`, string(got.Data))
}

func TestHub_JoinRejectedByAuthorizer(t *testing.T) {
	hub := NewHub(nil, newDiscardLogger())
	userID := uuid.New()
	url := startHubServer(t, hub, func(room service.Room) bool {
		return room == service.UserRoom(userID)
	})
	conn := dial(t, url)

	require.NoError(t, conn.WriteJSON(clientMessage{Event: CommandJoinShop, Data: uuid.NewString()}))
	rejected := readFrame(t, conn)
	assert.Equal(t, replyError, rejected.Event)
	assert.JSONEq(t, `"forbidden"`, string(rejected.Data))

	require.NoError(t, conn.WriteJSON(clientMessage{Event: CommandJoinUser, Data: userID.String()}))
	joined := readFrame(t, conn)
	assert.Equal(t, replyJoined, joined.Event)
	assert.Equal(t, 1, hub.RoomSize(service.UserRoom(userID)))
}

func TestHub_LeaveAndDisconnect(t *testing.T) {
	hub := NewHub(nil, newDiscardLogger())
	url := startHubServer(t, hub, nil)
	conn := dial(t, url)

	userID := uuid.New()
	require.NoError(t, conn.WriteJSON(clientMessage{Event: CommandJoinUser, Data: userID.String()}))
	readFrame(t, conn)

	require.NoError(t, conn.WriteJSON(clientMessage{Event: CommandLeave, Data: userID.String()}))
	assert.Eventually(t, func() bool {
		return hub.RoomSize(service.UserRoom(userID)) == 0
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteJSON(clientMessage{Event: CommandJoinUser, Data: userID.String()}))
	readFrame(t, conn)
	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool {
		return hub.RoomSize(service.UserRoom(userID)) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHub_InvalidCommand(t *testing.T) {
	hub := NewHub(nil, newDiscardLogger())
	conn := dial(t, startHubServer(t, hub, nil))

	require.NoError(t, conn.WriteJSON(clientMessage{Event: CommandJoinShop, Data: "abc"}))
	assert.Equal(t, replyError, readFrame(t, conn).Event)

	require.NoError(t, conn.WriteJSON(clientMessage{Event: "subscribe", Data: uuid.NewString()}))
	assert.Equal(t, replyError, readFrame(t, conn).Event)
}

func TestClient_EnqueueDropsWhenFull(t *testing.T) {
	c := &Client{send: make(chan []byte, 1), done: make(chan struct{})}

	assert.True(t, c.enqueue([]byte("a")))
	assert.False(t, c.enqueue([]byte("b")))
}

type fakePublisher struct {
	channel  string
	messages [][]byte
	err      error
}

func (f *fakePublisher) Publish(_ context.Context, channel string, message any) *redis.IntCmd {
	f.channel = channel
	f.messages = append(f.messages, message.([]byte))

	return redis.NewIntResult(1, f.err)
}

func TestRedisRelay_PublishAndDeliver(t *testing.T) {
	hub := NewHub(nil, newDiscardLogger())
	conn := dial(t, startHubServer(t, hub, nil))

	shopID := uuid.New()
	require.NoError(t, conn.WriteJSON(clientMessage{Event: CommandJoinShop, Data: shopID.String()}))
	readFrame(t, conn)

	pub := &fakePublisher{}
	relay := &RedisRelay{client: pub, channel: "printshop:events", hub: hub, logger: newDiscardLogger()}

	err := relay.Publish(context.Background(), service.Event{
		Name:    service.EventOrderStatusUpdated,
		Room:    service.ShopRoom(shopID),
		Payload: map[string]string{"orderStatus": "READY"},
	})
	require.NoError(t, err)
	require.Len(t, pub.messages, 1)
	assert.Equal(t, "printshop:events", pub.channel)

	// Loop the published message back as if it came from the subscription.
	relay.deliver(context.Background(), string(pub.messages[0]))

	got := readFrame(t, conn)
	assert.Equal(t, string(service.EventOrderStatusUpdated), got.Event)
	assert.JSONEq(t, `{"orderStatus":"READY"}`, string(got.Data))
}

func TestRedisRelay_PublishError(t *testing.T) {
	relay := &RedisRelay{
		client:  &fakePublisher{err: redis.ErrClosed},
		channel: "c",
		hub:     NewHub(nil, newDiscardLogger()),
		logger:  newDiscardLogger(),
	}

	err := relay.Publish(context.Background(), service.Event{Name: service.EventNewOrder, Room: "shop:x"})
	assert.ErrorIs(t, err, redis.ErrClosed)
}

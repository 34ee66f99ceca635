package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"printshop/internal/domain/entity"
	"printshop/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingNotifier struct {
	events []service.Event
	err    error
}

func (r *recordingNotifier) Publish(_ context.Context, events ...service.Event) error {
	r.events = append(r.events, events...)

	return r.err
}

type countingMetrics struct {
	service.NopMetrics
	ok, failed int
}

func (m *countingMetrics) EventPublished(_ service.EventName, ok bool) {
	if ok {
		m.ok++
	} else {
		m.failed++
	}
}

func TestFanout_PublishesToEveryChannel(t *testing.T) {
	failing := &recordingNotifier{err: errors.New("socket down")}
	healthy := &recordingNotifier{}
	metrics := &countingMetrics{}

	n := NewFanout(newDiscardLogger(), metrics, failing, healthy)

	events := []service.Event{
		{Name: service.EventOrderStatusUpdated, Room: service.UserRoom(uuid.New())},
		{Name: service.EventOrderUpdated, Room: service.UserRoom(uuid.New())},
	}
	err := n.Publish(context.Background(), events...)

	assert.ErrorContains(t, err, "socket down")
	assert.Equal(t, events, failing.events)
	assert.Equal(t, events, healthy.events)
	assert.Equal(t, 2, metrics.failed)
	assert.Equal(t, 0, metrics.ok)
}

func TestFanout_Success(t *testing.T) {
	metrics := &countingMetrics{}
	n := NewFanout(newDiscardLogger(), metrics, &recordingNotifier{})

	require.NoError(t, n.Publish(context.Background(), service.Event{Name: service.EventNewOrder}))
	assert.Equal(t, 1, metrics.ok)
}

type fakeMessaging struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeMessaging) Send(_ context.Context, m *messaging.Message) (string, error) {
	f.sent = append(f.sent, m)

	return "projects/p/messages/1", f.err
}

func TestFirebaseNotifier_Publish(t *testing.T) {
	client := &fakeMessaging{}
	n := &firebaseNotifier{client: client, logger: newDiscardLogger()}

	shopID := uuid.New()
	order := &entity.Order{ID: uuid.New(), ShopID: shopID, Status: entity.OrderStatusReady, PickupCode: "4821"}

	err := n.Publish(context.Background(),
		service.Event{Name: service.EventOrderStatusUpdated, Room: service.UserRoom(order.UserID), Payload: order},
		service.Event{Name: service.EventNewOrder, Room: service.ShopRoom(shopID), Payload: map[string]int{"n": 1}},
	)
	require.NoError(t, err)
	require.Len(t, client.sent, 2)

	ready := client.sent[0]
	assert.Equal(t, "user-"+order.UserID.String(), ready.Topic)
	assert.Equal(t, "Ready for pickup", ready.Notification.Title)
	assert.Equal(t, "4821", ready.Data["pickup_code"])
	assert.Equal(t, "READY", ready.Data["order_status"])

	generic := client.sent[1]
	assert.Equal(t, "shop-"+shopID.String(), generic.Topic)
	assert.JSONEq(t, `{"n":1}`, generic.Data["payload"])
}

func TestFirebaseNotifier_SendError(t *testing.T) {
	n := &firebaseNotifier{client: &fakeMessaging{err: errors.New("quota")}, logger: newDiscardLogger()}

	err := n.Publish(context.Background(), service.Event{Name: service.EventNewOrder, Room: "shop:1"})

	assert.ErrorContains(t, err, "topic shop-1")
}

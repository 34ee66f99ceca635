package realtime

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"sync"

	"printshop/config"
	"printshop/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// relayEnvelope is an event as it travels between instances.
type relayEnvelope struct {
	Name    service.EventName `json:"event"`
	Room    service.Room      `json:"room"`
	Payload json.RawMessage   `json:"data"`
}

type redisPublisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisRelay publishes events on a Redis channel and delivers everything
// received on that channel to the local hub, so every API instance reaches
// its own sockets.
type RedisRelay struct {
	client  redisPublisher
	channel string
	hub     *Hub
	logger  *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRedisRelay connects to Redis. Call Start to begin relaying.
func NewRedisRelay(cfg *config.RedisConfig, hub *Hub, logger *slog.Logger) *RedisRelay {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisRelay{
		client:  client,
		channel: cfg.Channel,
		hub:     hub,
		logger:  logger,
	}
}

// Publish implements service.Notifier.
func (r *RedisRelay) Publish(ctx context.Context, events ...service.Event) error {
	var errs []error

	for _, event := range events {
		payload, err := json.Marshal(event.Payload)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "encode %s", event.Name))

			continue
		}
		msg, err := json.Marshal(relayEnvelope{Name: event.Name, Room: event.Room, Payload: payload})
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "encode %s", event.Name))

			continue
		}
		if err := r.client.Publish(ctx, r.channel, msg).Err(); err != nil {
			errs = append(errs, errors.Wrapf(err, "redis publish %s", event.Name))
		}
	}

	return errors.WithStack(stderrors.Join(errs...))
}

// Start subscribes to the channel in the background.
func (r *RedisRelay) Start(ctx context.Context) error {
	client, ok := r.client.(*redis.Client)
	if !ok {
		return errors.New("redis relay has no subscribable client")
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, "redis ping")
	}

	sub := client.Subscribe(ctx, r.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()

		return errors.Wrap(err, "redis subscribe")
	}

	runCtx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer sub.Close()

		ch := sub.Channel()
		for {
			select {
			case <-runCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				r.deliver(runCtx, msg.Payload)
			}
		}
	}()

	r.logger.Info("Redis event relay started", slog.String("channel", r.channel))

	return nil
}

// Stop ends the subscription and closes the client.
func (r *RedisRelay) Stop(context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()

	if client, ok := r.client.(*redis.Client); ok {
		return errors.WithStack(client.Close())
	}

	return nil
}

func (r *RedisRelay) deliver(ctx context.Context, payload string) {
	var env relayEnvelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		r.logger.Warn("Dropping malformed relay message", slog.Any("error", err))

		return
	}

	event := service.Event{Name: env.Name, Room: env.Room, Payload: env.Payload}
	if err := r.hub.Publish(ctx, event); err != nil {
		r.logger.Warn("Relay delivery failed", slog.Any("error", err))
	}
}

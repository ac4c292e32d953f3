package adapter

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// RedisBroadcaster is the live [Broadcaster]: every context subscribes to the
// same pub/sub channel.
type RedisBroadcaster struct {
	client  *redis.Client
	channel string
	logger  *logger.Logger

	mu     sync.Mutex
	subs   map[int]*redis.PubSub
	nextID int
	closed bool
}

// NewRedisBroadcaster connects to cfg.RedisURL (e.g. "redis://localhost:6379/0")
// and verifies the connection with PING.
func NewRedisBroadcaster(ctx context.Context, cfg config.ClientBroadcast, logger *logger.Logger) (*RedisBroadcaster, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewRedisBroadcasterWithClient(client, cfg.Channel, logger), nil
}

// NewRedisBroadcasterWithClient wraps an existing client. Close closes it.
func NewRedisBroadcasterWithClient(client *redis.Client, channel string, logger *logger.Logger) *RedisBroadcaster {
	return &RedisBroadcaster{
		client:  client,
		channel: channel,
		logger:  logger.WithComponent("redis-broadcast"),
		subs:    make(map[int]*redis.PubSub),
	}
}

func (b *RedisBroadcaster) Publish(ctx context.Context, msg models.SyncMessage) error {
	data, err := encodeMessage(msg)
	if err != nil {
		return err
	}

	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return ErrBroadcasterClosed
	}

	if err = b.client.Publish(ctx, b.channel, data).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Subscribe implements [Broadcaster]. It returns once the server has
// confirmed the subscription, so messages published afterwards are not
// missed.
func (b *RedisBroadcaster) Subscribe(ctx context.Context, handler func(models.SyncMessage)) (func(), error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrBroadcasterClosed
	}
	b.mu.Unlock()

	ps := b.client.Subscribe(ctx, b.channel)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("redis subscribe: %w", err)
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ps
	b.mu.Unlock()

	ch := ps.Channel()
	go func() {
		for m := range ch {
			msg, err := decodeMessage([]byte(m.Payload))
			if err != nil {
				b.logger.Warn().Err(err).Str("func", "RedisBroadcaster.Subscribe").Msg("dropping malformed message")
				continue
			}
			handler(msg)
		}
	}()

	return sync.OnceFunc(func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
		if err := ps.Close(); err != nil {
			b.logger.Debug().Err(err).Str("func", "RedisBroadcaster.unsubscribe").Msg("error closing subscription")
		}
	}), nil
}

func (b *RedisBroadcaster) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	subs := b.subs
	b.subs = make(map[int]*redis.PubSub)
	b.mu.Unlock()

	for _, ps := range subs {
		_ = ps.Close()
	}
	return b.client.Close()
}

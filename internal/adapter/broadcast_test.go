package adapter

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type collector struct {
	mu   sync.Mutex
	msgs []models.SyncMessage
}

func (c *collector) handle(msg models.SyncMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
}

func (c *collector) snapshot() []models.SyncMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.SyncMessage(nil), c.msgs...)
}

func tokenMessage(origin string, version int64) models.SyncMessage {
	payload, _ := json.Marshal(models.TokenState{AccessToken: "a", Version: version})
	return models.SyncMessage{
		Type:      models.MessageTokenUpdate,
		OriginID:  origin,
		Timestamp: time.Now().UnixMilli(),
		Payload:   payload,
	}
}

func newTestKV(t *testing.T) store.KVRepository {
	t.Helper()
	s, err := store.NewClientStorages(config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "kv.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s.KV
}

func TestMemoryHub_DeliversInOrderToAllSubscribers(t *testing.T) {
	hub := NewMemoryHub()
	defer hub.Close()
	ctx := context.Background()

	var a, b collector
	unsubA, err := hub.Subscribe(ctx, a.handle)
	require.NoError(t, err)
	_, err = hub.Subscribe(ctx, b.handle)
	require.NoError(t, err)

	for v := int64(1); v <= 5; v++ {
		require.NoError(t, hub.Publish(ctx, tokenMessage("origin", v)))
	}

	require.Eventually(t, func() bool { return len(a.snapshot()) == 5 && len(b.snapshot()) == 5 }, time.Second, 5*time.Millisecond)
	for i, msg := range a.snapshot() {
		got, ok := msg.TokenPayload()
		require.True(t, ok)
		assert.Equal(t, int64(i+1), got.Version)
	}

	unsubA()
	unsubA()
	require.NoError(t, hub.Publish(ctx, tokenMessage("origin", 6)))
	require.Eventually(t, func() bool { return len(b.snapshot()) == 6 }, time.Second, 5*time.Millisecond)
	assert.Len(t, a.snapshot(), 5)
}

func TestMemoryHub_HandlerMayPublish(t *testing.T) {
	hub := NewMemoryHub()
	defer hub.Close()
	ctx := context.Background()

	var got collector
	_, err := hub.Subscribe(ctx, func(msg models.SyncMessage) {
		got.handle(msg)
		if msg.Type == models.MessageSyncRequest {
			_ = hub.Publish(ctx, tokenMessage("responder", 1))
		}
	})
	require.NoError(t, err)

	require.NoError(t, hub.Publish(ctx, models.SyncMessage{Type: models.MessageSyncRequest, OriginID: "new"}))
	require.Eventually(t, func() bool { return len(got.snapshot()) == 2 }, time.Second, 5*time.Millisecond)
}

func TestMemoryHub_RejectsInvalidAndClosed(t *testing.T) {
	hub := NewMemoryHub()
	ctx := context.Background()

	assert.ErrorIs(t, hub.Publish(ctx, models.SyncMessage{Type: "bogus"}), ErrInvalidMessage)

	require.NoError(t, hub.Close())
	require.NoError(t, hub.Close())
	assert.ErrorIs(t, hub.Publish(ctx, tokenMessage("o", 1)), ErrBroadcasterClosed)
	_, err := hub.Subscribe(ctx, func(models.SyncMessage) {})
	assert.ErrorIs(t, err, ErrBroadcasterClosed)
}

func TestRedisBroadcaster_PublishSubscribe(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	first, err := NewRedisBroadcaster(ctx, config.ClientBroadcast{RedisURL: "redis://" + mr.Addr(), Channel: "tabs"}, logger.Nop())
	require.NoError(t, err)
	defer first.Close()
	second := NewRedisBroadcasterWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "tabs", logger.Nop())
	defer second.Close()

	var got collector
	unsubscribe, err := second.Subscribe(ctx, got.handle)
	require.NoError(t, err)

	require.NoError(t, first.Publish(ctx, tokenMessage("first", 7)))

	require.Eventually(t, func() bool { return len(got.snapshot()) == 1 }, 2*time.Second, 10*time.Millisecond)
	msg := got.snapshot()[0]
	assert.Equal(t, models.MessageTokenUpdate, msg.Type)
	assert.Equal(t, "first", msg.OriginID)
	state, ok := msg.TokenPayload()
	require.True(t, ok)
	assert.Equal(t, int64(7), state.Version)

	unsubscribe()
	assert.ErrorIs(t, first.Publish(ctx, models.SyncMessage{Type: "bogus"}), ErrInvalidMessage)
}

func TestRedisBroadcaster_DropsMalformedPayload(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	b := NewRedisBroadcasterWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "tabs", logger.Nop())
	defer b.Close()

	var got collector
	_, err := b.Subscribe(ctx, got.handle)
	require.NoError(t, err)

	mr.Publish("tabs", "not-json")
	require.NoError(t, b.Publish(ctx, tokenMessage("o", 1)))

	require.Eventually(t, func() bool { return len(got.snapshot()) == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestNewRedisBroadcaster_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisBroadcaster(context.Background(), config.ClientBroadcast{RedisURL: "redis://" + addr}, logger.Nop())
	assert.Error(t, err)
}

func TestKVBroadcaster_PollDeliversLatest(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	publisher := NewKVBroadcaster(kv, time.Hour, logger.Nop())
	defer publisher.Close()
	receiver := NewKVBroadcaster(kv, time.Hour, logger.Nop())
	defer receiver.Close()

	require.NoError(t, publisher.Publish(ctx, tokenMessage("stale", 1)))

	var got collector
	_, err := receiver.Subscribe(ctx, got.handle)
	require.NoError(t, err)

	receiver.Poll(ctx)
	assert.Empty(t, got.snapshot(), "message present before subscribing is not replayed")

	require.NoError(t, publisher.Publish(ctx, tokenMessage("origin", 2)))
	require.NoError(t, publisher.Publish(ctx, tokenMessage("origin", 3)))
	receiver.Poll(ctx)
	receiver.Poll(ctx)

	msgs := got.snapshot()
	require.Len(t, msgs, 1)
	assert.Equal(t, "origin", msgs[0].OriginID)
	state, ok := msgs[0].TokenPayload()
	require.True(t, ok)
	assert.Equal(t, int64(3), state.Version)
}

func TestKVBroadcaster_BackgroundPolling(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	b := NewKVBroadcaster(kv, 10*time.Millisecond, logger.Nop())

	var got collector
	_, err := b.Subscribe(ctx, got.handle)
	require.NoError(t, err)

	require.NoError(t, b.Publish(ctx, models.SyncMessage{Type: models.MessageRefreshStart, OriginID: "tab"}))
	require.Eventually(t, func() bool { return len(got.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, got.snapshot()[0].Payload)

	require.NoError(t, b.Close())
	assert.ErrorIs(t, b.Publish(ctx, tokenMessage("tab", 1)), ErrBroadcasterClosed)
}

func TestNewBroadcaster_FallsBackToKV(t *testing.T) {
	kv := newTestKV(t)
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	b, err := NewBroadcaster(context.Background(), config.ClientBroadcast{
		RedisURL:     "redis://" + addr,
		PollInterval: time.Second,
	}, kv, logger.Nop())
	require.NoError(t, err)
	defer b.Close()

	assert.IsType(t, &KVBroadcaster{}, b)
}

func TestNewBroadcaster_PrefersRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	b, err := NewBroadcaster(context.Background(), config.ClientBroadcast{
		RedisURL: "redis://" + mr.Addr(),
		Channel:  "tabs",
	}, nil, logger.Nop())
	require.NoError(t, err)
	defer b.Close()

	assert.IsType(t, &RedisBroadcaster{}, b)
}

func TestNewBroadcaster_NoTransport(t *testing.T) {
	_, err := NewBroadcaster(context.Background(), config.ClientBroadcast{}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNoBroadcastTransport)
}

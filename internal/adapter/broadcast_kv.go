package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// Keys of the polling fallback. The companion keys are written before the
// marker in the same transaction, so a reader that sees a new marker also
// sees the message it announces.
const (
	kvMarkerKey    = "sync_last_update"
	kvTypeKey      = "sync_message_type"
	kvOriginKey    = "sync_message_origin"
	kvPayloadKey   = "sync_message_payload"
	kvTimestampKey = "sync_message_timestamp"
)

// KVBroadcaster is the fallback [Broadcaster]. Only the latest message is
// stored; messages published between two polls coalesce into the last one.
// Token coordinators recover a coalesced token_update from the stored state.
type KVBroadcaster struct {
	kv       store.KVRepository
	interval time.Duration
	logger   *logger.Logger

	mu         sync.Mutex
	handlers   map[int]func(models.SyncMessage)
	nextID     int
	lastMarker string
	closed     bool
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// NewKVBroadcaster returns a broadcaster polling kv every interval. Polling
// starts with the first subscription.
func NewKVBroadcaster(kv store.KVRepository, interval time.Duration, logger *logger.Logger) *KVBroadcaster {
	if interval <= 0 {
		interval = time.Second
	}
	return &KVBroadcaster{
		kv:       kv,
		interval: interval,
		logger:   logger.WithComponent("kv-broadcast"),
		handlers: make(map[int]func(models.SyncMessage)),
	}
}

func (b *KVBroadcaster) Publish(ctx context.Context, msg models.SyncMessage) error {
	if !msg.Type.Valid() {
		return ErrInvalidMessage
	}

	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return ErrBroadcasterClosed
	}

	marker := strconv.FormatInt(time.Now().UnixNano(), 10) + ":" + msg.OriginID
	return b.kv.Set(ctx,
		store.KV{Key: kvTypeKey, Value: string(msg.Type)},
		store.KV{Key: kvOriginKey, Value: msg.OriginID},
		store.KV{Key: kvPayloadKey, Value: string(msg.Payload)},
		store.KV{Key: kvTimestampKey, Value: strconv.FormatInt(msg.Timestamp, 10)},
		store.KV{Key: kvMarkerKey, Value: marker},
	)
}

// Subscribe implements [Broadcaster]. The marker present at the first
// subscription is treated as already seen.
func (b *KVBroadcaster) Subscribe(ctx context.Context, handler func(models.SyncMessage)) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrBroadcasterClosed
	}

	id := b.nextID
	b.nextID++
	b.handlers[id] = handler

	if b.cancel == nil {
		marker, err := b.kv.Get(ctx, kvMarkerKey)
		if err != nil && !errors.Is(err, store.ErrKeyNotFound) {
			b.logger.Warn().Err(err).Str("func", "KVBroadcaster.Subscribe").Msg("failed to read marker")
		}
		b.lastMarker = marker

		loopCtx, cancel := context.WithCancel(context.Background())
		b.cancel = cancel
		b.wg.Add(1)
		go b.loop(loopCtx)
	}

	return sync.OnceFunc(func() {
		b.mu.Lock()
		delete(b.handlers, id)
		b.mu.Unlock()
	}), nil
}

func (b *KVBroadcaster) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	cancel := b.cancel
	b.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	b.wg.Wait()
	return nil
}

func (b *KVBroadcaster) loop(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.Poll(ctx)
		}
	}
}

// Poll checks the marker once and dispatches the stored message when it
// changed.
func (b *KVBroadcaster) Poll(ctx context.Context) {
	marker, err := b.kv.Get(ctx, kvMarkerKey)
	if errors.Is(err, store.ErrKeyNotFound) {
		return
	}
	if err != nil {
		b.logger.Debug().Err(err).Str("func", "KVBroadcaster.Poll").Msg("failed to read marker")
		return
	}

	b.mu.Lock()
	if marker == b.lastMarker {
		b.mu.Unlock()
		return
	}
	b.lastMarker = marker
	b.mu.Unlock()

	values, err := b.kv.GetMany(ctx, kvTypeKey, kvOriginKey, kvPayloadKey, kvTimestampKey)
	if err != nil {
		b.logger.Warn().Err(err).Str("func", "KVBroadcaster.Poll").Msg("failed to read message keys")
		return
	}

	msg := models.SyncMessage{
		Type:     models.SyncMessageType(values[kvTypeKey]),
		OriginID: values[kvOriginKey],
	}
	if p := values[kvPayloadKey]; p != "" {
		msg.Payload = json.RawMessage(p)
	}
	msg.Timestamp, _ = strconv.ParseInt(values[kvTimestampKey], 10, 64)
	if !msg.Type.Valid() {
		b.logger.Warn().Str("func", "KVBroadcaster.Poll").Str("type", string(msg.Type)).Msg("dropping malformed message")
		return
	}

	b.mu.Lock()
	handlers := make([]func(models.SyncMessage), 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(msg)
	}
}

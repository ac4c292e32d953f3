package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// NewBroadcaster picks the transport for cross-context messages. Redis
// pub/sub is used when cfg.RedisURL is set and reachable; otherwise messages
// travel through the shared key-value store, polled every cfg.PollInterval.
func NewBroadcaster(ctx context.Context, cfg config.ClientBroadcast, kv store.KVRepository, logger *logger.Logger) (Broadcaster, error) {
	if cfg.RedisURL != "" {
		b, err := NewRedisBroadcaster(ctx, cfg, logger)
		if err == nil {
			logger.Info().Str("func", "NewBroadcaster").Str("channel", cfg.Channel).Msg("using redis broadcast")
			return b, nil
		}
		logger.Warn().Err(err).Str("func", "NewBroadcaster").Msg("redis unavailable, falling back to storage polling")
	}

	if kv == nil {
		return nil, ErrNoBroadcastTransport
	}

	logger.Info().Str("func", "NewBroadcaster").Dur("poll_interval", cfg.PollInterval).Msg("using storage polling broadcast")
	return NewKVBroadcaster(kv, cfg.PollInterval, logger), nil
}

func encodeMessage(msg models.SyncMessage) ([]byte, error) {
	if !msg.Type.Valid() {
		return nil, fmt.Errorf("%w: type %q", ErrInvalidMessage, msg.Type)
	}
	return json.Marshal(msg)
}

func decodeMessage(data []byte) (models.SyncMessage, error) {
	var msg models.SyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return models.SyncMessage{}, fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}
	if !msg.Type.Valid() {
		return models.SyncMessage{}, fmt.Errorf("%w: type %q", ErrInvalidMessage, msg.Type)
	}
	return msg, nil
}

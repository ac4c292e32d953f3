// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

const (
	// TokenStateKey is the key-value entry holding the write-through copy of
	// the credential pair.
	TokenStateKey = "token_state"

	refreshLockName  = "token_refresh"
	refreshLockTTL   = 30 * time.Second
	refreshDebounce  = 100 * time.Millisecond
	releaseTimeout   = 5 * time.Second
	hydrationTimeout = 5 * time.Second
)

type tokenCoordinator struct {
	tabID string
	bus   adapter.Broadcaster
	kv    store.KVRepository
	locks store.LockRepository
	now   func() time.Time

	mu          sync.Mutex
	state       *models.TokenState
	refreshing  bool
	lockHeld    bool
	lastRequest time.Time

	// persistMu orders write-through of accepted states.
	persistMu sync.Mutex

	listenersMu sync.Mutex
	listeners   map[int]func(models.SyncMessage)
	nextID      int

	unsubscribe func()
	destroyOnce sync.Once

	logger *logger.Logger
}

// NewTokenCoordinator creates a coordinator for one context. It subscribes to
// bus, hydrates the credential pair from kv and asks peers for theirs. kv and
// locks may be nil, in which case the write-through copy is skipped and the
// lease is only enforced within this process.
func NewTokenCoordinator(ctx context.Context, bus adapter.Broadcaster, kv store.KVRepository, locks store.LockRepository, logger *logger.Logger) (TokenCoordinator, error) {
	return newTokenCoordinator(ctx, bus, kv, locks, time.Now, logger)
}

func newTokenCoordinator(ctx context.Context, bus adapter.Broadcaster, kv store.KVRepository, locks store.LockRepository, now func() time.Time, logger *logger.Logger) (*tokenCoordinator, error) {
	tabID := utils.NewUUIDGenerator().Generate()
	c := &tokenCoordinator{
		tabID:     tabID,
		bus:       bus,
		kv:        kv,
		locks:     locks,
		now:       now,
		listeners: make(map[int]func(models.SyncMessage)),
		logger:    logger.WithComponent("token-coordinator"),
	}
	c.logger.Logger = c.logger.With().Str("tab_id", tabID).Logger()

	c.hydrate(ctx)

	if bus != nil {
		unsubscribe, err := bus.Subscribe(ctx, c.handleMessage)
		if err != nil {
			return nil, fmt.Errorf("subscribe to broadcast: %w", err)
		}
		c.unsubscribe = unsubscribe
		c.publish(ctx, models.MessageSyncRequest, nil)
	}

	return c, nil
}

func (c *tokenCoordinator) TabID() string {
	return c.tabID
}

func (c *tokenCoordinator) GetToken() *models.TokenState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == nil {
		return nil
	}
	st := *c.state
	return &st
}

func (c *tokenCoordinator) NeedsRefresh(skew time.Duration) bool {
	st := c.GetToken()
	if st == nil {
		return false
	}
	return st.ExpiresWithin(c.now(), skew)
}

func (c *tokenCoordinator) UpdateToken(ctx context.Context, accessToken, refreshToken string, expiresAt time.Time, version int64) bool {
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	c.mu.Lock()
	if version == 0 {
		version = 1
		if c.state != nil {
			version = c.state.Version + 1
		}
	}
	next := models.TokenState{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		Version:      version,
		UpdatedAt:    c.now(),
	}
	if !next.Newer(c.state) {
		current := c.state.Version
		c.mu.Unlock()
		c.logger.Debug().
			Str("func", "tokenCoordinator.UpdateToken").
			Int64("version", version).
			Int64("current_version", current).
			Msg("ignoring stale token update")
		return false
	}
	c.state = &next
	c.mu.Unlock()

	c.persist(ctx, next)
	c.publish(ctx, models.MessageTokenUpdate, next)

	c.logger.Info().
		Str("func", "tokenCoordinator.UpdateToken").
		Int64("version", next.Version).
		Msg("token updated")
	return true
}

func (c *tokenCoordinator) RequestRefresh(ctx context.Context) bool {
	now := c.now()

	c.mu.Lock()
	if !c.lastRequest.IsZero() && now.Sub(c.lastRequest) < refreshDebounce {
		c.mu.Unlock()
		return false
	}
	c.lastRequest = now
	if c.refreshing {
		c.mu.Unlock()
		return false
	}
	c.refreshing = true
	c.mu.Unlock()

	if !c.acquireLease(ctx, now) {
		c.mu.Lock()
		c.refreshing = false
		c.mu.Unlock()
		return false
	}

	c.mu.Lock()
	c.lockHeld = c.locks != nil
	c.mu.Unlock()

	c.publish(ctx, models.MessageRefreshStart, nil)
	c.logger.Info().Str("func", "tokenCoordinator.RequestRefresh").Msg("refresh lease acquired")
	return true
}

// acquireLease writes the lease row, reads it back and compares the holder.
// Any storage failure counts as a lost election.
func (c *tokenCoordinator) acquireLease(ctx context.Context, now time.Time) bool {
	if c.locks == nil {
		return true
	}

	claim := models.RefreshLock{HolderID: c.tabID, AcquiredAtMs: now.UnixMilli()}
	if err := c.locks.Write(ctx, refreshLockName, claim, now.Add(-refreshLockTTL)); err != nil {
		c.logger.Err(err).Str("func", "tokenCoordinator.acquireLease").Msg("failed to write refresh lease")
		return false
	}

	held, err := c.locks.Read(ctx, refreshLockName)
	if err != nil {
		c.logger.Err(err).Str("func", "tokenCoordinator.acquireLease").Msg("failed to read refresh lease back")
		return false
	}
	if held.HolderID != c.tabID {
		c.logger.Debug().
			Str("func", "tokenCoordinator.acquireLease").
			Str("holder_id", held.HolderID).
			Msg("refresh lease held by another context")
		return false
	}
	return true
}

func (c *tokenCoordinator) MarkRefreshComplete(ctx context.Context, accessToken, refreshToken string, expiresAt time.Time) {
	c.finishRefresh(ctx)

	if !c.UpdateToken(ctx, accessToken, refreshToken, expiresAt, 0) {
		return
	}
	if st := c.GetToken(); st != nil {
		c.publish(ctx, models.MessageRefreshComplete, *st)
	}
}

func (c *tokenCoordinator) MarkRefreshFailed(ctx context.Context, cause error) {
	c.finishRefresh(ctx)

	msg := "unknown error"
	if cause != nil {
		msg = cause.Error()
	}
	c.logger.Warn().Str("func", "tokenCoordinator.MarkRefreshFailed").Str("error", msg).Msg("token refresh failed")
	c.publish(ctx, models.MessageRefreshError, models.RefreshErrorPayload{Error: msg})
}

func (c *tokenCoordinator) finishRefresh(ctx context.Context) {
	c.mu.Lock()
	held := c.lockHeld
	c.refreshing = false
	c.lockHeld = false
	c.mu.Unlock()

	if held {
		c.releaseLease(ctx)
	}
}

func (c *tokenCoordinator) releaseLease(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()

	if err := c.locks.Release(ctx, refreshLockName, c.tabID); err != nil {
		c.logger.Err(err).Str("func", "tokenCoordinator.releaseLease").Msg("failed to release refresh lease")
	}
}

func (c *tokenCoordinator) RefreshWith(ctx context.Context, fn RefreshFunc) (bool, error) {
	if !c.RequestRefresh(ctx) {
		return false, nil
	}

	current := c.GetToken()
	if current == nil || current.RefreshToken == "" {
		c.MarkRefreshFailed(ctx, ErrNoRefreshToken)
		return true, ErrNoRefreshToken
	}

	next, err := fn(ctx, current.RefreshToken)
	if err != nil {
		c.MarkRefreshFailed(ctx, err)
		return true, fmt.Errorf("refresh token: %w", err)
	}

	refreshToken := next.RefreshToken
	if refreshToken == "" {
		refreshToken = current.RefreshToken
	}
	c.MarkRefreshComplete(ctx, next.AccessToken, refreshToken, next.ExpiresAt)
	return true, nil
}

func (c *tokenCoordinator) IsRefreshLocked(ctx context.Context) bool {
	c.mu.Lock()
	refreshing := c.refreshing
	c.mu.Unlock()
	if refreshing {
		return true
	}
	if c.locks == nil {
		return false
	}

	lock, err := c.locks.Read(ctx, refreshLockName)
	if err != nil {
		if !errors.Is(err, store.ErrLockNotFound) {
			c.logger.Err(err).Str("func", "tokenCoordinator.IsRefreshLocked").Msg("failed to read refresh lease")
		}
		return false
	}
	return !lock.Stale(c.now(), refreshLockTTL)
}

func (c *tokenCoordinator) Status(ctx context.Context) models.TokenStatus {
	status := models.TokenStatus{
		TabID:  c.tabID,
		Locked: c.IsRefreshLocked(ctx),
	}
	if st := c.GetToken(); st != nil {
		status.Present = true
		status.Version = st.Version
		status.ExpiresAt = st.ExpiresAt
		status.UpdatedAt = st.UpdatedAt
	}
	return status
}

func (c *tokenCoordinator) OnMessage(fn func(models.SyncMessage)) func() {
	c.listenersMu.Lock()
	defer c.listenersMu.Unlock()

	id := c.nextID
	c.nextID++
	c.listeners[id] = fn

	return func() {
		c.listenersMu.Lock()
		defer c.listenersMu.Unlock()
		delete(c.listeners, id)
	}
}

func (c *tokenCoordinator) Destroy() {
	c.destroyOnce.Do(func() {
		if c.unsubscribe != nil {
			c.unsubscribe()
		}
		c.finishRefresh(context.Background())

		c.listenersMu.Lock()
		clear(c.listeners)
		c.listenersMu.Unlock()

		c.logger.Debug().Str("func", "tokenCoordinator.Destroy").Msg("coordinator destroyed")
	})
}

func (c *tokenCoordinator) handleMessage(msg models.SyncMessage) {
	if msg.OriginID == c.tabID {
		return
	}

	switch msg.Type {
	case models.MessageTokenUpdate, models.MessageRefreshComplete:
		if st, ok := msg.TokenPayload(); ok {
			c.applyRemote(st, msg)
		}
	case models.MessageSyncRequest:
		c.catchUp(msg)
		if st := c.GetToken(); st != nil {
			c.publish(context.Background(), models.MessageTokenUpdate, *st)
		}
	case models.MessageRefreshStart, models.MessageRefreshError:
		c.catchUp(msg)
		c.logger.Debug().
			Str("func", "tokenCoordinator.handleMessage").
			Str("type", string(msg.Type)).
			Str("origin_id", msg.OriginID).
			Msg("peer refresh event")
	default:
		return
	}

	c.notify(msg)
}

func (c *tokenCoordinator) applyRemote(st models.TokenState, msg models.SyncMessage) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !st.Newer(c.state) {
		return false
	}
	c.state = &st

	c.logger.Debug().
		Str("func", "tokenCoordinator.applyRemote").
		Str("type", string(msg.Type)).
		Str("origin_id", msg.OriginID).
		Int64("version", st.Version).
		Msg("applied token from peer")
	return true
}

func (c *tokenCoordinator) notify(msg models.SyncMessage) {
	c.listenersMu.Lock()
	fns := make([]func(models.SyncMessage), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.listenersMu.Unlock()

	for _, fn := range fns {
		fn(msg)
	}
}

func (c *tokenCoordinator) publish(ctx context.Context, typ models.SyncMessageType, payload any) {
	if c.bus == nil {
		return
	}

	msg := models.SyncMessage{
		Type:      typ,
		OriginID:  c.tabID,
		Timestamp: c.now().UnixMilli(),
	}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			c.logger.Err(err).Str("func", "tokenCoordinator.publish").Msg("failed to encode payload")
			return
		}
		msg.Payload = raw
	}

	if err := c.bus.Publish(ctx, msg); err != nil {
		c.logger.Err(err).
			Str("func", "tokenCoordinator.publish").
			Str("type", string(typ)).
			Msg("failed to broadcast message")
	}
}

func (c *tokenCoordinator) persist(ctx context.Context, st models.TokenState) {
	if c.kv == nil {
		return
	}

	raw, err := json.Marshal(st)
	if err != nil {
		c.logger.Err(err).Str("func", "tokenCoordinator.persist").Msg("failed to encode token state")
		return
	}
	if err = c.kv.Set(ctx, store.KV{Key: TokenStateKey, Value: string(raw)}); err != nil {
		c.logger.Err(err).Str("func", "tokenCoordinator.persist").Msg("failed to write token state through")
	}
}

func (c *tokenCoordinator) hydrate(ctx context.Context) {
	st, ok := c.loadStored(ctx, "tokenCoordinator.hydrate")
	if !ok {
		return
	}

	c.mu.Lock()
	c.state = &st
	c.mu.Unlock()
}

// catchUp applies the stored credential pair when it is newer than ours.
// A lossy channel may have dropped the token_update that preceded msg.
func (c *tokenCoordinator) catchUp(msg models.SyncMessage) {
	st, ok := c.loadStored(context.Background(), "tokenCoordinator.catchUp")
	if !ok {
		return
	}
	if c.applyRemote(st, msg) {
		c.logger.Info().
			Str("func", "tokenCoordinator.catchUp").
			Int64("version", st.Version).
			Msg("recovered token from storage")
	}
}

func (c *tokenCoordinator) loadStored(ctx context.Context, fn string) (models.TokenState, bool) {
	if c.kv == nil {
		return models.TokenState{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, hydrationTimeout)
	defer cancel()

	raw, err := c.kv.Get(ctx, TokenStateKey)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			c.logger.Err(err).Str("func", fn).Msg("failed to load token state")
		}
		return models.TokenState{}, false
	}

	var st models.TokenState
	if err = json.Unmarshal([]byte(raw), &st); err != nil {
		c.logger.Err(err).Str("func", fn).Msg("stored token state is malformed")
		return models.TokenState{}, false
	}
	return st, true
}

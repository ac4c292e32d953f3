package adapter

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-sync-keeper/models"
)

// MemoryHub is an in-process [Broadcaster] shared by several contexts living
// in one process. Each subscription owns an unbounded mailbox drained by its
// own goroutine, so Publish never blocks on a slow receiver and a handler may
// publish without deadlocking.
type MemoryHub struct {
	mu     sync.RWMutex
	subs   map[int]*mailbox
	nextID int
	closed bool
}

func NewMemoryHub() *MemoryHub {
	return &MemoryHub{subs: make(map[int]*mailbox)}
}

func (h *MemoryHub) Publish(_ context.Context, msg models.SyncMessage) error {
	if !msg.Type.Valid() {
		return ErrInvalidMessage
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return ErrBroadcasterClosed
	}

	for _, mb := range h.subs {
		mb.push(msg)
	}
	return nil
}

func (h *MemoryHub) Subscribe(_ context.Context, handler func(models.SyncMessage)) (func(), error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, ErrBroadcasterClosed
	}

	id := h.nextID
	h.nextID++
	mb := newMailbox(handler)
	h.subs[id] = mb
	go mb.run()

	return sync.OnceFunc(func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
		mb.stop()
	}), nil
}

func (h *MemoryHub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	for id, mb := range h.subs {
		mb.stop()
		delete(h.subs, id)
	}
	return nil
}

type mailbox struct {
	mu      sync.Mutex
	queue   []models.SyncMessage
	notify  chan struct{}
	done    chan struct{}
	once    sync.Once
	handler func(models.SyncMessage)
}

func newMailbox(handler func(models.SyncMessage)) *mailbox {
	return &mailbox{
		notify:  make(chan struct{}, 1),
		done:    make(chan struct{}),
		handler: handler,
	}
}

func (m *mailbox) push(msg models.SyncMessage) {
	m.mu.Lock()
	m.queue = append(m.queue, msg)
	m.mu.Unlock()

	select {
	case m.notify <- struct{}{}:
	default:
	}
}

func (m *mailbox) stop() {
	m.once.Do(func() { close(m.done) })
}

func (m *mailbox) run() {
	for {
		select {
		case <-m.done:
			return
		case <-m.notify:
		}

		for {
			m.mu.Lock()
			batch := m.queue
			m.queue = nil
			m.mu.Unlock()
			if len(batch) == 0 {
				break
			}

			for _, msg := range batch {
				select {
				case <-m.done:
					return
				default:
				}
				m.handler(msg)
			}
		}
	}
}

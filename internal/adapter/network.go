package adapter

import (
	"context"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// statusNotifier holds the current connectivity state and its listeners.
// Listeners run on the goroutine that changed the state, after the lock is
// released.
type statusNotifier struct {
	mu        sync.Mutex
	online    bool
	nextID    int
	listeners map[int]func(models.NetworkStatus)
}

func (n *statusNotifier) IsOnline() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.online
}

func (n *statusNotifier) AddListener(fn func(models.NetworkStatus)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.listeners == nil {
		n.listeners = make(map[int]func(models.NetworkStatus))
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

// set stores online and notifies listeners when the value changed.
func (n *statusNotifier) set(online bool) bool {
	n.mu.Lock()
	if n.online == online {
		n.mu.Unlock()
		return false
	}
	n.online = online
	fns := make([]func(models.NetworkStatus), 0, len(n.listeners))
	for _, fn := range n.listeners {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	status := models.NetworkOffline
	if online {
		status = models.NetworkOnline
	}
	for _, fn := range fns {
		fn(status)
	}

	return true
}

// ManualNetwork is a [NetworkObserver] driven explicitly by the caller. It
// backs the local control API and tests.
type ManualNetwork struct {
	statusNotifier
}

// NewManualNetwork returns a ManualNetwork in the given initial state.
func NewManualNetwork(online bool) *ManualNetwork {
	n := &ManualNetwork{}
	n.online = online
	return n
}

// SetOnline changes the state and notifies listeners on a transition.
func (n *ManualNetwork) SetOnline(online bool) {
	n.set(online)
}

// NetworkProbe is a [NetworkObserver] that derives connectivity from a health
// endpoint. Any response below 500 counts as online.
type NetworkProbe struct {
	statusNotifier

	client     *utils.HTTPClient
	healthPath string
	logger     *logger.Logger
}

// NewNetworkProbe constructs a probe against adapterCfg.HTTPAddress +
// adapterCfg.HealthPath. The probe starts offline until the first Check.
func NewNetworkProbe(adapterCfg config.ClientAdapter, logger *logger.Logger) (*NetworkProbe, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, err
	}

	return &NetworkProbe{
		client:     utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		healthPath: adapterCfg.HealthPath,
		logger:     logger.WithComponent("network-probe"),
	}, nil
}

// Check probes the health endpoint once and updates the state.
func (p *NetworkProbe) Check(ctx context.Context) models.NetworkStatus {
	online := false
	resp, err := p.client.R().SetContext(ctx).Get(p.healthPath)
	if err == nil && resp.StatusCode() < http.StatusInternalServerError {
		online = true
	}

	if p.set(online) {
		ev := p.logger.Info().Str("func", "NetworkProbe.Check").Bool("online", online)
		if err != nil {
			ev = ev.Err(err)
		}
		ev.Msg("network status changed")
	}

	if online {
		return models.NetworkOnline
	}
	return models.NetworkOffline
}

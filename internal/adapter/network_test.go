package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

func TestManualNetwork_Transitions(t *testing.T) {
	n := NewManualNetwork(false)
	assert.False(t, n.IsOnline())

	var got []models.NetworkStatus
	remove := n.AddListener(func(s models.NetworkStatus) { got = append(got, s) })

	n.SetOnline(true)
	n.SetOnline(true)
	n.SetOnline(false)

	assert.Equal(t, []models.NetworkStatus{models.NetworkOnline, models.NetworkOffline}, got)

	remove()
	n.SetOnline(true)
	assert.Len(t, got, 2)
	assert.True(t, n.IsOnline())
}

func TestNetworkProbe_Check(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		if !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p, err := NewNetworkProbe(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: time.Second,
		HealthPath:     "/api/health",
	}, logger.Nop())
	require.NoError(t, err)
	require.False(t, p.IsOnline())

	var events []models.NetworkStatus
	p.AddListener(func(s models.NetworkStatus) { events = append(events, s) })

	assert.Equal(t, models.NetworkOnline, p.Check(context.Background()))
	healthy.Store(false)
	assert.Equal(t, models.NetworkOffline, p.Check(context.Background()))
	srv.Close()
	assert.Equal(t, models.NetworkOffline, p.Check(context.Background()))

	assert.Equal(t, []models.NetworkStatus{models.NetworkOnline, models.NetworkOffline}, events)
}

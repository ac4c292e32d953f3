package workers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type countingChecker struct {
	calls atomic.Int64
}

func (c *countingChecker) Check(context.Context) models.NetworkStatus {
	c.calls.Add(1)
	return models.NetworkOnline
}

func TestNetworkProbeWorker_ChecksImmediatelyAndPeriodically(t *testing.T) {
	checker := &countingChecker{}
	w := NewNetworkProbeWorker(checker, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
	defer cancel()
	w.Run(ctx)

	assert.GreaterOrEqual(t, checker.calls.Load(), int64(4))
}

func TestNetworkProbeWorker_DrivesProbeTransitions(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	probe, err := adapter.NewNetworkProbe(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: time.Second,
		HealthPath:     "/api/health",
	}, logger.Nop())
	require.NoError(t, err)

	var transitions atomic.Int64
	probe.AddListener(func(models.NetworkStatus) { transitions.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewNetworkProbeWorker(probe, 5*time.Millisecond, logger.Nop()).Run(ctx)
		close(done)
	}()

	require.Eventually(t, probe.IsOnline, time.Second, 5*time.Millisecond)
	healthy.Store(false)
	require.Eventually(t, func() bool { return !probe.IsOnline() }, time.Second, 5*time.Millisecond)

	cancel()
	<-done
	assert.Equal(t, int64(2), transitions.Load())
}

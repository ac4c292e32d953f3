package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/mock"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type remoteAPI struct {
	mu       sync.Mutex
	replayed []string
	server   *httptest.Server
}

func newRemoteAPI(t *testing.T) *remoteAPI {
	t.Helper()

	api := &remoteAPI{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/items/", func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		api.replayed = append(api.replayed, r.Method+" "+r.URL.Path)
		api.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	api.server = httptest.NewServer(mux)
	t.Cleanup(api.server.Close)

	return api
}

func (a *remoteAPI) calls() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.replayed...)
}

func testConfig(t *testing.T, remote string) *config.ClientConfig {
	t.Helper()

	return &config.ClientConfig{
		App: config.ClientApp{Version: "test"},
		Storage: config.ClientStorage{
			DB:    config.ClientDB{DSN: filepath.Join(t.TempDir(), "client.db")},
			Queue: config.ClientQueue{MaxRequests: 100},
		},
		Adapter: config.ClientAdapter{
			HTTPAddress:    remote,
			RequestTimeout: time.Second,
			HealthPath:     config.DefaultHealthPath,
			RefreshPath:    config.DefaultRefreshPath,
		},
		Broadcast: config.ClientBroadcast{
			Channel:      config.DefaultChannel,
			PollInterval: 50 * time.Millisecond,
		},
		Sync: config.ClientSync{
			BatchSize:      config.DefaultBatchSize,
			RequestTimeout: time.Second,
			RunTimeout:     5 * time.Second,
		},
		Workers: config.ClientWorkers{
			SyncInterval:    100 * time.Millisecond,
			ProbeInterval:   50 * time.Millisecond,
			RefreshInterval: time.Second,
			RefreshSkew:     time.Minute,
		},
	}
}

func TestApp_ReplaysQueuedRequestsWhenOnline(t *testing.T) {
	api := newRemoteAPI(t)
	cfg := testConfig(t, api.server.URL)

	app, err := NewApp(t.Context(), cfg, Options{Headless: true}, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, app.server, "control API must stay disabled without an address")
	assert.Nil(t, app.ui)

	for _, id := range []string{"1", "2"} {
		_, err := app.services.Queue.Enqueue(t.Context(), models.RequestData{
			Method:   http.MethodDelete,
			Endpoint: "/api/items/" + id,
		}, models.PriorityNormal, nil)
		require.NoError(t, err)
	}

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	require.Eventually(t, func() bool {
		return len(api.calls()) == 2
	}, 3*time.Second, 20*time.Millisecond)
	assert.ElementsMatch(t, []string{"DELETE /api/items/1", "DELETE /api/items/2"}, api.calls())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestApp_StorageUnavailable(t *testing.T) {
	api := newRemoteAPI(t)
	cfg := testConfig(t, api.server.URL)
	// каталог вместо файла базы
	cfg.Storage.DB.DSN = t.TempDir()

	app, err := NewApp(t.Context(), cfg, Options{Headless: true}, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, app.storages)

	id, err := app.services.Queue.Enqueue(t.Context(), models.RequestData{Method: http.MethodPost, Endpoint: "/api/items"}, "", nil)
	assert.NoError(t, err)
	assert.Empty(t, id)

	ctx, cancel := context.WithTimeout(t.Context(), 200*time.Millisecond)
	defer cancel()
	assert.NoError(t, app.Run(ctx))
}

func TestNewApp_InvalidRemoteAddress(t *testing.T) {
	cfg := testConfig(t, "")

	_, err := NewApp(t.Context(), cfg, Options{Headless: true}, logger.Nop())
	assert.Error(t, err)
}

func TestCoordinatorTokens(t *testing.T) {
	tokens := &coordinatorTokens{}
	assert.Nil(t, tokens.GetToken(), "unbound source has no token")

	ctrl := gomock.NewController(t)
	coordinator := mock.NewMockTokenCoordinator(ctrl)
	state := &models.TokenState{AccessToken: "access", Version: 2}
	coordinator.EXPECT().GetToken().Return(state)

	tokens.bind(coordinator)
	assert.Equal(t, state, tokens.GetToken())
}

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/mock"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// ---- Helpers ----

type testServer struct {
	queue       *mock.MockRequestQueue
	coordinator *mock.MockTokenCoordinator
	syncManager *mock.MockSyncManager
	router      http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	s := &testServer{
		queue:       mock.NewMockRequestQueue(ctrl),
		coordinator: mock.NewMockTokenCoordinator(ctrl),
		syncManager: mock.NewMockSyncManager(ctrl),
	}

	services := &service.ClientServices{
		Queue:       s.queue,
		Coordinator: s.coordinator,
		SyncManager: s.syncManager,
	}
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("sync_keeper_queue_depth 0\n"))
	})
	buildInfo := models.AppBuildInfo{BuildVersion: "1.2.3", BuildDate: "2026-01-01", BuildCommit: "abc"}

	s.router = NewHandler(services, metrics, buildInfo, logger.Nop()).Init()
	return s
}

func (s *testServer) do(method, path string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(method, path, reader))
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&v))
	return v
}

// ---- /api/sync ----

func TestTriggerSync(t *testing.T) {
	tests := []struct {
		name       string
		result     models.SyncResult
		err        error
		wantStatus int
	}{
		{
			name:       "completed",
			result:     models.SyncResult{Success: true, Synced: 3, Duration: time.Second},
			wantStatus: http.StatusOK,
		},
		{name: "already syncing", err: service.ErrSyncInProgress, wantStatus: http.StatusConflict},
		{name: "paused", err: service.ErrSyncPaused, wantStatus: http.StatusConflict},
		{name: "offline", err: service.ErrOffline, wantStatus: http.StatusServiceUnavailable},
		{name: "run failure", err: assert.AnError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.syncManager.EXPECT().TriggerSync(gomock.Any()).Return(tt.result, tt.err)

			rec := s.do(http.MethodPost, "/api/sync", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
			if tt.err == nil {
				got := decodeBody[models.SyncResult](t, rec)
				assert.Equal(t, tt.result, got)
			}
		})
	}
}

func TestPauseResumeProgress(t *testing.T) {
	s := newTestServer(t)
	progress := models.SyncProgress{Total: 4, Synced: 1, Failed: 1, Status: models.SyncPaused}

	gomock.InOrder(
		s.syncManager.EXPECT().Pause(),
		s.syncManager.EXPECT().Resume(),
	)
	s.syncManager.EXPECT().GetProgress().Return(progress).Times(3)
	s.syncManager.EXPECT().IsSyncing().Return(false).Times(3)
	s.syncManager.EXPECT().IsPaused().Return(true).Times(3)

	for _, call := range []struct{ method, path string }{
		{http.MethodPost, "/api/sync/pause"},
		{http.MethodPost, "/api/sync/resume"},
		{http.MethodGet, "/api/sync/progress"},
	} {
		rec := s.do(call.method, call.path, "")
		require.Equal(t, http.StatusOK, rec.Code, call.path)

		got := decodeBody[models.SyncProgressResponse](t, rec)
		assert.Equal(t, progress.Total, got.Progress.Total)
		assert.InDelta(t, 50, got.Percent, 0.001)
		assert.True(t, got.Paused)
	}
}

// ---- /api/queue ----

func TestGetQueueStats(t *testing.T) {
	s := newTestServer(t)
	stats := models.QueueStats{
		TotalRequests:   2,
		PendingRequests: 1,
		FailedRequests:  1,
		ByPriority:      map[models.Priority]int{models.PriorityHigh: 2},
	}
	s.queue.EXPECT().GetStats(gomock.Any()).Return(stats, nil)

	rec := s.do(http.MethodGet, "/api/queue/stats", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, stats, decodeBody[models.QueueStats](t, rec))
}

func TestEnqueueRequest(t *testing.T) {
	const body = `{"request_data":{"method":"PUT","endpoint":"/api/items/1","body":{"name":"x"}},"priority":"high","metadata":{"origin":"ui"}}`

	t.Run("queued", func(t *testing.T) {
		s := newTestServer(t)
		s.queue.EXPECT().
			Enqueue(gomock.Any(), gomock.Any(), models.PriorityHigh, map[string]string{"origin": "ui"}).
			DoAndReturn(func(_ context.Context, data models.RequestData, _ models.Priority, _ map[string]string) (string, error) {
				assert.Equal(t, "PUT", data.Method)
				assert.Equal(t, "/api/items/1", data.Endpoint)
				assert.JSONEq(t, `{"name":"x"}`, string(data.Body))
				return "0192f0c2-0000-7000-8000-000000000001", nil
			})

		rec := s.do(http.MethodPost, "/api/queue", body)

		require.Equal(t, http.StatusAccepted, rec.Code)
		got := decodeBody[models.EnqueueResponse](t, rec)
		assert.True(t, got.Queued)
		assert.NotEmpty(t, got.ID)
	})

	t.Run("storage unavailable", func(t *testing.T) {
		s := newTestServer(t)
		s.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil)

		rec := s.do(http.MethodPost, "/api/queue", body)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("invalid priority", func(t *testing.T) {
		s := newTestServer(t)
		s.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", service.ErrInvalidPriority)

		rec := s.do(http.MethodPost, "/api/queue", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("quota exceeded", func(t *testing.T) {
		s := newTestServer(t)
		s.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", service.ErrQuotaExceeded)

		rec := s.do(http.MethodPost, "/api/queue", body)
		assert.Equal(t, http.StatusInsufficientStorage, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		s := newTestServer(t)

		for _, bad := range []string{"", "{", `{"unknown":1}`} {
			rec := s.do(http.MethodPost, "/api/queue", bad)
			assert.Equal(t, http.StatusBadRequest, rec.Code, bad)
		}
	})
}

func TestRemoveRequest(t *testing.T) {
	id := utils.NewUUIDGenerator().Generate()

	t.Run("removed", func(t *testing.T) {
		s := newTestServer(t)
		s.queue.EXPECT().RemoveRequest(gomock.Any(), id).Return(nil)

		rec := s.do(http.MethodDelete, "/api/queue/"+id, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		s := newTestServer(t)
		s.queue.EXPECT().RemoveRequest(gomock.Any(), id).Return(service.ErrRequestNotFound)

		rec := s.do(http.MethodDelete, "/api/queue/"+id, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodDelete, "/api/queue/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

// ---- /api/token, /api/version, /metrics ----

func TestGetTokenStatus(t *testing.T) {
	s := newTestServer(t)
	status := models.TokenStatus{Present: true, Version: 7, TabID: "tab", Locked: true}
	s.coordinator.EXPECT().Status(gomock.Any()).Return(status)

	rec := s.do(http.MethodGet, "/api/token/status", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "access_token")
	got := decodeBody[models.TokenStatus](t, rec)
	assert.Equal(t, int64(7), got.Version)
	assert.True(t, got.Locked)
}

func TestGetVersion(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", decodeBody[models.AppBuildInfo](t, rec).BuildVersion)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sync_keeper_queue_depth")
}

func TestUnknownMethod_Returns404(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPut, "/api/sync", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateToken(t *testing.T) {
	expiresAt := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	status := models.TokenStatus{Present: true, Version: 3, TabID: "tab"}

	t.Run("explicit expiry", func(t *testing.T) {
		s := newTestServer(t)
		s.coordinator.EXPECT().UpdateToken(gomock.Any(), "access", "refresh", expiresAt, int64(0)).Return(true)
		s.coordinator.EXPECT().Status(gomock.Any()).Return(status)

		rec := s.do(http.MethodPut, "/api/token", `{"access_token":"access","refresh_token":"refresh","expires_at":"2026-10-19T12:00:00Z"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(3), decodeBody[models.TokenStatus](t, rec).Version)
	})

	t.Run("bearer header", func(t *testing.T) {
		s := newTestServer(t)
		s.coordinator.EXPECT().UpdateToken(gomock.Any(), "opaque", "refresh", time.Time{}, int64(7)).Return(true)
		s.coordinator.EXPECT().Status(gomock.Any()).Return(status)

		req := httptest.NewRequest(http.MethodPut, "/api/token", strings.NewReader(`{"refresh_token":"refresh","version":7}`))
		req.Header.Set("Authorization", "Bearer opaque")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("stale version", func(t *testing.T) {
		s := newTestServer(t)
		s.coordinator.EXPECT().UpdateToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), int64(1)).Return(false)

		rec := s.do(http.MethodPut, "/api/token", `{"access_token":"a","refresh_token":"r","version":1}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("no access token", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodPut, "/api/token", `{"refresh_token":"r"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

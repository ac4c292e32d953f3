package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
)

// newBufferedHandler returns a Handler whose logger writes JSON lines to buf.
func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}
	return lines
}

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	incoming := utils.NewUUIDGenerator().Generate()

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "generated when absent", header: ""},
		{name: "kept when valid", header: incoming, wantSame: true},
		{name: "replaced when not a uuid", header: "abc; drop table"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBufferedHandler(&buf)

			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
				seen = w.Header().Get(traceIDHeader)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
			if tt.header != "" {
				req.Header.Set(traceIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			assert.True(t, utils.IsValidID(got))
			assert.Equal(t, got, seen, "header is set before the handler runs")
			if tt.wantSame {
				assert.Equal(t, incoming, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}

			lines := logLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, got, lines[0]["trace_id"])
		})
	}
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := newBufferedHandler(&bytes.Buffer{})
	handler := h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	seen := make(map[string]struct{})
	for range 50 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		seen[rec.Header().Get(traceIDHeader)] = struct{}{}
	}
	assert.Len(t, seen, 50)
}

// ---- withLogging ----

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		handler   http.HandlerFunc
		wantCode  int
		wantSize  float64
		wantLevel string
	}{
		{
			name: "explicit status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				_, _ = w.Write([]byte(`{"queued":true}`))
			},
			wantCode:  http.StatusAccepted,
			wantSize:  15,
			wantLevel: "info",
		},
		{
			name: "implicit 200",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("ok"))
				_, _ = w.Write([]byte("!"))
			},
			wantCode:  http.StatusOK,
			wantSize:  3,
			wantLevel: "info",
		},
		{
			name: "first status wins",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.WriteHeader(http.StatusOK)
			},
			wantCode:  http.StatusServiceUnavailable,
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBufferedHandler(&buf)

			req := httptest.NewRequest(http.MethodPost, "/api/queue?x=1", nil)
			req = req.WithContext(h.logger.WithContext(req.Context()))
			rec := httptest.NewRecorder()
			h.withLogging(tt.handler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			lines := logLines(t, &buf)
			require.Len(t, lines, 1)
			line := lines[0]
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, "POST", line["method"])
			assert.Equal(t, "/api/queue?x=1", line["uri"])
			assert.EqualValues(t, tt.wantCode, line["status"])
			assert.EqualValues(t, tt.wantSize, line["size"])
			assert.Contains(t, line, "duration")
		})
	}
}

// ---- notFound ----

func TestNotFound(t *testing.T) {
	router := newBufferedHandler(&bytes.Buffer{}).Init()

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/unknown"},
		{http.MethodPatch, "/api/queue/stats"},
		{http.MethodGet, "/api/queue/0192f0c2-0000-7000-8000-000000000001"},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code, tc.method+" "+tc.path)
		assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
	}
}

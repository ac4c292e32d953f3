package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

const idempotencyKeyHeader = "Idempotency-Key"

type httpExecutor struct {
	client *utils.HTTPClient
	tokens TokenSource

	logger *logger.Logger
}

// NewHTTPExecutor constructs an HTTP implementation of [RequestExecutor].
// Relative endpoints are resolved against adapterCfg.HTTPAddress. When tokens
// is non-nil, its access token is sent as a bearer token unless the queued
// request carries its own Authorization header.
//
// The client has no timeout of its own: replays are bounded only by the
// context passed to Execute. adapterCfg.RequestTimeout is ignored here.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPExecutor(adapterCfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger) (RequestExecutor, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpExecutor{
		client: utils.NewHTTPClient(baseURL, 0),
		tokens: tokens,
		logger: logger.WithComponent("http-executor"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Execute implements [RequestExecutor]. The queued request id, when present in
// ctx, is forwarded as an Idempotency-Key header.
func (e *httpExecutor) Execute(ctx context.Context, req models.QueuedRequest) error {
	data := req.RequestData
	method := strings.ToUpper(strings.TrimSpace(data.Method))
	if method == "" {
		method = http.MethodPost
	}

	r := e.client.R().
		SetContext(ctx).
		SetHeaders(data.Headers)
	if len(data.Body) > 0 {
		if r.Header.Get("Content-Type") == "" {
			r.SetHeader("Content-Type", "application/json")
		}
		r.SetBody([]byte(data.Body))
	}
	if r.Header.Get("Authorization") == "" && e.tokens != nil {
		if token := e.tokens.GetToken(); token != nil && token.AccessToken != "" {
			r.SetAuthToken(token.AccessToken)
		}
	}
	if id, ok := utils.GetQueuedRequestIDFromContext(ctx); ok {
		r.SetHeader(idempotencyKeyHeader, id)
	}

	resp, err := r.Execute(method, data.Endpoint)
	if err != nil {
		e.logger.Debug().
			Err(err).
			Str("func", "httpExecutor.Execute").
			Str("method", method).
			Str("endpoint", data.Endpoint).
			Msg("request did not complete")
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, data.Endpoint, err)
	}

	return mapHTTPError(resp)
}

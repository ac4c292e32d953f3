package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`
}

type httpAuthAdapter struct {
	client      *utils.HTTPClient
	refreshPath string

	now    func() time.Time
	logger *logger.Logger
}

// NewHTTPAuthAdapter constructs an HTTP implementation of [AuthAdapter] that
// POSTs to adapterCfg.RefreshPath.
func NewHTTPAuthAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (AuthAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpAuthAdapter{
		client:      utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		refreshPath: adapterCfg.RefreshPath,
		now:         time.Now,
		logger:      logger.WithComponent("auth-adapter"),
	}, nil
}

// Refresh implements [AuthAdapter]. The expiry comes from expires_in when the
// server sends it, otherwise from the exp claim of the access token. A server
// that omits refresh_token keeps the old one valid.
func (a *httpAuthAdapter) Refresh(ctx context.Context, refreshToken string) (models.TokenState, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return models.TokenState{}, ErrEmptyRefreshToken
	}

	var result refreshResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(refreshRequest{RefreshToken: refreshToken}).
		SetResult(&result).
		Post(a.refreshPath)
	if err != nil {
		return models.TokenState{}, fmt.Errorf("%w: refresh request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		a.logger.Warn().
			Err(err).
			Str("func", "httpAuthAdapter.Refresh").
			Msg("refresh rejected")
		return models.TokenState{}, err
	}

	if result.AccessToken == "" {
		return models.TokenState{}, fmt.Errorf("refresh response: %w: empty access token", ErrUnexpectedStatus)
	}
	if result.RefreshToken == "" {
		result.RefreshToken = refreshToken
	}

	now := a.now()
	state := models.TokenState{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		UpdatedAt:    now,
	}

	switch {
	case result.ExpiresIn > 0:
		state.ExpiresAt = now.Add(time.Duration(result.ExpiresIn) * time.Second)
	default:
		exp, err := utils.ParseExpiryFromJWT(result.AccessToken)
		if err != nil {
			a.logger.Debug().
				Err(err).
				Str("func", "httpAuthAdapter.Refresh").
				Msg("access token expiry unknown")
		} else {
			state.ExpiresAt = exp
		}
	}

	return state, nil
}

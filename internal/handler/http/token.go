package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// getTokenStatus reports version and expiry of the shared credential pair
// without exposing the tokens themselves.
func (h *Handler) getTokenStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.Coordinator.Status(r.Context()), http.StatusOK)
}

// updateToken applies a credential pair and replicates it to the other
// contexts. Without expires_at the expiry is read from the access token.
func (h *Handler) updateToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.TokenUpdateRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.updateToken").Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.AccessToken == "" {
		if header := r.Header.Get("Authorization"); header != "" {
			token, err := utils.ParseBearerToken(header)
			if err != nil {
				utils.WriteError(w, err.Error(), http.StatusBadRequest)
				return
			}
			req.AccessToken = token
		}
	}
	if req.AccessToken == "" {
		utils.WriteError(w, ErrNoAccessToken.Error(), statusFromError(ErrNoAccessToken))
		return
	}

	var expiresAt time.Time
	if req.ExpiresAt != nil {
		expiresAt = *req.ExpiresAt
	} else if exp, err := utils.ParseExpiryFromJWT(req.AccessToken); err == nil {
		expiresAt = exp
	} else {
		log.Debug().Err(err).Str("func", "*Handler.updateToken").Msg("opaque access token, expiry unknown")
	}

	if !h.services.Coordinator.UpdateToken(r.Context(), req.AccessToken, req.RefreshToken, expiresAt, req.Version) {
		utils.WriteError(w, ErrStaleTokenVersion.Error(), statusFromError(ErrStaleTokenVersion))
		return
	}

	utils.WriteJSON(w, h.services.Coordinator.Status(r.Context()), http.StatusOK)
}

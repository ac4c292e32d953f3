package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

func (h *Handler) getQueueStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	stats, err := h.services.Queue.GetStats(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getQueueStats").Msg("error getting queue stats")
		utils.WriteError(w, "error getting queue stats", statusFromError(err))
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) enqueueRequest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.EnqueueRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.enqueueRequest").Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	id, err := h.services.Queue.Enqueue(r.Context(), req.RequestData, models.Priority(req.Priority), req.Metadata)
	if err != nil {
		log.Err(err).Str("func", "*Handler.enqueueRequest").Msg("error queueing request")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}
	if id == "" {
		utils.WriteError(w, ErrQueueUnavailable.Error(), statusFromError(ErrQueueUnavailable))
		return
	}

	utils.WriteJSON(w, models.EnqueueResponse{ID: id, Queued: true}, http.StatusAccepted)
}

func (h *Handler) removeRequest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	if !utils.IsValidID(id) {
		utils.WriteError(w, fmt.Sprintf("%s: %q", ErrInvalidRequestID, id), http.StatusBadRequest)
		return
	}

	if err := h.services.Queue.RemoveRequest(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.removeRequest").Str("id", id).Msg("error removing request")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

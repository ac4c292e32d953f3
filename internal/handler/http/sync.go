package http

import (
	"net/http"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	result, err := h.services.SyncManager.TriggerSync(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.triggerSync").Msg("sync was not completed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) pauseSync(w http.ResponseWriter, r *http.Request) {
	h.services.SyncManager.Pause()
	h.writeProgress(w)
}

func (h *Handler) resumeSync(w http.ResponseWriter, r *http.Request) {
	h.services.SyncManager.Resume()
	h.writeProgress(w)
}

func (h *Handler) getSyncProgress(w http.ResponseWriter, r *http.Request) {
	h.writeProgress(w)
}

func (h *Handler) writeProgress(w http.ResponseWriter) {
	progress := h.services.SyncManager.GetProgress()

	utils.WriteJSON(w, models.SyncProgressResponse{
		Progress: progress,
		Percent:  progress.Percent(),
		Syncing:  h.services.SyncManager.IsSyncing(),
		Paused:   h.services.SyncManager.IsPaused(),
	}, http.StatusOK)
}

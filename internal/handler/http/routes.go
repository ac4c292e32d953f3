package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Group(func(r chi.Router) {
		r.Use(h.withTraceID, h.withLogging)

		r.Post("/api/sync", h.triggerSync)
		r.Post("/api/sync/pause", h.pauseSync)
		r.Post("/api/sync/resume", h.resumeSync)
		r.Get("/api/sync/progress", h.getSyncProgress)

		r.Get("/api/queue/stats", h.getQueueStats)
		r.Post("/api/queue", h.enqueueRequest)
		r.Delete("/api/queue/{id}", h.removeRequest)

		r.Get("/api/token/status", h.getTokenStatus)
		r.Put("/api/token", h.updateToken)
		r.Get("/api/version", h.getVersion)
	})

	if h.metrics != nil {
		router.Handle("/metrics", h.metrics)
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}

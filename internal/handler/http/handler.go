package http

import (
	"net/http"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type Handler struct {
	services  *service.ClientServices
	metrics   http.Handler
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewHandler creates the control API handler. metrics may be nil, in which
// case /metrics is not served.
func NewHandler(services *service.ClientServices, metrics http.Handler, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		metrics:   metrics,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

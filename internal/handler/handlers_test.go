package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// newTestServices returns empty services. http.NewHandler only stores the
// pointer, so nothing is dereferenced at construction time.
func newTestServices() *service.ClientServices {
	return &service.ClientServices{}
}

func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.ClientServer{HTTPAddress: "127.0.0.1:8787"}

	h, err := NewHandlers(newTestServices(), http.NotFoundHandler(), models.AppBuildInfo{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), nil, models.AppBuildInfo{}, config.ClientServer{}, logger.Nop())

	assert.Nil(t, h)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.True(t, IsDisabled(err))
}

func TestIsDisabled_OtherError(t *testing.T) {
	assert.False(t, IsDisabled(assert.AnError))
	assert.False(t, IsDisabled(nil))
}

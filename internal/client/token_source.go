package client

import (
	"sync/atomic"

	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// coordinatorTokens lets the request executor read the bearer token from a
// coordinator that is created after the executor.
type coordinatorTokens struct {
	coordinator atomic.Pointer[service.TokenCoordinator]
}

func (t *coordinatorTokens) bind(c service.TokenCoordinator) {
	t.coordinator.Store(&c)
}

func (t *coordinatorTokens) GetToken() *models.TokenState {
	c := t.coordinator.Load()
	if c == nil || *c == nil {
		return nil
	}
	return (*c).GetToken()
}

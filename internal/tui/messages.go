package tui

import (
	"time"

	"github.com/MKhiriev/go-sync-keeper/models"
)

// syncEventMsg carries a sync manager event into the program loop.
type syncEventMsg struct {
	event models.SyncEvent
}

type syncDoneMsg struct {
	result models.SyncResult
	err    error
}

type statsLoadedMsg struct {
	stats models.QueueStats
	token models.TokenStatus
	err   error
}

type refreshTickMsg time.Time

package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/models"
)

var errNoSyncManager = errors.New("sync manager is not configured")

// monitoredEvents are forwarded from the sync manager into the program.
var monitoredEvents = []models.SyncEventType{
	models.EventStarted,
	models.EventProgress,
	models.EventCompleted,
	models.EventError,
	models.EventPaused,
	models.EventResumed,
}

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.SyncManager == nil {
		return nil, errNoSyncManager
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger.WithComponent("tui")}, nil
}

// Run shows the live sync monitor until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	program := tea.NewProgram(newMonitorModel(ctx, t.services, t.buildInfo), tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := t.forwardEvents(program)
	defer unsubscribe()

	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("monitor stopped with error")
		return err
	}

	if result, ok := finalModel.(monitorModel); ok && result.quit {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) forwardEvents(sender interface{ Send(tea.Msg) }) func() {
	ids := make(map[models.SyncEventType]int, len(monitoredEvents))
	for _, event := range monitoredEvents {
		ids[event] = t.services.SyncManager.AddListener(event, func(e models.SyncEvent) {
			sender.Send(syncEventMsg{event: e})
		})
	}

	return func() {
		for event, id := range ids {
			t.services.SyncManager.RemoveListener(event, id)
		}
	}
}

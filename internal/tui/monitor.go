package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/models"
)

const (
	statsRefreshInterval = 2 * time.Second
	barMaxWidth          = 60
)

type monitorModel struct {
	ctx         context.Context
	syncManager service.SyncManager
	queue       service.RequestQueue
	coordinator service.TokenCoordinator
	buildInfo   models.AppBuildInfo

	bar     progress.Model
	spinner spinner.Model

	progress   models.SyncProgress
	lastResult *models.SyncResult
	stats      models.QueueStats
	token      models.TokenStatus
	syncing    bool
	paused     bool
	status     string

	errOverlay *errorOverlayModel
	showInfo   bool
	quit       bool
}

func newMonitorModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) monitorModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := monitorModel{
		ctx:         ctx,
		syncManager: services.SyncManager,
		queue:       services.Queue,
		coordinator: services.Coordinator,
		buildInfo:   buildInfo,
		bar:         progress.New(progress.WithDefaultGradient(), progress.WithWidth(barMaxWidth)),
		spinner:     s,
	}
	if m.syncManager != nil {
		m.progress = m.syncManager.GetProgress()
		m.syncing = m.syncManager.IsSyncing()
		m.paused = m.syncManager.IsPaused()
	}

	return m
}

func (m monitorModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadStats(), m.cmdScheduleRefresh())
}

func (m monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width-8, 10), barMaxWidth)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case syncEventMsg:
		return m.applyEvent(msg.event)

	case syncDoneMsg:
		if msg.err != nil {
			m.errOverlay = &errorOverlayModel{message: humanizeSyncError(msg.err)}
			return m, nil
		}
		m.lastResult = &msg.result
		return m, m.cmdLoadStats()

	case statsLoadedMsg:
		if msg.err != nil {
			m.status = humanizeSyncError(msg.err)
			return m, nil
		}
		m.stats = msg.stats
		m.token = msg.token
		return m, nil

	case refreshTickMsg:
		return m, tea.Batch(m.cmdLoadStats(), m.cmdScheduleRefresh())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		if b, ok := bar.(progress.Model); ok {
			m.bar = b
		}
		return m, cmd
	}

	return m, nil
}

func (m monitorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quit = true
		return m, tea.Quit
	}

	if m.errOverlay != nil || m.showInfo {
		if key.Matches(msg, keys.esc) {
			m.errOverlay = nil
			m.showInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.status = ""
		return m, m.cmdTriggerSync()
	case key.Matches(msg, keys.pause):
		m.syncManager.Pause()
		return m, nil
	case key.Matches(msg, keys.resume):
		m.syncManager.Resume()
		return m, nil
	case key.Matches(msg, keys.info):
		m.showInfo = true
		return m, nil
	}

	return m, nil
}

func (m monitorModel) applyEvent(event models.SyncEvent) (tea.Model, tea.Cmd) {
	m.progress = event.Progress

	switch event.Type {
	case models.EventStarted:
		m.syncing = true
		m.status = ""
	case models.EventCompleted:
		m.syncing = false
		m.lastResult = event.Result
		m.status = "Синхронизация завершена"
	case models.EventError:
		m.syncing = false
		m.lastResult = event.Result
		if event.Err != nil {
			m.status = humanizeSyncError(event.Err)
		}
	case models.EventPaused:
		m.paused = true
		m.status = "Синхронизация приостановлена"
	case models.EventResumed:
		m.paused = false
		m.status = "Синхронизация возобновлена"
	}

	return m, tea.Batch(m.bar.SetPercent(m.progress.Percent()/100), m.cmdLoadStats())
}

func (m monitorModel) View() string {
	if m.errOverlay != nil {
		return appStyle.Render(m.errOverlay.View())
	}
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder

	b.WriteString(m.statusLine())
	b.WriteString("\n\n")
	b.WriteString(m.bar.ViewAs(m.progress.Percent() / 100))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Всего: %d  Отправлено: %d  Ошибки: %d  Пропущено: %d\n",
		m.progress.Total, m.progress.Synced, m.progress.Failed, m.progress.Skipped)

	if m.lastResult != nil {
		fmt.Fprintf(&b, "Последний запуск: %s за %s\n",
			resultLabel(*m.lastResult), m.lastResult.Duration.Round(time.Millisecond))
	}

	b.WriteString("\nОчередь\n")
	fmt.Fprintf(&b, "  в очереди: %d  ожидают: %d  с ошибками: %d\n",
		m.stats.TotalRequests, m.stats.PendingRequests, m.stats.FailedRequests)
	fmt.Fprintf(&b, "  high: %d  normal: %d  low: %d\n",
		m.stats.ByPriority[models.PriorityHigh],
		m.stats.ByPriority[models.PriorityNormal],
		m.stats.ByPriority[models.PriorityLow])

	b.WriteString("\nТокен\n")
	if m.token.Present {
		fmt.Fprintf(&b, "  версия: %d  истекает: %s\n", m.token.Version, m.token.ExpiresAt.Format(time.TimeOnly))
	} else {
		b.WriteString("  нет\n")
	}
	if m.token.Locked {
		b.WriteString("  обновляется другим контекстом\n")
	}
	if m.token.TabID != "" {
		b.WriteString("  контекст: " + fitText(m.token.TabID, 36) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	return appStyle.Render(renderPage("GO SYNC KEEPER", b.String(), "s: синхронизировать  p: пауза  r: продолжить  i: о программе"))
}

func (m monitorModel) statusLine() string {
	switch {
	case m.syncing:
		return m.spinner.View() + " Синхронизация..."
	case m.paused:
		return pausedStyle.Render("⏸ Пауза")
	case m.progress.Status == models.SyncError:
		return errorStyle.Render("✗ Ошибка")
	case m.progress.Status == models.SyncComplete:
		return okStyle.Render("✓ Готово")
	default:
		return "Ожидание"
	}
}

func resultLabel(r models.SyncResult) string {
	if r.Success {
		return okStyle.Render(fmt.Sprintf("успешно (%d)", r.Synced))
	}
	return errorStyle.Render(fmt.Sprintf("отправлено %d, ошибок %d", r.Synced, r.Failed))
}

func (m monitorModel) cmdTriggerSync() tea.Cmd {
	return func() tea.Msg {
		result, err := m.syncManager.TriggerSync(m.ctx)
		return syncDoneMsg{result: result, err: err}
	}
}

func (m monitorModel) cmdLoadStats() tea.Cmd {
	return func() tea.Msg {
		var msg statsLoadedMsg
		if m.queue != nil {
			msg.stats, msg.err = m.queue.GetStats(m.ctx)
		}
		if m.coordinator != nil {
			msg.token = m.coordinator.Status(m.ctx)
		}
		return msg
	}
}

func (m monitorModel) cmdScheduleRefresh() tea.Cmd {
	return tea.Tick(statsRefreshInterval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

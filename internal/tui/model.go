package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"devserve/internal/app"
)

// Controller defines the subset of app.App behaviour the TUI needs.
type Controller interface {
	Status() (app.DaemonStatus, error)
	StartDaemon() (*app.DaemonHandle, error)
	List(context.Context, app.ListParams) ([]app.Server, error)
	Health(ctx context.Context, projectID string, timeout time.Duration) (bool, error)
	Stop(ctx context.Context, projectID string, timeout time.Duration) error
}

// Model represents the Bubble Tea state.
type Model struct {
	controller Controller

	list    list.Model
	servers []app.Server

	daemonStatus app.DaemonStatus
	statusMsg    string

	err     error
	loading bool

	width  int
	height int

	lastUpdated time.Time
}

// New constructs a TUI model with default styles.
func New(ctrl Controller) *Model {
	delegate := list.NewDefaultDelegate()
	lst := list.New([]list.Item{}, delegate, 0, 0)
	lst.Title = "Dev servers"
	lst.SetShowHelp(false)
	lst.SetFilteringEnabled(false)
	lst.DisableQuitKeybindings()

	return &Model{
		controller: ctrl,
		list:       lst,
		statusMsg:  "Checking daemon status…",
		loading:    true,
	}
}

// Run spins up the Bubble Tea program with sensible defaults.
func Run(ctrl Controller) error {
	m := New(ctrl)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(checkDaemonStatusCmd(m.controller), loadServersCmd(m.controller))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.height > 4 {
			m.list.SetSize(msg.Width, msg.Height-4)
		}

	case daemonStatusMsg:
		m.daemonStatus = msg.status
		if msg.status.Running {
			if msg.status.PID > 0 {
				m.statusMsg = fmt.Sprintf("Daemon running (pid %d). Press r to refresh, q to quit.", msg.status.PID)
			} else {
				m.statusMsg = "Daemon running. Press r to refresh, q to quit."
			}
		} else {
			m.statusMsg = "Daemon is not running. Press s to start it."
			m.servers = nil
			m.list.SetItems(nil)
		}

	case serversLoadedMsg:
		m.loading = false
		m.err = nil
		m.servers = msg.servers
		items := make([]list.Item, 0, len(msg.servers))
		for _, srv := range msg.servers {
			items = append(items, serverItem{Server: srv})
		}
		m.list.SetItems(items)
		m.lastUpdated = time.Now()

	case daemonStartedMsg:
		m.statusMsg = "Daemon started."
		return m, tea.Batch(checkDaemonStatusCmd(m.controller), loadServersCmd(m.controller))

	case healthCheckedMsg:
		if msg.reachable {
			m.statusMsg = fmt.Sprintf("%s is reachable.", msg.projectID)
		} else {
			m.statusMsg = fmt.Sprintf("%s is NOT reachable.", msg.projectID)
		}
		return m, loadServersCmd(m.controller)

	case projectStoppedMsg:
		m.statusMsg = fmt.Sprintf("Stopped %s.", msg.projectID)
		return m, loadServersCmd(m.controller)

	case errMsg:
		m.loading = false
		m.err = msg.err

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, loadServersCmd(m.controller)
		case "s":
			if !m.daemonStatus.Running {
				m.statusMsg = "Starting daemon…"
				return m, startDaemonCmd(m.controller)
			}
		case "h":
			if current := m.currentServer(); current != nil {
				m.statusMsg = fmt.Sprintf("Probing %s…", current.ProjectID)
				return m, checkHealthCmd(m.controller, current.ProjectID)
			}
		case "x":
			if current := m.currentServer(); current != nil {
				m.statusMsg = fmt.Sprintf("Stopping %s…", current.ProjectID)
				return m, stopProjectCmd(m.controller, current.ProjectID)
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	statusStyle := lipgloss.NewStyle().Bold(true)
	if !m.daemonStatus.Running {
		statusStyle = statusStyle.Foreground(lipgloss.Color("203"))
	} else {
		statusStyle = statusStyle.Foreground(lipgloss.Color("42"))
	}
	b.WriteString(statusStyle.Render(m.statusMsg))
	b.WriteByte('\n')

	if m.loading {
		b.WriteString("Loading servers…\n")
	} else if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteByte('\n')
	}

	if len(m.list.Items()) == 0 && !m.loading && m.err == nil && m.daemonStatus.Running {
		b.WriteString("No dev servers registered.\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteByte('\n')
	}

	if current := m.currentServer(); current != nil {
		detail := fmt.Sprintf(
			"project=%s type=%s pid=%d\nurl=%s\nstatus=%s reachable=%t\nstarted=%s\nlast error: %s",
			current.ProjectID,
			current.Type,
			current.PID,
			current.URL,
			current.Status,
			current.Reachable,
			startedOrDash(current.StartedAt),
			valueOrDash(current.LastError),
		)
		detailStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginBottom(1)
		b.WriteString(detailStyle.Render(detail))
		b.WriteByte('\n')
	}

	help := "Commands: q quit • r reload • s start daemon • h probe project • x stop project"
	if !m.lastUpdated.IsZero() {
		help += fmt.Sprintf(" • last update %s", m.lastUpdated.Format(time.Kitchen))
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

// serverItem adapts app.Server to the bubbles list item interface.
type serverItem struct {
	Server app.Server
}

func (s serverItem) Title() string {
	reach := "unreachable"
	if s.Server.Reachable {
		reach = "reachable"
	}
	return fmt.Sprintf("[%s/%s] %s (%s)", s.Server.ProjectID, s.Server.Type, s.Server.Status, reach)
}

func (s serverItem) Description() string {
	return fmt.Sprintf("url=%s pid=%d port=%d", s.Server.URL, s.Server.PID, s.Server.Port)
}

func (s serverItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s %s", s.Server.ProjectID, s.Server.Type, s.Server.Name, s.Server.Status)
}

func (m *Model) currentServer() *app.Server {
	if len(m.servers) == 0 {
		return nil
	}
	idx := m.list.Index()
	if idx < 0 || idx >= len(m.servers) {
		return nil
	}
	return &m.servers[idx]
}

func valueOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func startedOrDash(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.DateTime)
}

type daemonStatusMsg struct {
	status app.DaemonStatus
}

type serversLoadedMsg struct {
	servers []app.Server
}

type daemonStartedMsg struct{}

type healthCheckedMsg struct {
	projectID string
	reachable bool
}

type projectStoppedMsg struct {
	projectID string
}

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func checkDaemonStatusCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		status, err := ctrl.Status()
		if err != nil {
			return errMsg{err}
		}
		return daemonStatusMsg{status: status}
	}
}

func loadServersCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		servers, err := ctrl.List(ctx, app.ListParams{Timeout: 4 * time.Second})
		if err != nil {
			return errMsg{err}
		}
		return serversLoadedMsg{servers: servers}
	}
}

func startDaemonCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		if _, err := ctrl.StartDaemon(); err != nil {
			return errMsg{err}
		}
		return daemonStartedMsg{}
	}
}

func checkHealthCmd(ctrl Controller, projectID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		reachable, err := ctrl.Health(ctx, projectID, 10*time.Second)
		if err != nil {
			return errMsg{err}
		}
		return healthCheckedMsg{projectID: projectID, reachable: reachable}
	}
}

func stopProjectCmd(ctrl Controller, projectID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := ctrl.Stop(ctx, projectID, 30*time.Second); err != nil {
			return errMsg{err}
		}
		return projectStoppedMsg{projectID: projectID}
	}
}

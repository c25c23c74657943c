// Package app hosts the bubbletea dashboard: a read-only live view of
// the current session and today's logged entries.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	trackercli "ttrack/internal/modules/tracker/adapter/in"
	trackerdto "ttrack/internal/modules/tracker/dto"
	"ttrack/internal/modules/tracker/domain"
	"ttrack/internal/ui/theme"
)

const refreshEvery = time.Second

type tickMsg time.Time

type refreshMsg struct {
	status trackerdto.StatusOutput
	report trackerdto.ReportOutput
	err    error
}

type Model struct {
	dir     string
	tracker trackercli.CLIHandler

	width  int
	height int

	status trackerdto.StatusOutput
	report trackerdto.ReportOutput
	err    error
}

func NewModel(dir string, tracker trackercli.CLIHandler) Model {
	return Model{dir: dir, tracker: tracker}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refresh(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(refreshEvery, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) refresh() tea.Cmd {
	tracker := m.tracker
	return func() tea.Msg {
		ctx := context.Background()
		status, err := tracker.Status(ctx)
		if err != nil {
			return refreshMsg{err: err}
		}
		report, err := tracker.Report(ctx, time.Now().Format(domain.DateLayout))
		if err != nil {
			return refreshMsg{status: status, err: err}
		}
		return refreshMsg{status: status, report: report}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.refresh()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		return m, tea.Batch(m.refresh(), tick())
	case refreshMsg:
		m.status = msg.status
		m.report = msg.report
		m.err = msg.err
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	paneWidth := m.width - 6
	if paneWidth < 30 {
		paneWidth = 30
	}

	header := theme.Title.Render("ttrack dashboard") +
		theme.Muted.Render("  "+time.Now().Format("Mon Jan 2 15:04:05"))

	var status string
	switch {
	case m.err != nil:
		status = theme.Idle.Render("error") + "\n" + theme.Muted.Render(m.err.Error())
	case m.status.Running:
		status = fmt.Sprintf("%s\n\nStarted:     %s\nElapsed:     %s\nDescription: %s\nUser:        %s",
			theme.Active.Render("TRACKING"),
			m.status.StartedAt.Format("15:04:05"),
			theme.Hot.Render(domain.FormatDuration(time.Since(m.status.StartedAt))),
			m.status.Description,
			m.status.User,
		)
	default:
		status = theme.Idle.Render("IDLE") + "\n\n" + theme.Muted.Render("no active session")
	}
	statusPane := theme.Pane.Width(paneWidth).Render(status)

	var today strings.Builder
	today.WriteString(theme.Title.Render("Today — "+m.report.Date) + "\n\n")
	if len(m.report.Entries) == 0 {
		today.WriteString(theme.Muted.Render("no entries yet"))
	} else {
		for _, entry := range m.report.Entries {
			today.WriteString(fmt.Sprintf("%s - %s  %s  %s\n",
				entry.StartTime, entry.EndTime,
				theme.Hot.Render(fmt.Sprintf("%5.2fh", entry.DurationHours)),
				entry.Description,
			))
		}
		today.WriteString("\n" + theme.Active.Render(fmt.Sprintf("Total: %.2f hours", m.report.TotalHours)))
	}
	todayPane := theme.Pane.Width(paneWidth).Render(today.String())

	footer := theme.Muted.Render("q quit · r refresh · data: " + m.dir)

	return theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, header, statusPane, todayPane, footer))
}

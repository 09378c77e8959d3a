package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/George-Madeley/Tools/internal/delivery"
)

type copiedMsg struct {
	err error
}

// Model previews a rendered report and copies it on request.
type Model struct {
	title     string
	report    string // rendered report, copied as is
	content   string // what the viewport shows
	clipboard delivery.Clipboard
	viewport  viewport.Model
	ready     bool
	width     int
	height    int
	status    string
	copyErr   error
}

func NewModel(title, report string, clipboard delivery.Clipboard) Model {
	content := report
	if report == "" {
		content = "No commits found"
	}
	return Model{
		title:     title,
		report:    report,
		content:   content,
		clipboard: clipboard,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) copyReport() tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: m.clipboard.Copy(m.report)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "c", "y":
			if m.report == "" {
				m.copyErr = nil
				m.status = "nothing to copy"
				return m, nil
			}
			return m, m.copyReport()
		}

	case copiedMsg:
		m.copyErr = msg.err
		if msg.err != nil {
			m.status = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("copied via %s", m.clipboard.Name())
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		bodyHeight := msg.Height - lipgloss.Height(m.renderHeader()) - lipgloss.Height(m.renderFooter())
		if bodyHeight < 1 {
			bodyHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, bodyHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = bodyHeight
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("170")).
		MarginRight(2)

	dividerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))

	title := titleStyle.Render(m.title)
	divider := dividerStyle.Render(strings.Repeat("─", m.width))

	return lipgloss.JoinVertical(lipgloss.Left, title, divider)
}

func (m Model) renderFooter() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))
	if m.copyErr != nil {
		statusStyle = statusStyle.Foreground(lipgloss.Color("196"))
	}

	dividerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))

	keys := []string{
		"j/k: scroll",
		"c: copy",
		"q: quit",
	}

	divider := dividerStyle.Render(strings.Repeat("─", m.width))
	helpText := helpStyle.Render(strings.Join(keys, " • "))
	if m.status != "" {
		helpText += "  " + statusStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, divider, helpText)
}

// Preview runs the full-screen preview until the user quits.
func Preview(title, report string, clipboard delivery.Clipboard) error {
	p := tea.NewProgram(NewModel(title, report, clipboard), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

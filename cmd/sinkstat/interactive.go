package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	growthStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	cfg      config
	rep      *report
	err      error
	timeline viewport.Model
	ready    bool
	done     bool
}

type encodedMsg struct {
	rep *report
	err error
}

func newInteractiveModel(cfg config) *interactiveModel {
	return &interactiveModel{cfg: cfg}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.runEncode
}

func (m *interactiveModel) runEncode() tea.Msg {
	rep, err := encode(m.cfg)
	return encodedMsg{rep: rep, err: err}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		headerHeight := 8
		if !m.ready {
			m.timeline = viewport.New(msg.Width, msg.Height-headerHeight)
			m.ready = true
		} else {
			m.timeline.Width = msg.Width
			m.timeline.Height = msg.Height - headerHeight
		}
		if m.done {
			m.timeline.SetContent(m.timelineContent())
		}

	case encodedMsg:
		m.rep = msg.rep
		m.err = msg.err
		m.done = true
		if m.ready {
			m.timeline.SetContent(m.timelineContent())
		}
	}

	if m.ready && m.done {
		var cmd tea.Cmd
		m.timeline, cmd = m.timeline.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) timelineContent() string {
	if m.rep == nil || len(m.rep.events) == 0 {
		return helpStyle.Render("no flushes: the whole output fit in the initial window")
	}

	var b strings.Builder
	for i, ev := range m.rep.events {
		if ev.newCap != ev.oldCap {
			b.WriteString(growthStyle.Render(
				fmt.Sprintf("flush %2d  %7d -> %7d bytes", i+1, ev.oldCap, ev.newCap)))
		} else {
			b.WriteString(growthStyle.Render(
				fmt.Sprintf("flush %2d  forwarded %d bytes", i+1, ev.oldCap)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("sinkstat"))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	case !m.done:
		b.WriteString(labelStyle.Render("encoding "))
		b.WriteString(valueStyle.Render(m.cfg.input))
		b.WriteString("...\n\n")
	default:
		b.WriteString(labelStyle.Render("input   "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%s (%d bytes)", m.cfg.input, m.rep.inputBytes)))
		b.WriteByte('\n')
		b.WriteString(labelStyle.Render("codec   "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%s level %d", m.cfg.codec, m.cfg.level)))
		b.WriteByte('\n')
		b.WriteString(labelStyle.Render("dest    "))
		b.WriteString(valueStyle.Render(m.cfg.destination))
		b.WriteByte('\n')
		b.WriteString(labelStyle.Render("output  "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%d bytes", m.rep.outputBytes)))
		if m.rep.capacity > 0 {
			b.WriteString(valueStyle.Render(fmt.Sprintf(" in a %d byte allocation", m.rep.capacity)))
		}
		b.WriteString("\n\n")

		if m.ready {
			b.WriteString(m.timeline.View())
			b.WriteByte('\n')
		}
	}

	b.WriteString(helpStyle.Render("q: quit • ↑/↓: scroll timeline"))
	return b.String()
}

func runInteractive(cfg config) error {
	p := tea.NewProgram(newInteractiveModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

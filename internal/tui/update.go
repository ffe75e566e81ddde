package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages for the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ProjectionCompleteMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.report = msg.Report
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
		return m, nil

	case "left", "h":
		return m.adjust(-1)

	case "right", "l", " ":
		return m.adjust(1)

	case "r":
		return m, projectCmd(m.engine, m.scenarioName, m.params)
	}
	return m, nil
}

// adjust steps the selected parameter and reprojects. An adjustment that
// fails validation keeps the previous parameters and surfaces the error.
func (m Model) adjust(dir int) (tea.Model, tea.Cmd) {
	next := m.params
	m.fields[m.cursor].step(&next, dir)
	next = next.Normalized()
	if err := next.Validate(); err != nil {
		m.err = err
		return m, nil
	}
	m.params = next
	return m, projectCmd(m.engine, m.scenarioName, m.params)
}

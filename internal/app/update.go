// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cardstack/internal/keymap"
	"github.com/llehouerou/cardstack/internal/ui/carousel"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case carousel.ActiveChangedMsg:
		m.SavePosition(msg.Index)
		return m, nil
	}

	if _, ok := msg.(tea.MouseMsg); ok && m.ShowHelp {
		return m, nil
	}

	// Mouse, focus and animation frames belong to the carousel.
	return m.forward(msg)
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Carousel, cmd = m.Carousel.Update(msg)
	m.place()
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Error message is dismissed by any key.
	if m.ErrorMsg != "" {
		m.ErrorMsg = ""
		if msg.String() != "ctrl+c" {
			return m, nil
		}
	}

	action := m.Keys.Resolve(msg.String())

	if m.ShowHelp {
		switch action {
		case keymap.ActionQuit:
			return m.quit()
		default:
			m.ShowHelp = false
			return m, nil
		}
	}

	switch action {
	case keymap.ActionQuit:
		return m.quit()
	case keymap.ActionHelp:
		m.ShowHelp = true
		return m, nil
	}

	return m.forward(msg)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Carousel.Close()
	return m, tea.Quit
}

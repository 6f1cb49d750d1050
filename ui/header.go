// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

var (
	headerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#333", Dark: "#FFF"}).
			Height(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight).
			Background(subtle).
			Padding(0, 1)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333", Dark: "#DDD"}).
			Background(subtle).
			Padding(0, 1)

	headerButtonStyle = lipgloss.NewStyle().
				Background(highlight).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}).
				Margin(0, 1).
				Padding(0, 1)

	headerButtonActiveStyle = headerButtonStyle.
				Background(special).
				Bold(true)
)

// searchRequestMsg is sent when the header's search button is clicked.
type searchRequestMsg struct{}

type header struct {
	id        string
	width     int
	title     string
	state     string
	mode      string
	searching bool
}

func newHeader(title string) *header {
	return &header{
		id:    zone.NewPrefix(),
		title: title,
	}
}

func (h *header) Init() tea.Cmd {
	return nil
}

func (h *header) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return h, nil
		}
		if inBounds(h.buttonID(), msg) {
			return h, func() tea.Msg { return searchRequestMsg{} }
		}
	}
	return h, nil
}

// setStatus updates the badges shown next to the title.
func (h *header) setStatus(state, mode string, searching bool) {
	h.state = state
	h.mode = mode
	h.searching = searching
}

func (h *header) View() string {
	style := headerButtonStyle
	if h.searching {
		style = headerButtonActiveStyle
	}
	button := zone.Mark(h.buttonID(), style.Render("Search"))
	buttonWidth := lipgloss.Width(button)

	badges := badgeStyle.Render(h.state + " · " + h.mode)
	title := titleStyle.Render(h.title)

	// Calculate spacing to push the button to the right
	spacingWidth := h.width - lipgloss.Width(title) - lipgloss.Width(badges) - buttonWidth
	if spacingWidth < 0 {
		spacingWidth = 0
	}
	spacing := lipgloss.NewStyle().Background(subtle).Width(spacingWidth).Render("")

	content := lipgloss.JoinHorizontal(lipgloss.Center, title, badges, spacing, button)
	return headerStyle.Width(h.width).MaxWidth(h.width).MaxHeight(1).Render(content)
}

func (h *header) buttonID() string {
	return h.id + "search"
}

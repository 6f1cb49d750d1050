// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

var (
	footerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#AAA"}).
			Height(1)

	debugStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999", Dark: "#666"})
)

type footer struct {
	width          int
	terminalWidth  int
	terminalHeight int
	offset         float64
	fade           float64
	status         string
	help           []key.Binding
}

func newFooter(keys KeyMap) *footer {
	return &footer{help: keys.ShortHelp()}
}

func (f *footer) Init() tea.Cmd {
	return nil
}

func (f *footer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		f.terminalWidth = msg.Width
		f.terminalHeight = msg.Height
	}
	return f, nil
}

// setDrawer records the live drawer position for display.
func (f *footer) setDrawer(offset, fade float64) {
	f.offset = offset
	f.fade = fade
}

func (f *footer) setStatus(status string) {
	f.status = status
}

func (f *footer) View() string {
	mouseInfo := "mouse: off"
	if zone.Enabled() {
		mouseInfo = "mouse: on"
	}

	help := make([]string, 0, len(f.help))
	for _, b := range f.help {
		h := b.Help()
		help = append(help, h.Key+"="+h.Desc)
	}

	info := fmt.Sprintf("%dx%d | offset %.1f | fade %.2f | %s | %s",
		f.terminalWidth, f.terminalHeight, f.offset, f.fade, mouseInfo, strings.Join(help, " "))
	if f.status != "" {
		info = f.status + " | " + info
	}
	content := debugStyle.Render(info)
	return footerStyle.Width(f.width).MaxWidth(f.width).MaxHeight(1).Render(content)
}

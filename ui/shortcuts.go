// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package ui

import (
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sahilm/fuzzy"
)

var (
	listItemStyle     = lipgloss.NewStyle().PaddingLeft(2).Foreground(text).Render
	listSelectedStyle = lipgloss.NewStyle().
				Foreground(highlight).
				Bold(true).
				SetString("›").
				String()
	listCommandStyle = lipgloss.NewStyle().Foreground(muted).Render
	listEmptyStyle   = lipgloss.NewStyle().Foreground(muted).Italic(true).PaddingLeft(2).Render
)

// Shortcut is one entry of the drawer's list.
type Shortcut struct {
	Name    string
	Command string
}

// DefaultShortcuts returns the entries shown when no others are configured.
func DefaultShortcuts() []Shortcut {
	return []Shortcut{
		{Name: "Disk usage", Command: "du -sh ."},
		{Name: "Free memory", Command: "free -h"},
		{Name: "Git status", Command: "git status --short"},
		{Name: "Git log graph", Command: "git log --oneline --graph --decorate"},
		{Name: "Listening ports", Command: "ss -tlnp"},
		{Name: "Largest files", Command: "du -ah . | sort -rh | head -n 20"},
		{Name: "Public IP", Command: "curl -s https://ifconfig.me"},
		{Name: "Docker containers", Command: "docker ps --format '{{.Names}}\\t{{.Status}}'"},
		{Name: "Kernel version", Command: "uname -a"},
		{Name: "Uptime", Command: "uptime"},
		{Name: "Processes by memory", Command: "ps aux --sort=-%mem | head"},
		{Name: "Weather", Command: "curl -s wttr.in?format=3"},
	}
}

// searchFocusedMsg is sent when the search field gains focus.
type searchFocusedMsg struct{}

// copiedMsg reports the result of copying a shortcut's command.
type copiedMsg struct {
	name string
	err  error
}

// ShortcutList is the content of the drawer: a search field above a list of
// shortcuts filtered by fuzzy match.
type ShortcutList struct {
	id       string
	width    int
	height   int
	keys     KeyMap
	search   textinput.Model
	items    []Shortcut
	filtered []int // indexes into items, in display order
	selected int
	copy     func(string) error
}

// NewShortcutList creates the list with every item visible.
func NewShortcutList(items []Shortcut, keys KeyMap) *ShortcutList {
	ti := textinput.New()
	ti.Placeholder = "Search shortcuts..."
	ti.CharLimit = 64
	ti.Width = 30

	l := &ShortcutList{
		id:     zone.NewPrefix(),
		keys:   keys,
		search: ti,
		items:  items,
		copy:   clipboard.WriteAll,
	}
	l.filter()
	return l
}

func (l *ShortcutList) Init() tea.Cmd {
	return nil
}

func (l *ShortcutList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.width = msg.Width
		l.height = msg.Height
		if msg.Width > 6 {
			l.search.Width = msg.Width - 6
		}
		return l, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return l, nil
		}
		if inBounds(l.searchID(), msg) {
			return l, l.Focus()
		}
		for pos, idx := range l.filtered {
			// Check each item to see if it's in bounds.
			if inBounds(l.itemID(idx), msg) {
				l.selected = pos
				return l, l.copySelected()
			}
		}
		return l, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, l.keys.Up):
			if l.selected > 0 {
				l.selected--
			}
			return l, nil
		case key.Matches(msg, l.keys.Down):
			if l.selected < len(l.filtered)-1 {
				l.selected++
			}
			return l, nil
		case key.Matches(msg, l.keys.Copy):
			return l, l.copySelected()
		}

		if !l.search.Focused() {
			if key.Matches(msg, l.keys.Search) {
				return l, l.Focus()
			}
			return l, nil
		}
		if key.Matches(msg, l.keys.Blur) {
			l.search.Blur()
			return l, nil
		}
	}

	var cmd tea.Cmd
	l.search, cmd = l.search.Update(msg)
	l.filter()
	return l, cmd
}

// Focus moves the cursor into the search field. The first focus also
// announces itself so the host can expand the drawer.
func (l *ShortcutList) Focus() tea.Cmd {
	if l.search.Focused() {
		return nil
	}
	return tea.Batch(l.search.Focus(), func() tea.Msg {
		return searchFocusedMsg{}
	})
}

// Searching reports whether the search field has focus.
func (l *ShortcutList) Searching() bool {
	return l.search.Focused()
}

// Query returns the current search text.
func (l *ShortcutList) Query() string {
	return l.search.Value()
}

// SetQuery replaces the search text and refilters.
func (l *ShortcutList) SetQuery(q string) {
	l.search.SetValue(q)
	l.filter()
}

// Visible returns the items matching the current query, in display order.
func (l *ShortcutList) Visible() []Shortcut {
	out := make([]Shortcut, 0, len(l.filtered))
	for _, idx := range l.filtered {
		out = append(out, l.items[idx])
	}
	return out
}

// Selected returns the highlighted item, if any.
func (l *ShortcutList) Selected() (Shortcut, bool) {
	if l.selected < 0 || l.selected >= len(l.filtered) {
		return Shortcut{}, false
	}
	return l.items[l.filtered[l.selected]], true
}

func (l *ShortcutList) View() string {
	out := []string{zone.Mark(l.searchID(), searchStyle.Render(l.search.View()))}

	if len(l.filtered) == 0 {
		out = append(out, listEmptyStyle("No shortcuts match"))
	}
	for pos, idx := range l.filtered {
		item := l.items[idx]
		line := listItemStyle(item.Name) + "  " + listCommandStyle(item.Command)
		if pos == l.selected {
			line = listSelectedStyle + " " + strings.TrimLeft(line, " ")
		}
		out = append(out, zone.Mark(l.itemID(idx), line))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, out...)
	style := lipgloss.NewStyle()
	if l.width > 0 {
		style = style.Width(l.width).MaxWidth(l.width)
	}
	if l.height > 0 {
		style = style.MaxHeight(l.height)
	}
	return style.Render(content)
}

func (l *ShortcutList) filter() {
	query := strings.TrimSpace(l.search.Value())

	l.filtered = l.filtered[:0]
	if query == "" {
		for i := range l.items {
			l.filtered = append(l.filtered, i)
		}
	} else {
		names := make([]string, len(l.items))
		for i, item := range l.items {
			names[i] = item.Name + " " + item.Command
		}
		for _, match := range fuzzy.Find(query, names) {
			l.filtered = append(l.filtered, match.Index)
		}
	}

	if l.selected >= len(l.filtered) {
		l.selected = len(l.filtered) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

func (l *ShortcutList) copySelected() tea.Cmd {
	item, ok := l.Selected()
	if !ok {
		return nil
	}
	write := l.copy
	return func() tea.Msg {
		return copiedMsg{name: item.Name, err: write(item.Command)}
	}
}

func (l *ShortcutList) searchID() string {
	return l.id + "search"
}

func (l *ShortcutList) itemID(idx int) string {
	return l.id + "item_" + strconv.Itoa(idx)
}

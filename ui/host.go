// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package ui

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/shortcutsdrawer/drawer"
)

const (
	headerHeight = 1
	footerHeight = 1

	// In Regular mode the drawer is a card on the left of the board.
	regularDrawerFraction = 0.4
	regularDrawerMinWidth = 40

	// drawerChrome is the border plus horizontal padding around the content.
	drawerChrome = 4
)

// frameMsg advances the running spring animation by one frame.
type frameMsg struct{}

// Host owns the screen: it lays out the board and the drawer, feeds mouse
// drags into the drawer controller and plays the resulting animations.
type Host struct {
	id         string
	cfg        drawer.Config
	keys       KeyMap
	controller *drawer.Controller
	drag       *DragHandler
	content    *ShortcutList
	header     *header
	footer     *footer
	shortcuts  []Shortcut

	width  int
	height int

	offset    float64 // offset currently drawn
	fade      float64 // overlay opacity currently drawn
	animation *drawer.Animation
	ticking   bool
}

// NewHost creates the host with a compressed drawer listing items.
func NewHost(cfg drawer.Config, items []Shortcut) *Host {
	keys := DefaultKeyMap()
	return &Host{
		id:         zone.NewPrefix(),
		cfg:        cfg,
		keys:       keys,
		controller: drawer.NewController(cfg),
		drag:       NewDragHandler(),
		content:    NewShortcutList(items, keys),
		header:     newHeader("Shortcuts"),
		footer:     newFooter(keys),
		shortcuts:  items,
	}
}

func (h *Host) Init() tea.Cmd {
	return nil
}

func (h *Host) isInitialized() bool {
	return h.height != 0 && h.width != 0
}

// Controller exposes the drawer state machine.
func (h *Host) Controller() *drawer.Controller { return h.controller }

// Content exposes the drawer's shortcut list.
func (h *Host) Content() *ShortcutList { return h.content }

// Offset returns the drawer offset currently drawn.
func (h *Host) Offset() float64 { return h.offset }

// Fade returns the overlay opacity currently drawn.
func (h *Host) Fade() float64 { return h.fade }

// Animating reports whether a spring animation is running.
func (h *Host) Animating() bool { return h.animation != nil }

func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !h.isInitialized() {
		if _, ok := msg.(tea.WindowSizeMsg); !ok {
			if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, h.keys.Quit) {
				return h, tea.Quit
			}
			return h, nil
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, h.keys.Quit):
			return h, tea.Quit
		case key.Matches(msg, h.keys.ToggleMouse):
			zone.SetEnabled(!zone.Enabled())
			return h, nil
		}
		// Content ignores input while the drawer is being dragged.
		if !h.controller.InteractionEnabled() {
			return h, nil
		}
		_, cmd := h.content.Update(msg)
		return h, cmd

	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.height = msg.Height
		h.header.Update(msg)
		h.footer.Update(msg)
		h.relayout()
		return h, nil

	case tea.MouseMsg:
		if g, ok := h.drag.HandleMouseEvent(msg, []string{h.handleID()}); ok {
			return h, h.handleGesture(g)
		}
		_, headerCmd := h.header.Update(msg)
		if !h.controller.InteractionEnabled() {
			return h, headerCmd
		}
		_, contentCmd := h.content.Update(msg)
		return h, tea.Batch(headerCmd, contentCmd)

	case searchRequestMsg:
		return h, h.content.Focus()

	case searchFocusedMsg:
		return h, h.animate(h.controller.ProgrammaticExpand())

	case copiedMsg:
		if msg.err != nil {
			h.footer.setStatus(fmt.Sprintf("Couldn't write to clipboard: %v", msg.err))
			log.Printf("clipboard: %v", msg.err)
		} else {
			h.footer.setStatus("Copied " + msg.name)
		}
		return h, nil

	case frameMsg:
		return h, h.step()
	}

	_, cmd := h.content.Update(msg)
	return h, cmd
}

// relayout recomputes the container and lets the controller place the
// drawer for it. A running animation jumps to its end first so the new
// layout starts from a settled state.
func (h *Host) relayout() {
	if h.animation != nil {
		h.finish()
	}

	size := h.containerSize()
	mode := drawer.ModeForSize(size, h.cfg)
	h.offset = h.controller.Layout(size, mode)
	if h.controller.LiveFade() {
		h.fade = h.controller.FadeFraction(h.offset)
	}

	h.content.Update(tea.WindowSizeMsg{
		Width:  h.drawerWidth() - drawerChrome,
		Height: int(size.Height),
	})
	log.Printf("layout: %vx%v %s, %s at %.1f", size.Width, size.Height, mode, h.controller.State(), h.offset)
}

func (h *Host) handleGesture(g Gesture) tea.Cmd {
	switch g.Phase {
	case GestureBegan:
		if h.animation != nil {
			h.finish()
		}
		h.applyDrag(h.controller.Drag(0, 0))
		return nil

	case GestureChanged:
		h.applyDrag(h.controller.Drag(g.TranslationY, g.VelocityY))
		return nil

	case GestureEnded:
		h.applyDrag(h.controller.Drag(g.TranslationY, g.VelocityY))
		return h.animate(h.controller.DragEnd(h.controller.Offset(), g.VelocityY))
	}
	return nil
}

func (h *Host) applyDrag(res drawer.DragResult) {
	if res.Accepted {
		h.offset = res.Offset
	}
	if res.RefreshFade {
		h.fade = h.controller.FadeFraction(res.Offset)
	}
}

// animate starts the spring for t. Only one frame loop runs at a time; a
// newer transition takes over the loop of the one it replaces.
func (h *Host) animate(t drawer.Transition) tea.Cmd {
	if h.animation != nil {
		h.controller.CompleteAnimation(h.animation.Transition())
	}

	h.animation = drawer.NewAnimation(t, h.cfg.FPS)
	if h.animation.Done() {
		h.finish()
		return nil
	}
	if h.ticking {
		return nil
	}
	h.ticking = true
	return h.tick()
}

func (h *Host) tick() tea.Cmd {
	return tea.Tick(h.animation.Frame(), func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (h *Host) step() tea.Cmd {
	if h.animation == nil {
		h.ticking = false
		return nil
	}

	offset, done := h.animation.Step()
	if !h.controller.Dragging() {
		h.offset = offset
		h.controller.SetLiveOffset(offset)
		if h.controller.LiveFade() {
			h.fade = h.controller.FadeFraction(offset)
		}
	}

	if done {
		h.finish()
		h.ticking = false
		return nil
	}
	return h.tick()
}

// finish commits the running animation's target.
func (h *Host) finish() {
	t := h.animation.Transition()
	h.animation = nil
	h.controller.CompleteAnimation(t)
	if h.controller.Dragging() {
		return
	}
	h.offset = t.Offset
	if h.controller.LiveFade() {
		h.fade = h.controller.FadeFraction(t.Offset)
	}
}

func (h *Host) containerSize() drawer.Size {
	height := h.height - headerHeight - footerHeight
	if height < 0 {
		height = 0
	}
	return drawer.Size{Width: float64(h.width), Height: float64(height)}
}

func (h *Host) drawerWidth() int {
	if h.controller.Mode() == drawer.Compact {
		return h.width
	}
	w := int(float64(h.width) * regularDrawerFraction)
	if w < regularDrawerMinWidth {
		w = regularDrawerMinWidth
	}
	if w > h.width {
		w = h.width
	}
	return w
}

// visibleRows converts the drawn offset into the number of container rows the
// drawer covers.
func (h *Host) visibleRows() int {
	container := int(h.containerSize().Height)
	rows := container - int(math.Round(h.offset))
	if rows < 0 {
		return 0
	}
	if rows > container {
		return container
	}
	return rows
}

func (h *Host) handleID() string {
	return h.id + "handle"
}

func (h *Host) View() string {
	if !h.isInitialized() {
		return ""
	}

	h.header.setStatus(h.controller.State().String(), h.controller.Mode().String(), h.content.Searching())
	h.footer.setDrawer(h.offset, h.fade)

	parts := []string{h.header.View()}
	if body := h.renderContainer(); body != "" {
		parts = append(parts, body)
	}
	parts = append(parts, h.footer.View())
	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (h *Host) renderContainer() string {
	container := int(h.containerSize().Height)
	if container <= 0 {
		return ""
	}
	visible := h.visibleRows()

	if h.controller.Mode() == drawer.Compact {
		var parts []string
		if board := h.renderBoard(h.width, container-visible); board != "" {
			parts = append(parts, board)
		}
		if d := h.renderDrawer(h.width, visible); d != "" {
			parts = append(parts, d)
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	dw := h.drawerWidth()
	var left []string
	if d := h.renderDrawer(dw, visible); d != "" {
		left = append(left, d)
	}
	if rest := container - visible; rest > 0 {
		left = append(left, h.renderShade(dw, rest))
	}
	column := lipgloss.JoinVertical(lipgloss.Left, left...)
	board := h.renderBoard(h.width-dw, container)
	if board == "" {
		return column
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, column, board)
}

// renderDrawer draws the drawer panel with its grab handle on the edge that
// moves: the top in Compact mode, the bottom in Regular mode.
func (h *Host) renderDrawer(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	grabStyle := grabberStyle
	if h.drag.IsDragging() {
		grabStyle = grabberActiveStyle
	}

	if height < 3 || width <= drawerChrome {
		grab := zone.Mark(h.handleID(), grabStyle.Width(width).Render(strings.Repeat("━", min(width, 8))))
		return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(grab)
	}

	inner := height - 2
	grab := zone.Mark(h.handleID(), grabStyle.Width(width-drawerChrome).Render(strings.Repeat("━", min(width-drawerChrome, 8))))
	body := h.content.View()

	var content string
	if h.controller.Mode() == drawer.Compact {
		content = lipgloss.JoinVertical(lipgloss.Left, grab, body)
	} else if inner > 1 {
		clipped := lipgloss.NewStyle().Height(inner - 1).MaxHeight(inner - 1).Render(body)
		content = lipgloss.JoinVertical(lipgloss.Left, clipped, grab)
	} else {
		content = grab
	}

	return drawerStyle.
		Width(width - 2).
		Height(inner).
		MaxHeight(height).
		Render(lipgloss.NewStyle().MaxHeight(inner).Render(content))
}

// renderShade fills the space below the Regular drawer card.
func (h *Host) renderShade(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Render("")
}

// renderBoard draws the tiles behind the drawer, darkened by the overlay.
func (h *Host) renderBoard(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	var rows []string
	var row []string
	rowWidth := 0
	for i, item := range h.shortcuts {
		tile := tileStyle.
			Background(dim(tilePalette[i%len(tilePalette)], h.fade)).
			Foreground(dim(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1A1A1A"}, h.fade)).
			Render(item.Name)
		w := lipgloss.Width(tile)
		if rowWidth+w > width && len(row) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
			rowWidth = 0
		}
		row = append(row, tile)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

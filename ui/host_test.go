package ui

import (
	"math"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/shortcutsdrawer/drawer"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// newTestHost returns a host whose drag handle is hit by every press.
func newTestHost(t *testing.T, width, height int) (*Host, *fakeClock) {
	t.Helper()
	h := NewHost(drawer.TerminalConfig(), DefaultShortcuts())
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	h.drag.now = clock.now
	withHit(t, func(id string, msg tea.MouseMsg) bool {
		return id == h.handleID() && msg.Action == tea.MouseActionPress
	})
	h.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return h, clock
}

// runFrames steps the animation until it finishes.
func runFrames(t *testing.T, h *Host) {
	t.Helper()
	for i := 0; h.Animating(); i++ {
		if i > 1000 {
			t.Fatal("animation did not finish")
		}
		h.Update(frameMsg{})
	}
}

func TestHostIgnoresInputBeforeSize(t *testing.T) {
	h := NewHost(drawer.TerminalConfig(), DefaultShortcuts())
	if _, cmd := h.Update(frameMsg{}); cmd != nil {
		t.Error("frame before layout returned a command")
	}
	if h.View() != "" {
		t.Error("View() before layout is not empty")
	}
	if h.Controller().LaidOut() {
		t.Error("controller laid out before the first size message")
	}
}

func TestHostLayout(t *testing.T) {
	h, _ := newTestHost(t, 100, 32)
	c := h.Controller()
	if c.Mode() != drawer.Compact {
		t.Errorf("Mode() = %s, want compact", c.Mode())
	}
	if !approx(h.Offset(), 27) {
		t.Errorf("Offset() = %v, want 27", h.Offset())
	}
	if h.visibleRows() != 3 {
		t.Errorf("visibleRows() = %d, want 3", h.visibleRows())
	}

	h.Update(tea.WindowSizeMsg{Width: 160, Height: 52})
	if c.Mode() != drawer.Regular {
		t.Errorf("Mode() = %s, want regular", c.Mode())
	}
	if !approx(h.Offset(), 45) {
		t.Errorf("Offset() = %v, want 45", h.Offset())
	}
	if h.drawerWidth() != 64 {
		t.Errorf("drawerWidth() = %d, want 64", h.drawerWidth())
	}
}

func TestHostCompactDragToFullHeight(t *testing.T) {
	h, clock := newTestHost(t, 100, 32)

	h.Update(mouse(tea.MouseActionPress, 28))
	if h.Controller().InteractionEnabled() {
		t.Error("content interaction enabled while dragging")
	}

	clock.advance(50 * time.Millisecond)
	h.Update(mouse(tea.MouseActionMotion, 8))
	if !approx(h.Offset(), 7) {
		t.Fatalf("Offset() during drag = %v, want 7", h.Offset())
	}
	if !approx(h.Fade(), 0.4) {
		t.Errorf("Fade() during compact drag = %v, want 0.4", h.Fade())
	}

	clock.advance(10 * time.Millisecond)
	_, cmd := h.Update(mouse(tea.MouseActionRelease, 8))
	if cmd == nil {
		t.Fatal("release did not start the animation")
	}
	if h.Controller().State() != drawer.FullHeight {
		t.Fatalf("State() = %s, want full height", h.Controller().State())
	}

	runFrames(t, h)
	if !approx(h.Offset(), 3) || !approx(h.Controller().SettledOffset(), 3) {
		t.Errorf("offset=%v settled=%v, want 3", h.Offset(), h.Controller().SettledOffset())
	}
	if !h.Controller().InteractionEnabled() {
		t.Error("content interaction still disabled")
	}

	// the drawer keeps its state across a resize
	h.Update(tea.WindowSizeMsg{Width: 100, Height: 22})
	if !approx(h.Offset(), 2) {
		t.Errorf("Offset() after resize = %v, want 2", h.Offset())
	}
}

func TestHostRegularRelease(t *testing.T) {
	tests := []struct {
		name  string
		pause time.Duration
		want  drawer.ExpansionState
	}{
		// 5 rows in 50ms is a flick out of compressed
		{"flick", 10 * time.Millisecond, drawer.Expanded},
		// resting before release snaps back by position
		{"slow", 200 * time.Millisecond, drawer.Compressed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, clock := newTestHost(t, 160, 52)

			h.Update(mouse(tea.MouseActionPress, 10))
			clock.advance(50 * time.Millisecond)
			h.Update(mouse(tea.MouseActionMotion, 15))
			if !approx(h.Offset(), 40) {
				t.Fatalf("Offset() during drag = %v, want 40", h.Offset())
			}

			clock.advance(tt.pause)
			h.Update(mouse(tea.MouseActionRelease, 15))
			runFrames(t, h)

			if got := h.Controller().State(); got != tt.want {
				t.Errorf("State() = %s, want %s", got, tt.want)
			}
			want := h.Controller().Offsets().For(tt.want)
			if !approx(h.Offset(), want) {
				t.Errorf("Offset() = %v, want %v", h.Offset(), want)
			}
			if h.Fade() != 0 {
				t.Errorf("Fade() in regular mode = %v, want 0", h.Fade())
			}
		})
	}
}

func TestHostBlocksContentWhileDragging(t *testing.T) {
	h, clock := newTestHost(t, 100, 32)

	h.Update(mouse(tea.MouseActionPress, 28))
	h.Update(tea.KeyMsg{Type: tea.KeyDown})
	if item, _ := h.Content().Selected(); item.Name != "Disk usage" {
		t.Errorf("selection moved during drag to %q", item.Name)
	}

	clock.advance(300 * time.Millisecond)
	h.Update(mouse(tea.MouseActionRelease, 28))
	h.Update(tea.KeyMsg{Type: tea.KeyDown})
	if item, _ := h.Content().Selected(); item.Name != "Free memory" {
		t.Errorf("selection after drag = %q, want Free memory", item.Name)
	}
}

func TestHostSearchExpandsDrawer(t *testing.T) {
	h, _ := newTestHost(t, 100, 32)

	h.Update(searchRequestMsg{})
	if !h.Content().Searching() {
		t.Fatal("search button did not focus the search field")
	}

	_, cmd := h.Update(searchFocusedMsg{})
	if cmd == nil {
		t.Fatal("focusing search did not start an animation")
	}
	if h.Controller().State() != drawer.FullHeight {
		t.Errorf("State() = %s, want full height", h.Controller().State())
	}
	runFrames(t, h)
	if !approx(h.Offset(), 3) {
		t.Errorf("Offset() = %v, want 3", h.Offset())
	}
}

func TestHostPressDuringAnimationFinishesIt(t *testing.T) {
	h, _ := newTestHost(t, 100, 32)

	h.Update(searchFocusedMsg{})
	h.Update(frameMsg{})
	if !h.Animating() {
		t.Fatal("animation finished after one frame")
	}

	h.Update(mouse(tea.MouseActionPress, 5))
	if h.Animating() {
		t.Error("animation still running after a new drag began")
	}
	if !approx(h.Controller().SettledOffset(), 3) {
		t.Errorf("SettledOffset() = %v, want 3", h.Controller().SettledOffset())
	}
}

func TestHostCopiedStatus(t *testing.T) {
	h, _ := newTestHost(t, 100, 32)
	h.Update(copiedMsg{name: "Uptime"})
	if !strings.Contains(h.footer.View(), "Copied Uptime") {
		t.Errorf("footer = %q", h.footer.View())
	}
}

func TestHostView(t *testing.T) {
	for _, size := range [][2]int{{100, 32}, {160, 52}, {30, 6}} {
		h, _ := newTestHost(t, size[0], size[1])
		view := h.View()
		if !strings.Contains(view, "Shortcuts") {
			t.Errorf("%dx%d: view has no title", size[0], size[1])
		}
		if got := lipgloss.Height(view); got > size[1] {
			t.Errorf("%dx%d: view is %d rows tall", size[0], size[1], got)
		}
	}
}

package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestList() (*ShortcutList, *[]string) {
	l := NewShortcutList(DefaultShortcuts(), DefaultKeyMap())
	var copied []string
	l.copy = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	return l, &copied
}

func TestShortcutListCopiesSelection(t *testing.T) {
	l, copied := newTestList()

	l.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := l.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter returned no command")
	}
	msg, ok := cmd().(copiedMsg)
	if !ok {
		t.Fatalf("command returned %T, want copiedMsg", cmd())
	}
	if msg.name != "Free memory" || msg.err != nil {
		t.Errorf("copiedMsg = %+v", msg)
	}
	if len(*copied) != 1 || (*copied)[0] != "free -h" {
		t.Errorf("clipboard got %v", *copied)
	}
}

func TestShortcutListCopyError(t *testing.T) {
	l, _ := newTestList()
	l.copy = func(string) error { return errors.New("no clipboard") }

	_, cmd := l.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg := cmd().(copiedMsg)
	if msg.err == nil {
		t.Error("copy error was lost")
	}
}

func TestShortcutListSelectionBounds(t *testing.T) {
	l, _ := newTestList()
	l.Update(tea.KeyMsg{Type: tea.KeyUp})
	if item, _ := l.Selected(); item.Name != "Disk usage" {
		t.Errorf("Selected() after up at top = %q", item.Name)
	}
	for i := 0; i < 50; i++ {
		l.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	items := DefaultShortcuts()
	if item, _ := l.Selected(); item.Name != items[len(items)-1].Name {
		t.Errorf("Selected() after many downs = %q", item.Name)
	}
}

func TestShortcutListFuzzyFilter(t *testing.T) {
	l, _ := newTestList()
	l.SetQuery("git")

	visible := l.Visible()
	if len(visible) == 0 {
		t.Fatal("no matches for git")
	}
	if !strings.HasPrefix(visible[0].Name, "Git") {
		t.Errorf("best match = %q, want a Git shortcut", visible[0].Name)
	}
	if len(visible) >= len(DefaultShortcuts()) {
		t.Errorf("filter kept all %d items", len(visible))
	}

	l.SetQuery("zzzz")
	if len(l.Visible()) != 0 {
		t.Errorf("Visible() = %v, want none", l.Visible())
	}
	if _, ok := l.Selected(); ok {
		t.Error("Selected() reported an item with no matches")
	}
	if _, cmd := l.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("enter with no matches returned a command")
	}

	l.SetQuery("")
	if len(l.Visible()) != len(DefaultShortcuts()) {
		t.Errorf("clearing the query left %d items", len(l.Visible()))
	}
}

func TestShortcutListClickCopiesItem(t *testing.T) {
	l, copied := newTestList()
	withHit(t, func(id string, _ tea.MouseMsg) bool { return id == l.itemID(2) })

	_, cmd := l.Update(mouse(tea.MouseActionRelease, 5))
	if cmd == nil {
		t.Fatal("click returned no command")
	}
	cmd()
	if len(*copied) != 1 || (*copied)[0] != "git status --short" {
		t.Errorf("clipboard got %v", *copied)
	}
	if item, _ := l.Selected(); item.Name != "Git status" {
		t.Errorf("Selected() = %q", item.Name)
	}
}

func TestShortcutListSearchKey(t *testing.T) {
	l, _ := newTestList()
	if l.Searching() {
		t.Fatal("Searching() = true before focus")
	}

	_, cmd := l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if cmd == nil || !l.Searching() {
		t.Fatal("/ did not focus the search field")
	}
	if again := l.Focus(); again != nil {
		t.Error("Focus() on a focused field returned a command")
	}

	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ss")})
	if l.Query() != "ss" {
		t.Errorf("Query() = %q, want %q", l.Query(), "ss")
	}

	l.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if l.Searching() {
		t.Error("esc did not leave the search field")
	}
}

package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"navctl/internal/frame"
	"navctl/internal/nav"
	"navctl/internal/transition"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	enterKey     = tea.KeyMsg{Type: tea.KeyEnter}
	backspaceKey = tea.KeyMsg{Type: tea.KeyBackspace}
	spaceKey     = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	m, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 24})
	settle(t, m)
	return m
}

// press delivers a key and runs the command it produced, if any.
func press(m *Model, keys ...tea.KeyMsg) {
	for _, k := range keys {
		_, cmd := m.Update(k)
		if cmd == nil {
			continue
		}
		if msg := cmd(); msg != nil {
			m.Update(msg)
		}
	}
}

// settle feeds frame ticks until the controller is idle.
func settle(t *testing.T, m *Model) {
	t.Helper()
	for i := 0; i < 10000 && (m.ctrl.Transitioning() || m.queue.Pending() > 0); i++ {
		m.Update(frame.Msg{})
	}
	if m.ctrl.Transitioning() {
		t.Fatal("controller did not settle")
	}
}

func TestModel_InitialScreen(t *testing.T) {
	m := newTestModel(t, Options{})
	if m.ctrl.Len() != 1 {
		t.Fatalf("expected depth 1, got %d", m.ctrl.Len())
	}
	s := m.top()
	if s == nil || s.Page().ID != "home" {
		t.Fatalf("expected home on top, got %+v", s)
	}
	if s.Phase() != "shown" {
		t.Errorf("expected phase shown, got %q", s.Phase())
	}
	view := m.View()
	if !strings.Contains(view, "Home") || !strings.Contains(view, "depth 1") {
		t.Errorf("View: expected home screen and status, got:\n%s", view)
	}
}

func TestModel_PushAndPop(t *testing.T) {
	m := newTestModel(t, Options{})

	press(m, enterKey)
	if !m.ctrl.Transitioning() {
		t.Fatal("expected a transition after enter")
	}
	if !strings.Contains(m.View(), "moving") {
		t.Error("View: expected the busy marker while transitioning")
	}
	settle(t, m)
	if got := m.top().Page().ID; got != "home/inbox" {
		t.Errorf("expected home/inbox on top, got %q", got)
	}

	press(m, backspaceKey)
	settle(t, m)
	if got := m.top().Page().ID; got != "home" {
		t.Errorf("expected home after pop, got %q", got)
	}

	press(m, backspaceKey)
	if m.err == nil || !nav.IsInvalidOperation(m.err) {
		t.Errorf("expected invalid operation popping the root, got %v", m.err)
	}
}

func TestModel_CursorSurvivesPushWithPreserveState(t *testing.T) {
	tests := []struct {
		preserve bool
		want     int
	}{
		{true, 2},
		{false, 0},
	}
	for _, tt := range tests {
		m := newTestModel(t, Options{Nav: nav.Config{PreserveState: tt.preserve}})
		press(m, runeKey('j'), runeKey('j'), enterKey)
		settle(t, m)
		if got := m.top().Page().ID; got != "home/settings" {
			t.Fatalf("expected home/settings, got %q", got)
		}
		press(m, backspaceKey)
		settle(t, m)
		if got := m.top().Cursor(); got != tt.want {
			t.Errorf("preserve=%v: expected cursor %d, got %d", tt.preserve, tt.want, got)
		}
	}
}

func TestModel_PopToRootAfterSetViewsKeepsHomeState(t *testing.T) {
	m := newTestModel(t, Options{Nav: nav.Config{PreserveState: true}})
	press(m, spaceKey, runeKey('s'))
	settle(t, m)
	press(m, runeKey('j'), enterKey)
	settle(t, m)
	if got := m.top().Page().ID; got != "home/settings/settings-1/settings-1-2" {
		t.Fatalf("expected the second child on top, got %q", got)
	}

	press(m, spaceKey, runeKey('r'))
	settle(t, m)
	if got := m.top().Page().ID; got != "home" {
		t.Fatalf("expected home, got %q", got)
	}
	if got := m.top().Cursor(); got != 0 {
		t.Errorf("expected home to keep its own cursor, got %d", got)
	}
}

func TestModel_LeaderCommands(t *testing.T) {
	m := newTestModel(t, Options{})

	press(m, spaceKey)
	if !m.keys.LeaderWaiting {
		t.Fatal("expected leader mode after SPC")
	}
	if !strings.Contains(m.View(), "root") {
		t.Error("View: expected leader hints")
	}
	press(m, runeKey('s'))
	settle(t, m)
	views := m.ctrl.Views()
	if len(views) != 3 || views[2].ViewID() != "home/settings/settings-1" {
		t.Fatalf("set views: unexpected stack %v", views)
	}

	press(m, spaceKey, runeKey('r'))
	settle(t, m)
	if m.ctrl.Len() != 1 {
		t.Errorf("pop to root: expected depth 1, got %d", m.ctrl.Len())
	}

	press(m, spaceKey, runeKey('n'))
	if !m.ctrl.Transitioning() {
		t.Error("instant push still settles on the next frame")
	}
	settle(t, m)
	if m.ctrl.Len() != 2 {
		t.Errorf("instant push: expected depth 2, got %d", m.ctrl.Len())
	}
}

func TestModel_DropTransition(t *testing.T) {
	m := newTestModel(t, Options{Nav: nav.Config{FPS: 30}})
	press(m, spaceKey, runeKey('c'))
	if !m.ctrl.Transitioning() {
		t.Fatal("expected drop transition in flight")
	}
	_, next := m.ctrl.Slots()
	falling := false
	for i := 0; i < 20 && m.ctrl.Transitioning(); i++ {
		m.Update(frame.Msg{})
		if y := m.panes[next].Y; y > -100 && y < 0 {
			falling = true
		}
	}
	if !falling {
		t.Error("drop: expected the incoming pane to pass between -100 and 0")
	}
	settle(t, m)
	if m.ctrl.Len() != 2 {
		t.Errorf("expected depth 2, got %d", m.ctrl.Len())
	}
	if m.panes[m.ctrl.Active()].Y != 0 {
		t.Errorf("drop: expected pane at rest, got %v", m.panes[m.ctrl.Active()].Y)
	}
}

func TestModel_CycleTransition(t *testing.T) {
	m := newTestModel(t, Options{Nav: nav.Config{DefaultPush: transition.RevealDown}})
	if m.Kind() != transition.RevealDown {
		t.Fatalf("expected reveal_down from config, got %s", m.Kind())
	}
	press(m, runeKey('t'))
	if m.Kind() != transition.None {
		t.Errorf("expected cycling to wrap to none, got %s", m.Kind())
	}
	press(m, runeKey('t'))
	if m.Kind() != transition.PushLeft {
		t.Errorf("expected push_left, got %s", m.Kind())
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, Options{})
	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected a command for q")
	}
	_, cmd = m.Update(cmd())
	if cmd == nil {
		t.Fatal("expected tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected a quit message")
	}
	if err := m.ctrl.Push(HomePage(), nav.Options{}); !nav.IsInvalidOperation(err) {
		t.Errorf("expected closed controller, got %v", err)
	}
}

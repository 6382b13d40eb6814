package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"navctl/internal/frame"
	"navctl/internal/nav"
	"navctl/internal/slot"
	"navctl/internal/telemetry"
	"navctl/internal/transition"
)

// Messages produced by the key bindings.
type (
	pushMsg struct {
		custom  bool // use the Drop transition
		instant bool // use transition.None
	}
	popMsg       struct{}
	popToRootMsg struct{}
	setViewsMsg  struct{}
	moveMsg      struct{ delta int }
	cycleMsg     struct{}
	quitMsg      struct{}
)

// Options configures New.
type Options struct {
	// Nav carries the controller settings. Views, scheduler, targets and
	// host are supplied by the model.
	Nav nav.Config

	Logger *zap.Logger

	// Recent, when set, feeds the status bar with the last settled transition.
	Recent *telemetry.Recent
}

// Model is the demo's root tea.Model.
type Model struct {
	ctrl   *nav.Controller
	queue  *frame.Queue
	panes  [slot.Count]*slot.Pane
	host   *slotHost
	keys   *KeyHandler
	log    *zap.Logger
	recent *telemetry.Recent

	fps  int
	kind transition.Kind // used for pushes; pops play it in reverse

	width, height int
	err           error
}

var _ tea.Model = (*Model)(nil)

// New creates the model and its controller rooted at HomePage.
func New(opts Options) (*Model, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	fps := opts.Nav.FPS
	if fps <= 0 {
		fps = frame.DefaultFPS
	}

	m := &Model{
		queue:  frame.NewQueue(),
		panes:  [slot.Count]*slot.Pane{slot.NewPane("a"), slot.NewPane("b")},
		host:   &slotHost{log: log.Named("ui")},
		keys:   NewKeyHandler(defaultKeys()),
		log:    log.Named("ui"),
		recent: opts.Recent,
		fps:    fps,
		kind:   transition.PushLeft,
	}
	if k, ok := opts.Nav.DefaultPush.(transition.Kind); ok {
		m.kind = k
	}

	cfg := opts.Nav
	cfg.Views = []nav.View{HomePage()}
	cfg.Scheduler = m.queue
	cfg.Targets = [slot.Count]slot.Target{m.panes[0], m.panes[1]}
	cfg.Host = m.host
	cfg.FPS = fps
	if cfg.Logger == nil {
		cfg.Logger = log
	}

	ctrl, err := nav.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to create navigation controller: %w", err)
	}
	m.ctrl = ctrl
	return m, nil
}

func defaultKeys() *KeybindRegistry {
	reg := NewKeybindRegistry()
	push, pop := msgCmd(pushMsg{}), msgCmd(popMsg{})
	down, up := msgCmd(moveMsg{delta: 1}), msgCmd(moveMsg{delta: -1})
	quit := msgCmd(quitMsg{})

	reg.BindWithDesc("enter", push, "open")
	reg.Bind("l", push)
	reg.Bind("right", push)
	reg.BindWithDesc("backspace", pop, "back")
	reg.Bind("h", pop)
	reg.Bind("left", pop)
	reg.BindWithDesc("j", down, "down")
	reg.Bind("down", down)
	reg.BindWithDesc("k", up, "up")
	reg.Bind("up", up)
	reg.BindWithDesc("t", msgCmd(cycleMsg{}), "transition")
	reg.BindWithDesc("q", quit, "quit")
	reg.Bind("ctrl+c", quit)

	reg.BindWithDesc("SPC r", msgCmd(popToRootMsg{}), "root")
	reg.BindWithDesc("SPC s", msgCmd(setViewsMsg{}), "set views")
	reg.BindWithDesc("SPC c", msgCmd(pushMsg{custom: true}), "drop in")
	reg.BindWithDesc("SPC n", msgCmd(pushMsg{instant: true}), "instant")
	reg.BindWithDesc("SPC q", quit, "quit")
	return reg
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Controller returns the model's navigation controller.
func (m *Model) Controller() *nav.Controller { return m.ctrl }

// Kind returns the transition used for the next push.
func (m *Model) Kind() transition.Kind { return m.kind }

// Close tears the controller down.
func (m *Model) Close() { m.ctrl.Close() }

// Init implements tea.Model. The initial mount is already queued.
func (m *Model) Init() tea.Cmd {
	return m.queue.Next(m.fps)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case frame.Msg:
		m.queue.Disarm()
		m.queue.Flush()
	case tea.KeyMsg:
		if consumed, cmd := m.keys.Handle(msg); consumed {
			return m, cmd
		}
		return m, nil
	case pushMsg:
		m.push(msg)
	case popMsg:
		m.setErr(m.ctrl.Pop(nav.Options{Transition: transition.Reverse(m.kind)}))
	case popToRootMsg:
		m.setErr(m.ctrl.PopToRoot(nav.Options{Transition: transition.Reverse(m.kind)}))
	case setViewsMsg:
		m.setErr(m.ctrl.SetViews(DemoStack(), nav.SetViewsOptions{Options: nav.Options{Transition: m.kind}}))
	case moveMsg:
		if s := m.top(); s != nil && !m.ctrl.Transitioning() {
			s.Move(msg.delta)
		}
	case cycleMsg:
		m.kind = transition.Kind((int(m.kind) + 1) % len(transition.Kinds()))
	case quitMsg:
		m.Close()
		return m, tea.Quit
	}
	return m, m.queue.Next(m.fps)
}

func (m *Model) push(msg pushMsg) {
	s := m.top()
	if s == nil {
		return
	}
	child := s.page.Child(s.cursor)
	if child == nil {
		return
	}
	opts := nav.Options{Transition: m.kind}
	switch {
	case msg.instant:
		opts.Transition = transition.None
	case msg.custom:
		opts.Transition = Drop(m.queue, max(m.fps/3, 1))
	}
	m.setErr(m.ctrl.Push(child, opts))
}

func (m *Model) setErr(err error) {
	m.err = err
	if err != nil {
		m.log.Debug("navigation refused", zap.Error(err))
	}
}

// top returns the screen showing the top view.
func (m *Model) top() *Screen {
	return m.host.Screen(m.ctrl.Active())
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	status := m.statusLine()
	help := RenderKeybindHelp(m.keys, m.width)
	canvasH := m.height - lipgloss.Height(status) - lipgloss.Height(help)
	if canvasH < 3 {
		return lipgloss.JoinVertical(lipgloss.Left, status, help)
	}

	var layers []Layer
	for i, p := range m.panes {
		s := m.host.Screen(i)
		if s == nil {
			continue
		}
		if l, ok := PaneLayer(p, s.Lines(m.width, canvasH), m.width, canvasH, Styles.Slots[i]); ok {
			layers = append(layers, l)
		}
	}
	canvas := Compose(m.width, canvasH, layers...)
	return lipgloss.JoinVertical(lipgloss.Left, canvas, status, help)
}

func (m *Model) statusLine() string {
	parts := []string{
		Styles.Title.Render("navctl"),
		fmt.Sprintf("depth %d", m.ctrl.Len()),
		"transition " + m.kind.String(),
	}
	if m.ctrl.PreserveState() {
		parts = append(parts, fmt.Sprintf("saved %d", m.ctrl.PreservedDepth()))
	}
	if m.ctrl.Transitioning() {
		parts = append(parts, Styles.Busy.Render("moving"))
	}
	if m.recent != nil {
		if t, ok := m.recent.Last(); ok {
			parts = append(parts, Styles.Hint.Render(fmt.Sprintf("last %s/%s %s", t.Op, t.Kind, t.Duration.Round(time.Millisecond))))
		}
	}
	if m.err != nil {
		parts = append(parts, Styles.Error.Render(m.err.Error()))
	}
	return Styles.Status.Render(strings.Join(parts, " · "))
}

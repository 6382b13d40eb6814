package ui

import (
	"fmt"
	"strings"

	"navctl/internal/nav"
)

// Page is a demo view: a titled list whose entries open child pages.
// Pages are immutable; all mutable state lives in the Screen mounted for it.
type Page struct {
	ID    string
	Title string
	Items []string
}

// ViewID implements nav.View.
func (p *Page) ViewID() string { return p.ID }

// NewInstance implements nav.Factory.
func (p *Page) NewInstance(*nav.Controller) nav.Instance {
	return &Screen{page: p, phase: "mounted"}
}

// Child returns the page opened by item i.
func (p *Page) Child(i int) *Page {
	if i < 0 || i >= len(p.Items) {
		return nil
	}
	name := p.Items[i]
	id := p.ID + "/" + slug(name)
	items := make([]string, 0, 4)
	for n := 1; n <= 4; n++ {
		items = append(items, fmt.Sprintf("%s %d", name, n))
	}
	return &Page{ID: id, Title: name, Items: items}
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

// HomePage is the root of the demo.
func HomePage() *Page {
	return &Page{
		ID:    "home",
		Title: "Home",
		Items: []string{"Inbox", "Projects", "Settings", "About"},
	}
}

// DemoStack is the stack installed by the "set views" command.
func DemoStack() []nav.View {
	home := HomePage()
	settings := home.Child(2)
	return []nav.View{home, settings, settings.Child(0)}
}

// Screen is the mounted instance of a Page. It keeps the cursor, which is
// the state saved and restored across pushes.
type Screen struct {
	page     *Page
	cursor   int
	phase    string // last lifecycle hook seen
	visits   int
	disposed bool
}

type screenState struct {
	cursor int
	visits int
}

func (s *Screen) Page() *Page   { return s.page }
func (s *Screen) Cursor() int   { return s.cursor }
func (s *Screen) Phase() string { return s.phase }

// Move shifts the cursor by delta, clamped to the item list.
func (s *Screen) Move(delta int) {
	s.cursor = min(max(s.cursor+delta, 0), max(len(s.page.Items)-1, 0))
}

func (s *Screen) NavWillShow(*nav.Controller) { s.phase = "showing" }
func (s *Screen) NavWillHide(*nav.Controller) { s.phase = "hiding" }
func (s *Screen) NavDidHide(*nav.Controller)  { s.phase = "hidden" }

func (s *Screen) NavDidShow(*nav.Controller) {
	s.phase = "shown"
	s.visits++
}

func (s *Screen) SaveState() nav.Snapshot {
	return screenState{cursor: s.cursor, visits: s.visits}
}

func (s *Screen) RestoreState(snap nav.Snapshot) {
	if st, ok := snap.(screenState); ok {
		s.cursor = st.cursor
		s.visits = st.visits
	}
}

func (s *Screen) Dispose() { s.disposed = true }

// Lines renders the screen as a width x height box of plain text.
func (s *Screen) Lines(width, height int) []string {
	body := []string{
		"",
		fmt.Sprintf(" %s · %s · shown %d×", s.page.ID, s.phase, s.visits),
		"",
	}
	for i, item := range s.page.Items {
		marker := "  "
		if i == s.cursor {
			marker = "> "
		}
		body = append(body, " "+marker+item)
	}
	return boxLines(" "+s.page.Title+" ", body, width, height)
}

package slot

// Pane is an in-memory Target. It records the last values applied to it so a
// compositor (or a test) can read them back.
type Pane struct {
	Name    string
	X, Y    float64 // translation in percent of the pane size
	Z       int
	Visible bool
	Content string

	Applied int // number of SetTranslate calls
}

// NewPane creates a visible pane at the origin.
func NewPane(name string) *Pane {
	return &Pane{Name: name, Visible: true}
}

// SetTranslate implements Target.
func (p *Pane) SetTranslate(xPercent, yPercent float64) {
	p.X, p.Y = xPercent, yPercent
	p.Applied++
}

// SetZIndex implements Target.
func (p *Pane) SetZIndex(z int) {
	p.Z = z
}

// SetVisible implements Target.
func (p *Pane) SetVisible(visible bool) {
	p.Visible = visible
}

// Shift converts the pane's translation into cell offsets for a pane of the
// given size. Values are rounded to the nearest cell.
func (p *Pane) Shift(width, height int) (dx, dy int) {
	return round(p.X * float64(width) / 100), round(p.Y * float64(height) / 100)
}

func round(v float64) int {
	if v < 0 {
		return -int(-v + 0.5)
	}
	return int(v + 0.5)
}

package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"navctl/internal/slot"
	"navctl/internal/ui/textutil"
)

// Layer is one render slot's text placed on the canvas. Lines are plain
// text measured in terminal cells; the layer covers the full canvas width on
// every line it has.
type Layer struct {
	Lines  []string
	DX, DY int
	Z      int
	Style  lipgloss.Style
}

// PaneLayer builds the layer for a pane holding lines on a width x height
// canvas. ok is false when the pane is hidden.
func PaneLayer(p *slot.Pane, lines []string, width, height int, style lipgloss.Style) (l Layer, ok bool) {
	if p == nil || !p.Visible {
		return Layer{}, false
	}
	dx, dy := p.Shift(width, height)
	return Layer{Lines: lines, DX: dx, DY: dy, Z: p.Z, Style: style}, true
}

// Compose draws layers onto a width x height canvas, lowest Z first, and
// returns it as newline-separated rows. Cells no layer covers are blank.
func Compose(width, height int, layers ...Layer) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	sorted := append([]Layer(nil), layers...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Z < sorted[j].Z })

	cells := make([][]string, height)
	owner := make([][]int, height)
	for y := range cells {
		cells[y] = textutil.Cells("", width)
		owner[y] = make([]int, width)
		for x := range owner[y] {
			owner[y][x] = -1
		}
	}

	for li, l := range sorted {
		for r, line := range l.Lines {
			y := r + l.DY
			if y < 0 || y >= height {
				continue
			}
			for c, cell := range textutil.Cells(line, width) {
				x := c + l.DX
				if x < 0 || x >= width {
					continue
				}
				cells[y][x] = cell
				owner[y][x] = li
			}
		}
	}

	var b strings.Builder
	for y := range cells {
		textutil.Repair(cells[y])
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= width; x++ {
			if x < width && owner[y][x] == owner[y][start] {
				continue
			}
			seg := strings.Join(cells[y][start:x], "")
			if o := owner[y][start]; o >= 0 {
				seg = sorted[o].Style.Render(seg)
			}
			b.WriteString(seg)
			start = x
		}
	}
	return b.String()
}

// boxLines frames body in a width x height box titled title. Body lines are
// truncated; missing lines are blank.
func boxLines(title string, body []string, width, height int) []string {
	if width < 3 || height < 2 {
		return nil
	}
	inner := width - 2
	lines := make([]string, 0, height)

	t := textutil.Truncate(title, inner-1)
	lines = append(lines, "╭─"+t+strings.Repeat("─", inner-1-textutil.Width(t))+"╮")
	for i := range height - 2 {
		text := ""
		if i < len(body) {
			text = body[i]
		}
		lines = append(lines, "│"+textutil.PadRight(text, inner)+"│")
	}
	lines = append(lines, "╰"+strings.Repeat("─", inner)+"╯")
	return lines
}

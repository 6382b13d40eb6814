// Package textutil measures and cuts text by terminal cell width.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending it with Ellipsis
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	avail := maxWidth - Width(Ellipsis)
	if avail < 0 {
		return Ellipsis
	}

	out := make([]rune, 0, maxWidth)
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > avail {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out) + Ellipsis
}

// PadRight pads s with spaces to exactly width columns, truncating it first
// if it is wider.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(Truncate(s, width), width)
}

// Cells splits s into exactly width terminal cells. A double-width rune
// takes its cell and an empty continuation cell after it; zero-width runes
// join the cell before them. A wide rune that would straddle the last column
// is dropped, and the row is padded with spaces.
func Cells(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	cells := make([]string, 0, width)
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			if i := lead(cells, len(cells)-1); i >= 0 {
				cells[i] += string(r)
			}
			continue
		}
		if len(cells)+rw > width {
			break
		}
		cells = append(cells, string(r))
		if rw == 2 {
			cells = append(cells, "")
		}
	}
	for len(cells) < width {
		cells = append(cells, " ")
	}
	return cells
}

// Repair blanks broken halves of wide runes in a row of cells after other
// text has been drawn over part of them.
func Repair(row []string) {
	for x, c := range row {
		switch {
		case c == "":
			if x == 0 || Width(row[x-1]) != 2 {
				row[x] = " "
			}
		case Width(c) == 2:
			if x+1 >= len(row) || row[x+1] != "" {
				row[x] = " "
			}
		}
	}
}

func lead(cells []string, i int) int {
	for ; i >= 0; i-- {
		if cells[i] != "" {
			return i
		}
	}
	return -1
}

package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for the cursor and the active slot
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorSlotB     = "117" // Light blue - for the second render slot
)

// Styles contains shared style definitions.
var Styles = struct {
	Title  lipgloss.Style // Bold accent color
	Hint   lipgloss.Style // Help/hint text
	Status lipgloss.Style // Status bar
	Error  lipgloss.Style // Last navigation error
	Busy   lipgloss.Style // Transition in flight indicator

	// Slots holds the text style of each render slot so the two panes stay
	// distinguishable while they overlap.
	Slots [2]lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Busy: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Slots: [2]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent)),
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSlotB)),
	},
}

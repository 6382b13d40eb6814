package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the help bar. In leader mode it is boxed and
// labeled with the sequence typed so far.
func RenderKeybindHelp(keyHandler *KeyHandler, width int) string {
	if keyHandler == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler.Registry, keyHandler).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Width = width
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = Styles.Hint
	helpModel.Styles.ShortSeparator = Styles.Hint

	helpContent := helpModel.ShortHelpView(bindings)
	if !keyHandler.LeaderWaiting {
		return helpContent
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)

	prefix := strings.Join(keyHandler.Buffer, " ")
	return boxStyle.Render(Styles.Hint.Render(prefix) + " " + helpContent)
}

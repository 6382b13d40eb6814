package frame

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFPS is the tick rate used when none is configured.
const DefaultFPS = 60

// Msg is delivered to a bubbletea model on every frame tick.
type Msg struct {
	Time time.Time
}

// Interval returns the frame duration for fps, falling back to DefaultFPS.
func Interval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// TickCmd schedules a single Msg one frame from now.
func TickCmd(fps int) tea.Cmd {
	return tea.Tick(Interval(fps), func(t time.Time) tea.Msg {
		return Msg{Time: t}
	})
}

// Next returns a tick command if q has pending callbacks and no tick is
// outstanding, otherwise nil. Models call it at the end of every Update.
func (q *Queue) Next(fps int) tea.Cmd {
	if q.Pending() == 0 || !q.Arm() {
		return nil
	}
	return TickCmd(fps)
}

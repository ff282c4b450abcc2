package app

import (
	"fmt"
	"time"
)

// formatElapsed renders d as HH:MM:SS. Hours are not wrapped.
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, s/60%60, s%60)
}

func (m Model) timerView() string {
	label := formatElapsed(m.stopwatch.Elapsed())
	if !m.stopwatch.Running() && m.stopwatch.Elapsed() > 0 {
		label += " paused"
	}
	return m.styles.Timer.Render(label)
}

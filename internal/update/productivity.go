package update

import (
	"fmt"

	"github.com/sandeepkv93/focusdeck/internal/views"
)

func formatFocusTime(seconds int) string {
	h := seconds / 3600
	mins := (seconds % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

func (m Model) renderStatsView() string {
	s := m.snap.Stats
	return views.RenderStatsPanel(views.StatsPanelData{
		Theme:         string(m.snap.State.BackgroundTheme),
		Sessions:      s.SessionsToday,
		FocusTime:     formatFocusTime(s.FocusSeconds),
		Score:         s.ProductivityScore,
		Completed:     s.CompletedTasks,
		Pending:       s.PendingTasks,
		BackgroundTag: m.snap.State.BackgroundTheme.Info().Name,
	})
}

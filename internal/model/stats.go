package model

import "time"

// Session is one finished work countdown.
type Session struct {
	CompletedAt time.Time
	Seconds     int
}

type Stats struct {
	SessionsToday     int
	FocusSeconds      int
	ProductivityScore int
	CompletedTasks    int
	PendingTasks      int
}

// ComputeStats counts sessions finished on now's calendar day and scores
// productivity as the percentage of tasks completed.
func ComputeStats(tasks []Task, sessions []Session, now time.Time) Stats {
	var out Stats
	y, m, d := now.Date()
	for _, s := range sessions {
		sy, sm, sd := s.CompletedAt.In(now.Location()).Date()
		if sy == y && sm == m && sd == d {
			out.SessionsToday++
			out.FocusSeconds += s.Seconds
		}
	}
	for _, t := range tasks {
		if t.Completed {
			out.CompletedTasks++
		} else {
			out.PendingTasks++
		}
	}
	if total := out.CompletedTasks + out.PendingTasks; total > 0 {
		out.ProductivityScore = out.CompletedTasks * 100 / total
	}
	return out
}

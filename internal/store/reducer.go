package store

import "github.com/sandeepkv93/focusdeck/internal/model"

// Apply returns the state that results from a. It never mutates state and
// performs no I/O. Unknown actions and failed preconditions return an
// equal copy of state.
func Apply(state model.AppState, a Action) model.AppState {
	next := state.Clone()

	switch act := a.(type) {
	case SetDailyFocus:
		next.DailyFocus = act.Text
	case AddTask:
		next.Tasks = append(next.Tasks, model.Task{
			ID:        act.ID,
			Title:     act.Title,
			Category:  act.Category,
			CreatedAt: act.CreatedAt,
			Priority:  act.Priority,
		})
	case UpdateTask:
		for i := range next.Tasks {
			if next.Tasks[i].ID == act.ID {
				next.Tasks[i] = mergeTask(next.Tasks[i], act.Patch)
				break
			}
		}
	case DeleteTask:
		kept := next.Tasks[:0]
		for _, t := range next.Tasks {
			if t.ID != act.ID {
				kept = append(kept, t)
			}
		}
		next.Tasks = kept
	case StartTimer:
		if act.Duration <= 0 {
			return next
		}
		next.Timer.IsActive = true
		next.Timer.IsPaused = false
		next.Timer.TimeLeft = act.Duration
		next.Timer.Type = act.Type
	case PauseTimer:
		if next.Timer.IsActive {
			next.Timer.IsPaused = !next.Timer.IsPaused
		}
	case ResetTimer:
		next.Timer.IsActive = false
		next.Timer.IsPaused = false
		next.Timer.IsBreak = false
		next.Timer.TimeLeft = next.Timer.Type.DefaultSeconds()
	case TickTimer:
		if next.Timer.TimeLeft <= 1 {
			next.Timer.TimeLeft = 0
			next.Timer.IsActive = false
			next.Timer.IsBreak = !next.Timer.IsBreak
			return next
		}
		next.Timer.TimeLeft--
	case SetTimerColor:
		next.Timer.CustomColor = act.Color
	case UpdateBMI:
		if act.Height <= 0 || act.Weight <= 0 {
			return next
		}
		result, category := model.ComputeBMI(act.Height, act.Weight)
		next.BMI = model.BMIState{
			Height:   act.Height,
			Weight:   act.Weight,
			Result:   result,
			Category: category,
		}
	case SetMusic:
		next.Music = mergeMusic(next.Music, act.Patch)
	case SetNotes:
		next.Notes = act.Text
	case SetBackgroundTheme:
		next.BackgroundTheme = act.Theme
	case LoadFromStorage:
		next = mergeState(next, act.Patch)
	}
	return next
}

func mergeTask(t model.Task, p TaskPatch) model.Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	return t
}

func mergeMusic(m model.MusicState, p MusicPatch) model.MusicState {
	if p.IsPlaying != nil {
		m.IsPlaying = *p.IsPlaying
	}
	if p.CurrentTrack != nil {
		m.CurrentTrack = *p.CurrentTrack
	}
	if p.Volume != nil {
		m.Volume = model.ClampVolume(*p.Volume)
	}
	if p.Playlist != nil {
		m.Playlist = *p.Playlist
	}
	return m
}

func mergeState(s model.AppState, p StatePatch) model.AppState {
	if p.DailyFocus != nil {
		s.DailyFocus = *p.DailyFocus
	}
	if p.Tasks != nil {
		s.Tasks = make([]model.Task, len(*p.Tasks))
		copy(s.Tasks, *p.Tasks)
	}
	if p.BMI != nil {
		s.BMI = *p.BMI
	}
	if p.Music != nil {
		s.Music = *p.Music
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
	if p.BackgroundTheme != nil {
		s.BackgroundTheme = *p.BackgroundTheme
	}
	if p.TimerColor != nil {
		s.Timer.CustomColor = *p.TimerColor
	}
	if p.Quote != nil {
		s.Quote = *p.Quote
	}
	if p.Greeting != nil {
		s.Greeting = *p.Greeting
	}
	if p.BackgroundImage != nil {
		s.BackgroundImage = *p.BackgroundImage
	}
	return s
}

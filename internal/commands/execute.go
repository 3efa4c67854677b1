package commands

import (
	"fmt"

	"github.com/sandeepkv93/focusdeck/internal/model"
	"github.com/sandeepkv93/focusdeck/internal/store"
)

type Result struct {
	Message string
}

type Handlers struct {
	Add      func(AddArgs) (Result, error)
	Focus    func(FocusArgs) (Result, error)
	Timer    func(TimerArgs) (Result, error)
	BMI      func(BMIArgs) (Result, error)
	Theme    func(ThemeArgs) (Result, error)
	Color    func(ColorArgs) (Result, error)
	Music    func(MusicArgs) (Result, error)
	Playlist func(PlaylistArgs) (Result, error)
	Volume   func(VolumeArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		return run(handlers.Add, cmd.Add, cmd.Type)
	case TypeFocus:
		return run(handlers.Focus, cmd.Focus, cmd.Type)
	case TypeTimer:
		return run(handlers.Timer, cmd.Timer, cmd.Type)
	case TypeBMI:
		return run(handlers.BMI, cmd.BMI, cmd.Type)
	case TypeTheme:
		return run(handlers.Theme, cmd.Theme, cmd.Type)
	case TypeColor:
		return run(handlers.Color, cmd.Color, cmd.Type)
	case TypePlay, TypePause, TypeNext, TypePrev:
		return run(handlers.Music, cmd.Music, cmd.Type)
	case TypePlaylist:
		return run(handlers.Playlist, cmd.Playlist, cmd.Type)
	case TypeVolume:
		return run(handlers.Volume, cmd.Volume, cmd.Type)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func run[A any](h func(A) (Result, error), args *A, t Type) (Result, error) {
	if h == nil {
		return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
	}
	if args == nil {
		return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s arguments missing", t)}
	}
	return h(*args)
}

// Dispatcher is the state handle commands act on. Both *store.Store and
// the dashboard runtime satisfy it.
type Dispatcher interface {
	Dispatch(store.Action) model.AppState
	State() model.AppState
}

// TrackPicker chooses the track "next" moves to.
type TrackPicker func(model.MusicState) model.Track

func sequential(m model.MusicState) model.Track {
	return model.NextTrack(m.Playlist, m.CurrentTrack, nil)
}

// NewHandlers binds every command to store actions on d. A nil next
// plays the playlist in order.
func NewHandlers(d Dispatcher, next TrackPicker) Handlers {
	if next == nil {
		next = sequential
	}
	return Handlers{
		Add: func(a AddArgs) (Result, error) {
			d.Dispatch(store.AddTask{Title: a.Title, Category: a.Category, Priority: a.Priority})
			return Result{Message: fmt.Sprintf("added %q to %s", a.Title, a.Category.Label())}, nil
		},
		Focus: func(a FocusArgs) (Result, error) {
			d.Dispatch(store.SetDailyFocus{Text: a.Text})
			return Result{Message: "daily focus set"}, nil
		},
		Timer: func(a TimerArgs) (Result, error) {
			return runTimer(d, a)
		},
		BMI: func(a BMIArgs) (Result, error) {
			bmi := d.Dispatch(store.UpdateBMI{Height: a.Height, Weight: a.Weight}).BMI
			return Result{Message: fmt.Sprintf("BMI %.1f (%s)", bmi.Result, bmi.Category)}, nil
		},
		Theme: func(a ThemeArgs) (Result, error) {
			d.Dispatch(store.SetBackgroundTheme{Theme: a.Theme})
			return Result{Message: "theme: " + a.Theme.Info().Name}, nil
		},
		Color: func(a ColorArgs) (Result, error) {
			d.Dispatch(store.SetTimerColor{Color: a.Color})
			return Result{Message: "timer color: " + a.Color}, nil
		},
		Music: func(a MusicArgs) (Result, error) {
			return runMusic(d, a, next)
		},
		Playlist: func(a PlaylistArgs) (Result, error) {
			first := model.FirstTrack(a.Playlist)
			d.Dispatch(store.SetMusic{Patch: store.MusicPatch{Playlist: &a.Playlist, CurrentTrack: &first.ID}})
			return Result{Message: "playlist: " + a.Playlist.Label()}, nil
		},
		Volume: func(a VolumeArgs) (Result, error) {
			d.Dispatch(store.SetMusic{Patch: store.MusicPatch{Volume: store.Ptr(float64(a.Percent) / 100)}})
			return Result{Message: fmt.Sprintf("volume %d%%", a.Percent)}, nil
		},
	}
}

func runTimer(d Dispatcher, a TimerArgs) (Result, error) {
	switch a.Op {
	case TimerStartPomodoro:
		d.Dispatch(store.StartTimer{Duration: model.PomodoroSeconds, Type: model.TimerPomodoro})
		return Result{Message: "pomodoro started"}, nil
	case TimerStartCustom:
		d.Dispatch(store.StartTimer{Duration: model.MinutesToSeconds(a.Minutes), Type: model.TimerCustom})
		return Result{Message: fmt.Sprintf("%d minute timer started", a.Minutes)}, nil
	case TimerPause:
		if !d.State().Timer.IsActive {
			return Result{}, &CommandError{Code: ErrCodeInvalidState, Message: "timer is not running"}
		}
		if d.Dispatch(store.PauseTimer{}).Timer.IsPaused {
			return Result{Message: "timer paused"}, nil
		}
		return Result{Message: "timer resumed"}, nil
	case TimerReset:
		d.Dispatch(store.ResetTimer{})
		return Result{Message: "timer reset"}, nil
	default:
		return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown timer op: %s", a.Op)}
	}
}

func runMusic(d Dispatcher, a MusicArgs, next TrackPicker) (Result, error) {
	music := d.State().Music
	switch a.Op {
	case MusicPlay:
		d.Dispatch(store.SetMusic{Patch: store.MusicPatch{IsPlaying: store.Ptr(true)}})
		return Result{Message: "playing " + trackTitle(music.CurrentTrack)}, nil
	case MusicPause:
		d.Dispatch(store.SetMusic{Patch: store.MusicPatch{IsPlaying: store.Ptr(false)}})
		return Result{Message: "music paused"}, nil
	case MusicNext, MusicPrev:
		track := model.PreviousTrack(music.Playlist, music.CurrentTrack)
		if a.Op == MusicNext {
			track = next(music)
		}
		d.Dispatch(store.SetMusic{Patch: store.MusicPatch{CurrentTrack: &track.ID}})
		return Result{Message: "track: " + track.Title}, nil
	default:
		return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown music op: %s", a.Op)}
	}
}

func trackTitle(id string) string {
	if t, ok := model.FindTrack(id); ok {
		return t.Title
	}
	return id
}

package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

var ErrInvalidFocus = errors.New("model: invalid daily focus")

const (
	DefaultQuote    = "The way to get started is to quit talking and begin doing."
	DefaultGreeting = "Good morning"
	MaxFocusLength  = 100
)

// AppState is the whole dashboard state. Only the store produces new values.
type AppState struct {
	DailyFocus      string
	Tasks           []Task
	Timer           TimerState
	BMI             BMIState
	Music           MusicState
	Notes           string
	Quote           string
	Greeting        string
	BackgroundImage string
	BackgroundTheme Theme
}

func DefaultState() AppState {
	return AppState{
		Tasks: []Task{},
		Timer: TimerState{
			TimeLeft:    PomodoroSeconds,
			Type:        TimerPomodoro,
			CustomColor: DefaultTimerColor,
		},
		Music: MusicState{
			CurrentTrack: "lofi-1",
			Volume:       DefaultVolume,
			Playlist:     PlaylistLofi,
		},
		Quote:           DefaultQuote,
		Greeting:        DefaultGreeting,
		BackgroundTheme: ThemeGradient,
	}
}

// Clone returns a copy that shares no mutable memory with s.
func (s AppState) Clone() AppState {
	out := s
	out.Tasks = make([]Task, len(s.Tasks))
	copy(out.Tasks, s.Tasks)
	return out
}

func GreetingFor(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func ValidateFocus(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("%w: focus is empty", ErrInvalidFocus)
	}
	if n := utf8.RuneCountInString(trimmed); n > MaxFocusLength {
		return fmt.Errorf("%w: %d characters (max %d)", ErrInvalidFocus, n, MaxFocusLength)
	}
	return nil
}

type NotesStats struct {
	Words int
	Chars int
}

func CountNotes(notes string) NotesStats {
	return NotesStats{
		Words: len(strings.Fields(notes)),
		Chars: utf8.RuneCountInString(notes),
	}
}

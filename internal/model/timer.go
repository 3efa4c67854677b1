package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTimerType = errors.New("model: invalid timer type")
	ErrInvalidMinutes   = errors.New("model: custom timer minutes out of range")
)

const (
	PomodoroSeconds   = 25 * 60
	CustomSeconds     = 30 * 60
	ShortBreakSeconds = 5 * 60
	MinCustomMinutes  = 1
	MaxCustomMinutes  = 120
	DefaultTimerColor = "teal"
	secondsPerMinute  = 60
)

type TimerType string

const (
	TimerPomodoro TimerType = "pomodoro"
	TimerCustom   TimerType = "custom"
)

func (t TimerType) IsValid() bool {
	switch t {
	case TimerPomodoro, TimerCustom:
		return true
	default:
		return false
	}
}

// DefaultSeconds is the countdown a reset restores for the timer type.
func (t TimerType) DefaultSeconds() int {
	if t == TimerCustom {
		return CustomSeconds
	}
	return PomodoroSeconds
}

type TimerState struct {
	IsActive    bool
	IsPaused    bool
	TimeLeft    int
	IsBreak     bool
	Type        TimerType
	CustomColor string
}

// Running reports whether the countdown should be ticking.
func (t TimerState) Running() bool {
	return t.IsActive && !t.IsPaused
}

// TimerColors are the accent colors the timer view can cycle through.
var TimerColors = []string{"teal", "purple", "blue", "green", "orange", "pink"}

func NextTimerColor(current string) string {
	for i, c := range TimerColors {
		if c == current {
			return TimerColors[(i+1)%len(TimerColors)]
		}
	}
	return TimerColors[0]
}

func ValidateCustomMinutes(minutes int) error {
	if minutes < MinCustomMinutes || minutes > MaxCustomMinutes {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidMinutes, minutes, MinCustomMinutes, MaxCustomMinutes)
	}
	return nil
}

// MinutesToSeconds converts a minute count into a countdown length.
func MinutesToSeconds(minutes int) int {
	return minutes * secondsPerMinute
}

package store

import (
	"time"

	"github.com/sandeepkv93/focusdeck/internal/model"
)

type Kind string

const (
	KindSetDailyFocus      Kind = "SET_DAILY_FOCUS"
	KindAddTask            Kind = "ADD_TASK"
	KindUpdateTask         Kind = "UPDATE_TASK"
	KindDeleteTask         Kind = "DELETE_TASK"
	KindStartTimer         Kind = "START_TIMER"
	KindPauseTimer         Kind = "PAUSE_TIMER"
	KindResetTimer         Kind = "RESET_TIMER"
	KindTickTimer          Kind = "TICK_TIMER"
	KindSetTimerColor      Kind = "SET_TIMER_COLOR"
	KindUpdateBMI          Kind = "UPDATE_BMI"
	KindSetMusic           Kind = "SET_MUSIC"
	KindSetNotes           Kind = "SET_NOTES"
	KindSetBackgroundTheme Kind = "SET_BACKGROUND_THEME"
	KindLoadFromStorage    Kind = "LOAD_FROM_STORAGE"
)

// Action is a request to transition the dashboard state.
type Action interface {
	Kind() Kind
}

type SetDailyFocus struct {
	Text string
}

// AddTask appends a task. Store.Dispatch fills ID and CreatedAt when empty.
type AddTask struct {
	Title     string
	Category  model.Category
	Priority  model.Priority
	ID        string
	CreatedAt time.Time
}

// TaskPatch holds the fields UpdateTask merges; nil fields are left alone.
type TaskPatch struct {
	Title     *string
	Completed *bool
	Category  *model.Category
	Priority  *model.Priority
}

type UpdateTask struct {
	ID    string
	Patch TaskPatch
}

type DeleteTask struct {
	ID string
}

// StartTimer begins a countdown of Duration seconds.
type StartTimer struct {
	Duration int
	Type     model.TimerType
}

type PauseTimer struct{}

type ResetTimer struct{}

type TickTimer struct{}

type SetTimerColor struct {
	Color string
}

type UpdateBMI struct {
	Height float64
	Weight float64
}

type MusicPatch struct {
	IsPlaying    *bool
	CurrentTrack *string
	Volume       *float64
	Playlist     *model.Playlist
}

type SetMusic struct {
	Patch MusicPatch
}

type SetNotes struct {
	Text string
}

type SetBackgroundTheme struct {
	Theme model.Theme
}

// StatePatch is the partial state merged by LoadFromStorage. Only the
// timer color is restorable; a running countdown never resumes from disk.
type StatePatch struct {
	DailyFocus      *string
	Tasks           *[]model.Task
	BMI             *model.BMIState
	Music           *model.MusicState
	Notes           *string
	BackgroundTheme *model.Theme
	TimerColor      *string
	Quote           *string
	Greeting        *string
	BackgroundImage *string
}

func (p StatePatch) Empty() bool {
	return p.DailyFocus == nil && p.Tasks == nil && p.BMI == nil && p.Music == nil &&
		p.Notes == nil && p.BackgroundTheme == nil && p.TimerColor == nil &&
		p.Quote == nil && p.Greeting == nil && p.BackgroundImage == nil
}

type LoadFromStorage struct {
	Patch StatePatch
}

func (SetDailyFocus) Kind() Kind      { return KindSetDailyFocus }
func (AddTask) Kind() Kind            { return KindAddTask }
func (UpdateTask) Kind() Kind         { return KindUpdateTask }
func (DeleteTask) Kind() Kind         { return KindDeleteTask }
func (StartTimer) Kind() Kind         { return KindStartTimer }
func (PauseTimer) Kind() Kind         { return KindPauseTimer }
func (ResetTimer) Kind() Kind         { return KindResetTimer }
func (TickTimer) Kind() Kind          { return KindTickTimer }
func (SetTimerColor) Kind() Kind      { return KindSetTimerColor }
func (UpdateBMI) Kind() Kind          { return KindUpdateBMI }
func (SetMusic) Kind() Kind           { return KindSetMusic }
func (SetNotes) Kind() Kind           { return KindSetNotes }
func (SetBackgroundTheme) Kind() Kind { return KindSetBackgroundTheme }
func (LoadFromStorage) Kind() Kind    { return KindLoadFromStorage }

// Ptr returns a pointer to v, for building patches.
func Ptr[T any](v T) *T {
	return &v
}

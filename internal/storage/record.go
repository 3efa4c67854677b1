package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sandeepkv93/focusdeck/internal/model"
	"github.com/sandeepkv93/focusdeck/internal/store"
)

// StateKey is the single key the dashboard record is stored under.
const StateKey = "productivity-toolkit-state"

var ErrMalformedRecord = errors.New("storage: record is not a json object")

// Record is the persisted subset of the dashboard state. Nil fields were
// absent or unreadable on load and are left untouched on restore.
type Record struct {
	DailyFocus      *string
	Tasks           *[]model.Task
	BMI             *model.BMIState
	Music           *model.MusicState
	Notes           *string
	BackgroundTheme *model.Theme
	TimerColor      *string
}

type taskEntity struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Category  string `json:"category"`
	CreatedAt int64  `json:"createdAt"`
	Priority  string `json:"priority,omitempty"`
}

type bmiEntity struct {
	Height   float64  `json:"height"`
	Weight   float64  `json:"weight"`
	Result   *float64 `json:"result"`
	Category *string  `json:"category"`
}

type musicEntity struct {
	IsPlaying    bool    `json:"isPlaying"`
	CurrentTrack string  `json:"currentTrack"`
	Volume       float64 `json:"volume"`
	Playlist     string  `json:"playlist"`
}

type timerEntity struct {
	CustomColor *string `json:"customColor"`
}

type recordEntity struct {
	DailyFocus      *string       `json:"dailyFocus,omitempty"`
	Tasks           *[]taskEntity `json:"tasks,omitempty"`
	BMI             *bmiEntity    `json:"bmi,omitempty"`
	Music           *musicEntity  `json:"music,omitempty"`
	Notes           *string       `json:"notes,omitempty"`
	BackgroundTheme *string       `json:"backgroundTheme,omitempty"`
	CurrentTimer    *timerEntity  `json:"currentTimer,omitempty"`
}

// RecordFrom extracts the persisted subset of s.
func RecordFrom(s model.AppState) Record {
	tasks := make([]model.Task, len(s.Tasks))
	copy(tasks, s.Tasks)
	bmi := s.BMI
	music := s.Music
	return Record{
		DailyFocus:      store.Ptr(s.DailyFocus),
		Tasks:           &tasks,
		BMI:             &bmi,
		Music:           &music,
		Notes:           store.Ptr(s.Notes),
		BackgroundTheme: store.Ptr(s.BackgroundTheme),
		TimerColor:      store.Ptr(s.Timer.CustomColor),
	}
}

// Patch converts r into the partial state restored on startup.
func (r Record) Patch() store.StatePatch {
	return store.StatePatch{
		DailyFocus:      r.DailyFocus,
		Tasks:           r.Tasks,
		BMI:             r.BMI,
		Music:           r.Music,
		Notes:           r.Notes,
		BackgroundTheme: r.BackgroundTheme,
		TimerColor:      r.TimerColor,
	}
}

func EncodeRecord(r Record) ([]byte, error) {
	out := recordEntity{
		DailyFocus: r.DailyFocus,
		Notes:      r.Notes,
	}
	if r.Tasks != nil {
		tasks := make([]taskEntity, 0, len(*r.Tasks))
		for _, t := range *r.Tasks {
			tasks = append(tasks, taskEntity{
				ID:        t.ID,
				Title:     t.Title,
				Completed: t.Completed,
				Category:  string(t.Category),
				CreatedAt: t.CreatedAt.UnixMilli(),
				Priority:  string(t.Priority),
			})
		}
		out.Tasks = &tasks
	}
	if r.BMI != nil {
		b := bmiEntity{Height: r.BMI.Height, Weight: r.BMI.Weight}
		if r.BMI.Calculated() {
			b.Result = store.Ptr(r.BMI.Result)
			b.Category = store.Ptr(string(r.BMI.Category))
		}
		out.BMI = &b
	}
	if r.Music != nil {
		out.Music = &musicEntity{
			IsPlaying:    r.Music.IsPlaying,
			CurrentTrack: r.Music.CurrentTrack,
			Volume:       r.Music.Volume,
			Playlist:     string(r.Music.Playlist),
		}
	}
	if r.BackgroundTheme != nil {
		out.BackgroundTheme = store.Ptr(string(*r.BackgroundTheme))
	}
	if r.TimerColor != nil {
		out.CurrentTimer = &timerEntity{CustomColor: r.TimerColor}
	}
	return json.Marshal(out)
}

// DecodeRecord reads each top-level field independently. A field that
// fails to decode or validate is logged and skipped; only a payload that
// is not a JSON object is rejected as a whole.
func DecodeRecord(raw []byte, logger *slog.Logger) (Record, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Record{}, ErrMalformedRecord
	}

	var out Record
	skip := func(field string, err error) {
		logger.Warn("skipping persisted field", "field", field, "err", err)
	}

	if v, ok := fields["dailyFocus"]; ok {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			skip("dailyFocus", err)
		} else {
			out.DailyFocus = &s
		}
	}
	if v, ok := fields["tasks"]; ok {
		if tasks, err := decodeTasks(v, logger); err != nil {
			skip("tasks", err)
		} else {
			out.Tasks = &tasks
		}
	}
	if v, ok := fields["bmi"]; ok {
		if bmi, err := decodeBMI(v); err != nil {
			skip("bmi", err)
		} else {
			out.BMI = &bmi
		}
	}
	if v, ok := fields["music"]; ok {
		if music, err := decodeMusic(v); err != nil {
			skip("music", err)
		} else {
			out.Music = &music
		}
	}
	if v, ok := fields["notes"]; ok {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			skip("notes", err)
		} else {
			out.Notes = &s
		}
	}
	if v, ok := fields["backgroundTheme"]; ok {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			skip("backgroundTheme", err)
		} else if theme := model.Theme(s); !theme.IsValid() {
			skip("backgroundTheme", fmt.Errorf("%w: %q", model.ErrInvalidTheme, s))
		} else {
			out.BackgroundTheme = &theme
		}
	}
	if v, ok := fields["currentTimer"]; ok {
		var timer timerEntity
		if err := json.Unmarshal(v, &timer); err != nil {
			skip("currentTimer", err)
		} else if timer.CustomColor != nil {
			out.TimerColor = timer.CustomColor
		}
	}
	return out, nil
}

// decodeTasks drops individual tasks that fail validation and keeps the rest.
func decodeTasks(raw json.RawMessage, logger *slog.Logger) ([]model.Task, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	out := make([]model.Task, 0, len(items))
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		var e taskEntity
		if err := json.Unmarshal(item, &e); err != nil {
			logger.Warn("skipping persisted task", "index", i, "err", err)
			continue
		}
		t := model.Task{
			ID:        e.ID,
			Title:     e.Title,
			Completed: e.Completed,
			Category:  model.Category(e.Category),
			CreatedAt: time.UnixMilli(e.CreatedAt).UTC(),
			Priority:  model.Priority(e.Priority),
		}
		if err := t.Validate(); err != nil {
			logger.Warn("skipping persisted task", "index", i, "err", err)
			continue
		}
		if seen[t.ID] {
			logger.Warn("skipping persisted task", "index", i, "err", "duplicate id", "id", t.ID)
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out, nil
}

func decodeBMI(raw json.RawMessage) (model.BMIState, error) {
	var e bmiEntity
	if err := json.Unmarshal(raw, &e); err != nil {
		return model.BMIState{}, err
	}
	out := model.BMIState{Height: e.Height, Weight: e.Weight}
	if e.Result != nil && e.Category != nil {
		c := model.BMICategory(*e.Category)
		if !c.IsValid() {
			return model.BMIState{}, fmt.Errorf("storage: invalid bmi category %q", *e.Category)
		}
		out.Result = *e.Result
		out.Category = c
	}
	return out, nil
}

func decodeMusic(raw json.RawMessage) (model.MusicState, error) {
	var e musicEntity
	if err := json.Unmarshal(raw, &e); err != nil {
		return model.MusicState{}, err
	}
	p := model.Playlist(e.Playlist)
	if !p.IsValid() {
		return model.MusicState{}, fmt.Errorf("%w: %q", model.ErrInvalidPlaylist, e.Playlist)
	}
	if _, ok := model.FindTrack(e.CurrentTrack); !ok {
		return model.MusicState{}, fmt.Errorf("storage: unknown track %q", e.CurrentTrack)
	}
	return model.MusicState{
		IsPlaying:    e.IsPlaying,
		CurrentTrack: e.CurrentTrack,
		Volume:       model.ClampVolume(e.Volume),
		Playlist:     p,
	}, nil
}

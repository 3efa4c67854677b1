package commands

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/focusdeck/internal/model"
	"github.com/sandeepkv93/focusdeck/internal/store"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add pay rent #today !high", TypeAdd},
		{"focus finish the draft", TypeFocus},
		{"timer 45", TypeTimer},
		{"timer pomodoro", TypeTimer},
		{"bmi 175 70", TypeBMI},
		{"theme dark", TypeTheme},
		{"color purple", TypeColor},
		{"play", TypePlay},
		{"PAUSE", TypePause},
		{"next", TypeNext},
		{"prev", TypePrev},
		{"playlist nature", TypePlaylist},
		{"volume 40", TypeVolume},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddMarkers(t *testing.T) {
	cmd, err := Parse("/add #today pay rent !medium")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Title != "pay rent" || cmd.Add.Category != model.CategoryToday || cmd.Add.Priority != model.PriorityMedium {
		t.Fatalf("unexpected add args: %+v", *cmd.Add)
	}

	cmd, err = Parse("add water plants")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Category != model.CategoryInbox || cmd.Add.Priority != model.PriorityNone {
		t.Fatalf("expected inbox without priority, got %+v", *cmd.Add)
	}
}

func TestParseRejectsInvalidArguments(t *testing.T) {
	cases := []string{
		"add",
		"add #today !low",
		"add call mom !urgent",
		"focus",
		"timer",
		"timer 0",
		"timer 121",
		"timer soon",
		"bmi 175",
		"bmi 99 70",
		"bmi 175 301",
		"bmi tall 70",
		"theme neon",
		"color black",
		"play loud",
		"playlist jazz",
		"volume 101",
		"volume -1",
		"volume max",
	}
	for _, in := range cases {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument error, got %v", in, err)
		}
	}
}

func TestParseFocusLength(t *testing.T) {
	long := make([]byte, model.MaxFocusLength+1)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := Parse("focus " + string(long)); err == nil {
		t.Fatal("expected error for focus longer than the limit")
	}
	if _, err := Parse("focus " + string(long[:model.MaxFocusLength])); err != nil {
		t.Fatalf("focus at the limit should parse: %v", err)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/unknown do x")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "/"} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
			t.Fatalf("parse %q: expected empty input error, got %v", in, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Title != "write docs" {
				t.Fatalf("unexpected title: %q", a.Title)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("theme light")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}

func execLine(t *testing.T, h Handlers, line string) Result {
	t.Helper()
	cmd, err := Parse(line)
	if err != nil {
		t.Fatalf("parse %q: %v", line, err)
	}
	res, err := Execute(cmd, h)
	if err != nil {
		t.Fatalf("execute %q: %v", line, err)
	}
	return res
}

func TestStoreHandlers(t *testing.T) {
	s := store.New(model.DefaultState())
	h := NewHandlers(s, nil)

	execLine(t, h, "add plan sprint #today !high")
	execLine(t, h, "focus ship the release")
	execLine(t, h, "bmi 180 90")
	execLine(t, h, "theme dark")
	execLine(t, h, "color orange")
	execLine(t, h, "playlist nature")
	execLine(t, h, "volume 25")
	execLine(t, h, "play")
	execLine(t, h, "next")

	st := s.State()
	if len(st.Tasks) != 1 || st.Tasks[0].Category != model.CategoryToday || st.Tasks[0].Priority != model.PriorityHigh {
		t.Fatalf("unexpected tasks: %+v", st.Tasks)
	}
	if st.DailyFocus != "ship the release" {
		t.Fatalf("unexpected focus: %q", st.DailyFocus)
	}
	if st.BMI.Result != 27.8 || st.BMI.Category != model.BMIOverweight {
		t.Fatalf("unexpected bmi: %+v", st.BMI)
	}
	if st.BackgroundTheme != model.ThemeDark || st.Timer.CustomColor != "orange" {
		t.Fatalf("unexpected theme/color: %s %s", st.BackgroundTheme, st.Timer.CustomColor)
	}
	if st.Music.Playlist != model.PlaylistNature || st.Music.CurrentTrack != "nature-2" || !st.Music.IsPlaying {
		t.Fatalf("unexpected music: %+v", st.Music)
	}
	if st.Music.Volume != 0.25 {
		t.Fatalf("unexpected volume: %v", st.Music.Volume)
	}

	execLine(t, h, "prev")
	execLine(t, h, "prev")
	if got := s.State().Music.CurrentTrack; got != "nature-4" {
		t.Fatalf("prev should wrap to the last track, got %s", got)
	}
}

func TestStoreHandlersTimer(t *testing.T) {
	s := store.New(model.DefaultState())
	h := NewHandlers(s, nil)

	cmd, _ := Parse("timer pause")
	if _, err := Execute(cmd, h); err == nil {
		t.Fatal("expected error pausing an idle timer")
	}

	execLine(t, h, "timer 45")
	timer := s.State().Timer
	if !timer.IsActive || timer.TimeLeft != 45*60 || timer.Type != model.TimerCustom {
		t.Fatalf("unexpected timer after start: %+v", timer)
	}
	if res := execLine(t, h, "timer pause"); res.Message != "timer paused" {
		t.Fatalf("unexpected pause result: %q", res.Message)
	}
	if res := execLine(t, h, "timer pause"); res.Message != "timer resumed" {
		t.Fatalf("unexpected resume result: %q", res.Message)
	}
	execLine(t, h, "timer reset")
	timer = s.State().Timer
	if timer.IsActive || timer.TimeLeft != model.CustomSeconds {
		t.Fatalf("unexpected timer after reset: %+v", timer)
	}
	execLine(t, h, "timer pomodoro")
	if timer = s.State().Timer; timer.Type != model.TimerPomodoro || timer.TimeLeft != model.PomodoroSeconds {
		t.Fatalf("unexpected pomodoro: %+v", timer)
	}
}

func TestNextUsesTrackPicker(t *testing.T) {
	s := store.New(model.DefaultState())
	h := NewHandlers(s, func(model.MusicState) model.Track {
		track, _ := model.FindTrack("lofi-4")
		return track
	})
	execLine(t, h, "next")
	if got := s.State().Music.CurrentTrack; got != "lofi-4" {
		t.Fatalf("expected picker track, got %s", got)
	}
}

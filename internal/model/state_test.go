package model

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"
)

func TestDefaultState(t *testing.T) {
	s := DefaultState()
	if s.Timer.TimeLeft != 1500 || s.Timer.Type != TimerPomodoro || s.Timer.CustomColor != "teal" {
		t.Fatalf("unexpected timer defaults: %+v", s.Timer)
	}
	if s.Timer.IsActive || s.Timer.IsPaused || s.Timer.IsBreak {
		t.Fatalf("timer should start idle: %+v", s.Timer)
	}
	if s.Music.CurrentTrack != "lofi-1" || s.Music.Volume != 0.7 || s.Music.Playlist != PlaylistLofi || s.Music.IsPlaying {
		t.Fatalf("unexpected music defaults: %+v", s.Music)
	}
	if s.BackgroundTheme != ThemeGradient || s.Greeting != "Good morning" || s.Quote != DefaultQuote {
		t.Fatalf("unexpected presentation defaults: %+v", s)
	}
	if s.Tasks == nil || len(s.Tasks) != 0 {
		t.Fatalf("expected empty non-nil tasks, got %#v", s.Tasks)
	}
}

func TestCloneDoesNotShareTasks(t *testing.T) {
	s := DefaultState()
	s.Tasks = append(s.Tasks, Task{ID: "a", Title: "a"})
	c := s.Clone()
	c.Tasks[0].Title = "changed"
	if s.Tasks[0].Title != "a" {
		t.Fatal("clone mutated original tasks")
	}
}

func TestGreetingFor(t *testing.T) {
	day := func(h int) time.Time { return time.Date(2026, 2, 9, h, 30, 0, 0, time.UTC) }
	cases := map[int]string{
		0:  "Good morning",
		11: "Good morning",
		12: "Good afternoon",
		16: "Good afternoon",
		17: "Good evening",
		23: "Good evening",
	}
	for h, want := range cases {
		if got := GreetingFor(day(h)); got != want {
			t.Fatalf("GreetingFor(%02d:30) = %q, want %q", h, got, want)
		}
	}
}

func TestValidateFocus(t *testing.T) {
	if err := ValidateFocus("  ship the release  "); err != nil {
		t.Fatalf("expected valid focus, got %v", err)
	}
	if err := ValidateFocus("   "); !errors.Is(err, ErrInvalidFocus) {
		t.Fatalf("expected empty focus error, got %v", err)
	}
	if err := ValidateFocus(strings.Repeat("x", 101)); !errors.Is(err, ErrInvalidFocus) {
		t.Fatalf("expected length error, got %v", err)
	}
}

func TestCountNotes(t *testing.T) {
	got := CountNotes("hello  world\nagain ")
	if got.Words != 3 || got.Chars != 19 {
		t.Fatalf("unexpected notes stats: %+v", got)
	}
	if got := CountNotes(""); got.Words != 0 || got.Chars != 0 {
		t.Fatalf("unexpected empty stats: %+v", got)
	}
}

func TestTrackNavigationWraps(t *testing.T) {
	if next := NextTrack(PlaylistLofi, "lofi-4", nil); next.ID != "lofi-1" {
		t.Fatalf("expected wrap to lofi-1, got %s", next.ID)
	}
	if next := NextTrack(PlaylistNature, "nature-1", nil); next.ID != "nature-2" {
		t.Fatalf("expected nature-2, got %s", next.ID)
	}
	if prev := PreviousTrack(PlaylistLofi, "lofi-1"); prev.ID != "lofi-4" {
		t.Fatalf("expected wrap to lofi-4, got %s", prev.ID)
	}
	if prev := PreviousTrack(PlaylistLofi, "lofi-3"); prev.ID != "lofi-2" {
		t.Fatalf("expected lofi-2, got %s", prev.ID)
	}
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		if got := NextTrack(PlaylistNature, "nature-1", rnd); got.Playlist != PlaylistNature {
			t.Fatalf("shuffle left the playlist: %+v", got)
		}
	}
}

func TestThemeCycle(t *testing.T) {
	if ThemeLight.Next() != ThemeDark || ThemeDark.Next() != ThemeGradient || ThemeGradient.Next() != ThemeLight {
		t.Fatal("unexpected theme cycle")
	}
	if Theme("neon").Info().Name != "Purple-Blue" {
		t.Fatal("unknown theme should fall back to gradient info")
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 2, 9, 15, 0, 0, 0, time.UTC)
	tasks := []Task{
		{ID: "a", Completed: true},
		{ID: "b"},
		{ID: "c", Completed: true},
		{ID: "d"},
	}
	sessions := []Session{
		{CompletedAt: now.Add(-time.Hour), Seconds: 1500},
		{CompletedAt: now.Add(-2 * time.Hour), Seconds: 1500},
		{CompletedAt: now.Add(-24 * time.Hour), Seconds: 1500},
	}
	got := ComputeStats(tasks, sessions, now)
	if got.SessionsToday != 2 || got.FocusSeconds != 3000 {
		t.Fatalf("unexpected session stats: %+v", got)
	}
	if got.ProductivityScore != 50 || got.CompletedTasks != 2 || got.PendingTasks != 2 {
		t.Fatalf("unexpected task stats: %+v", got)
	}
	if empty := ComputeStats(nil, nil, now); empty.ProductivityScore != 0 {
		t.Fatalf("expected zero score without tasks, got %+v", empty)
	}
}

package views

import (
	"strings"
	"testing"
)

func TestRenderTaskRow(t *testing.T) {
	got := RenderTaskRow(TaskRowData{Title: "write docs", Priority: "high"})
	if got != "[ ] write docs [RED]" {
		t.Fatalf("unexpected row: %q", got)
	}
	got = RenderTaskRow(TaskRowData{Title: "ship", Completed: true})
	if got != "[x] ship" {
		t.Fatalf("unexpected completed row: %q", got)
	}
}

func TestRenderSidebarMarksCurrent(t *testing.T) {
	out := RenderSidebar("dark", []string{"Daily Focus", "Tasks", "Timer"}, "Tasks")
	if !strings.Contains(out, "> 2  Tasks") {
		t.Fatalf("expected current section marker, got:\n%s", out)
	}
	if strings.Contains(out, "> 1  Daily Focus") {
		t.Fatalf("only the current section should be marked:\n%s", out)
	}
}

func TestStylesForUnknownThemeFallsBack(t *testing.T) {
	a := StylesFor("neon").Accent.GetForeground()
	b := StylesFor("gradient").Accent.GetForeground()
	if a != b {
		t.Fatalf("expected gradient fallback, got %v vs %v", a, b)
	}
}

func TestRenderAppIncludesPanes(t *testing.T) {
	out := RenderApp(AppData{
		Theme:      "light",
		Header:     "focusdeck",
		Sidebar:    "nav",
		Main:       "main pane",
		Aside:      "stats pane",
		StatusLine: "status: ready",
		Footer:     "keys",
	})
	for _, want := range []string{"focusdeck", "nav", "main pane", "stats pane", "status: ready", "keys"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderHelpers(t *testing.T) {
	if RenderCommandPalette(false, "x") != "" {
		t.Fatal("inactive palette should render nothing")
	}
	if RenderNotification("info", "  ") != "" {
		t.Fatal("empty notification should render nothing")
	}
	if RenderMarkdown("   ", "dark") != "" {
		t.Fatal("blank markdown should render nothing")
	}
	if got := RenderNotification("error", "boom"); got != "notification: [ERROR] boom" {
		t.Fatalf("unexpected notification: %q", got)
	}
}

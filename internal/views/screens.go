package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type FocusPanelData struct {
	Theme     string
	Greeting  string
	Clock     string
	Quote     string
	Intention string
	InputView string
	Editing   bool
	Count     int
	Limit     int
}

type TaskRowData struct {
	ID        string
	Title     string
	Priority  string
	Completed bool
	Category  string
}

type TasksPanelData struct {
	Theme      string
	Tabs       []string
	Counts     []int
	ActiveTab  int
	ListView   string
	InputView  string
	InputLabel string
	Empty      bool
}

type TimerPanelData struct {
	Theme        string
	Color        string
	Remaining    string
	Phase        string
	Type         string
	State        string
	ProgressView string
	ProgressPct  int
	InputView    string
}

type WellnessPanelData struct {
	Theme       string
	HeightView  string
	WeightView  string
	Editing     bool
	ErrorText   string
	Result      string
	Category    string
	Tips        []string
	RangesTable string
}

type MusicPanelData struct {
	Theme        string
	Playlist     string
	Title        string
	Artist       string
	Elapsed      string
	Duration     string
	ProgressView string
	Playing      bool
	Shuffle      bool
	Repeat       bool
	VolumePct    int
	TrackTable   string
}

type NotesPanelData struct {
	Theme      string
	EditorView string
	Preview    string
	Words      int
	Chars      int
	Editing    bool
	Saving     string
}

type StatsPanelData struct {
	Theme         string
	Sessions      int
	FocusTime     string
	Score         int
	Completed     int
	Pending       int
	BackgroundTag string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderFocusPanel(data FocusPanelData) string {
	st := StylesFor(data.Theme)
	var b strings.Builder
	b.WriteString(st.Accent.Render(data.Greeting) + "  " + st.Muted.Render(data.Clock) + "\n\n")
	b.WriteString(st.Muted.Render(fmt.Sprintf("%q", data.Quote)) + "\n\n")
	b.WriteString("today's focus:\n")
	if data.Editing {
		b.WriteString(data.InputView + "\n")
		b.WriteString(st.Muted.Render(fmt.Sprintf("%d/%d characters", data.Count, data.Limit)) + "\n")
		b.WriteString("actions: [enter]save [esc]cancel")
		return b.String()
	}
	if strings.TrimSpace(data.Intention) == "" {
		b.WriteString(st.Muted.Render("(what is your main focus today?)") + "\n")
	} else {
		b.WriteString(st.Selected.Render(data.Intention) + "\n")
	}
	b.WriteString("actions: [e]edit focus")
	return b.String()
}

func RenderTasksPanel(data TasksPanelData) string {
	st := StylesFor(data.Theme)
	var b strings.Builder
	tabs := make([]string, 0, len(data.Tabs))
	for i, tab := range data.Tabs {
		label := fmt.Sprintf("%s (%d)", tab, countAt(data.Counts, i))
		if i == data.ActiveTab {
			tabs = append(tabs, st.Selected.Render("["+label+"]"))
		} else {
			tabs = append(tabs, st.Muted.Render(" "+label+" "))
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n")
	if data.InputView != "" {
		b.WriteString(data.InputLabel + "\n" + data.InputView + "\n")
	}
	if data.Empty {
		b.WriteString(st.Muted.Render("(no tasks here)") + "\n")
	} else {
		b.WriteString(data.ListView + "\n")
	}
	b.WriteString("actions: [tab]view [a]add [space]done [e]edit [d]delete [m]move [p]priority")
	return b.String()
}

func countAt(counts []int, i int) int {
	if i < len(counts) {
		return counts[i]
	}
	return 0
}

// RenderTaskRow is the list line for one task.
func RenderTaskRow(row TaskRowData) string {
	box := "[ ]"
	if row.Completed {
		box = "[x]"
	}
	text := box + " " + row.Title
	if row.Priority != "" {
		text += " " + priorityBadge(row.Priority)
	}
	return text
}

func priorityBadge(p string) string {
	switch p {
	case "high":
		return "[RED]"
	case "medium":
		return "[YELLOW]"
	default:
		return "[GREEN]"
	}
}

func RenderTimerPanel(data TimerPanelData) string {
	st := StylesFor(data.Theme)
	clock := lipgloss.NewStyle().Bold(true).Foreground(TimerColor(data.Color)).Render(data.Remaining)
	var b strings.Builder
	b.WriteString(st.Accent.Render(strings.ToUpper(data.Phase)) + "\n")
	b.WriteString(clock + "\n")
	b.WriteString(fmt.Sprintf("%s %d%%\n", data.ProgressView, data.ProgressPct))
	b.WriteString(fmt.Sprintf("type: %s | state: %s | color: %s\n", data.Type, data.State, data.Color))
	if data.InputView != "" {
		b.WriteString("custom minutes (1-120):\n" + data.InputView + "\n")
	}
	b.WriteString("actions: [s]pomodoro [c]custom [space]pause [r]reset [k]color")
	return b.String()
}

func RenderWellnessPanel(data WellnessPanelData) string {
	st := StylesFor(data.Theme)
	var b strings.Builder
	b.WriteString("bmi calculator:\n")
	b.WriteString(data.HeightView + "\n")
	b.WriteString(data.WeightView + "\n")
	if data.ErrorText != "" {
		b.WriteString(st.Error.Render(data.ErrorText) + "\n")
	}
	if data.Category != "" {
		b.WriteString(fmt.Sprintf("\nresult: %s (%s)\n", st.Accent.Render(data.Result), data.Category))
		for _, tip := range data.Tips {
			b.WriteString("- " + tip + "\n")
		}
	}
	b.WriteString("\n" + data.RangesTable + "\n")
	if data.Editing {
		b.WriteString("actions: [tab]field [enter]calculate [esc]close")
	} else {
		b.WriteString("actions: [e]enter measurements")
	}
	return b.String()
}

func RenderMusicPanel(data MusicPanelData) string {
	st := StylesFor(data.Theme)
	state := "paused"
	if data.Playing {
		state = "playing"
	}
	var b strings.Builder
	b.WriteString(st.Muted.Render(data.Playlist) + "\n")
	b.WriteString(st.Accent.Render(data.Title) + " - " + data.Artist + "\n")
	b.WriteString(fmt.Sprintf("%s %s / %s\n", data.ProgressView, data.Elapsed, data.Duration))
	b.WriteString(fmt.Sprintf("%s | shuffle: %s | repeat: %s | volume: %d%%\n", state, onOff(data.Shuffle), onOff(data.Repeat), data.VolumePct))
	b.WriteString(data.TrackTable + "\n")
	b.WriteString("actions: [space]play/pause [n]next [b]prev [enter]play selected [l]playlist [s]shuffle [r]repeat [+/-]volume")
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func RenderNotesPanel(data NotesPanelData) string {
	st := StylesFor(data.Theme)
	var b strings.Builder
	b.WriteString(data.EditorView + "\n")
	counts := fmt.Sprintf("%d words | %d characters", data.Words, data.Chars)
	if data.Saving != "" {
		counts += " | " + data.Saving + " saving"
	}
	b.WriteString(st.Muted.Render(counts) + "\n")
	if data.Editing {
		b.WriteString("actions: [esc]done [ctrl+s]export [ctrl+x]clear")
	} else {
		b.WriteString("actions: [e]edit [ctrl+s]export [ctrl+x]clear")
	}
	if strings.TrimSpace(data.Preview) != "" {
		b.WriteString("\n\npreview:\n" + data.Preview)
	}
	return b.String()
}

func RenderStatsPanel(data StatsPanelData) string {
	st := StylesFor(data.Theme)
	var b strings.Builder
	b.WriteString(st.Accent.Render("today") + "\n")
	b.WriteString(fmt.Sprintf("sessions: %d\n", data.Sessions))
	b.WriteString(fmt.Sprintf("focus time: %s\n", data.FocusTime))
	b.WriteString(fmt.Sprintf("productivity: %d%%\n", data.Score))
	b.WriteString(fmt.Sprintf("tasks: %d done, %d pending\n", data.Completed, data.Pending))
	if data.BackgroundTag != "" {
		b.WriteString(st.Muted.Render("theme: " + data.BackgroundTag))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

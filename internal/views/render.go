package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Theme        string
	Header       string
	Sidebar      string
	Main         string
	Aside        string
	StatusLine   string
	StatusError  bool
	Footer       string
	Notification string
}

// Styles is the set of styles one background theme renders with.
type Styles struct {
	Header   lipgloss.Style
	Panel    lipgloss.Style
	Accent   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
}

type themeColors struct {
	fg, muted, accent, border, selected string
}

var themeTable = map[string]themeColors{
	"light":    {fg: "235", muted: "244", accent: "26", border: "250", selected: "25"},
	"dark":     {fg: "252", muted: "242", accent: "75", border: "238", selected: "81"},
	"gradient": {fg: "255", muted: "147", accent: "177", border: "99", selected: "213"},
}

func StylesFor(theme string) Styles {
	c, ok := themeTable[theme]
	if !ok {
		c = themeTable["gradient"]
	}
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.accent)),
		Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(c.border)).Foreground(lipgloss.Color(c.fg)).Padding(0, 1),
		Accent:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.accent)),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.muted)),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.selected)),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// TimerColor maps a timer accent name to a terminal color.
func TimerColor(name string) lipgloss.Color {
	switch name {
	case "purple":
		return lipgloss.Color("#a855f7")
	case "blue":
		return lipgloss.Color("#3b82f6")
	case "green":
		return lipgloss.Color("#22c55e")
	case "orange":
		return lipgloss.Color("#f97316")
	case "pink":
		return lipgloss.Color("#ec4899")
	default:
		return lipgloss.Color("#14b8a6")
	}
}

func RenderApp(data AppData) string {
	st := StylesFor(data.Theme)
	sidebar := st.Panel.Width(22).Render(data.Sidebar)
	main := st.Panel.Width(60).Render(data.Main)
	cols := []string{sidebar, main}
	if strings.TrimSpace(data.Aside) != "" {
		cols = append(cols, st.Panel.Width(40).Render(data.Aside))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	status := st.Status.Render(data.StatusLine)
	if data.StatusError {
		status = st.Error.Render(data.StatusLine)
	}

	lines := []string{
		st.Header.Render(data.Header),
		row,
		status,
	}
	if data.Notification != "" {
		lines = append(lines, st.Panel.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, st.Muted.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderSidebar lists the sections, marking the current one.
func RenderSidebar(theme string, sections []string, current string) string {
	st := StylesFor(theme)
	var b strings.Builder
	for i, s := range sections {
		line := string(rune('1'+i)) + "  " + s
		if s == current {
			b.WriteString(st.Selected.Render("> " + line))
		} else {
			b.WriteString(st.Muted.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderMarkdown(md, theme string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "dark"
	if theme == "light" {
		style = "light"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

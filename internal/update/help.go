package update

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/focusdeck/internal/views"
)

// sectionKeys implements help.KeyMap: the global row first, then the
// bindings of the current section.
type sectionKeys struct {
	global  []key.Binding
	section []key.Binding
}

func (k sectionKeys) ShortHelp() []key.Binding {
	return append(append([]key.Binding{}, k.global...), k.section...)
}

func (k sectionKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.global, k.section}
}

func bind(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

func (m Model) keyMap() sectionKeys {
	return sectionKeys{
		global: []key.Binding{
			bind("1-6", "section", "1", "2", "3", "4", "5", "6"),
			bind(m.Keys.Palette, "command", m.Keys.Palette),
			bind(m.Keys.Theme, "theme", m.Keys.Theme),
			bind(m.Keys.Help, "help", m.Keys.Help),
			bind(m.Keys.Quit, "quit", m.Keys.Quit, "ctrl+c"),
		},
		section: sectionBindings(m.Section),
	}
}

func sectionBindings(s Section) []key.Binding {
	switch s {
	case SectionFocus:
		return []key.Binding{
			bind("e", "edit daily focus", "e", "enter"),
			bind("esc", "cancel edit", "esc"),
		}
	case SectionTasks:
		return []key.Binding{
			bind("tab", "next view", "tab", "shift+tab"),
			bind("j/k", "move cursor", "j", "k", "down", "up"),
			bind("a", "add task", "a"),
			bind("e", "edit title", "e"),
			bind("space", "toggle done", " "),
			bind("d", "delete", "d"),
			bind("m", "move inbox/today", "m"),
			bind("p", "cycle priority", "p"),
		}
	case SectionTimer:
		return []key.Binding{
			bind("s", "start pomodoro", "s"),
			bind("c", "custom minutes", "c"),
			bind("space", "pause/resume", " "),
			bind("r", "reset", "r"),
			bind("k", "cycle color", "k"),
		}
	case SectionWellness:
		return []key.Binding{
			bind("e", "enter measurements", "e", "enter"),
			bind("tab", "switch field", "tab"),
			bind("enter", "calculate BMI", "enter"),
		}
	case SectionMusic:
		return []key.Binding{
			bind("space", "play/pause", " "),
			bind("n/b", "next/previous", "n", "b"),
			bind("enter", "play selected", "enter"),
			bind("l", "switch playlist", "l"),
			bind("s", "shuffle", "s"),
			bind("r", "repeat", "r"),
			bind("+/-", "volume", "+", "=", "-"),
		}
	case SectionNotes:
		return []key.Binding{
			bind("e", "edit", "e", "enter"),
			bind("esc", "finish editing", "esc"),
			bind("ctrl+s", "export", "ctrl+s"),
			bind("ctrl+x", "clear", "ctrl+x"),
		}
	}
	return nil
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	km := m.keyMap()
	lines := make([]string, 0, len(km.section))
	for _, b := range km.section {
		h := b.Help()
		lines = append(lines, "- "+h.Key+": "+h.Desc)
	}
	if len(lines) == 0 {
		lines = append(lines, "- no section bindings")
	}
	hm := m.helpModel
	hm.ShowAll = true
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.Section),
		Bindings:    lines,
		HelpView:    hm.View(km),
	})
}

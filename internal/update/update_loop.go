package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/focusdeck/internal/dashboard"
	"github.com/sandeepkv93/focusdeck/internal/model"
	"github.com/sandeepkv93/focusdeck/internal/store"
	"github.com/sandeepkv93/focusdeck/internal/views"
)

func (m Model) Init() tea.Cmd {
	return waitForSnapshotCmd(m.rt.Updates())
}

func waitForSnapshotCmd(ch <-chan dashboard.Snapshot) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return nil
		}
		return SnapshotMsg{Snapshot: snap}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case SnapshotMsg:
		m.applySnapshot(typed.Snapshot)
		return m, waitForSnapshotCmd(m.rt.Updates())
	case spinner.TickMsg:
		if m.Notes.Pending {
			var cmd tea.Cmd
			m.saveSpinner, cmd = m.saveSpinner.Update(typed)
			return m, cmd
		}
	case notesFlushMsg:
		if m.Notes.Pending && typed.Seq == m.Notes.Seq {
			m.flushNotes()
		}
		return m, nil
	case SwitchSectionMsg:
		if isKnownSection(typed.Section) {
			m.Section = typed.Section
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		m.flushNotes()
		m.Quitting = true
		return m, tea.Quit
	}
	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}
	if m.capturing() {
		return m.handleSectionKey(msg)
	}

	switch keyStr {
	case m.Keys.Palette:
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown"}
		} else {
			m.Status = StatusBar{Text: "help hidden"}
		}
		return m, nil
	case m.Keys.Theme:
		theme := m.snap.State.BackgroundTheme.Next()
		m.dispatch(store.SetBackgroundTheme{Theme: theme})
		m.Status = StatusBar{Text: "theme: " + theme.Info().Name}
		return m, nil
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}
	if len(keyStr) == 1 && keyStr[0] >= '1' && int(keyStr[0]-'1') < len(Sections()) {
		m.Section = Sections()[keyStr[0]-'1']
		return m, nil
	}
	return m.handleSectionKey(msg)
}

// capturing reports whether a text field owns the keyboard.
func (m Model) capturing() bool {
	return m.Tasks.Mode != InputNone || m.Focus.Editing || m.Timer.EditingMinutes ||
		m.Wellness.Editing || m.Notes.Editing
}

func (m Model) handleSectionKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.Section {
	case SectionFocus:
		return m.handleFocusKey(msg)
	case SectionTasks:
		return m.handleTasksKey(msg)
	case SectionTimer:
		return m.handleTimerKey(msg)
	case SectionWellness:
		return m.handleWellnessKey(msg)
	case SectionMusic:
		return m.handleMusicKey(msg)
	case SectionNotes:
		return m.handleNotesKey(msg)
	}
	return m, nil
}

// dispatch sends a to the runtime and refreshes the snapshot so the next
// render reflects it without waiting for the update channel.
func (m *Model) dispatch(a store.Action) model.AppState {
	st := m.rt.Dispatch(a)
	m.applySnapshot(m.rt.Snapshot())
	return st
}

func (m *Model) applySnapshot(snap dashboard.Snapshot) {
	m.snap = snap
	if snap.NoticeID != m.lastNoticeID {
		m.lastNoticeID = snap.NoticeID
		if snap.Notice != "" {
			isErr := snap.SaveErr != nil && strings.HasPrefix(snap.Notice, "autosave")
			m.Status = StatusBar{Text: snap.Notice, IsError: isErr}
			m.notify("Dashboard", snap.Notice, levelFromError(isErr))
		}
	}
}

// State returns the state currently rendered.
func (m Model) State() model.AppState {
	return m.snap.State
}

func (m Model) View() string {
	theme := string(m.snap.State.BackgroundTheme)
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	var main string
	switch m.Section {
	case SectionFocus:
		main = m.renderFocusView()
	case SectionTasks:
		main = m.renderTasksView()
	case SectionTimer:
		main = m.renderTimerView()
	case SectionWellness:
		main = m.renderWellnessView()
	case SectionMusic:
		main = m.renderMusicView()
	case SectionNotes:
		main = m.renderNotesView()
	}

	aside := strings.TrimSpace(strings.Join([]string{
		m.renderStatsView(),
		m.renderCommandPalette(),
		m.renderHelpIfVisible(),
	}, "\n\n"))

	names := make([]string, 0, len(Sections()))
	for _, s := range Sections() {
		names = append(names, string(s))
	}

	return views.RenderApp(views.AppData{
		Theme:        theme,
		Header:       fmt.Sprintf("focusdeck | %s | %s", m.snap.State.Greeting, m.now().Format("Mon Jan 2 15:04")),
		Sidebar:      views.RenderSidebar(theme, names, string(m.Section)),
		Main:         main,
		Aside:        aside,
		StatusLine:   status,
		StatusError:  m.Status.IsError,
		Notification: strings.TrimSpace(m.renderNotificationsView()),
		Footer:       fmt.Sprintf("keys: 1-6 sections | %s cmd | %s theme | %s help | %s quit", m.Keys.Palette, m.Keys.Theme, m.Keys.Help, m.Keys.Quit),
	})
}

func notesFlushCmd(seq int) tea.Cmd {
	return tea.Tick(400*time.Millisecond, func(time.Time) tea.Msg { return notesFlushMsg{Seq: seq} })
}

package update

import (
	"errors"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/focusdeck/internal/model"
	"github.com/sandeepkv93/focusdeck/internal/storage"
	"github.com/sandeepkv93/focusdeck/internal/store"
	"github.com/sandeepkv93/focusdeck/internal/views"
)

func (m Model) handleNotesKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.flushNotes()
		m.exportNotes()
		return m, nil
	case "ctrl+x":
		m.notesArea.Reset()
		m.Notes.Pending = false
		m.dispatch(store.SetNotes{Text: ""})
		m.Status = StatusBar{Text: "notes cleared"}
		return m, nil
	}

	if !m.Notes.Editing {
		switch msg.String() {
		case "e", "enter":
			m.Notes.Editing = true
			m.notesArea.Focus()
			return m, textarea.Blink
		case "j", "down":
			m.notesPreview.ScrollDown(1)
		case "k", "up":
			m.notesPreview.ScrollUp(1)
		}
		return m, nil
	}

	if msg.String() == "esc" {
		m.flushNotes()
		m.Notes.Editing = false
		m.notesArea.Blur()
		return m, nil
	}

	before := m.notesArea.Value()
	var cmd tea.Cmd
	m.notesArea, cmd = m.notesArea.Update(msg)
	if m.notesArea.Value() == before {
		return m, cmd
	}
	cmds := []tea.Cmd{cmd}
	if !m.Notes.Pending {
		m.Notes.Pending = true
		cmds = append(cmds, m.saveSpinner.Tick)
	}
	m.Notes.Seq++
	cmds = append(cmds, notesFlushCmd(m.Notes.Seq))
	return m, tea.Batch(cmds...)
}

// flushNotes commits the editor buffer to the store if it has unsaved edits.
func (m *Model) flushNotes() {
	if !m.Notes.Pending {
		return
	}
	m.Notes.Pending = false
	m.dispatch(store.SetNotes{Text: m.notesArea.Value()})
}

func (m *Model) exportNotes() {
	path, err := storage.ExportNotes(m.exportDir, m.rt.State().Notes, m.now())
	switch {
	case errors.Is(err, storage.ErrEmptyNotes):
		m.Status = StatusBar{Text: "nothing to export", IsError: true}
	case err != nil:
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Export", err.Error(), "error")
	default:
		m.Status = StatusBar{Text: "notes exported to " + path}
		m.notify("Export", "notes exported to "+path, "info")
	}
}

func (m Model) renderNotesView() string {
	counts := model.CountNotes(m.notesArea.Value())
	saving := ""
	if m.Notes.Pending {
		saving = m.saveSpinner.View()
	}
	preview := ""
	if !m.Notes.Editing {
		preview = m.notesPreview.View()
	}
	return views.RenderNotesPanel(views.NotesPanelData{
		Theme:      string(m.snap.State.BackgroundTheme),
		EditorView: m.notesArea.View(),
		Preview:    preview,
		Words:      counts.Words,
		Chars:      counts.Chars,
		Editing:    m.Notes.Editing,
		Saving:     saving,
	})
}

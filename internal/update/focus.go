package update

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/focusdeck/internal/model"
	"github.com/sandeepkv93/focusdeck/internal/store"
	"github.com/sandeepkv93/focusdeck/internal/views"
)

func (m Model) handleFocusKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.Focus.Editing {
		switch msg.String() {
		case "esc":
			m.Focus.Editing = false
			m.focusInput.Blur()
			m.Status = StatusBar{Text: "focus edit cancelled"}
			return m, nil
		case "enter":
			text := strings.TrimSpace(m.focusInput.Value())
			if err := model.ValidateFocus(text); err != nil {
				m.Status = StatusBar{Text: err.Error(), IsError: true}
				return m, nil
			}
			m.dispatch(store.SetDailyFocus{Text: text})
			m.Focus.Editing = false
			m.focusInput.Blur()
			m.Status = StatusBar{Text: "daily focus set"}
			return m, nil
		}
		var cmd tea.Cmd
		m.focusInput, cmd = m.focusInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "e", "enter":
		m.Focus.Editing = true
		m.focusInput.SetValue(m.snap.State.DailyFocus)
		m.focusInput.CursorEnd()
		m.focusInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) renderFocusView() string {
	st := m.snap.State
	return views.RenderFocusPanel(views.FocusPanelData{
		Theme:     string(st.BackgroundTheme),
		Greeting:  st.Greeting,
		Clock:     m.now().Format("15:04"),
		Quote:     st.Quote,
		Intention: st.DailyFocus,
		InputView: m.focusInput.View(),
		Editing:   m.Focus.Editing,
		Count:     utf8.RuneCountInString(m.focusInput.Value()),
		Limit:     model.MaxFocusLength,
	})
}

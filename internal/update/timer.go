package update

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/focusdeck/internal/model"
	"github.com/sandeepkv93/focusdeck/internal/store"
	"github.com/sandeepkv93/focusdeck/internal/views"
)

func (m Model) handleTimerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.Timer.EditingMinutes {
		return m.handleMinutesKey(msg)
	}

	timer := m.snap.State.Timer
	switch msg.String() {
	case "s":
		m.dispatch(store.StartTimer{Duration: model.MinutesToSeconds(m.workMinutes), Type: model.TimerPomodoro})
		m.Status = StatusBar{Text: fmt.Sprintf("pomodoro started (%d min)", m.workMinutes)}
	case "c":
		m.Timer.EditingMinutes = true
		m.minutesInput.SetValue(strconv.Itoa(model.CustomSeconds / 60))
		m.minutesInput.CursorEnd()
		m.minutesInput.Focus()
		return m, textinput.Blink
	case " ":
		if !timer.IsActive {
			m.Status = StatusBar{Text: "timer is not running", IsError: true}
			return m, nil
		}
		m.dispatch(store.PauseTimer{})
		if timer.IsPaused {
			m.Status = StatusBar{Text: "timer resumed"}
		} else {
			m.Status = StatusBar{Text: "timer paused"}
		}
	case "r":
		m.dispatch(store.ResetTimer{})
		m.Status = StatusBar{Text: "timer reset"}
	case "k":
		color := model.NextTimerColor(timer.CustomColor)
		m.dispatch(store.SetTimerColor{Color: color})
		m.Status = StatusBar{Text: "timer color: " + color}
	}
	return m, nil
}

func (m Model) handleMinutesKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Timer.EditingMinutes = false
		m.minutesInput.Blur()
		return m, nil
	case "enter":
		minutes, err := strconv.Atoi(strings.TrimSpace(m.minutesInput.Value()))
		if err != nil {
			m.Status = StatusBar{Text: "minutes must be a whole number", IsError: true}
			return m, nil
		}
		if err := model.ValidateCustomMinutes(minutes); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.dispatch(store.StartTimer{Duration: model.MinutesToSeconds(minutes), Type: model.TimerCustom})
		m.Timer.EditingMinutes = false
		m.minutesInput.Blur()
		m.Status = StatusBar{Text: fmt.Sprintf("%d minute timer started", minutes)}
		return m, nil
	}
	var cmd tea.Cmd
	m.minutesInput, cmd = m.minutesInput.Update(msg)
	return m, cmd
}

func (m Model) renderTimerView() string {
	timer := m.snap.State.Timer
	total := m.snap.TimerTotal
	done := fraction(total-timer.TimeLeft, total)

	phase := "focus time"
	if timer.IsBreak {
		phase = "break time"
	}
	state := "idle"
	switch {
	case timer.IsActive && timer.IsPaused:
		state = "paused"
	case timer.IsActive:
		state = "running"
	}
	input := ""
	if m.Timer.EditingMinutes {
		input = m.minutesInput.View()
	}
	return views.RenderTimerPanel(views.TimerPanelData{
		Theme:        string(m.snap.State.BackgroundTheme),
		Color:        timer.CustomColor,
		Remaining:    formatDuration(timer.TimeLeft),
		Phase:        phase,
		Type:         string(timer.Type),
		State:        state,
		ProgressView: m.timerProgress.ViewAs(done),
		ProgressPct:  int(done * 100),
		InputView:    input,
	})
}

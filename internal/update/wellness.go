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

const (
	fieldHeight = iota
	fieldWeight
)

func (m Model) handleWellnessKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.Wellness.Editing {
		switch msg.String() {
		case "e", "enter":
			bmi := m.snap.State.BMI
			m.Wellness.Editing = true
			m.Wellness.Err = ""
			m.heightInput.SetValue(formatMeasure(bmi.Height))
			m.weightInput.SetValue(formatMeasure(bmi.Weight))
			m.focusWellnessField(fieldHeight)
			return m, textinput.Blink
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.Wellness.Editing = false
		m.Wellness.Err = ""
		m.heightInput.Blur()
		m.weightInput.Blur()
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.focusWellnessField(1 - m.Wellness.Field)
		return m, nil
	case "enter":
		height, herr := strconv.ParseFloat(strings.TrimSpace(m.heightInput.Value()), 64)
		weight, werr := strconv.ParseFloat(strings.TrimSpace(m.weightInput.Value()), 64)
		if herr != nil || werr != nil {
			m.Wellness.Err = "height and weight must be numbers"
			return m, nil
		}
		if err := model.ValidateBMIInput(height, weight); err != nil {
			m.Wellness.Err = err.Error()
			return m, nil
		}
		st := m.dispatch(store.UpdateBMI{Height: height, Weight: weight})
		m.Wellness.Editing = false
		m.Wellness.Err = ""
		m.heightInput.Blur()
		m.weightInput.Blur()
		m.Status = StatusBar{Text: fmt.Sprintf("BMI %.1f (%s)", st.BMI.Result, st.BMI.Category)}
		return m, nil
	}

	var cmd tea.Cmd
	if m.Wellness.Field == fieldHeight {
		m.heightInput, cmd = m.heightInput.Update(msg)
	} else {
		m.weightInput, cmd = m.weightInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) focusWellnessField(field int) {
	m.Wellness.Field = field
	if field == fieldHeight {
		m.heightInput.Focus()
		m.weightInput.Blur()
		return
	}
	m.weightInput.Focus()
	m.heightInput.Blur()
}

func formatMeasure(v float64) string {
	if v <= 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (m Model) renderWellnessView() string {
	bmi := m.snap.State.BMI
	data := views.WellnessPanelData{
		Theme:       string(m.snap.State.BackgroundTheme),
		HeightView:  m.heightInput.View(),
		WeightView:  m.weightInput.View(),
		Editing:     m.Wellness.Editing,
		ErrorText:   m.Wellness.Err,
		RangesTable: m.rangesTable.View(),
	}
	if bmi.Calculated() {
		data.Result = fmt.Sprintf("%.1f", bmi.Result)
		data.Category = string(bmi.Category)
		data.Tips = model.BMITips(bmi.Category)
	}
	return views.RenderWellnessPanel(data)
}

package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/focusdeck/internal/model"
	"github.com/sandeepkv93/focusdeck/internal/store"
	"github.com/sandeepkv93/focusdeck/internal/views"
)

func (m Model) visibleTasks() []model.Task {
	return model.FilterTasks(m.snap.State.Tasks, m.Tasks.View)
}

func (m Model) selectedTask() (model.Task, bool) {
	tasks := m.visibleTasks()
	if m.Tasks.Cursor < 0 || m.Tasks.Cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.Tasks.Cursor], true
}

func cycleView(cur model.Category, step int) model.Category {
	cats := model.Categories()
	for i, c := range cats {
		if c == cur {
			return cats[(i+step+len(cats))%len(cats)]
		}
	}
	return cats[0]
}

func (m Model) handleTasksKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.Tasks.Mode != InputNone {
		return m.handleTaskInputKey(msg)
	}

	switch msg.String() {
	case "tab":
		m.Tasks.View = cycleView(m.Tasks.View, 1)
		m.Tasks.Cursor = 0
	case "shift+tab":
		m.Tasks.View = cycleView(m.Tasks.View, -1)
		m.Tasks.Cursor = 0
	case "j", "down":
		m.Tasks.Cursor = clamp(m.Tasks.Cursor+1, 0, max(len(m.visibleTasks())-1, 0))
	case "k", "up":
		m.Tasks.Cursor = clamp(m.Tasks.Cursor-1, 0, max(len(m.visibleTasks())-1, 0))
	case "a":
		m.Tasks.Mode = InputAdd
		m.taskInput.SetValue("")
		m.taskInput.Focus()
		return m, textinput.Blink
	case "e":
		t, ok := m.selectedTask()
		if !ok {
			m.Status = StatusBar{Text: "no task selected", IsError: true}
			return m, nil
		}
		m.Tasks.Mode = InputEdit
		m.Tasks.EditID = t.ID
		m.taskInput.SetValue(t.Title)
		m.taskInput.CursorEnd()
		m.taskInput.Focus()
		return m, textinput.Blink
	case " ":
		m.toggleSelectedTask()
	case "d":
		t, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		m.dispatch(store.DeleteTask{ID: t.ID})
		m.Status = StatusBar{Text: fmt.Sprintf("deleted %q", t.Title)}
	case "m":
		m.moveSelectedTask()
	case "p":
		t, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		next := t.Priority.Next()
		m.dispatch(store.UpdateTask{ID: t.ID, Patch: store.TaskPatch{Priority: store.Ptr(next)}})
		if next == model.PriorityNone {
			m.Status = StatusBar{Text: "priority cleared"}
		} else {
			m.Status = StatusBar{Text: "priority: " + string(next)}
		}
	}
	return m, nil
}

func (m Model) handleTaskInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Tasks.Mode = InputNone
		m.Tasks.EditID = ""
		m.taskInput.Blur()
		m.Status = StatusBar{Text: "cancelled"}
		return m, nil
	case "enter":
		title := strings.TrimSpace(m.taskInput.Value())
		if title == "" {
			m.Status = StatusBar{Text: "task title is required", IsError: true}
			return m, nil
		}
		if m.Tasks.Mode == InputEdit {
			m.dispatch(store.UpdateTask{ID: m.Tasks.EditID, Patch: store.TaskPatch{Title: store.Ptr(title)}})
			m.Status = StatusBar{Text: "task updated"}
		} else {
			cat := m.Tasks.View
			if cat == model.CategoryDone {
				cat = model.CategoryInbox
			}
			m.dispatch(store.AddTask{Title: title, Category: cat})
			m.Status = StatusBar{Text: fmt.Sprintf("added %q to %s", title, cat.Label())}
		}
		m.Tasks.Mode = InputNone
		m.Tasks.EditID = ""
		m.taskInput.SetValue("")
		m.taskInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.taskInput, cmd = m.taskInput.Update(msg)
	return m, cmd
}

// toggleSelectedTask files completed tasks under done. Reopening leaves the
// category alone, so a task reopened from done is listed in no view.
func (m *Model) toggleSelectedTask() {
	t, ok := m.selectedTask()
	if !ok {
		return
	}
	completed := !t.Completed
	patch := store.TaskPatch{Completed: store.Ptr(completed)}
	if completed {
		patch.Category = store.Ptr(model.CategoryDone)
	}
	m.dispatch(store.UpdateTask{ID: t.ID, Patch: patch})
	if completed {
		m.Status = StatusBar{Text: fmt.Sprintf("completed %q", t.Title)}
	} else {
		m.Status = StatusBar{Text: fmt.Sprintf("reopened %q", t.Title)}
	}
}

func (m *Model) moveSelectedTask() {
	t, ok := m.selectedTask()
	if !ok {
		return
	}
	var dest model.Category
	switch t.Category {
	case model.CategoryInbox:
		dest = model.CategoryToday
	case model.CategoryToday:
		dest = model.CategoryInbox
	default:
		m.Status = StatusBar{Text: "completed tasks stay in done", IsError: true}
		return
	}
	m.dispatch(store.UpdateTask{ID: t.ID, Patch: store.TaskPatch{Category: store.Ptr(dest)}})
	m.Status = StatusBar{Text: fmt.Sprintf("moved %q to %s", t.Title, dest.Label())}
}

func (m Model) renderTasksView() string {
	counts := model.CountByView(m.snap.State.Tasks)
	cats := model.Categories()
	tabs := make([]string, 0, len(cats))
	nums := make([]int, 0, len(cats))
	active := 0
	for i, c := range cats {
		tabs = append(tabs, c.Label())
		nums = append(nums, counts[c])
		if c == m.Tasks.View {
			active = i
		}
	}
	data := views.TasksPanelData{
		Theme:     string(m.snap.State.BackgroundTheme),
		Tabs:      tabs,
		Counts:    nums,
		ActiveTab: active,
		ListView:  m.taskList.View(),
		Empty:     len(m.visibleTasks()) == 0,
	}
	switch m.Tasks.Mode {
	case InputAdd:
		data.InputLabel = "new task:"
		data.InputView = m.taskInput.View()
	case InputEdit:
		data.InputLabel = "edit task:"
		data.InputView = m.taskInput.View()
	}
	return views.RenderTasksPanel(data)
}

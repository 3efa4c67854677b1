package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/focusdeck/internal/dashboard"
	"github.com/sandeepkv93/focusdeck/internal/model"
	"github.com/sandeepkv93/focusdeck/internal/store"
	"github.com/sandeepkv93/focusdeck/internal/views"
)

type Section string

const (
	SectionFocus    Section = "Daily Focus"
	SectionTasks    Section = "Tasks"
	SectionTimer    Section = "Timer"
	SectionWellness Section = "Wellness"
	SectionMusic    Section = "Music"
	SectionNotes    Section = "Notes"
)

// Sections is the sidebar order; section i is bound to key i+1.
func Sections() []Section {
	return []Section{SectionFocus, SectionTasks, SectionTimer, SectionWellness, SectionMusic, SectionNotes}
}

func isKnownSection(s Section) bool {
	for _, known := range Sections() {
		if known == s {
			return true
		}
	}
	return false
}

// Runtime is the session the model renders and dispatches to.
// *dashboard.Runtime implements it.
type Runtime interface {
	Dispatch(store.Action) model.AppState
	State() model.AppState
	Snapshot() dashboard.Snapshot
	Updates() <-chan dashboard.Snapshot
	SetShuffle(bool)
	SetRepeat(bool)
	NextTrack(model.MusicState) model.Track
}

type StatusBar struct {
	Text    string
	IsError bool
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type GlobalKeyMap struct {
	Palette string
	Help    string
	Theme   string
	Quit    string
}

type InputMode string

const (
	InputNone InputMode = ""
	InputAdd  InputMode = "add"
	InputEdit InputMode = "edit"
)

type TasksState struct {
	View   model.Category
	Cursor int
	Mode   InputMode
	EditID string
}

type FocusState struct {
	Editing bool
}

type TimerViewState struct {
	EditingMinutes bool
}

type WellnessState struct {
	Editing bool
	Field   int
	Err     string
}

type MusicViewState struct {
	Cursor int
}

type NotesState struct {
	Editing bool
	Pending bool
	Seq     int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Options struct {
	WorkMinutes int
	ExportDir   string
	Clock       func() time.Time
}

type Model struct {
	Section       Section
	Tasks         TasksState
	Focus         FocusState
	Timer         TimerViewState
	Wellness      WellnessState
	Music         MusicViewState
	Notes         NotesState
	Palette       CommandPaletteState
	HelpVisible   bool
	Notifications []Notification
	Status        StatusBar
	Keys          GlobalKeyMap
	Quitting      bool
	LastError     error

	rt           Runtime
	snap         dashboard.Snapshot
	lastNoticeID uint64
	workMinutes  int
	exportDir    string
	now          func() time.Time

	taskList      list.Model
	taskInput     textinput.Model
	commandInput  textinput.Model
	focusInput    textinput.Model
	minutesInput  textinput.Model
	heightInput   textinput.Model
	weightInput   textinput.Model
	notesArea     textarea.Model
	notesPreview  viewport.Model
	previewKey    string
	rangesTable   table.Model
	trackTable    table.Model
	timerProgress progress.Model
	musicProgress progress.Model
	saveSpinner   spinner.Model
	helpModel     help.Model
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type SwitchSectionMsg struct {
	Section Section
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// SnapshotMsg carries a state change published by the runtime.
type SnapshotMsg struct {
	Snapshot dashboard.Snapshot
}

type notesFlushMsg struct {
	Seq int
}

func DefaultKeyMap() GlobalKeyMap {
	return GlobalKeyMap{Palette: "/", Help: "?", Theme: "t", Quit: "q"}
}

func NewModel(rt Runtime, opts Options) Model {
	if opts.WorkMinutes <= 0 {
		opts.WorkMinutes = model.PomodoroSeconds / 60
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}
	m := Model{
		Section:     SectionFocus,
		Tasks:       TasksState{View: model.CategoryToday},
		Keys:        DefaultKeyMap(),
		rt:          rt,
		snap:        rt.Snapshot(),
		workMinutes: opts.WorkMinutes,
		exportDir:   opts.ExportDir,
		now:         opts.Clock,
	}
	m.lastNoticeID = m.snap.NoticeID
	m.initBubbleComponents()
	m.notesArea.SetValue(m.snap.State.Notes)
	m.syncBubbleData()
	return m
}

func (m *Model) initBubbleComponents() {
	m.taskList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.taskList.Title = "Tasks"
	m.taskList.SetShowHelp(false)
	m.taskList.SetFilteringEnabled(false)
	m.taskList.SetShowStatusBar(false)

	m.taskInput = textinput.New()
	m.taskInput.Prompt = "task> "
	m.taskInput.CharLimit = 256
	m.taskInput.Width = 42

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.focusInput = textinput.New()
	m.focusInput.Prompt = "focus> "
	m.focusInput.CharLimit = model.MaxFocusLength
	m.focusInput.Width = 48
	m.focusInput.Placeholder = "What is your main focus today?"

	m.minutesInput = textinput.New()
	m.minutesInput.Prompt = "minutes> "
	m.minutesInput.CharLimit = 3
	m.minutesInput.Width = 6

	m.heightInput = textinput.New()
	m.heightInput.Prompt = "height (cm)> "
	m.heightInput.CharLimit = 6
	m.weightInput = textinput.New()
	m.weightInput.Prompt = "weight (kg)> "
	m.weightInput.CharLimit = 6

	m.notesArea = textarea.New()
	m.notesArea.SetWidth(56)
	m.notesArea.SetHeight(10)
	m.notesArea.ShowLineNumbers = false
	m.notesArea.Placeholder = "Notes (markdown)"
	m.notesArea.CharLimit = 0

	m.notesPreview = viewport.New(56, 10)

	m.rangesTable = table.New(
		table.WithColumns([]table.Column{{Title: "Category", Width: 12}, {Title: "BMI", Width: 12}}),
		table.WithRows(bmiRangeRows()),
		table.WithHeight(len(model.BMIRanges)+1),
	)
	m.trackTable = table.New(
		table.WithColumns([]table.Column{{Title: "#", Width: 2}, {Title: "Title", Width: 22}, {Title: "Artist", Width: 16}, {Title: "Length", Width: 6}}),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(5),
	)

	m.timerProgress = progress.New(progress.WithSolidFill(string(views.TimerColor(model.DefaultTimerColor))), progress.WithWidth(40), progress.WithoutPercentage())
	m.musicProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(30), progress.WithoutPercentage())

	m.saveSpinner = spinner.New()
	m.saveSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
}

func bmiRangeRows() []table.Row {
	rows := make([]table.Row, 0, len(model.BMIRanges))
	for _, r := range model.BMIRanges {
		rows = append(rows, table.Row{string(r.Category), r.Label})
	}
	return rows
}

// syncBubbleData copies the snapshot into the components that render it.
func (m *Model) syncBubbleData() {
	st := m.snap.State

	tasks := model.FilterTasks(st.Tasks, m.Tasks.View)
	if m.Tasks.Cursor >= len(tasks) {
		m.Tasks.Cursor = len(tasks) - 1
	}
	if m.Tasks.Cursor < 0 {
		m.Tasks.Cursor = 0
	}
	items := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, taskListItem(t))
	}
	m.taskList.SetItems(items)
	m.taskList.Title = m.Tasks.View.Label()
	if len(items) > 0 {
		m.taskList.Select(m.Tasks.Cursor)
	}

	tracks := model.TracksFor(st.Music.Playlist)
	if m.Music.Cursor >= len(tracks) {
		m.Music.Cursor = 0
	}
	rows := make([]table.Row, 0, len(tracks))
	for i, t := range tracks {
		marker := string(rune('1' + i))
		if t.ID == st.Music.CurrentTrack {
			marker = ">"
		}
		rows = append(rows, table.Row{marker, t.Title, t.Artist, formatDuration(t.Duration)})
	}
	m.trackTable.SetRows(rows)
	if len(rows) > 0 {
		m.trackTable.SetCursor(m.Music.Cursor)
	}

	if !m.Notes.Editing && !m.Notes.Pending && m.notesArea.Value() != st.Notes {
		m.notesArea.SetValue(st.Notes)
	}
	md := m.notesArea.Value()
	if md == "" {
		md = "_No notes yet_"
	}
	if key := string(st.BackgroundTheme) + "\x00" + md; key != m.previewKey {
		m.previewKey = key
		m.notesPreview.SetContent(views.RenderMarkdown(md, string(st.BackgroundTheme)))
	}

	m.timerProgress.FullColor = string(views.TimerColor(st.Timer.CustomColor))
}

func taskListItem(t model.Task) list.Item {
	desc := t.Category.Label()
	if t.Priority != model.PriorityNone {
		desc += " | " + string(t.Priority)
	}
	return listItem{title: taskRow(t), description: desc}
}

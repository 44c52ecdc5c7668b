// Package tui provides the terminal schedule browser for ritmo.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ritmo/internal/dateutil"
	"ritmo/internal/engine"
	"ritmo/internal/task"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // quick-add input is focused
)

// Model is the main TUI model. It browses the generated schedule one day
// at a time; the schedule is regenerated from storage, never edited in
// place.
type Model struct {
	repo task.Repository

	schedule *engine.Schedule
	dayKeys  []string // sorted horizon keys that have content
	cursor   int      // index into dayKeys

	mode            Mode
	showUnscheduled bool
	loading         bool

	input textinput.Model

	width  int
	height int

	statusMsg string
	err       error
}

// scheduleMsg carries a freshly generated schedule into the model.
type scheduleMsg struct {
	schedule *engine.Schedule
	err      error
}

// taskAddedMsg reports the outcome of a quick-add.
type taskAddedMsg struct {
	name string
	err  error
}

// New creates the TUI model.
func New(repo task.Repository) *Model {
	ti := textinput.New()
	ti.Placeholder = "name, 2h, friday, high"
	ti.CharLimit = 256
	ti.Width = 48

	return &Model{
		repo:    repo,
		loading: true,
		input:   ti,
	}
}

// Init starts the initial schedule load.
func (m Model) Init() tea.Cmd {
	return loadSchedule(m.repo)
}

// loadSchedule reads the full state and regenerates the schedule.
func loadSchedule(repo task.Repository) tea.Cmd {
	return func() tea.Msg {
		state, err := repo.Load(context.Background())
		if err != nil {
			return scheduleMsg{err: err}
		}
		return scheduleMsg{schedule: engine.Generate(state.Tasks, state.Commitments, state.DailySettings)}
	}
}

// addTask persists a quick-added task.
func addTask(repo task.Repository, t *task.Task) tea.Cmd {
	return func() tea.Msg {
		if err := repo.CreateTask(context.Background(), t); err != nil {
			return taskAddedMsg{name: t.Name, err: err}
		}
		return taskAddedMsg{name: t.Name}
	}
}

// setSchedule installs a schedule and positions the cursor on today, or
// the first day with content after it.
func (m *Model) setSchedule(s *engine.Schedule) {
	m.schedule = s
	m.dayKeys = contentKeys(s)
	m.cursorToToday()
}

// contentKeys returns the sorted keys of days that have anything on them.
func contentKeys(s *engine.Schedule) []string {
	var keys []string
	for _, k := range s.SortedKeys() {
		d := s.Days[k]
		if len(d.Tasks) > 0 || len(d.Commitments) > 0 {
			keys = append(keys, k)
		}
	}
	return keys
}

func (m *Model) cursorToToday() {
	today := dateutil.DayKey(time.Now())
	for i, k := range m.dayKeys {
		if k >= today {
			m.cursor = i
			return
		}
	}
	m.cursor = 0
}

// Run starts the TUI.
func Run(repo task.Repository) error {
	return RunWithDebug(repo, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo task.Repository, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	p := tea.NewProgram(New(repo), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

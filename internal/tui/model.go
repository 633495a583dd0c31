// Package tui is a read-only browser over the recorded dataset: a day list
// with a detail pane. All mutation happens through the update pipeline, not
// here.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/healthdash/internal/models"
	"github.com/julianstephens/healthdash/internal/storage"
)

type SessionState int

const (
	StateBrowse SessionState = iota
	StateJump
)

type Model struct {
	store    storage.Provider
	days     []models.DayRecord
	cursor   int
	state    SessionState
	keys     KeyMap
	help     help.Model
	form     *huh.Form
	jumpDate string
	width    int
	height   int
	quitting bool
	status   string
}

func NewModel(store storage.Provider) Model {
	m := Model{
		store: store,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		state: StateBrowse,
	}
	if days, err := store.Days(); err == nil {
		m.days = days
		m.cursor = len(days) - 1 // start on the most recent day
	} else {
		m.status = fmt.Sprintf("failed to read dataset: %v", err)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.state == StateBrowse {
			return m.updateBrowse(msg)
		}
	}

	if m.state == StateJump && m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		switch m.form.State {
		case huh.StateCompleted:
			m.jumpTo(m.form.GetString("date"))
			m.state = StateBrowse
			m.form = nil
		case huh.StateAborted:
			m.state = StateBrowse
			m.form = nil
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.days)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		return m, nil
	case key.Matches(msg, m.keys.End):
		m.cursor = len(m.days) - 1
		return m, nil
	case key.Matches(msg, m.keys.Jump):
		m.jumpDate = ""
		m.form = huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Key("date").
				Title("Jump to date").
				Placeholder("YYYY-MM-DD").
				Value(&m.jumpDate),
		))
		m.state = StateJump
		return m, m.form.Init()
	}
	return m, nil
}

// jumpTo moves the cursor to the given date, or to the nearest earlier day
// when the exact date is not recorded.
func (m *Model) jumpTo(date string) {
	if date == "" {
		return
	}
	m.status = ""
	for i := len(m.days) - 1; i >= 0; i-- {
		if m.days[i].Date <= date {
			m.cursor = i
			if m.days[i].Date != date {
				m.status = fmt.Sprintf("no record for %s, showing %s", date, m.days[i].Date)
			}
			return
		}
	}
	if len(m.days) > 0 {
		m.cursor = 0
		m.status = fmt.Sprintf("no record for %s, showing %s", date, m.days[0].Date)
	}
}

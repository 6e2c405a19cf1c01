package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"calendar-pro/internal/calendar"
	"calendar-pro/internal/event"
	"calendar-pro/internal/model"
	"calendar-pro/internal/notify"
	"calendar-pro/internal/preference"
	"calendar-pro/internal/store"
	"calendar-pro/internal/task"
	"calendar-pro/pkg/datemath"
	"calendar-pro/pkg/log"
)

const tickInterval = 500 * time.Millisecond

// Source publishes state changes to the UI.
type Source interface {
	Subscribe(fn store.Observer) func()
}

// Deps are the use cases the terminal UI drives.
type Deps struct {
	Logger     log.Logger
	Source     Source
	Calendar   calendar.UseCase
	Event      event.UseCase
	Task       task.UseCase
	Preference preference.UseCase
	Notifier   notify.Notifier
}

type focus int

const (
	focusCalendar focus = iota
	focusTasks
)

// changeMsg carries a store change into the update loop.
type changeMsg struct {
	change model.Change
}

type tickMsg time.Time

// Model is the bubbletea model. Everything it shows is re-derived from the
// use cases in refresh.
type Model struct {
	ctx  context.Context
	deps Deps

	month    calendar.MonthOutput
	day      []model.Event
	upcoming []event.UpcomingItem
	pending  task.PendingOutput
	stats    calendar.StatsOutput
	notes    []notify.Notification
	theme    model.Theme
	styles   styles

	focus  focus
	cursor int
	prompt promptKind
	input  textinput.Model
	query  string
	errMsg string

	width  int
	height int
}

// New greets a first-time user and derives the initial view model.
func New(ctx context.Context, deps Deps) Model {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 60

	m := Model{ctx: ctx, deps: deps, input: ti}
	if _, err := deps.Preference.Welcome(ctx); err != nil {
		deps.Logger.Warnf(ctx, "tui.New Welcome: %v", err)
	}
	m.refresh()
	return m
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// refresh re-reads every panel from the use cases.
func (m *Model) refresh() {
	m.errMsg = ""

	month, err := m.deps.Calendar.Month(m.ctx, calendar.MonthInput{Query: m.query})
	if err != nil {
		m.fail("month", err)
	} else {
		m.month = month
	}

	if list, err := m.deps.Event.List(m.ctx, event.ListInput{Date: m.selectedDate()}); err != nil {
		m.fail("day", err)
	} else {
		m.day = list.Events
	}

	if up, err := m.deps.Event.Upcoming(m.ctx, event.UpcomingInput{Days: -1}); err != nil {
		m.fail("upcoming", err)
	} else {
		m.upcoming = up.Items
	}

	if p, err := m.deps.Task.Pending(m.ctx); err != nil {
		m.fail("pending", err)
	} else {
		m.pending = p
	}
	if m.cursor >= len(m.pending.Tasks) {
		m.cursor = max(len(m.pending.Tasks)-1, 0)
	}

	if st, err := m.deps.Calendar.Stats(m.ctx); err != nil {
		m.fail("stats", err)
	} else {
		m.stats = st
	}

	theme := model.ThemeLight
	if th, err := m.deps.Preference.Theme(m.ctx); err != nil {
		m.fail("theme", err)
	} else {
		theme = th.Theme
	}
	if theme != m.theme {
		m.theme = theme
		m.styles = newStyles(theme)
	}

	m.notes = m.deps.Notifier.Recent(m.ctx)
}

// selectedDate is the selected day, or today when nothing is selected.
func (m Model) selectedDate() string {
	if m.month.SelectedDate != "" {
		return m.month.SelectedDate
	}
	return m.month.Today
}

func (m *Model) fail(op string, err error) {
	m.deps.Logger.Debugf(m.ctx, "tui %s: %v", op, err)
	m.errMsg = err.Error()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case changeMsg:
		m.refresh()
		return m, nil

	case tickMsg:
		m.notes = m.deps.Notifier.Recent(m.ctx)
		return m, tick()

	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.handlePromptKeys(msg)
		}
		return m.handleKeys(msg)
	}

	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "ctrl+n":
		return m.openPrompt(promptEvent, "")
	case "ctrl+t":
		return m.openPrompt(promptTask, "")
	case "/":
		return m.openPrompt(promptSearch, m.query)
	case "ctrl+d":
		if _, err := m.deps.Preference.ToggleTheme(m.ctx); err != nil {
			m.fail("theme", err)
		}
	case "shift+left":
		m.navigate(calendar.ActionPrev, "")
	case "shift+right":
		m.navigate(calendar.ActionNext, "")
	case "home":
		m.navigate(calendar.ActionToday, "")
	case "tab":
		if m.focus == focusCalendar {
			m.focus = focusTasks
		} else {
			m.focus = focusCalendar
		}
	case "esc":
		if m.query != "" {
			m.query = ""
			m.refresh()
		}
	default:
		if m.focus == focusTasks {
			m.handleTaskKeys(msg.String())
		} else {
			m.handleCalendarKeys(msg.String())
		}
	}
	return m, nil
}

func (m *Model) handleCalendarKeys(key string) {
	var delta int
	switch key {
	case "left", "h":
		delta = -1
	case "right", "l":
		delta = 1
	case "up", "k":
		delta = -7
	case "down", "j":
		delta = 7
	default:
		return
	}

	next, err := datemath.AddDays(m.selectedDate(), delta)
	if err != nil {
		m.fail("select", err)
		return
	}
	m.navigate(calendar.ActionSelect, next)
}

func (m *Model) handleTaskKeys(key string) {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.pending.Tasks)-1 {
			m.cursor++
		}
	case " ", "space":
		if t, ok := m.selectedTask(); ok {
			if _, err := m.deps.Task.Toggle(m.ctx, t.ID); err != nil {
				m.fail("toggle", err)
			}
		}
	case "x":
		if t, ok := m.selectedTask(); ok {
			if err := m.deps.Task.Delete(m.ctx, t.ID); err != nil {
				m.fail("delete", err)
			}
		}
	}
}

func (m Model) selectedTask() (model.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.pending.Tasks) {
		return model.Task{}, false
	}
	return m.pending.Tasks[m.cursor], true
}

func (m *Model) navigate(action, date string) {
	if _, err := m.deps.Calendar.Navigate(m.ctx, calendar.NavigateInput{Action: action, Date: date}); err != nil {
		m.fail("navigate", err)
	}
}

func (m Model) openPrompt(kind promptKind, value string) (tea.Model, tea.Cmd) {
	m.prompt = kind
	m.errMsg = ""
	m.input.Placeholder = kind.hint()
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) closePrompt() Model {
	m.prompt = promptNone
	m.input.Blur()
	m.input.SetValue("")
	return m
}

func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closePrompt(), nil
	case "enter":
		return m.submitPrompt()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitPrompt runs the prompt's action. On a validation error the prompt
// stays open with the text intact.
func (m Model) submitPrompt() (tea.Model, tea.Cmd) {
	value := m.input.Value()

	switch m.prompt {
	case promptEvent:
		if _, err := m.deps.Event.Create(m.ctx, parseEventPrompt(value, m.selectedDate())); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
	case promptTask:
		if _, err := m.deps.Task.Create(m.ctx, parseTaskPrompt(value)); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
	case promptSearch:
		m.query = value
		m = m.closePrompt()
		m.refresh()
		return m, nil
	}

	return m.closePrompt(), nil
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"calendar-pro/internal/calendar"
)

const (
	cellWidth   = 12
	cellHeight  = 4
	sidebarWide = 36
)

var weekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var helpKeys = []struct{ key, action string }{
	{"ctrl+n", "event"},
	{"ctrl+t", "task"},
	{"/", "search"},
	{"ctrl+d", "theme"},
	{"shift+←/→", "month"},
	{"home", "today"},
	{"tab", "focus"},
	{"space", "toggle"},
	{"x", "delete"},
	{"q", "quit"},
}

func (m Model) View() string {
	s := m.styles

	header := s.header.Render("Calendar Pro") + "  " + s.title.Render(m.month.Title)
	if m.query != "" {
		header += "  " + s.highlight.Render(fmt.Sprintf("search: %q", m.query))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.panelStyle(focusCalendar).Render(m.renderGrid()),
		lipgloss.JoinVertical(lipgloss.Left,
			s.panel.Width(sidebarWide).Render(m.renderDay()),
			s.panel.Width(sidebarWide).Render(m.renderUpcoming()),
			m.panelStyle(focusTasks).Width(sidebarWide).Render(m.renderTasks()),
			s.panel.Width(sidebarWide).Render(m.renderStats()),
		),
	)

	parts := []string{header, body}
	if notes := m.renderNotifications(); notes != "" {
		parts = append(parts, notes)
	}
	if m.prompt != promptNone {
		parts = append(parts, s.prompt.Render(m.prompt.label()+": ")+m.input.View())
	}
	if m.errMsg != "" {
		parts = append(parts, s.errText.Render(m.errMsg))
	}
	parts = append(parts, m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) panelStyle(f focus) lipgloss.Style {
	if m.focus == f {
		return m.styles.focused
	}
	return m.styles.panel
}

func (m Model) renderGrid() string {
	s := m.styles

	head := make([]string, len(weekdays))
	for i, d := range weekdays {
		head[i] = s.weekday.Width(cellWidth).Render(d)
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, head...)}

	for start := 0; start+7 <= len(m.month.Cells); start += 7 {
		row := make([]string, 7)
		for i, c := range m.month.Cells[start : start+7] {
			row[i] = m.renderCell(c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCell(c calendar.DayCell) string {
	s := m.styles

	dayStyle := s.day
	switch {
	case c.IsToday:
		dayStyle = s.today
	case c.Position != calendar.PositionCurrent:
		dayStyle = s.otherDay
	}
	label := fmt.Sprintf("%2d", c.Day)
	if c.Highlighted {
		label += s.highlight.Render(" *")
	}
	lines := []string{dayStyle.Render(label)}

	for _, e := range c.Events {
		lines = append(lines, s.category(e.Category).Render(truncate("• "+e.Title, cellWidth-1)))
	}
	if c.Overflow > 0 {
		lines = append(lines, s.muted.Render(fmt.Sprintf("+%d more", c.Overflow)))
	}

	box := lipgloss.NewStyle().Width(cellWidth).Height(cellHeight).MaxHeight(cellHeight)
	if c.Key == m.month.SelectedDate {
		box = box.Inherit(s.selected)
	}
	return box.Render(strings.Join(lines, "\n"))
}

// renderDay lists every event of the selected day, including the ones the
// grid cell folds into "+N more".
func (m Model) renderDay() string {
	s := m.styles
	lines := []string{s.title.Render(m.selectedDate())}
	if len(m.day) == 0 {
		lines = append(lines, s.muted.Render("No events"))
	}
	for _, e := range m.day {
		clock := "all day"
		if !e.AllDay() {
			clock = e.Time
		}
		lines = append(lines, s.muted.Render(fmt.Sprintf("%-7s ", clock))+
			s.category(e.Category).Render(truncate(e.Title, sidebarWide-10)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderUpcoming() string {
	s := m.styles
	lines := []string{s.title.Render("Upcoming")}
	if len(m.upcoming) == 0 {
		lines = append(lines, s.muted.Render("No upcoming events"))
	}
	for _, it := range m.upcoming {
		lines = append(lines,
			s.category(it.Event.Category).Render(truncate(it.Event.Title, sidebarWide-2)),
			s.muted.Render("  "+it.When),
		)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTasks() string {
	s := m.styles
	lines := []string{s.title.Render("Tasks")}
	if len(m.pending.Tasks) == 0 {
		lines = append(lines, s.muted.Render("No pending tasks"))
	}
	for i, t := range m.pending.Tasks {
		marker := "  "
		if m.focus == focusTasks && i == m.cursor {
			marker = s.key.Render("> ")
		}
		line := marker + "[ ] " + truncate(t.Title, sidebarWide-12) + " " + s.priority(t.Priority).Render(string(t.Priority))
		if t.DueDate != "" {
			line += s.muted.Render(" " + t.DueDate)
		}
		lines = append(lines, line)
	}
	if m.pending.Remaining > 0 {
		lines = append(lines, s.muted.Render(fmt.Sprintf("+%d more", m.pending.Remaining)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStats() string {
	s := m.styles
	return strings.Join([]string{
		s.title.Render("Stats"),
		fmt.Sprintf("Events     %d", m.stats.Events),
		fmt.Sprintf("Tasks      %d", m.stats.Tasks),
		fmt.Sprintf("Completed  %d", m.stats.Completed),
		fmt.Sprintf("Progress   %d%%", m.stats.CompletionRate),
	}, "\n")
}

func (m Model) renderNotifications() string {
	lines := make([]string, 0, len(m.notes))
	for _, n := range m.notes {
		lines = append(lines, m.styles.notification(n.Kind).Render("● "+n.Message))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHelp() string {
	parts := make([]string, len(helpKeys))
	for i, h := range helpKeys {
		parts[i] = m.styles.key.Render(h.key) + " " + m.styles.muted.Render(h.action)
	}
	return strings.Join(parts, "  ")
}

// truncate cuts s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

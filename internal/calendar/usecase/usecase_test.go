package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"calendar-pro/internal/calendar"
	"calendar-pro/internal/calendar/usecase"
	"calendar-pro/internal/model"
	"calendar-pro/internal/notify"
	"calendar-pro/pkg/datemath"
	"calendar-pro/pkg/log"
)

type mockRepo struct {
	events []model.Event
	tasks  []model.Task
	view   model.View
	now    time.Time
}

func (m *mockRepo) Events() []model.Event { return m.events }
func (m *mockRepo) Tasks() []model.Task   { return m.tasks }
func (m *mockRepo) View() model.View      { return m.view }
func (m *mockRepo) SetView(v model.View)  { m.view = v }
func (m *mockRepo) Now() time.Time        { return m.now }

type mockNotifier struct {
	messages []string
}

func (m *mockNotifier) Push(ctx context.Context, kind notify.Kind, message string) notify.Notification {
	m.messages = append(m.messages, message)
	return notify.Notification{}
}
func (m *mockNotifier) Recent(ctx context.Context) []notify.Notification { return nil }

func setup(t *testing.T) (calendar.UseCase, *mockRepo, *mockNotifier) {
	t.Helper()
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("parser: %v", err)
	}
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	repo := &mockRepo{now: now, view: model.ViewOf(now)}
	n := &mockNotifier{}
	return usecase.New(log.NewNop(), repo, n, p, 2), repo, n
}

func findCell(cells []calendar.DayCell, key string) (calendar.DayCell, bool) {
	for _, c := range cells {
		if c.Key == key {
			return c, true
		}
	}
	return calendar.DayCell{}, false
}

func TestMonth(t *testing.T) {
	uc, repo, _ := setup(t)
	repo.events = []model.Event{
		{ID: "1", Title: "a", Date: "2024-03-10"},
		{ID: "2", Title: "b", Date: "2024-03-10"},
		{ID: "3", Title: "Dentist", Date: "2024-03-10"},
		{ID: "4", Title: "dentist follow-up", Date: "2024-04-02"},
	}

	out, err := uc.Month(context.Background(), calendar.MonthInput{Query: "dentist"})
	if err != nil {
		t.Fatalf("month: %v", err)
	}
	if out.Title != "March 2024" || len(out.Cells) != 42 || out.Today != "2024-03-15" {
		t.Fatalf("unexpected header %q %d %q", out.Title, len(out.Cells), out.Today)
	}

	busy, _ := findCell(out.Cells, "2024-03-10")
	if len(busy.Events) != 2 || busy.Overflow != 1 || !busy.HasEvents || !busy.Highlighted {
		t.Errorf("unexpected busy cell %+v", busy)
	}
	if busy.Events[0].ID != "1" || busy.Events[1].ID != "2" {
		t.Errorf("visible events should keep insertion order")
	}

	spill, ok := findCell(out.Cells, "2024-04-02")
	if !ok || !spill.HasEvents || !spill.Highlighted || spill.Position != calendar.PositionNext {
		t.Errorf("next-month cell should carry its events: %+v", spill)
	}

	today, _ := findCell(out.Cells, "2024-03-15")
	if !today.IsToday {
		t.Error("expected today flag")
	}
}

func TestMonthExplicit(t *testing.T) {
	uc, _, _ := setup(t)
	out, err := uc.Month(context.Background(), calendar.MonthInput{Year: 2025, Month: time.January})
	if err != nil || out.Title != "January 2025" {
		t.Fatalf("unexpected %q %v", out.Title, err)
	}
	for _, c := range out.Cells {
		if c.Highlighted || c.IsToday {
			t.Errorf("unexpected flags on %s", c.Key)
		}
	}

	if _, err := uc.Month(context.Background(), calendar.MonthInput{Year: 2025, Month: 13}); !errors.Is(err, calendar.ErrInvalidMonth) {
		t.Errorf("expected ErrInvalidMonth, got %v", err)
	}
}

func TestNavigate(t *testing.T) {
	uc, repo, n := setup(t)
	ctx := context.Background()

	steps := []struct {
		input calendar.NavigateInput
		year  int
		month time.Month
	}{
		{calendar.NavigateInput{Action: "next"}, 2024, time.April},
		{calendar.NavigateInput{Action: "select", Date: "2024-12-24"}, 2024, time.December},
		{calendar.NavigateInput{Action: "next"}, 2025, time.January},
		{calendar.NavigateInput{Action: "prev"}, 2024, time.December},
		{calendar.NavigateInput{Action: "today"}, 2024, time.March},
	}
	for _, s := range steps {
		out, err := uc.Navigate(ctx, s.input)
		if err != nil {
			t.Fatalf("%+v: %v", s.input, err)
		}
		if out.View.Year != s.year || out.View.Month != s.month {
			t.Errorf("%+v: expected %d-%d, got %d-%d", s.input, s.year, s.month, out.View.Year, out.View.Month)
		}
	}
	if repo.view.SelectedDate != "2024-12-24" {
		t.Errorf("selected date lost: %+v", repo.view)
	}
	if len(n.messages) != 1 || n.messages[0] != notify.MsgToday {
		t.Errorf("expected today notification, got %v", n.messages)
	}

	if _, err := uc.Navigate(ctx, calendar.NavigateInput{Action: "jump"}); !errors.Is(err, calendar.ErrInvalidAction) {
		t.Errorf("expected ErrInvalidAction, got %v", err)
	}
	if _, err := uc.Navigate(ctx, calendar.NavigateInput{Action: "select", Date: "24/12"}); !errors.Is(err, calendar.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestStats(t *testing.T) {
	uc, repo, _ := setup(t)
	repo.events = make([]model.Event, 4)
	repo.tasks = []model.Task{{Completed: true}, {}, {}}

	out, _ := uc.Stats(context.Background())
	want := calendar.StatsOutput{Events: 4, Tasks: 3, Completed: 1, CompletionRate: 33}
	if out != want {
		t.Errorf("expected %+v, got %+v", want, out)
	}
}

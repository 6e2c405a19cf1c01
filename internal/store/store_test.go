package store_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"calendar-pro/internal/model"
	"calendar-pro/internal/store"
	"calendar-pro/pkg/kvstore"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type failingStorage struct{}

func (failingStorage) Load(key string) ([]byte, error)     { return nil, errors.New("read failed") }
func (failingStorage) Save(key string, value []byte) error { return errors.New("write failed") }

var fixedNow = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

func newStore(s kvstore.Storage) *store.Store {
	return store.New(s, &mockLogger{}, store.Options{Now: func() time.Time { return fixedNow }})
}

func TestAddEventPersists(t *testing.T) {
	ctx := context.Background()
	mem := kvstore.NewMemory()
	s := newStore(mem)

	e := s.AddEvent(ctx, model.Event{Title: "Standup", Date: "2024-03-01", Category: model.CategoryWork})
	if e.ID != strconv.FormatInt(fixedNow.UnixMilli(), 10) {
		t.Errorf("unexpected id %q", e.ID)
	}
	if e.CreatedAt != "2024-03-01T10:00:00.000Z" {
		t.Errorf("unexpected createdAt %q", e.CreatedAt)
	}

	raw, err := mem.Load("calendar_events")
	if err != nil {
		t.Fatalf("expected calendar_events to be written: %v", err)
	}

	reloaded := newStore(mem)
	reloaded.Load(ctx)
	got := reloaded.Events()
	if len(got) != 1 || got[0] != e {
		t.Errorf("reload mismatch: %+v (raw %s)", got, raw)
	}
}

func TestIDsUniqueWithinMillisecond(t *testing.T) {
	ctx := context.Background()
	s := newStore(kvstore.NewMemory())

	a := s.AddEvent(ctx, model.Event{Title: "a", Date: "2024-03-01"})
	b := s.AddTask(ctx, model.Task{Title: "b"})
	c := s.AddEvent(ctx, model.Event{Title: "c", Date: "2024-03-01"})

	ai, _ := strconv.ParseInt(a.ID, 10, 64)
	bi, _ := strconv.ParseInt(b.ID, 10, 64)
	ci, _ := strconv.ParseInt(c.ID, 10, 64)
	if !(ai < bi && bi < ci) {
		t.Errorf("expected increasing ids, got %s %s %s", a.ID, b.ID, c.ID)
	}
}

func TestLoadCorruptKey(t *testing.T) {
	ctx := context.Background()
	mem := kvstore.NewMemory()
	_ = mem.Save("calendar_events", []byte(`[{"id":"5","title":"x","date":"2024-03-02"}]`))
	_ = mem.Save("calendar_tasks", []byte(`{not json`))
	_ = mem.Save("calendar_theme", []byte(`"dark"`))
	_ = mem.Save("calendar_hasVisited", []byte(`true`))

	s := newStore(mem)
	s.Load(ctx)

	if len(s.Events()) != 1 {
		t.Errorf("expected 1 event, got %d", len(s.Events()))
	}
	if tasks := s.Tasks(); tasks == nil || len(tasks) != 0 {
		t.Errorf("expected empty task list, got %#v", tasks)
	}
	if s.Theme() != model.ThemeDark {
		t.Errorf("expected dark theme, got %s", s.Theme())
	}
	if !s.Visited() {
		t.Error("expected visited flag")
	}
}

func TestLoadUnknownTheme(t *testing.T) {
	mem := kvstore.NewMemory()
	_ = mem.Save("calendar_theme", []byte(`"sepia"`))
	s := newStore(mem)
	s.Load(context.Background())
	if s.Theme() != model.ThemeLight {
		t.Errorf("expected light, got %s", s.Theme())
	}
}

func TestFailingStorageIsSoft(t *testing.T) {
	ctx := context.Background()
	s := newStore(failingStorage{})
	s.Load(ctx)

	s.AddEvent(ctx, model.Event{Title: "x", Date: "2024-03-01"})
	task := s.AddTask(ctx, model.Task{Title: "t"})
	if _, err := s.ToggleTask(ctx, task.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	s.ToggleTheme(ctx)

	if len(s.Events()) != 1 || len(s.Tasks()) != 1 || !s.Tasks()[0].Completed {
		t.Error("in-memory state should be updated despite storage failures")
	}
	if s.Theme() != model.ThemeDark {
		t.Error("theme should be toggled in memory")
	}
}

func TestTaskMutations(t *testing.T) {
	ctx := context.Background()
	s := newStore(kvstore.NewMemory())

	task := s.AddTask(ctx, model.Task{Title: "write", Priority: model.PriorityHigh})
	toggled, err := s.ToggleTask(ctx, task.ID)
	if err != nil || !toggled.Completed {
		t.Fatalf("toggle: %+v %v", toggled, err)
	}
	toggled, _ = s.ToggleTask(ctx, task.ID)
	if toggled.Completed {
		t.Error("second toggle should clear completed")
	}

	if _, err := s.ToggleTask(ctx, "nope"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := s.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.DeleteTask(ctx, task.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()
	s := newStore(kvstore.NewMemory())
	a := s.AddEvent(ctx, model.Event{Title: "a", Date: "2024-03-01"})
	b := s.AddEvent(ctx, model.Event{Title: "b", Date: "2024-03-01"})

	if err := s.DeleteEvent(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got := s.Events()
	if len(got) != 1 || got[0].ID != b.ID {
		t.Errorf("unexpected events %+v", got)
	}
	if err := s.DeleteEvent(ctx, a.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReplace(t *testing.T) {
	ctx := context.Background()
	s := newStore(kvstore.NewMemory())
	s.AddEvent(ctx, model.Event{Title: "a", Date: "2024-03-01"})
	s.AddTask(ctx, model.Task{Title: "t"})

	empty := []model.Event{}
	s.Replace(ctx, &empty, nil)
	if len(s.Events()) != 0 {
		t.Error("events should be cleared")
	}
	if len(s.Tasks()) != 1 {
		t.Error("tasks should be kept")
	}

	tasks := []model.Task{{ID: "9999999999999", Title: "imported"}}
	s.Replace(ctx, nil, &tasks)
	if got := s.Tasks(); len(got) != 1 || got[0].Title != "imported" {
		t.Errorf("unexpected tasks %+v", got)
	}

	next := s.AddTask(ctx, model.Task{Title: "after import"})
	if next.ID != "10000000000000" {
		t.Errorf("expected id above imported ids, got %s", next.ID)
	}
}

func TestObservers(t *testing.T) {
	ctx := context.Background()
	s := newStore(kvstore.NewMemory())

	var got []model.ChangeKind
	unsubscribe := s.Subscribe(func(c model.Change) {
		// Reading state from an observer must not deadlock.
		_ = s.Events()
		got = append(got, c.Kind)
	})

	e := s.AddEvent(ctx, model.Event{Title: "a", Date: "2024-03-01"})
	_ = s.DeleteEvent(ctx, e.ID)
	s.ToggleTheme(ctx)
	s.SetView(model.View{Year: 2024, Month: time.April})

	want := []model.ChangeKind{
		model.ChangeEventAdded,
		model.ChangeEventDeleted,
		model.ChangeThemeChanged,
		model.ChangeViewChanged,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("change %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	unsubscribe()
	s.AddTask(ctx, model.Task{Title: "t"})
	if len(got) != len(want) {
		t.Error("observer called after unsubscribe")
	}
}

func TestMarkVisited(t *testing.T) {
	ctx := context.Background()
	mem := kvstore.NewMemory()
	s := newStore(mem)

	if !s.MarkVisited(ctx) {
		t.Error("first call should report first visit")
	}
	if s.MarkVisited(ctx) {
		t.Error("second call should not report first visit")
	}
	raw, err := mem.Load("calendar_hasVisited")
	if err != nil || string(raw) != "true" {
		t.Errorf("expected persisted flag, got %q %v", raw, err)
	}
}

func TestViewDefaultsToCurrentMonth(t *testing.T) {
	s := newStore(kvstore.NewMemory())
	v := s.View()
	if v.Year != 2024 || v.Month != time.March || v.SelectedDate != "" {
		t.Errorf("unexpected view %+v", v)
	}
}

func TestNamespace(t *testing.T) {
	mem := kvstore.NewMemory()
	s := store.New(mem, &mockLogger{}, store.Options{Namespace: "alt"})
	s.AddTask(context.Background(), model.Task{Title: "t"})
	if _, err := mem.Load("alt_tasks"); err != nil {
		t.Errorf("expected alt_tasks key: %v", err)
	}
	if s.Key("events") != "alt_events" {
		t.Errorf("unexpected key %s", s.Key("events"))
	}
}

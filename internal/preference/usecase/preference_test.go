package usecase_test

import (
	"context"
	"testing"

	"calendar-pro/internal/model"
	"calendar-pro/internal/notify"
	"calendar-pro/internal/preference/usecase"
	"calendar-pro/internal/store"
	"calendar-pro/pkg/kvstore"
	"calendar-pro/pkg/log"
)

func TestThemeToggle(t *testing.T) {
	ctx := context.Background()
	mem := kvstore.NewMemory()
	s := store.New(mem, log.NewNop(), store.Options{})
	n := notify.New(log.NewNop(), notify.Options{})
	uc := usecase.New(log.NewNop(), s, n)

	out, _ := uc.Theme(ctx)
	if out.Theme != model.ThemeLight {
		t.Fatalf("expected light by default, got %s", out.Theme)
	}

	out, _ = uc.ToggleTheme(ctx)
	if out.Theme != model.ThemeDark {
		t.Errorf("expected dark, got %s", out.Theme)
	}
	raw, _ := mem.Load("calendar_theme")
	if string(raw) != `"dark"` {
		t.Errorf("expected persisted dark theme, got %s", raw)
	}

	out, _ = uc.ToggleTheme(ctx)
	if out.Theme != model.ThemeLight {
		t.Errorf("expected light after second toggle, got %s", out.Theme)
	}
}

func TestWelcome(t *testing.T) {
	ctx := context.Background()
	s := store.New(kvstore.NewMemory(), log.NewNop(), store.Options{})
	n := notify.New(log.NewNop(), notify.Options{})
	uc := usecase.New(log.NewNop(), s, n)

	first, _ := uc.Welcome(ctx)
	if !first.FirstVisit || first.Message != notify.MsgWelcome {
		t.Errorf("expected welcome on first visit, got %+v", first)
	}
	second, _ := uc.Welcome(ctx)
	if second.FirstVisit {
		t.Error("expected no welcome on second visit")
	}

	recent := n.Recent(ctx)
	if len(recent) != 1 || recent[0].Message != notify.MsgWelcome {
		t.Errorf("expected a single welcome notification, got %+v", recent)
	}
}

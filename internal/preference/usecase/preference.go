package usecase

import (
	"context"

	"calendar-pro/internal/notify"
	"calendar-pro/internal/preference"
)

func (uc *implUseCase) Theme(ctx context.Context) (preference.ThemeOutput, error) {
	return preference.ThemeOutput{Theme: uc.repo.Theme()}, nil
}

// ToggleTheme switches between light and dark and persists the choice.
func (uc *implUseCase) ToggleTheme(ctx context.Context) (preference.ThemeOutput, error) {
	t := uc.repo.ToggleTheme(ctx)
	uc.l.Debugf(ctx, "uc.ToggleTheme: %s", t)
	return preference.ThemeOutput{Theme: t}, nil
}

// Welcome pushes the greeting only on the very first start.
func (uc *implUseCase) Welcome(ctx context.Context) (preference.WelcomeOutput, error) {
	if !uc.repo.MarkVisited(ctx) {
		return preference.WelcomeOutput{}, nil
	}
	uc.l.Infof(ctx, "uc.Welcome: first visit")
	uc.notifier.Push(ctx, notify.KindInfo, notify.MsgWelcome)
	return preference.WelcomeOutput{FirstVisit: true, Message: notify.MsgWelcome}, nil
}

package usecase

import (
	"context"
	"strings"

	"calendar-pro/internal/calendar"
	"calendar-pro/internal/model"
	"calendar-pro/internal/notify"
	"calendar-pro/pkg/datemath"
)

// Navigate moves the visible month or selects a day.
func (uc *implUseCase) Navigate(ctx context.Context, input calendar.NavigateInput) (calendar.NavigateOutput, error) {
	view := uc.repo.View()

	switch strings.ToLower(strings.TrimSpace(input.Action)) {
	case calendar.ActionPrev:
		view.Year, view.Month = datemath.AddMonths(view.Year, view.Month, -1)
	case calendar.ActionNext:
		view.Year, view.Month = datemath.AddMonths(view.Year, view.Month, 1)
	case calendar.ActionToday:
		now := uc.repo.Now().In(uc.dateMath.Location())
		view.Year, view.Month = now.Year(), now.Month()
		uc.notifier.Push(ctx, notify.KindInfo, notify.MsgToday)
	case calendar.ActionSelect:
		t, err := datemath.ParseKey(input.Date, uc.dateMath.Location())
		if err != nil {
			return calendar.NavigateOutput{}, calendar.ErrInvalidDate
		}
		view = model.View{Year: t.Year(), Month: t.Month(), SelectedDate: input.Date}
	default:
		return calendar.NavigateOutput{}, calendar.ErrInvalidAction
	}

	uc.repo.SetView(view)
	uc.l.Debugf(ctx, "uc.Navigate %s: %d-%02d", input.Action, view.Year, view.Month)

	return calendar.NavigateOutput{
		View:  view,
		Title: datemath.MonthTitle(view.Year, view.Month),
	}, nil
}

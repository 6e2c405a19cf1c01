package usecase

import (
	"context"
	"strings"

	"calendar-pro/internal/event"
	"calendar-pro/internal/model"
	"calendar-pro/internal/notify"
	"calendar-pro/pkg/datemath"
)

// Create validates the input, stores a new event and announces it.
func (uc *implUseCase) Create(ctx context.Context, input event.CreateInput) (event.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return event.CreateOutput{}, event.ErrEmptyTitle
	}

	date, err := uc.dateMath.ResolveKey(input.Date, uc.repo.Now())
	if err != nil || date == "" {
		return event.CreateOutput{}, event.ErrInvalidDate
	}

	clock := strings.TrimSpace(input.Time)
	if clock != "" {
		h, m, err := datemath.ParseClock(clock)
		if err != nil {
			return event.CreateOutput{}, event.ErrInvalidTime
		}
		clock = datemath.FormatClock(h, m)
	}

	category := model.Category(strings.ToLower(strings.TrimSpace(input.Category)))
	if category == "" {
		category = model.DefaultCategory
	}
	if !category.Valid() {
		return event.CreateOutput{}, event.ErrInvalidCategory
	}

	e := uc.repo.AddEvent(ctx, model.Event{
		Title:       title,
		Date:        date,
		Time:        clock,
		Description: strings.TrimSpace(input.Description),
		Category:    category,
	})
	uc.l.Infof(ctx, "uc.Create: event %s on %s", e.ID, e.Date)
	uc.notifier.Push(ctx, notify.KindSuccess, notify.MsgEventAdded)

	return event.CreateOutput{Event: e}, nil
}

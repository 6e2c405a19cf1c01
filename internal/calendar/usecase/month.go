package usecase

import (
	"context"

	"calendar-pro/internal/calendar"
	"calendar-pro/internal/event"
	"calendar-pro/pkg/datemath"
)

// Month builds the annotated 42-cell grid.
func (uc *implUseCase) Month(ctx context.Context, input calendar.MonthInput) (calendar.MonthOutput, error) {
	view := uc.repo.View()
	year, month := view.Year, view.Month
	if input.Year != 0 || input.Month != 0 {
		if input.Year <= 0 || input.Month < 1 || input.Month > 12 {
			return calendar.MonthOutput{}, calendar.ErrInvalidMonth
		}
		year, month = input.Year, input.Month
	}

	now := uc.repo.Now().In(uc.dateMath.Location())
	events := uc.repo.Events()

	highlighted := make(map[string]bool)
	for _, d := range event.Search(events, input.Query).Dates {
		highlighted[d] = true
	}

	grid := calendar.BuildGrid(year, month, now)
	cells := make([]calendar.DayCell, len(grid))
	for i, c := range grid {
		dayEvents := event.EventsForDate(events, c.Key)
		visible := dayEvents
		if len(visible) > uc.maxVisible {
			visible = visible[:uc.maxVisible]
		}
		cells[i] = calendar.DayCell{
			Cell:        c,
			Events:      visible,
			Overflow:    len(dayEvents) - len(visible),
			HasEvents:   len(dayEvents) > 0,
			Highlighted: highlighted[c.Key],
		}
	}

	return calendar.MonthOutput{
		Year:         year,
		Month:        month,
		Title:        datemath.MonthTitle(year, month),
		SelectedDate: view.SelectedDate,
		Today:        datemath.Key(now),
		Cells:        cells,
	}, nil
}

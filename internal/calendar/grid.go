package calendar

import (
	"time"

	"calendar-pro/pkg/datemath"
)

// GridSize is six rows of seven days.
const GridSize = 42

// Position says which month a cell belongs to.
type Position string

const (
	PositionPrev    Position = "prev"
	PositionCurrent Position = "current"
	PositionNext    Position = "next"
)

// Cell is one day of the month grid.
type Cell struct {
	Key      string
	Day      int
	Position Position
	IsToday  bool
}

// BuildGrid returns the 42 cells for (year, month), weeks starting on
// Sunday. Only days of the month itself are compared against today.
func BuildGrid(year int, month time.Month, today time.Time) []Cell {
	cells := make([]Cell, 0, GridSize)

	lead := int(datemath.FirstWeekday(year, month))
	days := datemath.DaysIn(year, month)

	prevYear, prevMonth := datemath.AddMonths(year, month, -1)
	prevDays := datemath.DaysIn(prevYear, prevMonth)
	for i := lead - 1; i >= 0; i-- {
		day := prevDays - i
		cells = append(cells, Cell{
			Key:      datemath.KeyOf(prevYear, prevMonth, day),
			Day:      day,
			Position: PositionPrev,
		})
	}

	ty, tm, td := today.Date()
	for day := 1; day <= days; day++ {
		cells = append(cells, Cell{
			Key:      datemath.KeyOf(year, month, day),
			Day:      day,
			Position: PositionCurrent,
			IsToday:  ty == year && tm == month && td == day,
		})
	}

	nextYear, nextMonth := datemath.AddMonths(year, month, 1)
	for day := 1; len(cells) < GridSize; day++ {
		cells = append(cells, Cell{
			Key:      datemath.KeyOf(nextYear, nextMonth, day),
			Day:      day,
			Position: PositionNext,
		})
	}
	return cells
}

package calendar

import "context"

// UseCase drives the month view.
type UseCase interface {
	Month(ctx context.Context, input MonthInput) (MonthOutput, error)
	Navigate(ctx context.Context, input NavigateInput) (NavigateOutput, error)
	Stats(ctx context.Context) (StatsOutput, error)
}

package event

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Upcoming(ctx context.Context, input UpcomingInput) (UpcomingOutput, error)
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)
	Delete(ctx context.Context, id string) error
}

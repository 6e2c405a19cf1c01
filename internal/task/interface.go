package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context) (ListOutput, error)

	// Pending returns the first incomplete tasks for the sidebar.
	Pending(ctx context.Context) (PendingOutput, error)

	Toggle(ctx context.Context, id string) (ToggleOutput, error)
	Delete(ctx context.Context, id string) error
}

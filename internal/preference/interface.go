package preference

import "context"

type UseCase interface {
	Theme(ctx context.Context) (ThemeOutput, error)
	ToggleTheme(ctx context.Context) (ThemeOutput, error)

	// Welcome marks the app as visited and greets on the first call ever.
	Welcome(ctx context.Context) (WelcomeOutput, error)
}

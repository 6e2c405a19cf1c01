package backup

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Export returns every event and task as an indented JSON backup.
	Export(ctx context.Context) (File, error)
	// Import replaces each collection present in the backup.
	Import(ctx context.Context, input ImportInput) (ImportOutput, error)

	ExportICS(ctx context.Context) (File, error)
	// ImportICS appends the VEVENTs of an iCalendar file as new events.
	ImportICS(ctx context.Context, input ImportInput) (ImportICSOutput, error)

	// Publish pushes the upcoming events to Google Calendar.
	Publish(ctx context.Context, input PublishInput) (PublishOutput, error)
}

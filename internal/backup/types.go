package backup

// File is a downloadable artifact.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ImportInput struct {
	Data []byte
}

// ImportOutput reports which collections an import replaced.
type ImportOutput struct {
	EventsReplaced bool
	TasksReplaced  bool
	Events         int
	Tasks          int
}

type ImportICSOutput struct {
	Added   int
	Skipped int
}

type PublishInput struct {
	WindowDays int // <= 0 uses the configured upcoming window
}

type PublishOutput struct {
	Published int
	Failed    int
	Links     []string
}

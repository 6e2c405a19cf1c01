package notify

import "time"

// Kind is the visual style of a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notification is a transient user-facing message.
type Notification struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Messages pushed by the use cases.
const (
	MsgEventAdded   = "Event added successfully!"
	MsgEventDeleted = "Event deleted!"
	MsgTaskAdded    = "Task added successfully!"
	MsgTaskDeleted  = "Task deleted!"
	MsgToday        = "Jumped to today!"
	MsgExported     = "Data exported successfully!"
	MsgImported     = "Data imported successfully!"
	MsgImportFailed = "Failed to import data. Please check the file format."
	MsgWelcome      = "Welcome to Calendar Pro! Click on dates to add events."
	MsgPublished    = "Events published to Google Calendar!"
)

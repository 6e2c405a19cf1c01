package model

// ChangeKind names the mutation that produced a Change.
type ChangeKind string

const (
	ChangeEventAdded     ChangeKind = "event.added"
	ChangeEventDeleted   ChangeKind = "event.deleted"
	ChangeEventsReplaced ChangeKind = "events.replaced"
	ChangeTaskAdded      ChangeKind = "task.added"
	ChangeTaskToggled    ChangeKind = "task.toggled"
	ChangeTaskDeleted    ChangeKind = "task.deleted"
	ChangeTasksReplaced  ChangeKind = "tasks.replaced"
	ChangeThemeChanged   ChangeKind = "theme.changed"
	ChangeViewChanged    ChangeKind = "view.changed"
)

// Change is published to store observers after each mutation.
// ID is set for single-item changes.
type Change struct {
	Kind ChangeKind
	ID   string
}

package notify

import "context"

// Notifier collects short-lived messages for the front ends.
type Notifier interface {
	Push(ctx context.Context, kind Kind, message string) Notification
	Recent(ctx context.Context) []Notification
}

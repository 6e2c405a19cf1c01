package tui

import (
	"strings"

	"calendar-pro/internal/event"
	"calendar-pro/internal/task"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptEvent
	promptTask
	promptSearch
)

const (
	eventPromptHint = "title; date; time; category; description"
	taskPromptHint  = "title; priority; due"
	searchHint      = "search events"
)

func (k promptKind) label() string {
	switch k {
	case promptEvent:
		return "New event"
	case promptTask:
		return "New task"
	case promptSearch:
		return "Search"
	default:
		return ""
	}
}

func (k promptKind) hint() string {
	switch k {
	case promptEvent:
		return eventPromptHint
	case promptTask:
		return taskPromptHint
	default:
		return searchHint
	}
}

// splitFields splits a ";"-separated prompt into exactly n trimmed fields.
// Everything past the last separator stays in the final field.
func splitFields(s string, n int) []string {
	parts := strings.SplitN(s, ";", n)
	out := make([]string, n)
	for i := range out {
		if i < len(parts) {
			out[i] = strings.TrimSpace(parts[i])
		}
	}
	return out
}

// parseEventPrompt reads "title; date; time; category; description".
// An empty date falls back to defaultDate.
func parseEventPrompt(s, defaultDate string) event.CreateInput {
	f := splitFields(s, 5)
	in := event.CreateInput{
		Title:       f[0],
		Date:        f[1],
		Time:        f[2],
		Category:    f[3],
		Description: f[4],
	}
	if in.Date == "" {
		in.Date = defaultDate
	}
	return in
}

// parseTaskPrompt reads "title; priority; due".
func parseTaskPrompt(s string) task.CreateInput {
	f := splitFields(s, 3)
	return task.CreateInput{Title: f[0], Priority: f[1], DueDate: f[2]}
}

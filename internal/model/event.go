package model

// Category groups events by color in the UI.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategorySocial   Category = "social"
	CategoryOther    Category = "other"
)

// DefaultCategory applies when the caller leaves the category empty.
const DefaultCategory = CategoryPersonal

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryHealth, CategorySocial, CategoryOther:
		return true
	}
	return false
}

// Event is a calendar entry pinned to one local calendar day.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Time        string   `json:"time"` // HH:MM or ""
	Description string   `json:"description"`
	Category    Category `json:"category"`
	CreatedAt   string   `json:"createdAt"`
}

// AllDay reports whether the event has no time of day.
func (e Event) AllDay() bool {
	return e.Time == ""
}

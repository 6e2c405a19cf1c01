package backup

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"calendar-pro/internal/model"
	"calendar-pro/pkg/datemath"
)

const (
	productID     = "calendar-pro"
	calendarName  = "Calendar Pro"
	timedDuration = time.Hour
)

// uidSpace derives stable VEVENT UIDs from event IDs, so exporting twice
// yields the same UIDs and calendar clients update instead of duplicating.
var uidSpace = uuid.MustParse("6f1c3c2e-5d0a-4e8b-9a57-0c7e2b1d4f36")

// EncodeICS renders events as a VCALENDAR. Events without a time become
// all-day events; timed events last one hour. Events with a malformed
// date are left out and counted in skipped.
func EncodeICS(events []model.Event, loc *time.Location, now time.Time) (data []byte, skipped int) {
	cal := ical.NewCalendarFor(productID)
	cal.SetMethod(ical.MethodPublish)
	cal.SetXWRCalName(calendarName)

	for _, e := range events {
		day, err := datemath.ParseKey(e.Date, loc)
		if err != nil {
			skipped++
			continue
		}

		ve := cal.AddEvent(uuid.NewSHA1(uidSpace, []byte(e.ID)).String() + "@" + productID)
		ve.SetDtStampTime(now)
		ve.SetSummary(e.Title)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		if e.Category != "" {
			ve.AddCategory(strings.ToUpper(string(e.Category)))
		}
		if created, err := time.Parse(time.RFC3339, e.CreatedAt); err == nil {
			ve.SetCreatedTime(created)
		}

		if e.AllDay() {
			ve.SetAllDayStartAt(day)
			ve.SetAllDayEndAt(day.AddDate(0, 0, 1))
			continue
		}
		h, m, err := datemath.ParseClock(e.Time)
		if err != nil {
			ve.SetAllDayStartAt(day)
			ve.SetAllDayEndAt(day.AddDate(0, 0, 1))
			continue
		}
		start := time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, loc)
		ve.SetStartAt(start)
		ve.SetEndAt(start.Add(timedDuration))
	}

	return []byte(cal.Serialize()), skipped
}

// DecodeICS turns the VEVENTs of an iCalendar document into events.
// Timed starts are converted to loc. VEVENTs without a usable DTSTART are
// counted in skipped. IDs and createdAt are left for the store to assign.
func DecodeICS(data []byte, loc *time.Location) (events []model.Event, skipped int, err error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, 0, ErrEmptyFile
	}
	cal, err := ical.ParseCalendar(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrMalformedCalendar, err)
	}

	for _, ve := range cal.Events() {
		e, ok := decodeVEvent(ve, loc)
		if !ok {
			skipped++
			continue
		}
		events = append(events, e)
	}
	return events, skipped, nil
}

func decodeVEvent(ve *ical.VEvent, loc *time.Location) (model.Event, bool) {
	var e model.Event

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		e.Title = strings.TrimSpace(p.Value)
	}
	if e.Title == "" {
		e.Title = "(untitled)"
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		e.Description = p.Value
	}

	e.Category = model.DefaultCategory
	if p := ve.GetProperty(ical.ComponentPropertyCategories); p != nil {
		first, _, _ := strings.Cut(p.Value, ",")
		if c := model.Category(strings.ToLower(strings.TrimSpace(first))); c != "" {
			e.Category = c
		}
	}

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return e, false
	}
	if isAllDay(dtStart) {
		start, err := ve.GetAllDayStartAt()
		if err != nil {
			return e, false
		}
		e.Date = datemath.Key(start)
		return e, true
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return e, false
	}
	start = start.In(loc)
	e.Date = datemath.Key(start)
	e.Time = datemath.FormatClock(start.Hour(), start.Minute())
	return e, true
}

// isAllDay reports VALUE=DATE starts and bare YYYYMMDD values.
func isAllDay(p *ical.IANAProperty) bool {
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"calendar-pro/internal/backup"
	"calendar-pro/internal/event"
	"calendar-pro/internal/model"
	"calendar-pro/internal/notify"
	"calendar-pro/pkg/datemath"
	"calendar-pro/pkg/gcalendar"
)

// Publish creates a Google Calendar event for every upcoming event.
// It fails only when nothing could be published.
func (uc *implUseCase) Publish(ctx context.Context, input backup.PublishInput) (backup.PublishOutput, error) {
	if uc.publisher == nil {
		return backup.PublishOutput{}, backup.ErrPublisherUnavailable
	}

	days := input.WindowDays
	if days <= 0 {
		days = uc.windowDays
	}

	today := uc.dateMath.Today(uc.repo.Now())
	upcoming := event.UpcomingEvents(uc.repo.Events(), today, days)

	out := backup.PublishOutput{Links: []string{}}
	var lastErr error
	for _, e := range upcoming {
		req, err := uc.buildRequest(e)
		if err != nil {
			uc.l.Warnf(ctx, "uc.Publish buildRequest %s: %v", e.ID, err)
			out.Failed++
			continue
		}

		created, err := uc.publisher.CreateEvent(ctx, req)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Publish CreateEvent %s: %v", e.ID, err)
			out.Failed++
			lastErr = err
			continue
		}
		out.Published++
		if created != nil && created.HtmlLink != "" {
			out.Links = append(out.Links, created.HtmlLink)
		}
	}

	if out.Published == 0 && lastErr != nil {
		return out, fmt.Errorf("publish: %w", lastErr)
	}

	uc.l.Infof(ctx, "uc.Publish: published=%d failed=%d", out.Published, out.Failed)
	if out.Published > 0 {
		uc.notifier.Push(ctx, notify.KindSuccess, notify.MsgPublished)
	}
	return out, nil
}

func (uc *implUseCase) buildRequest(e model.Event) (gcalendar.CreateEventRequest, error) {
	loc := uc.dateMath.Location()
	day, err := datemath.ParseKey(e.Date, loc)
	if err != nil {
		return gcalendar.CreateEventRequest{}, err
	}

	req := gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     e.Title,
		Description: e.Description,
	}
	if loc != time.Local {
		req.Timezone = loc.String()
	}

	if e.AllDay() {
		req.AllDay = true
		req.StartTime = day
		req.EndTime = day.AddDate(0, 0, 1)
		return req, nil
	}

	h, m, err := datemath.ParseClock(e.Time)
	if err != nil {
		return gcalendar.CreateEventRequest{}, err
	}
	req.StartTime = time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, loc)
	req.EndTime = req.StartTime.Add(time.Hour)
	return req, nil
}

package reminder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"calendar-pro/internal/event"
	"calendar-pro/internal/notify"
	pkgLog "calendar-pro/pkg/log"
)

const (
	DefaultSpec       = "0 8 * * *"
	DefaultWindowDays = 7
)

// Options configures the reminder scheduler.
type Options struct {
	Spec       string
	WindowDays int
	Location   *time.Location
}

// Digest is the outcome of one reminder run.
type Digest struct {
	Count   int
	Days    int
	Message string
	Lines   []string
}

// Scheduler runs the upcoming-events digest on a cron schedule.
type Scheduler struct {
	l        pkgLog.Logger
	events   event.UseCase
	notifier notify.Notifier
	days     int
	cron     *cron.Cron
}

// New validates the cron spec and registers the digest job.
// The scheduler does nothing until Start is called.
func New(l pkgLog.Logger, events event.UseCase, notifier notify.Notifier, opt Options) (*Scheduler, error) {
	if opt.Spec == "" {
		opt.Spec = DefaultSpec
	}
	if opt.WindowDays <= 0 {
		opt.WindowDays = DefaultWindowDays
	}
	if opt.Location == nil {
		opt.Location = time.Local
	}

	s := &Scheduler{
		l:        l,
		events:   events,
		notifier: notifier,
		days:     opt.WindowDays,
		cron:     cron.New(cron.WithLocation(opt.Location)),
	}
	if _, err := s.cron.AddFunc(opt.Spec, s.run); err != nil {
		return nil, fmt.Errorf("reminder: invalid cron spec %q: %w", opt.Spec, err)
	}
	return s, nil
}

// ValidateSpec reports whether spec is a valid five-field cron expression.
func ValidateSpec(spec string) error {
	_, err := cron.ParseStandard(spec)
	return err
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running digest to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

func (s *Scheduler) run() {
	ctx := context.Background()
	if _, err := s.RunOnce(ctx); err != nil {
		s.l.Errorf(ctx, "reminder.run RunOnce: %v", err)
	}
}

// RunOnce builds the digest now. It notifies only when there is something
// to remind about.
func (s *Scheduler) RunOnce(ctx context.Context) (Digest, error) {
	out, err := s.events.Upcoming(ctx, event.UpcomingInput{Days: s.days})
	if err != nil {
		return Digest{}, err
	}

	d := Digest{
		Count:   len(out.Items),
		Days:    out.Days,
		Message: fmt.Sprintf("%d upcoming event(s) in the next %d days", len(out.Items), out.Days),
		Lines:   make([]string, 0, len(out.Items)),
	}
	for _, it := range out.Items {
		d.Lines = append(d.Lines, fmt.Sprintf("%s  %s", it.When, it.Event.Title))
	}

	if d.Count == 0 {
		s.l.Infof(ctx, "reminder: %s", d.Message)
		return d, nil
	}

	s.l.Infof(ctx, "reminder: %s\n%s", d.Message, strings.Join(d.Lines, "\n"))
	s.notifier.Push(ctx, notify.KindInfo, d.Message)
	return d, nil
}

// Package reminder sends a periodic digest of upcoming document events.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mmynk/docshelf/internal/calendar"
	"github.com/mmynk/docshelf/internal/models"
)

// EventSource provides the current derived events.
type EventSource interface {
	Events(ctx context.Context) ([]models.CalendarEvent, error)
}

// Notifier delivers a digest. events are sorted and may be empty.
type Notifier interface {
	Notify(ctx context.Context, today calendar.LocalDate, events []models.CalendarEvent) error
}

// LogNotifier writes one log line per upcoming event.
type LogNotifier struct {
	Logger *slog.Logger
}

// Notify implements Notifier.
func (n LogNotifier) Notify(ctx context.Context, today calendar.LocalDate, events []models.CalendarEvent) error {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if len(events) == 0 {
		logger.InfoContext(ctx, "No upcoming events", "today", today.String())
		return nil
	}
	for _, ev := range events {
		logger.InfoContext(ctx, "Upcoming event",
			"date", ev.Date,
			"type", ev.Type,
			"title", ev.Title,
			"document_id", ev.DocumentID,
		)
	}
	return nil
}

// Options configures a Scheduler.
type Options struct {
	// Schedule is a standard 5-field cron expression.
	Schedule string
	// HorizonDays is how far ahead of today the digest looks.
	HorizonDays int
	// Location defines "today" and the schedule's timezone. Defaults to time.Local.
	Location *time.Location
}

// Scheduler runs the digest on a cron schedule.
type Scheduler struct {
	src      EventSource
	notifier Notifier
	horizon  int
	loc      *time.Location
	cron     *cron.Cron
	now      func() time.Time
}

// New validates opts and registers the digest job. The job does not run
// until Start is called.
func New(src EventSource, notifier Notifier, opts Options) (*Scheduler, error) {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.HorizonDays < 0 {
		return nil, fmt.Errorf("horizon must not be negative, got %d", opts.HorizonDays)
	}

	s := &Scheduler{
		src:      src,
		notifier: notifier,
		horizon:  opts.HorizonDays,
		loc:      opts.Location,
		now:      time.Now,
	}
	s.cron = cron.New(
		cron.WithLocation(opts.Location),
		cron.WithLogger(cronLogger{}),
		cron.WithChain(cron.SkipIfStillRunning(cronLogger{})),
	)
	if _, err := s.cron.AddFunc(opts.Schedule, s.run); err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", opts.Schedule, err)
	}
	return s, nil
}

// Start begins running the digest in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("Reminder scheduler started", "horizon_days", s.horizon, "timezone", s.loc.String())
}

// Stop halts the scheduler and waits for a running digest, or for ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// RunOnce sends a single digest of the events within the horizon and
// returns them.
func (s *Scheduler) RunOnce(ctx context.Context) ([]models.CalendarEvent, error) {
	events, err := s.src.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to derive events: %w", err)
	}

	today := calendar.FromTime(s.now().In(s.loc))
	upcoming := calendar.Upcoming(events, today, s.horizon)

	if err := s.notifier.Notify(ctx, today, upcoming); err != nil {
		return nil, fmt.Errorf("failed to send digest: %w", err)
	}
	return upcoming, nil
}

func (s *Scheduler) run() {
	events, err := s.RunOnce(context.Background())
	if err != nil {
		slog.Error("Reminder digest failed", "error", err)
		return
	}
	slog.Info("Reminder digest sent", "events", len(events))
}

// cronLogger routes cron's internal logging through slog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error("cron: "+msg, append([]any{"error", err}, keysAndValues...)...)
}

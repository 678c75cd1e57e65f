// Package ics renders derived calendar events as an iCalendar feed that
// desktop and phone calendar apps can subscribe to.
package ics

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/mmynk/docshelf/internal/calendar"
	"github.com/mmynk/docshelf/internal/models"
)

const (
	productID = "-//docshelf//calendar feed//EN"
	uidDomain = "docshelf"
	calName   = "Docshelf"
)

// EventSource provides the current derived events.
type EventSource interface {
	Events(ctx context.Context) ([]models.CalendarEvent, error)
}

// UID returns the stable VEVENT UID for ev. A document yields at most one
// event, so document id and type are unique within the feed.
func UID(ev models.CalendarEvent) string {
	return fmt.Sprintf("%s-%s@%s", ev.DocumentID, ev.Type, uidDomain)
}

// Build converts events into a calendar with one all-day VEVENT each, in date
// order. Events whose date cannot be parsed are skipped. stamp is written as
// DTSTAMP on every event.
func Build(events []models.CalendarEvent, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(calName)

	sorted := make([]models.CalendarEvent, len(events))
	copy(sorted, events)
	calendar.Sort(sorted)

	for _, ev := range sorted {
		d, ok := calendar.ParseLocalDate(ev.Date)
		if !ok {
			continue
		}
		start := d.In(time.UTC)
		end := d.AddDays(1).In(time.UTC)

		ve := cal.AddEvent(UID(ev))
		ve.SetDtStampTime(stamp.UTC())
		ve.SetSummary(ev.Title)
		ve.SetAllDayStartAt(start)
		ve.SetAllDayEndAt(end)
		ve.AddProperty(ical.ComponentPropertyCategories, string(ev.Type))
	}
	return cal
}

// Write serializes events as an iCalendar document to w.
func Write(w io.Writer, events []models.CalendarEvent, stamp time.Time) error {
	if err := Build(events, stamp).SerializeTo(w); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}

// Handler serves the feed from src.
func Handler(src EventSource) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		events, err := src.Events(r.Context())
		if err != nil {
			slog.Error("Failed to derive events for calendar feed", "error", err)
			http.Error(w, "failed to build calendar", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", `inline; filename="docshelf.ics"`)
		if err := Write(w, events, time.Now()); err != nil {
			slog.Error("Failed to write calendar feed", "error", err)
			return
		}
		slog.Debug("Calendar feed served", "events", len(events))
	})
}

package calendar

import (
	"cmp"
	"slices"

	"github.com/mmynk/docshelf/internal/models"
)

// Query narrows a list of events. Zero values mean "no restriction".
type Query struct {
	From  *LocalDate
	To    *LocalDate
	Types []models.EventType
}

// Sort orders events by date, then title, then document id.
func Sort(events []models.CalendarEvent) {
	slices.SortStableFunc(events, func(a, b models.CalendarEvent) int {
		return cmp.Or(
			cmp.Compare(a.Date, b.Date),
			cmp.Compare(a.Title, b.Title),
			cmp.Compare(a.DocumentID, b.DocumentID),
		)
	})
}

// Filter returns the events matching q, in their original order.
// Events whose date does not parse never match a date bound.
func Filter(events []models.CalendarEvent, q Query) []models.CalendarEvent {
	out := make([]models.CalendarEvent, 0, len(events))
	for _, ev := range events {
		if len(q.Types) > 0 && !slices.Contains(q.Types, ev.Type) {
			continue
		}
		if q.From != nil || q.To != nil {
			d, ok := ParseLocalDate(ev.Date)
			if !ok {
				continue
			}
			if q.From != nil && d.Before(*q.From) {
				continue
			}
			if q.To != nil && d.After(*q.To) {
				continue
			}
		}
		out = append(out, ev)
	}
	return out
}

// Upcoming returns the events from today through today+days inclusive,
// sorted.
func Upcoming(events []models.CalendarEvent, today LocalDate, days int) []models.CalendarEvent {
	end := today.AddDays(days)
	out := Filter(events, Query{From: &today, To: &end})
	Sort(out)
	return out
}

// GroupByDate buckets events by their date string, each bucket sorted.
func GroupByDate(events []models.CalendarEvent) map[string][]models.CalendarEvent {
	byDate := make(map[string][]models.CalendarEvent)
	for _, ev := range events {
		byDate[ev.Date] = append(byDate[ev.Date], ev)
	}
	for _, bucket := range byDate {
		Sort(bucket)
	}
	return byDate
}

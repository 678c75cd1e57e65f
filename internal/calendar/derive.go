// Package calendar derives calendar events from stored documents.
//
// Derivation is a pure function of the document collection: it reads only
// stored metadata (never the wall clock), never fails, and never mutates its
// input. Each document contributes zero or one event.
package calendar

import (
	"fmt"

	"github.com/mmynk/docshelf/internal/models"
)

// billDueDays is how long after a utility bill's date payment is due.
const billDueDays = 15

// DeriveEvents computes the calendar events for docs.
// The result has no particular order and is never nil.
func DeriveEvents(docs []models.Document) []models.CalendarEvent {
	events := make([]models.CalendarEvent, 0, len(docs))
	for i := range docs {
		events = append(events, eventsFor(&docs[i])...)
	}
	return events
}

// eventsFor applies the rules for a single document.
func eventsFor(doc *models.Document) []models.CalendarEvent {
	var events []models.CalendarEvent

	// Warranty expiry uses its own field, so it is handled before the
	// category dispatch below.
	if doc.Category == models.CategoryWarranty {
		if end, ok := ParseLocalDate(doc.Metadata.WarrantyEndDate); ok {
			events = append(events, newEvent(doc, end, models.EventWarranty, "%s expires"))
		}
	}

	date, ok := ParseLocalDate(doc.Metadata.Date)
	if !ok {
		return events
	}

	if ev, ok := dateEvent(doc, date); ok {
		events = append(events, ev)
	}
	return events
}

// dateEvent maps a document's primary date to its category's event.
// Exactly one case applies to every category.
func dateEvent(doc *models.Document, date LocalDate) (models.CalendarEvent, bool) {
	switch doc.Category {
	case models.CategoryUtilityBill:
		return newEvent(doc, date.AddDays(billDueDays), models.EventBill, "%s due"), true
	case models.CategoryMedicalRecord:
		return newEvent(doc, date, models.EventAppointment, "%s"), true
	case models.CategoryInsurancePolicy:
		return newEvent(doc, date.AddYears(1), models.EventInsurance, "%s renewal"), true
	case models.CategoryWarranty:
		// The purchase date is not actionable; the expiry event above is the
		// only one a warranty gets.
		return models.CalendarEvent{}, false
	default:
		// Receipts, Other, and categories this version does not know.
		return newEvent(doc, date, models.EventGeneral, "%s"), true
	}
}

func newEvent(doc *models.Document, date LocalDate, typ models.EventType, titleFormat string) models.CalendarEvent {
	return models.CalendarEvent{
		Date:       date.String(),
		Type:       typ,
		Title:      fmt.Sprintf(titleFormat, doc.Title),
		DocumentID: doc.ID,
	}
}

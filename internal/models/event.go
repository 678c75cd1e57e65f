package models

// EventType tells presentation layers what kind of date an event marks.
type EventType string

const (
	EventWarranty    EventType = "warranty"
	EventBill        EventType = "bill"
	EventAppointment EventType = "appointment"
	EventInsurance   EventType = "insurance"
	EventGeneral     EventType = "general"
)

// EventTypes lists every event type.
var EventTypes = []EventType{EventWarranty, EventBill, EventAppointment, EventInsurance, EventGeneral}

// CalendarEvent is an actionable date derived from a document.
// Events are never stored; they are recomputed whenever documents change.
type CalendarEvent struct {
	// Date is YYYY-MM-DD with no time-of-day component.
	Date string `json:"date"`

	Type EventType `json:"type"`

	Title string `json:"title"`

	// DocumentID references the source document.
	DocumentID string `json:"documentId"`
}

package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/docshelf/internal/models"
	"github.com/mmynk/docshelf/pkg/api"
)

// seedEvents creates one document per derivation rule. "Today" in the test
// server is 2025-01-10.
func seedEvents(t *testing.T, c *testClients) map[string]*models.Document {
	t.Helper()
	return map[string]*models.Document{
		"warranty": createDoc(t, c, &api.CreateDocumentRequest{
			Title:    "Laptop",
			Category: models.CategoryWarranty,
			Metadata: models.Metadata{Date: "2024-01-01", WarrantyEndDate: "2025-01-20"},
		}),
		"bill": createDoc(t, c, &api.CreateDocumentRequest{
			Title:    "Electricity",
			Category: models.CategoryUtilityBill,
			Metadata: models.Metadata{Date: "2025-01-01"},
		}),
		"appointment": createDoc(t, c, &api.CreateDocumentRequest{
			Title:    "Dentist",
			Category: models.CategoryMedicalRecord,
			Metadata: models.Metadata{Date: "2025-03-01"},
		}),
		"insurance": createDoc(t, c, &api.CreateDocumentRequest{
			Title:    "Health cover",
			Category: models.CategoryInsurancePolicy,
			Metadata: models.Metadata{Date: "2024-02-01"},
		}),
		"general": createDoc(t, c, &api.CreateDocumentRequest{
			Title:    "Groceries",
			Category: models.CategoryGeneralReceipt,
			Metadata: models.Metadata{Date: "2025-01-05"},
		}),
		"undated": createDoc(t, c, &api.CreateDocumentRequest{
			Title:    "Scan",
			Category: models.CategoryOther,
		}),
	}
}

func TestListEvents(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()
	docs := seedEvents(t, c)

	resp, err := c.calendar.ListEvents(context.Background(), connect.NewRequest(&api.ListEventsRequest{}))
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}

	want := []models.CalendarEvent{
		{Date: "2025-01-05", Type: models.EventGeneral, Title: "Groceries", DocumentID: docs["general"].ID},
		{Date: "2025-01-16", Type: models.EventBill, Title: "Electricity due", DocumentID: docs["bill"].ID},
		{Date: "2025-01-20", Type: models.EventWarranty, Title: "Laptop expires", DocumentID: docs["warranty"].ID},
		{Date: "2025-02-01", Type: models.EventInsurance, Title: "Health cover renewal", DocumentID: docs["insurance"].ID},
		{Date: "2025-03-01", Type: models.EventAppointment, Title: "Dentist", DocumentID: docs["appointment"].ID},
	}
	got := resp.Msg.Events
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestListEventsFilters(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()
	seedEvents(t, c)

	tests := []struct {
		name string
		req  *api.ListEventsRequest
		want int
	}{
		{"from", &api.ListEventsRequest{From: "2025-01-16"}, 4},
		{"to", &api.ListEventsRequest{To: "2025-01-16"}, 2},
		{"range", &api.ListEventsRequest{From: "2025-01-10", To: "2025-02-01"}, 3},
		{"types", &api.ListEventsRequest{Types: []models.EventType{models.EventBill, models.EventWarranty}}, 2},
		{"range and type", &api.ListEventsRequest{From: "2025-02-01", Types: []models.EventType{models.EventBill}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := c.calendar.ListEvents(context.Background(), connect.NewRequest(tt.req))
			if err != nil {
				t.Fatalf("ListEvents failed: %v", err)
			}
			if len(resp.Msg.Events) != tt.want {
				t.Errorf("expected %d events, got %d: %+v", tt.want, len(resp.Msg.Events), resp.Msg.Events)
			}
		})
	}
}

func TestListEventsInvalidRange(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	tests := []struct {
		name string
		req  *api.ListEventsRequest
	}{
		{"bad from", &api.ListEventsRequest{From: "2025-1-1"}},
		{"bad to", &api.ListEventsRequest{To: "tomorrow"}},
		{"inverted", &api.ListEventsRequest{From: "2025-02-01", To: "2025-01-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.calendar.ListEvents(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestUpcomingEvents(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()
	seedEvents(t, c)

	resp, err := c.calendar.UpcomingEvents(context.Background(), connect.NewRequest(&api.UpcomingEventsRequest{Days: 10}))
	if err != nil {
		t.Fatalf("UpcomingEvents failed: %v", err)
	}
	if resp.Msg.Today != "2025-01-10" {
		t.Errorf("expected today 2025-01-10, got %s", resp.Msg.Today)
	}
	if len(resp.Msg.Events) != 2 {
		t.Fatalf("expected 2 events, got %+v", resp.Msg.Events)
	}
	if resp.Msg.Events[0].Type != models.EventBill || resp.Msg.Events[1].Type != models.EventWarranty {
		t.Errorf("unexpected events: %+v", resp.Msg.Events)
	}

	// Zero uses the 30 day default, which reaches the insurance renewal.
	resp, err = c.calendar.UpcomingEvents(context.Background(), connect.NewRequest(&api.UpcomingEventsRequest{}))
	if err != nil {
		t.Fatalf("UpcomingEvents failed: %v", err)
	}
	if len(resp.Msg.Events) != 3 {
		t.Errorf("expected 3 events in default horizon, got %+v", resp.Msg.Events)
	}

	_, err = c.calendar.UpcomingEvents(context.Background(), connect.NewRequest(&api.UpcomingEventsRequest{Days: -1}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestEventsFollowDocumentChanges(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	doc := createDoc(t, c, &api.CreateDocumentRequest{
		Title:    "Gas",
		Category: models.CategoryUtilityBill,
		Metadata: models.Metadata{Date: "2025-01-01"},
	})

	list := func() []models.CalendarEvent {
		t.Helper()
		resp, err := c.calendar.ListEvents(ctx, connect.NewRequest(&api.ListEventsRequest{}))
		if err != nil {
			t.Fatalf("ListEvents failed: %v", err)
		}
		return resp.Msg.Events
	}

	if events := list(); len(events) != 1 || events[0].Date != "2025-01-16" {
		t.Fatalf("unexpected events: %+v", events)
	}

	title := "Gas bill"
	if _, err := c.documents.UpdateDocument(ctx, connect.NewRequest(&api.UpdateDocumentRequest{
		DocumentID: doc.ID,
		Title:      &title,
		Metadata:   &models.Metadata{Date: "2025-02-01"},
	})); err != nil {
		t.Fatalf("UpdateDocument failed: %v", err)
	}
	events := list()
	if len(events) != 1 || events[0].Date != "2025-02-16" || events[0].Title != "Gas bill due" {
		t.Fatalf("events did not follow update: %+v", events)
	}

	if _, err := c.documents.DeleteDocument(ctx, connect.NewRequest(&api.DeleteDocumentRequest{DocumentID: doc.ID})); err != nil {
		t.Fatalf("DeleteDocument failed: %v", err)
	}
	if events := list(); len(events) != 0 {
		t.Errorf("expected no events after delete, got %+v", events)
	}
}

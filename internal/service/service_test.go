package service

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/docshelf/internal/calendar"
	"github.com/mmynk/docshelf/internal/storage/sqlite"
	"github.com/mmynk/docshelf/pkg/api/apiconnect"
)

// testClients bundles a client for every service mounted on the test server.
type testClients struct {
	documents *apiconnect.DocumentServiceClient
	family    *apiconnect.FamilyServiceClient
	settings  *apiconnect.SettingsServiceClient
	calendar  *apiconnect.CalendarServiceClient

	// calendarSvc is exposed so tests can pin "today".
	calendarSvc *CalendarService
}

// setupTestServer creates a test server backed by a temporary SQLite database.
func setupTestServer(t *testing.T) (*testClients, func()) {
	t.Helper()

	// Create temp database
	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	calendarSvc := NewCalendarService(calendar.NewMemo(store, nil), time.UTC, 0)
	calendarSvc.now = func() time.Time { return time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC) }

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewDocumentServiceHandler(NewDocumentService(store)))
	mux.Handle(apiconnect.NewFamilyServiceHandler(NewFamilyService(store)))
	mux.Handle(apiconnect.NewSettingsServiceHandler(NewSettingsService(store)))
	mux.Handle(apiconnect.NewCalendarServiceHandler(calendarSvc))

	server := httptest.NewServer(mux)

	clients := &testClients{
		documents:   apiconnect.NewDocumentServiceClient(http.DefaultClient, server.URL),
		family:      apiconnect.NewFamilyServiceClient(http.DefaultClient, server.URL),
		settings:    apiconnect.NewSettingsServiceClient(http.DefaultClient, server.URL),
		calendar:    apiconnect.NewCalendarServiceClient(http.DefaultClient, server.URL),
		calendarSvc: calendarSvc,
	}

	cleanup := func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	}

	return clients, cleanup
}

// assertCode fails the test unless err is a Connect error with the given code.
func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect error, got %T: %v", err, err)
	}
	if connectErr.Code() != want {
		t.Errorf("expected code %v, got %v (%v)", want, connectErr.Code(), err)
	}
}

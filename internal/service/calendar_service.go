package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/docshelf/internal/calendar"
	"github.com/mmynk/docshelf/pkg/api"
	"github.com/mmynk/docshelf/pkg/api/apiconnect"
)

var _ apiconnect.CalendarServiceHandler = (*CalendarService)(nil)

// DefaultUpcomingDays is the horizon used when neither the request nor the
// service configuration sets one.
const DefaultUpcomingDays = 30

// CalendarService implements the Connect CalendarService on top of the
// memoized event derivation.
type CalendarService struct {
	memo         *calendar.Memo
	location     *time.Location
	upcomingDays int
	now          func() time.Time
}

// NewCalendarService creates a CalendarService. "Today" is evaluated in loc
// (time.Local if nil); upcomingDays <= 0 uses DefaultUpcomingDays.
func NewCalendarService(memo *calendar.Memo, loc *time.Location, upcomingDays int) *CalendarService {
	if loc == nil {
		loc = time.Local
	}
	if upcomingDays <= 0 {
		upcomingDays = DefaultUpcomingDays
	}
	return &CalendarService{memo: memo, location: loc, upcomingDays: upcomingDays, now: time.Now}
}

// ListEvents returns every derived event matching the request, sorted by date.
func (s *CalendarService) ListEvents(ctx context.Context, req *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error) {
	slog.Info("ListEvents request received",
		"from", req.Msg.From,
		"to", req.Msg.To,
		"types", req.Msg.Types,
	)

	var q calendar.Query
	var err error
	if q.From, err = optionalDate("from", req.Msg.From); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if q.To, err = optionalDate("to", req.Msg.To); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if q.From != nil && q.To != nil && q.To.Before(*q.From) {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("to %s is before from %s", q.To, q.From))
	}
	q.Types = req.Msg.Types

	events, err := s.memo.Events(ctx)
	if err != nil {
		slog.Error("ListEvents failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	events = calendar.Filter(events, q)
	calendar.Sort(events)

	slog.Info("ListEvents successful", "count", len(events))

	return connect.NewResponse(&api.ListEventsResponse{Events: events}), nil
}

// UpcomingEvents returns events from today through the horizon.
func (s *CalendarService) UpcomingEvents(ctx context.Context, req *connect.Request[api.UpcomingEventsRequest]) (*connect.Response[api.UpcomingEventsResponse], error) {
	days := req.Msg.Days
	if days < 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("days must not be negative, got %d", days))
	}
	if days == 0 {
		days = s.upcomingDays
	}

	today := calendar.FromTime(s.now().In(s.location))
	slog.Info("UpcomingEvents request received", "today", today, "days", days)

	events, err := s.memo.Events(ctx)
	if err != nil {
		slog.Error("UpcomingEvents failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.UpcomingEventsResponse{
		Today:  today.String(),
		Events: calendar.Upcoming(events, today, days),
	}), nil
}

func optionalDate(field, value string) (*calendar.LocalDate, error) {
	if value == "" {
		return nil, nil
	}
	d, ok := calendar.ParseLocalDate(value)
	if !ok {
		return nil, fmt.Errorf("%s must be a valid YYYY-MM-DD date, got %q", field, value)
	}
	return &d, nil
}

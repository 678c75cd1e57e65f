package calendar

import (
	"fmt"
	"time"
)

// LocalDate is a calendar day with no time-of-day or timezone.
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseLocalDate reads a strict YYYY-MM-DD string into a LocalDate.
//
// The components are read directly instead of going through time.Parse or any
// other timestamp parser: a date-only string read as UTC midnight and shown in
// a zone west of UTC lands on the previous day. ok is false for any other
// shape and for days that do not exist (e.g. 2023-02-29).
func ParseLocalDate(s string) (d LocalDate, ok bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return LocalDate{}, false
	}
	y, ok1 := digits(s[0:4])
	m, ok2 := digits(s[5:7])
	day, ok3 := digits(s[8:10])
	if !ok1 || !ok2 || !ok3 {
		return LocalDate{}, false
	}
	if m < 1 || m > 12 || day < 1 || day > daysIn(y, time.Month(m)) {
		return LocalDate{}, false
	}
	return LocalDate{Year: y, Month: time.Month(m), Day: day}, true
}

func digits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Today returns the current calendar day as seen in loc (time.Local if nil).
func Today(loc *time.Location) LocalDate {
	if loc == nil {
		loc = time.Local
	}
	return FromTime(time.Now().In(loc))
}

// FromTime returns the calendar day of t in t's own location.
func FromTime(t time.Time) LocalDate {
	y, m, d := t.Date()
	return LocalDate{Year: y, Month: m, Day: d}
}

// AddDays returns d moved by n days; n may be negative.
func (d LocalDate) AddDays(n int) LocalDate {
	return FromTime(d.midnight().AddDate(0, 0, n))
}

// AddYears returns d moved by n years. Days that do not exist in the target
// year roll forward, so Feb 29 plus one year is Mar 1.
func (d LocalDate) AddYears(n int) LocalDate {
	return FromTime(d.midnight().AddDate(n, 0, 0))
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d LocalDate) Compare(o LocalDate) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

func (d LocalDate) Before(o LocalDate) bool { return d.Compare(o) < 0 }
func (d LocalDate) After(o LocalDate) bool  { return d.Compare(o) > 0 }

// In returns midnight of d in loc.
func (d LocalDate) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// String formats d as YYYY-MM-DD.
func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// UTC is used only as a fixed frame for day arithmetic; it never leaks out.
func (d LocalDate) midnight() time.Time {
	return d.In(time.UTC)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

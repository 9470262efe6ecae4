package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the wire format for dates, ISO-8601 with day granularity.
const DateFormat = "2006-01-02"

// Date is a calendar date with no time-of-day component. Movements are
// attributed to a Date; ordering within a day falls back to the movement id.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.Time().Date()

	return d
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) Date {
	return NewDate(t.UTC().Date())
}

// Today returns the current date in UTC.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses an ISO-8601 date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: invalid date %q, want %s", ErrValidation, s, DateFormat)
	}

	return NewDate(t.Date()), nil
}

// MustDate is like ParseDate but panics on error. For tests and fixtures.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}

	return d
}

// Time returns the canonical representation of the date, midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// Before reports whether d is before x.
func (d Date) Before(x Date) bool { return d.Time().Before(x.Time()) }

// After reports whether d is after x.
func (d Date) After(x Date) bool { return d.Time().After(x.Time()) }

// Equal reports whether d and x are the same day.
func (d Date) Equal(x Date) bool { return d.y == x.y && d.m == x.m && d.d == x.d }

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date { return NewDate(d.y, d.m, d.d+n) }

func (d Date) String() string {
	return d.Time().Format(DateFormat)
}

// MarshalJSON encodes the date as an ISO-8601 string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes the date from an ISO-8601 string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

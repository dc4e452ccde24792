package types

import (
	"errors"
	"fmt"
	"time"
)

// dateLayout is the wire format for calendar dates, e.g. "2025-08-21".
const dateLayout = "2006-01-02"

var (
	// ErrInvalidDateFormat is returned when a date string is not YYYY-MM-DD
	ErrInvalidDateFormat = errors.New("invalid date string format, expected YYYY-MM-DD")
)

// DateString represents a calendar date as an ISO "YYYY-MM-DD" string.
// The type is day-granular on purpose: reservation checkin/checkout carry
// no time-of-day component, and ISO date strings compare correctly as
// plain strings.
type DateString string

// NewDateString creates a DateString from a time.Time, dropping the
// time-of-day component.
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString parses and validates a "YYYY-MM-DD" string.
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return DateString(s), nil
}

// String returns the date in "YYYY-MM-DD" format.
func (d DateString) String() string {
	return string(d)
}

// IsZero returns true for an empty date.
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate checks that the date is a well-formed "YYYY-MM-DD" string.
func (d DateString) Validate() error {
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return nil
}

// Time parses the date into a time.Time at midnight UTC.
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return t, nil
}

// AddDays returns the date shifted by n calendar days (n may be negative).
func (d DateString) AddDays(n int) (DateString, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return NewDateString(t.AddDate(0, 0, n)), nil
}

// DaysUntil returns the number of calendar days from d to other.
// Negative when other is before d.
func (d DateString) DaysUntil(other DateString) (int, error) {
	from, err := d.Time()
	if err != nil {
		return 0, err
	}
	to, err := other.Time()
	if err != nil {
		return 0, err
	}
	return int(to.Sub(from).Hours() / 24), nil
}

// IsBefore reports whether d is strictly earlier than other.
// Lexicographic comparison is exact for ISO dates.
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}

// IsAfter reports whether d is strictly later than other.
func (d DateString) IsAfter(other DateString) bool {
	return string(d) > string(other)
}

// Min returns the earlier of the two dates.
func Min(a, b DateString) DateString {
	if a.IsBefore(b) {
		return a
	}
	return b
}

// Max returns the later of the two dates.
func Max(a, b DateString) DateString {
	if a.IsAfter(b) {
		return a
	}
	return b
}

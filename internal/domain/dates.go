package domain

import (
	"fmt"
	"time"
)

// DateKey is a canonical YYYY-MM-DD calendar date in the venue's local civil
// calendar, with no time-of-day component. It is the map key for all
// per-date state; equality is string equality on the canonical form.
type DateKey string

// NewDateKey builds a DateKey from the date part of t.
func NewDateKey(t time.Time) DateKey {
	return DateKey(t.Format(DateFormat))
}

// IsZero reports whether the key is empty ("no date selected").
func (d DateKey) IsZero() bool {
	return d == ""
}

func (d DateKey) String() string {
	return string(d)
}

// Time parses the key as a naive civil date (midnight, no timezone shift).
func (d DateKey) Time() (time.Time, error) {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, d)
	}
	return t, nil
}

// Weekday returns the day of week for the key. ok is false when the key is
// empty or malformed.
func (d DateKey) Weekday() (time.Weekday, bool) {
	t, err := d.Time()
	if err != nil {
		return time.Sunday, false
	}
	return t.Weekday(), true
}

// DatesInRange returns every calendar date from start to end inclusive,
// stepping by calendar days, so the iteration is immune to DST or clock
// peculiarities.
func DatesInRange(start, end DateKey) ([]DateKey, error) {
	startT, err := start.Time()
	if err != nil {
		return nil, err
	}
	endT, err := end.Time()
	if err != nil {
		return nil, err
	}

	dates := make([]DateKey, 0)
	for cur := startT; !cur.After(endT); cur = cur.AddDate(0, 0, 1) {
		dates = append(dates, NewDateKey(cur))
	}
	return dates, nil
}

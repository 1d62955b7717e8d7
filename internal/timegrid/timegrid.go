package timegrid

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/salonkit/booking-api/pkg/errors"
)

// MinutesPerDay bounds the minute-of-day grid. Clock times map to [0, 1440);
// overnight-spanning working hours are not representable.
const MinutesPerDay = 24 * 60

// DateKeyLayout is the calendar-date wire format used for bucketing.
const DateKeyLayout = "2006-01-02"

// ToMinutes converts a zero-padded "HH:MM" clock time into minutes since
// midnight. Malformed or out-of-range input fails with a format error.
func ToMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, errors.Format(fmt.Sprintf("invalid clock time %q, want HH:MM", clock), nil)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, errors.Format(fmt.Sprintf("invalid clock time %q, want HH:MM", clock), err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, errors.Format(fmt.Sprintf("invalid clock time %q, want HH:MM", clock), err)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, errors.Format(fmt.Sprintf("clock time %q out of range", clock), nil)
	}

	return hour*60 + minute, nil
}

// FromMinutes converts minutes since midnight back into a zero-padded
// "HH:MM" string. Defined only for [0, MinutesPerDay).
func FromMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// SameDay reports whether a and b fall on the same calendar date,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DateKey normalizes a timestamp to its "YYYY-MM-DD" calendar date.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a "YYYY-MM-DD" date string at midnight local time.
func ParseDateKey(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, s, time.Local)
	if err != nil {
		return time.Time{}, errors.Format(fmt.Sprintf("invalid date %q, want YYYY-MM-DD", s), err)
	}
	return t, nil
}

// StartOfDay truncates a timestamp to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

package model

import "time"

// Weekday indexes a WeeklySchedule, Sunday first.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

func (d Weekday) String() string {
	if d < Sunday || d > Saturday {
		return "unknown"
	}
	return weekdayNames[d]
}

// WeekdayOf returns the schedule index for a calendar date.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday())
}

package calendar

import (
	"time"

	"github.com/salonkit/booking-api/internal/model"
	"github.com/salonkit/booking-api/internal/timegrid"
)

// WeeklyView is a Monday-first week of day columns plus the week summary.
type WeeklyView struct {
	WeekStart   string              `json:"week_start"`
	Days        []DailyView         `json:"days"`
	Summary     model.PeriodSummary `json:"summary"`
	PrevPointer string              `json:"prev_pointer"`
	NextPointer string              `json:"next_pointer"`
}

// MondayOf rolls a date back to the Monday of its week. Sunday belongs to
// the end of the week, so its index remaps to six.
func MondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return timegrid.StartOfDay(t).AddDate(0, 0, -offset)
}

// BuildWeekly produces the seven day columns of the pointer's week.
// Navigation moves the pointer by whole weeks.
func BuildWeekly(pointer time.Time, bookings []model.Booking, now time.Time) (WeeklyView, error) {
	monday := MondayOf(pointer)

	days := make([]DailyView, 0, 7)
	week := []model.Booking{}
	for i := 0; i < 7; i++ {
		day, err := BuildDaily(monday.AddDate(0, 0, i), bookings, now)
		if err != nil {
			return WeeklyView{}, err
		}
		days = append(days, day)
		week = append(week, day.Appointments...)
	}

	return WeeklyView{
		WeekStart:   timegrid.DateKey(monday),
		Days:        days,
		Summary:     Summarize(week),
		PrevPointer: timegrid.DateKey(monday.AddDate(0, 0, -7)),
		NextPointer: timegrid.DateKey(monday.AddDate(0, 0, 7)),
	}, nil
}

package calendar

import (
	"sort"
	"time"

	"github.com/salonkit/booking-api/internal/model"
	"github.com/salonkit/booking-api/internal/timegrid"
)

// Lunch-gap display thresholds. These are a fixed presentation heuristic
// and intentionally independent of the salon's configured break window.
const (
	lunchGapEnd   = 12 * 60 // gap shown when an appointment ends at or before 12:00
	lunchGapStart = 13 * 60 // and the next one starts at or after 13:00
)

// DailyView is the agenda of a single date, sorted by start time.
type DailyView struct {
	Date         string          `json:"date"`
	Weekday      string          `json:"weekday"`
	IsToday      bool            `json:"is_today"`
	Appointments []model.Booking `json:"appointments"`
	// LunchGapAfter[i] is true when a lunch gap should be rendered
	// between appointment i and i+1.
	LunchGapAfter []bool              `json:"lunch_gap_after"`
	Summary       model.PeriodSummary `json:"summary"`
	PrevPointer   string              `json:"prev_pointer"`
	NextPointer   string              `json:"next_pointer"`
}

// BuildDaily selects the pointer date's appointments and computes its
// summary and lunch-gap flags.
func BuildDaily(pointer time.Time, bookings []model.Booking, now time.Time) (DailyView, error) {
	key := timegrid.DateKey(pointer)

	appts := filterByDate(bookings, key)
	// Zero-padded HH:MM sorts correctly as plain strings.
	sort.SliceStable(appts, func(i, j int) bool {
		return appts[i].StartTime < appts[j].StartTime
	})

	gaps, err := lunchGaps(appts)
	if err != nil {
		return DailyView{}, err
	}

	return DailyView{
		Date:          key,
		Weekday:       model.WeekdayOf(pointer).String(),
		IsToday:       timegrid.SameDay(pointer, now),
		Appointments:  appts,
		LunchGapAfter: gaps,
		Summary:       Summarize(appts),
		PrevPointer:   timegrid.DateKey(pointer.AddDate(0, 0, -1)),
		NextPointer:   timegrid.DateKey(pointer.AddDate(0, 0, 1)),
	}, nil
}

// lunchGaps flags the visible midday gap between adjacent appointments.
func lunchGaps(sorted []model.Booking) ([]bool, error) {
	gaps := make([]bool, len(sorted))
	for i := 0; i+1 < len(sorted); i++ {
		end, err := timegrid.ToMinutes(sorted[i].EndTime)
		if err != nil {
			return nil, err
		}
		nextStart, err := timegrid.ToMinutes(sorted[i+1].StartTime)
		if err != nil {
			return nil, err
		}
		gaps[i] = end <= lunchGapEnd && nextStart >= lunchGapStart
	}
	return gaps, nil
}

func filterByDate(bookings []model.Booking, key string) []model.Booking {
	out := []model.Booking{}
	for _, bk := range bookings {
		if bk.Date == key {
			out = append(out, bk)
		}
	}
	return out
}

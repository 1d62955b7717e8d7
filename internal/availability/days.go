package availability

import (
	"time"

	"github.com/salonkit/booking-api/internal/model"
	"github.com/salonkit/booking-api/internal/timegrid"
)

// GridCells is the fixed size of the booking-wizard month grid: six full
// weeks regardless of month length or starting weekday.
const GridCells = 42

// DayCell is one selectable date in the wizard's month grid.
type DayCell struct {
	Date           string `json:"date"`
	Day            int    `json:"day"`
	IsCurrentMonth bool   `json:"is_current_month"`
	Disabled       bool   `json:"disabled"`
}

// BookableDays builds the 42-cell month grid around the pointer date.
// Leading and trailing cells from adjacent months are always disabled;
// cells of the pointer month are selectable when the weekday is active
// and the date falls inside the policy's lead-time window.
func BookableDays(pointer time.Time, schedule model.WeeklySchedule, policy model.BookingPolicy, now time.Time) []DayCell {
	year, month, _ := pointer.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, pointer.Location())

	// Roll back to the Sunday on or before the 1st.
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))

	cells := make([]DayCell, 0, GridCells)
	for i := 0; i < GridCells; i++ {
		date := gridStart.AddDate(0, 0, i)
		inMonth := date.Month() == month && date.Year() == year

		disabled := true
		if inMonth {
			disabled = !dateBookable(date, schedule, policy, now)
		}

		cells = append(cells, DayCell{
			Date:           timegrid.DateKey(date),
			Day:            date.Day(),
			IsCurrentMonth: inMonth,
			Disabled:       disabled,
		})
	}
	return cells
}

func dateBookable(date time.Time, schedule model.WeeklySchedule, policy model.BookingPolicy, now time.Time) bool {
	if !schedule.ForDate(date).Active {
		return false
	}
	return DateWithinWindow(date, policy, now)
}

package calendar

import (
	"time"

	"github.com/salonkit/booking-api/internal/model"
	"github.com/salonkit/booking-api/internal/timegrid"
)

// GridCells is the fixed size of the month view: six full weeks cover
// every month regardless of length or starting weekday.
const GridCells = 42

// MonthCell is one date of the month grid with its own appointment list.
type MonthCell struct {
	Date           string          `json:"date"`
	Day            int             `json:"day"`
	IsCurrentMonth bool            `json:"is_current_month"`
	IsToday        bool            `json:"is_today"`
	Appointments   []model.Booking `json:"appointments"`
}

// MonthGrid is the 42-cell month view plus the month summary.
type MonthGrid struct {
	Year        int                 `json:"year"`
	Month       time.Month          `json:"month"`
	Cells       []MonthCell         `json:"cells"`
	Summary     model.PeriodSummary `json:"summary"`
	PrevPointer string              `json:"prev_pointer"`
	NextPointer string              `json:"next_pointer"`
}

// BuildMonthly produces the pointer month's grid: the full month plus the
// leading and trailing days of adjacent months needed to complete six
// Sunday-first weeks. The summary covers only the pointer month's
// appointments.
func BuildMonthly(pointer time.Time, bookings []model.Booking, now time.Time) MonthGrid {
	year, month, _ := pointer.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, pointer.Location())
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))

	cells := make([]MonthCell, 0, GridCells)
	inMonth := []model.Booking{}
	for i := 0; i < GridCells; i++ {
		date := gridStart.AddDate(0, 0, i)
		current := date.Month() == month && date.Year() == year

		appts := filterByDate(bookings, timegrid.DateKey(date))
		if current {
			inMonth = append(inMonth, appts...)
		}

		cells = append(cells, MonthCell{
			Date:           timegrid.DateKey(date),
			Day:            date.Day(),
			IsCurrentMonth: current,
			IsToday:        timegrid.SameDay(date, now),
			Appointments:   appts,
		})
	}

	return MonthGrid{
		Year:        year,
		Month:       month,
		Cells:       cells,
		Summary:     Summarize(inMonth),
		PrevPointer: timegrid.DateKey(first.AddDate(0, -1, 0)),
		NextPointer: timegrid.DateKey(first.AddDate(0, 1, 0)),
	}
}

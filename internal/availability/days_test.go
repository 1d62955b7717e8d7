package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonkit/booking-api/internal/model"
)

func weekSchedule(activeDays ...model.Weekday) model.WeeklySchedule {
	var schedule model.WeeklySchedule
	for _, d := range activeDays {
		schedule[d] = model.WorkingHours{Start: "09:00", End: "18:00", Active: true}
	}
	return schedule
}

func TestBookableDaysGridAlwaysFortyTwoCells(t *testing.T) {
	schedule := weekSchedule(model.Monday, model.Tuesday, model.Wednesday, model.Thursday, model.Friday)
	p := model.BookingPolicy{SlotIntervalMinutes: 30, MaxLeadTimeDays: 365}

	pointers := []time.Time{
		time.Date(2024, 2, 15, 0, 0, 0, 0, time.Local), // leap February
		time.Date(2025, 2, 15, 0, 0, 0, 0, time.Local), // 28-day February starting Saturday
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local),  // 31-day month
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.Local), // Sunday-first June
	}
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)

	for _, pointer := range pointers {
		cells := BookableDays(pointer, schedule, p, now)
		assert.Len(t, cells, GridCells, pointer.Format("2006-01"))
	}
}

func TestBookableDaysAdjacentMonthCellsDisabled(t *testing.T) {
	schedule := weekSchedule(model.Monday, model.Tuesday, model.Wednesday, model.Thursday, model.Friday, model.Saturday, model.Sunday)
	p := model.BookingPolicy{SlotIntervalMinutes: 30, MaxLeadTimeDays: 365}
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local)

	cells := BookableDays(time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local), schedule, p, now)
	require.Len(t, cells, GridCells)

	// March 2025 starts on a Saturday: six leading February cells.
	for i := 0; i < 6; i++ {
		assert.False(t, cells[i].IsCurrentMonth, cells[i].Date)
		assert.True(t, cells[i].Disabled, cells[i].Date)
	}
	assert.Equal(t, "2025-03-01", cells[6].Date)
	assert.True(t, cells[6].IsCurrentMonth)

	for _, cell := range cells {
		if !cell.IsCurrentMonth {
			assert.True(t, cell.Disabled, cell.Date)
		}
	}
}

func TestBookableDaysRespectsWeekdayActivity(t *testing.T) {
	// Only Mondays are open.
	schedule := weekSchedule(model.Monday)
	p := model.BookingPolicy{SlotIntervalMinutes: 30, MaxLeadTimeDays: 365}
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local)

	cells := BookableDays(time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local), schedule, p, now)
	for _, cell := range cells {
		if !cell.IsCurrentMonth {
			continue
		}
		date, err := time.ParseInLocation("2006-01-02", cell.Date, time.Local)
		require.NoError(t, err)
		if date.Weekday() == time.Monday {
			assert.False(t, cell.Disabled, cell.Date)
		} else {
			assert.True(t, cell.Disabled, cell.Date)
		}
	}
}

func TestBookableDaysLeadWindowDisablesPastAndFar(t *testing.T) {
	schedule := weekSchedule(model.Sunday, model.Monday, model.Tuesday, model.Wednesday, model.Thursday, model.Friday, model.Saturday)
	p := model.BookingPolicy{SlotIntervalMinutes: 30, MinLeadTimeHours: 0, MaxLeadTimeDays: 5}
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)

	cells := BookableDays(time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local), schedule, p, now)
	for _, cell := range cells {
		switch cell.Date {
		case "2025-03-09":
			assert.True(t, cell.Disabled, "yesterday must be disabled")
		case "2025-03-10", "2025-03-15":
			assert.False(t, cell.Disabled, cell.Date)
		case "2025-03-16":
			assert.True(t, cell.Disabled, "beyond the horizon must be disabled")
		}
	}
}

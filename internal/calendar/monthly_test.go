package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/salonkit/booking-api/internal/model"
)

func TestBuildMonthlyAlwaysFortyTwoCells(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.Local)

	pointers := []time.Time{
		time.Date(2024, 2, 10, 0, 0, 0, 0, time.Local), // leap February
		time.Date(2025, 2, 10, 0, 0, 0, 0, time.Local), // 28 days
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local), // 31 days, Saturday first
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local), // Sunday first
		time.Date(2025, 12, 10, 0, 0, 0, 0, time.Local),
	}

	for _, pointer := range pointers {
		grid := BuildMonthly(pointer, nil, now)
		assert.Len(t, grid.Cells, GridCells, pointer.Format("2006-01"))
	}
}

func TestBuildMonthlyCellFlagsAndFilters(t *testing.T) {
	pointer := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)

	bookings := []model.Booking{
		dayBooking("2025-03-01", "09:00", "10:00", model.BookingStatusConfirmed, 50),
		dayBooking("2025-03-10", "14:00", "15:00", model.BookingStatusPending, 70),
		dayBooking("2025-02-28", "09:00", "10:00", model.BookingStatusConfirmed, 90), // leading cell
	}

	grid := BuildMonthly(pointer, bookings, now)
	assert.Equal(t, 2025, grid.Year)
	assert.Equal(t, time.March, grid.Month)

	// March 2025 starts Saturday; the grid leads with six February cells.
	assert.False(t, grid.Cells[0].IsCurrentMonth)
	assert.Equal(t, "2025-03-01", grid.Cells[6].Date)
	assert.True(t, grid.Cells[6].IsCurrentMonth)
	assert.Len(t, grid.Cells[6].Appointments, 1)

	// The leading February cell still shows its appointment.
	var feb28 MonthCell
	for _, cell := range grid.Cells {
		if cell.Date == "2025-02-28" {
			feb28 = cell
		}
	}
	assert.Len(t, feb28.Appointments, 1)

	// But the month summary covers only March.
	assert.Equal(t, 2, grid.Summary.TotalCount)
	assert.InDelta(t, 120.0, grid.Summary.Revenue, 0.001)

	var today int
	for _, cell := range grid.Cells {
		if cell.IsToday {
			today++
			assert.Equal(t, "2025-03-10", cell.Date)
		}
	}
	assert.Equal(t, 1, today)

	assert.Equal(t, "2025-02-01", grid.PrevPointer)
	assert.Equal(t, "2025-04-01", grid.NextPointer)
}

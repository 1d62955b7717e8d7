package booking_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonkit/booking-api/internal/model"
	"github.com/salonkit/booking-api/internal/service/booking"
	"github.com/salonkit/booking-api/pkg/clock"
	apperrors "github.com/salonkit/booking-api/pkg/errors"
	"github.com/salonkit/booking-api/pkg/metrics"
)

// Registered once; prometheus collectors may not be registered twice in
// one test binary.
var testMetrics = metrics.New("booking_service_test")

var fixedNow = time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)

func newService() *booking.Service {
	return booking.NewService(clock.Fixed(fixedNow), testMetrics)
}

func openDay() model.WorkingHours {
	return model.WorkingHours{Start: "09:00", End: "12:00", Active: true}
}

func defaultPolicy() model.BookingPolicy {
	return model.BookingPolicy{SlotIntervalMinutes: 30, MinLeadTimeHours: 0, MaxLeadTimeDays: 30}
}

func cutAndColor() model.ServiceSelection {
	return model.ServiceSelection{
		{ID: "cut", Name: "Corte", DurationMinutes: 30, Price: 45},
		{ID: "color", Name: "Coloração", DurationMinutes: 30, Price: 90},
	}
}

func TestAvailableSlots(t *testing.T) {
	svc := newService()

	slots, err := svc.AvailableSlots(&model.SlotQueryRequest{
		Date:     "2025-03-11",
		Hours:    openDay(),
		Policy:   defaultPolicy(),
		Services: cutAndColor(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, slots)
}

func TestAvailableSlotsIgnoresOtherDates(t *testing.T) {
	svc := newService()

	// A booking on another date must not block the target date.
	other := model.Booking{
		ID:        uuid.New(),
		Date:      "2025-03-12",
		StartTime: "09:00",
		EndTime:   "12:00",
		Status:    model.BookingStatusConfirmed,
	}

	slots, err := svc.AvailableSlots(&model.SlotQueryRequest{
		Date:     "2025-03-11",
		Hours:    openDay(),
		Policy:   defaultPolicy(),
		Services: cutAndColor(),
		Bookings: []model.Booking{other},
	})
	require.NoError(t, err)
	assert.Len(t, slots, 5)
}

func TestAvailableSlotsOutsideWindowIsEmptyNotError(t *testing.T) {
	svc := newService()

	slots, err := svc.AvailableSlots(&model.SlotQueryRequest{
		Date:     "2025-06-01", // beyond the 30 day horizon
		Hours:    openDay(),
		Policy:   defaultPolicy(),
		Services: cutAndColor(),
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlotsEmptySelection(t *testing.T) {
	svc := newService()

	slots, err := svc.AvailableSlots(&model.SlotQueryRequest{
		Date:   "2025-03-11",
		Hours:  openDay(),
		Policy: defaultPolicy(),
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlotsBadDate(t *testing.T) {
	svc := newService()

	_, err := svc.AvailableSlots(&model.SlotQueryRequest{
		Date:   "11/03/2025",
		Hours:  openDay(),
		Policy: defaultPolicy(),
	})
	assert.Error(t, err)
}

func TestBookableDays(t *testing.T) {
	svc := newService()

	var schedule model.WeeklySchedule
	schedule[model.Tuesday] = openDay()

	days, err := svc.BookableDays(&model.BookableDaysRequest{
		Pointer:  "2025-03-01",
		Schedule: schedule,
		Policy:   defaultPolicy(),
	})
	require.NoError(t, err)
	require.Len(t, days, 42)

	var enabled []string
	for _, d := range days {
		if !d.Disabled {
			enabled = append(enabled, d.Date)
		}
	}
	// Tuesdays of March 2025 inside the 30 day horizon, from "now" on.
	assert.Equal(t, []string{"2025-03-11", "2025-03-18", "2025-03-25"}, enabled)
}

func TestBuildBooking(t *testing.T) {
	svc := newService()

	bk, err := svc.BuildBooking(&model.BuildBookingRequest{
		SalonID:     "salon-1",
		ClientName:  "Juliana Santos",
		ClientPhone: "(11) 98888-7777",
		Date:        "2025-03-11",
		StartTime:   "10:30",
		Services:    cutAndColor(),
		Hours:       openDay(),
		Policy:      defaultPolicy(),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, bk.ID)
	assert.Equal(t, model.BookingStatusPending, bk.Status)
	assert.Equal(t, "10:30", bk.StartTime)
	assert.Equal(t, "11:30", bk.EndTime)
	assert.Equal(t, 60, bk.TotalDuration)
	assert.InDelta(t, 135.0, bk.TotalPrice, 0.001)
	assert.Equal(t, fixedNow, bk.CreatedAt)
}

func TestBuildBookingEmptySelection(t *testing.T) {
	svc := newService()

	_, err := svc.BuildBooking(&model.BuildBookingRequest{
		SalonID:     "salon-1",
		ClientName:  "Juliana Santos",
		ClientPhone: "(11) 98888-7777",
		Date:        "2025-03-11",
		StartTime:   "10:30",
		Hours:       openDay(),
		Policy:      defaultPolicy(),
	})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrInvalidDuration, appErr.Code)
}

func TestBuildBookingOutsideWindow(t *testing.T) {
	svc := newService()

	_, err := svc.BuildBooking(&model.BuildBookingRequest{
		SalonID:     "salon-1",
		ClientName:  "Juliana Santos",
		ClientPhone: "(11) 98888-7777",
		Date:        "2025-06-01",
		StartTime:   "10:30",
		Services:    cutAndColor(),
		Hours:       openDay(),
		Policy:      defaultPolicy(),
	})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrPolicyViolation, appErr.Code)
}

func TestBuildBookingConflict(t *testing.T) {
	svc := newService()

	taken := model.Booking{
		ID:        uuid.New(),
		Date:      "2025-03-11",
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    model.BookingStatusConfirmed,
	}

	_, err := svc.BuildBooking(&model.BuildBookingRequest{
		SalonID:     "salon-1",
		ClientName:  "Juliana Santos",
		ClientPhone: "(11) 98888-7777",
		Date:        "2025-03-11",
		StartTime:   "10:30",
		Services:    cutAndColor(),
		Hours:       openDay(),
		Policy:      defaultPolicy(),
		Bookings:    []model.Booking{taken},
	})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrSlotConflict, appErr.Code)
}

func TestBuildBookingOffGridStart(t *testing.T) {
	svc := newService()

	// 10:15 is not a slot when the interval is 30 minutes.
	_, err := svc.BuildBooking(&model.BuildBookingRequest{
		SalonID:     "salon-1",
		ClientName:  "Juliana Santos",
		ClientPhone: "(11) 98888-7777",
		Date:        "2025-03-11",
		StartTime:   "10:15",
		Services:    cutAndColor(),
		Hours:       openDay(),
		Policy:      defaultPolicy(),
	})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrSlotConflict, appErr.Code)
}

func TestCalendarViews(t *testing.T) {
	svc := newService()

	bookings := []model.Booking{
		{
			ID:         uuid.New(),
			Date:       "2025-03-10",
			StartTime:  "09:00",
			EndTime:    "10:00",
			Status:     model.BookingStatusConfirmed,
			TotalPrice: 45,
		},
		{
			ID:         uuid.New(),
			Date:       "2025-03-13",
			StartTime:  "14:00",
			EndTime:    "15:00",
			Status:     model.BookingStatusCancelled,
			TotalPrice: 200,
		},
	}

	daily, err := svc.DailyView(&model.CalendarRequest{Pointer: "2025-03-10", Bookings: bookings})
	require.NoError(t, err)
	assert.True(t, daily.IsToday)
	assert.Len(t, daily.Appointments, 1)

	weekly, err := svc.WeeklyView(&model.CalendarRequest{Pointer: "2025-03-10", Bookings: bookings})
	require.NoError(t, err)
	assert.Equal(t, 2, weekly.Summary.TotalCount)
	assert.InDelta(t, 45.0, weekly.Summary.Revenue, 0.001)

	monthly, err := svc.MonthlyView(&model.CalendarRequest{Pointer: "2025-03-10", Bookings: bookings})
	require.NoError(t, err)
	assert.Len(t, monthly.Cells, 42)
	assert.Equal(t, 2, monthly.Summary.TotalCount)

	// Same snapshot again: served from the month-grid cache.
	again, err := svc.MonthlyView(&model.CalendarRequest{Pointer: "2025-03-10", Bookings: bookings})
	require.NoError(t, err)
	assert.Equal(t, monthly, again)
}

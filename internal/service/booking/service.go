package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/salonkit/booking-api/internal/availability"
	"github.com/salonkit/booking-api/internal/calendar"
	"github.com/salonkit/booking-api/internal/model"
	"github.com/salonkit/booking-api/internal/timegrid"
	"github.com/salonkit/booking-api/pkg/clock"
	"github.com/salonkit/booking-api/pkg/errors"
	"github.com/salonkit/booking-api/pkg/metrics"
)

// Service orchestrates availability queries, booking assembly and the
// agenda views over caller-supplied snapshots. It holds no booking data
// of its own.
type Service struct {
	clk        clock.Clock
	metrics    *metrics.Metrics
	aggregator *calendar.Aggregator
}

func NewService(clk clock.Clock, m *metrics.Metrics) *Service {
	return &Service{
		clk:        clk,
		metrics:    m,
		aggregator: calendar.NewAggregator(clk),
	}
}

// AvailableSlots returns the ordered bookable start times for the request
// date. A date outside the lead-time window yields an empty list, same as
// a fully booked day.
func (s *Service) AvailableSlots(req *model.SlotQueryRequest) ([]string, error) {
	date, err := timegrid.ParseDateKey(req.Date)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	s.metrics.SlotQueries.Inc()

	if !availability.DateWithinWindow(date, req.Policy, now) {
		s.metrics.EmptySlotResults.Inc()
		return []string{}, nil
	}

	started := time.Now()
	slots, err := availability.SlotStarts(req.Hours, req.Policy, req.Services.TotalDuration(), bookingsOn(req.Bookings, req.Date))
	if err != nil {
		return nil, err
	}
	s.metrics.SlotComputeLatency.Observe(time.Since(started).Seconds())

	s.metrics.SlotsReturned.Observe(float64(len(slots)))
	if len(slots) == 0 {
		s.metrics.EmptySlotResults.Inc()
	}
	return slots, nil
}

// BookableDays returns the wizard's month grid of selectable dates.
func (s *Service) BookableDays(req *model.BookableDaysRequest) ([]availability.DayCell, error) {
	pointer, err := timegrid.ParseDateKey(req.Pointer)
	if err != nil {
		return nil, err
	}
	return availability.BookableDays(pointer, req.Schedule, req.Policy, s.clk.Now()), nil
}

// BuildBooking assembles a pending booking from a chosen slot after
// re-checking every availability rule against the supplied snapshot.
func (s *Service) BuildBooking(req *model.BuildBookingRequest) (*model.Booking, error) {
	duration := req.Services.TotalDuration()
	if duration <= 0 {
		return nil, errors.InvalidDuration(duration)
	}

	date, err := timegrid.ParseDateKey(req.Date)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	if !availability.DateWithinWindow(date, req.Policy, now) {
		return nil, errors.PolicyViolation("requested date is outside the booking window")
	}

	// Re-derive the day's valid slots so a stale selection cannot slip
	// through between the customer's query and their confirmation.
	slots, err := availability.SlotStarts(req.Hours, req.Policy, duration, bookingsOn(req.Bookings, req.Date))
	if err != nil {
		return nil, err
	}
	if !containsSlot(slots, req.StartTime) {
		return nil, errors.SlotConflict(req.StartTime)
	}

	start, err := timegrid.ToMinutes(req.StartTime)
	if err != nil {
		return nil, err
	}

	bk := &model.Booking{
		ID:            uuid.New(),
		SalonID:       req.SalonID,
		ClientName:    req.ClientName,
		ClientPhone:   req.ClientPhone,
		Services:      req.Services,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       timegrid.FromMinutes(start + duration),
		Status:        model.BookingStatusPending,
		TotalPrice:    req.Services.TotalPrice(),
		TotalDuration: duration,
		CreatedAt:     now,
	}
	s.metrics.BookingsAssembled.Inc()
	return bk, nil
}

// DailyView returns the agenda of the pointer date.
func (s *Service) DailyView(req *model.CalendarRequest) (calendar.DailyView, error) {
	pointer, err := timegrid.ParseDateKey(req.Pointer)
	if err != nil {
		return calendar.DailyView{}, err
	}
	s.metrics.CalendarBuilds.WithLabelValues("daily").Inc()
	s.aggregator.SetBookings(req.Bookings)
	return s.aggregator.Daily(pointer)
}

// WeeklyView returns the Monday-first week around the pointer date.
func (s *Service) WeeklyView(req *model.CalendarRequest) (calendar.WeeklyView, error) {
	pointer, err := timegrid.ParseDateKey(req.Pointer)
	if err != nil {
		return calendar.WeeklyView{}, err
	}
	s.metrics.CalendarBuilds.WithLabelValues("weekly").Inc()
	s.aggregator.SetBookings(req.Bookings)
	return s.aggregator.Weekly(pointer)
}

// MonthlyView returns the 42-cell grid of the pointer month.
func (s *Service) MonthlyView(req *model.CalendarRequest) (calendar.MonthGrid, error) {
	pointer, err := timegrid.ParseDateKey(req.Pointer)
	if err != nil {
		return calendar.MonthGrid{}, err
	}
	s.metrics.CalendarBuilds.WithLabelValues("monthly").Inc()
	s.aggregator.SetBookings(req.Bookings)

	grid, cached := s.aggregator.Monthly(pointer)
	if cached {
		s.metrics.MonthGridHits.Inc()
	} else {
		s.metrics.MonthGridMisses.Inc()
	}
	return grid, nil
}

// bookingsOn narrows the snapshot to the target date. Callers usually
// pre-filter; this keeps cross-date entries from blocking slots anyway.
func bookingsOn(bookings []model.Booking, date string) []model.Booking {
	out := make([]model.Booking, 0, len(bookings))
	for _, bk := range bookings {
		if bk.Date == "" || bk.Date == date {
			out = append(out, bk)
		}
	}
	return out
}

func containsSlot(slots []string, start string) bool {
	for _, s := range slots {
		if s == start {
			return true
		}
	}
	return false
}

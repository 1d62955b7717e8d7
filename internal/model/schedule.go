package model

import "time"

// WorkingHours describes one weekday of a salon's opening configuration.
// When Active is false the day takes no bookings regardless of the other
// fields; when HasBreak is false the break bounds are ignored.
type WorkingHours struct {
	Start      string `json:"start" validate:"omitempty,clocktime"`
	End        string `json:"end" validate:"omitempty,clocktime"`
	Active     bool   `json:"active"`
	HasBreak   bool   `json:"has_break"`
	BreakStart string `json:"break_start" validate:"omitempty,clocktime"`
	BreakEnd   string `json:"break_end" validate:"omitempty,clocktime"`
}

// WeeklySchedule holds one WorkingHours entry per weekday, Sunday first.
type WeeklySchedule [7]WorkingHours

// ForDate returns the working hours of the date's weekday.
func (s WeeklySchedule) ForDate(t time.Time) WorkingHours {
	return s[WeekdayOf(t)]
}

// BookingPolicy governs slot granularity and how far ahead a booking
// may start.
type BookingPolicy struct {
	SlotIntervalMinutes int `json:"slot_interval_minutes" validate:"required,gt=0"`
	MinLeadTimeHours    int `json:"min_lead_time_hours" validate:"gte=0"`
	MaxLeadTimeDays     int `json:"max_lead_time_days" validate:"gte=0"`
}

// LeadWindow returns the absolute [earliest, latest] bounds a booking may
// start, relative to now.
func (p BookingPolicy) LeadWindow(now time.Time) (earliest, latest time.Time) {
	earliest = now.Add(time.Duration(p.MinLeadTimeHours) * time.Hour)
	latest = now.Add(time.Duration(p.MaxLeadTimeDays) * 24 * time.Hour)
	return earliest, latest
}

package model

// SlotQueryRequest asks for the bookable start times of one target date.
// The caller supplies the salon configuration and the day's existing
// bookings; nothing is fetched server-side.
type SlotQueryRequest struct {
	Date     string           `json:"date" validate:"required,datekey"`
	Hours    WorkingHours     `json:"working_hours"`
	Policy   BookingPolicy    `json:"policy"`
	Services ServiceSelection `json:"services" validate:"dive"`
	Bookings []Booking        `json:"bookings" validate:"dive"`
}

// BookableDaysRequest asks for the month grid of selectable dates shown
// in the public booking wizard.
type BookableDaysRequest struct {
	Pointer  string         `json:"pointer" validate:"required,datekey"`
	Schedule WeeklySchedule `json:"schedule"`
	Policy   BookingPolicy  `json:"policy"`
}

// BuildBookingRequest assembles a pending booking from a chosen slot.
type BuildBookingRequest struct {
	SalonID     string           `json:"salon_id" validate:"required"`
	ClientName  string           `json:"client_name" validate:"required"`
	ClientPhone string           `json:"client_phone" validate:"required"`
	Date        string           `json:"date" validate:"required,datekey"`
	StartTime   string           `json:"start_time" validate:"required,clocktime"`
	Services    ServiceSelection `json:"services" validate:"required,min=1,dive"`
	Hours       WorkingHours     `json:"working_hours"`
	Policy      BookingPolicy    `json:"policy"`
	Bookings    []Booking        `json:"bookings" validate:"dive"`
}

// CalendarRequest asks for one agenda view around a pointer date.
type CalendarRequest struct {
	Pointer  string    `json:"pointer" validate:"required,datekey"`
	Bookings []Booking `json:"bookings" validate:"dive"`
}

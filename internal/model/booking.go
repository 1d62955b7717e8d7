package model

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Blocks reports whether a booking with this status occupies time on the
// agenda. Cancelled bookings never block a slot.
func (s BookingStatus) Blocks() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

// CountsTowardRevenue mirrors Blocks: cancelled bookings are excluded from
// revenue at every aggregation granularity.
func (s BookingStatus) CountsTowardRevenue() bool {
	return s.Blocks()
}

// Booking is an appointment snapshot supplied by the caller. The core
// never mutates or persists bookings; they are read-only conflict input
// and aggregation input.
type Booking struct {
	ID             uuid.UUID     `json:"id"`
	SalonID        string        `json:"salon_id"`
	ProfessionalID *uuid.UUID    `json:"professional_id,omitempty"`
	ClientName     string        `json:"client_name"`
	ClientPhone    string        `json:"client_phone"`
	Services       []Service     `json:"services"`
	Date           string        `json:"date" validate:"omitempty,datekey"`
	StartTime      string        `json:"start_time" validate:"omitempty,clocktime"`
	EndTime        string        `json:"end_time" validate:"omitempty,clocktime"`
	Status         BookingStatus `json:"status"`
	TotalPrice     float64       `json:"total_price"`
	TotalDuration  int           `json:"total_duration"`
	CreatedAt      time.Time     `json:"created_at"`
}

// Slot is a bookable start time. The implicit end is start plus the
// requested total duration; slots are produced fresh per query.
type Slot struct {
	Start string `json:"start"`
}

// PeriodSummary tallies one calendar bucket. Revenue includes only
// pending and confirmed bookings.
type PeriodSummary struct {
	TotalCount     int     `json:"total_count"`
	ConfirmedCount int     `json:"confirmed_count"`
	PendingCount   int     `json:"pending_count"`
	CancelledCount int     `json:"cancelled_count"`
	Revenue        float64 `json:"revenue"`
}

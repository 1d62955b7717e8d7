// Package availability enumerates the valid booking start times for one
// target date, given a salon's working-hour configuration and the
// appointments already on the agenda. It is pure computation over the
// caller's snapshots; it fetches and persists nothing.
package availability

import (
	"fmt"
	"time"

	"github.com/salonkit/booking-api/internal/model"
	"github.com/salonkit/booking-api/internal/timegrid"
	"github.com/salonkit/booking-api/pkg/errors"
)

// busy is a half-open [start, end) occupied interval in day-local minutes.
type busy struct {
	start int
	end   int
}

// overlaps applies the strict half-open test: touching endpoints is not
// a conflict.
func (b busy) overlaps(start, end int) bool {
	return start < b.end && end > b.start
}

// blockedIntervals converts the day's pending and confirmed bookings into
// minute intervals. Cancelled bookings never occupy time.
func blockedIntervals(bookings []model.Booking) ([]busy, error) {
	var blocked []busy
	for _, bk := range bookings {
		if !bk.Status.Blocks() {
			continue
		}
		start, err := timegrid.ToMinutes(bk.StartTime)
		if err != nil {
			return nil, errors.Format(fmt.Sprintf("booking %s has malformed start time", bk.ID), err)
		}
		end, err := timegrid.ToMinutes(bk.EndTime)
		if err != nil {
			return nil, errors.Format(fmt.Sprintf("booking %s has malformed end time", bk.ID), err)
		}
		blocked = append(blocked, busy{start: start, end: end})
	}
	return blocked, nil
}

// SlotStarts returns the ordered "HH:MM" start times at which a booking of
// durationMinutes fits on a day with the given working hours, without
// overlapping the lunch break or any pending/confirmed booking.
//
// An empty result is the correct answer for an inactive day, a fully
// booked day, or a non-positive duration; it is never an error.
func SlotStarts(hours model.WorkingHours, policy model.BookingPolicy, durationMinutes int, bookings []model.Booking) ([]string, error) {
	slots := []string{}

	if !hours.Active || durationMinutes <= 0 {
		return slots, nil
	}

	dayStart, err := timegrid.ToMinutes(hours.Start)
	if err != nil {
		return nil, err
	}
	dayEnd, err := timegrid.ToMinutes(hours.End)
	if err != nil {
		return nil, err
	}

	step := policy.SlotIntervalMinutes
	if step <= 0 {
		return nil, errors.BadRequest(fmt.Sprintf("slot interval must be positive, got %d", step), nil)
	}

	breakStart, breakEnd := 0, 0
	if hours.HasBreak {
		breakStart, err = timegrid.ToMinutes(hours.BreakStart)
		if err != nil {
			return nil, err
		}
		breakEnd, err = timegrid.ToMinutes(hours.BreakEnd)
		if err != nil {
			return nil, err
		}
	}

	blocked, err := blockedIntervals(bookings)
	if err != nil {
		return nil, err
	}

	cursor := dayStart
	for cursor+durationMinutes <= dayEnd {
		// A candidate crossing the break cannot simply advance by one
		// step: jump straight to the end of the break so no candidate is
		// skipped or retried inside it.
		if hours.HasBreak && cursor < breakEnd && cursor+durationMinutes > breakStart {
			cursor = breakEnd
			continue
		}

		conflict := false
		for _, b := range blocked {
			if b.overlaps(cursor, cursor+durationMinutes) {
				conflict = true
				break
			}
		}
		if !conflict {
			slots = append(slots, timegrid.FromMinutes(cursor))
		}

		cursor += step
	}

	return slots, nil
}

// DateWithinWindow reports whether any part of the target date falls
// inside the policy's lead-time window. This date-level gate runs before
// the engine; the engine itself works purely in day-local minutes.
func DateWithinWindow(date time.Time, policy model.BookingPolicy, now time.Time) bool {
	earliest, latest := policy.LeadWindow(now)
	dayStart := timegrid.StartOfDay(date)
	dayEnd := dayStart.Add(24 * time.Hour)
	return dayEnd.After(earliest) && !dayStart.After(latest)
}

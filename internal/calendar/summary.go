// Package calendar buckets appointment snapshots into the daily, weekly
// and monthly agenda views and computes their summaries.
package calendar

import "github.com/salonkit/booking-api/internal/model"

// Summarize tallies one bucket of appointments. This is the single shared
// implementation behind every granularity: revenue sums prices over
// pending and confirmed bookings only, cancelled never contributes.
func Summarize(bookings []model.Booking) model.PeriodSummary {
	var sum model.PeriodSummary
	for _, bk := range bookings {
		sum.TotalCount++
		switch bk.Status {
		case model.BookingStatusConfirmed:
			sum.ConfirmedCount++
		case model.BookingStatusPending:
			sum.PendingCount++
		case model.BookingStatusCancelled:
			sum.CancelledCount++
		}
		if bk.Status.CountsTowardRevenue() {
			sum.Revenue += bk.TotalPrice
		}
	}
	return sum
}

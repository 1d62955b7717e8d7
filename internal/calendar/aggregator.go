package calendar

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/salonkit/booking-api/internal/model"
	"github.com/salonkit/booking-api/pkg/clock"
)

const (
	gridCacheTTL     = 15 * time.Minute
	gridCacheCleanup = 1 * time.Hour
)

// Aggregator serves the three agenda views over one appointment snapshot.
// Month grids are cached per (year, month); the cache is flushed whenever
// the snapshot changes, since a stale grid is a correctness bug and not
// just a performance one.
type Aggregator struct {
	clk clock.Clock

	mu          sync.Mutex
	bookings    []model.Booking
	fingerprint uint64
	grids       *gocache.Cache
}

func NewAggregator(clk clock.Clock) *Aggregator {
	return &Aggregator{
		clk:   clk,
		grids: gocache.New(gridCacheTTL, gridCacheCleanup),
	}
}

// SetBookings replaces the appointment snapshot. The month-grid cache
// survives only when the new snapshot is identical to the current one.
func (a *Aggregator) SetBookings(bookings []model.Booking) {
	fp := fingerprintBookings(bookings)

	a.mu.Lock()
	defer a.mu.Unlock()

	if fp == a.fingerprint && a.bookings != nil {
		return
	}
	a.bookings = append([]model.Booking(nil), bookings...)
	a.fingerprint = fp
	a.grids.Flush()
}

// Daily returns the pointer date's agenda.
func (a *Aggregator) Daily(pointer time.Time) (DailyView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return BuildDaily(pointer, a.bookings, a.clk.Now())
}

// Weekly returns the pointer's Monday-first week.
func (a *Aggregator) Weekly(pointer time.Time) (WeeklyView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return BuildWeekly(pointer, a.bookings, a.clk.Now())
}

// Monthly returns the pointer month's 42-cell grid, cached per month.
// The second return value reports whether the grid came from cache.
func (a *Aggregator) Monthly(pointer time.Time) (MonthGrid, bool) {
	year, month, _ := pointer.Date()
	key := fmt.Sprintf("%04d-%02d", year, int(month))

	a.mu.Lock()
	defer a.mu.Unlock()

	if cached, ok := a.grids.Get(key); ok {
		return cached.(MonthGrid), true
	}

	grid := BuildMonthly(pointer, a.bookings, a.clk.Now())
	a.grids.Set(key, grid, gocache.DefaultExpiration)
	return grid, false
}

// CachedMonths reports how many month grids are currently cached.
func (a *Aggregator) CachedMonths() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.grids.ItemCount()
}

// fingerprintBookings hashes the fields that affect any view so snapshot
// changes can be detected cheaply.
func fingerprintBookings(bookings []model.Booking) uint64 {
	h := fnv.New64a()
	for _, bk := range bookings {
		fmt.Fprintf(h, "%s|%s|%s|%s|%s|%.2f|%d\n",
			bk.ID, bk.Date, bk.StartTime, bk.EndTime, bk.Status, bk.TotalPrice, bk.TotalDuration)
	}
	return h.Sum64()
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Availability engine metrics
	SlotQueries        prometheus.Counter
	SlotsReturned      prometheus.Histogram
	EmptySlotResults   prometheus.Counter
	SlotComputeLatency prometheus.Histogram

	// Calendar metrics
	CalendarBuilds    *prometheus.CounterVec
	MonthGridHits     prometheus.Counter
	MonthGridMisses   prometheus.Counter
	BookingsAssembled prometheus.Counter
}

// New creates and registers all application metrics
func New(namespace string) *Metrics {
	return &Metrics{
		SlotQueries: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_queries_total",
			Help:      "Total number of availability queries",
		}),
		SlotsReturned: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "slots_returned",
			Help:      "Number of bookable slots returned per query",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 40, 80},
		}),
		EmptySlotResults: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "empty_slot_results_total",
			Help:      "Availability queries that returned no bookable slots",
		}),
		SlotComputeLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "slot_compute_duration_seconds",
			Help:      "Time spent computing availability",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}),
		CalendarBuilds: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calendar_builds_total",
			Help:      "Total number of calendar views built",
		}, []string{"view"}),
		MonthGridHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "month_grid_cache_hits_total",
			Help:      "Month grid computations served from cache",
		}),
		MonthGridMisses: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "month_grid_cache_misses_total",
			Help:      "Month grid computations built from scratch",
		}),
		BookingsAssembled: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_assembled_total",
			Help:      "Total number of bookings assembled from slot selections",
		}),
	}
}

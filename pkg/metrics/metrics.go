package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tour_booking",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tour_booking",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	BookingsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tour_booking",
		Name:      "bookings_created_total",
		Help:      "Bookings created, by source.",
	}, []string{"source"})

	BookingTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tour_booking",
		Name:      "booking_status_transitions_total",
		Help:      "Operator status changes, by target status.",
	}, []string{"status"})

	StatsCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tour_booking",
		Name:      "stats_cache_lookups_total",
		Help:      "Stats cache lookups by result (hit, miss, error).",
	}, []string{"result"})
)

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}

// PoolStat is a snapshot of the database connection pool
type PoolStat struct {
	Acquired int32
	Idle     int32
	Total    int32
}

// WatchPool exports the pool snapshot as gauges. Call it once per pool.
func WatchPool(stat func() PoolStat) {
	gauges := map[string]func(PoolStat) int32{
		"acquired": func(s PoolStat) int32 { return s.Acquired },
		"idle":     func(s PoolStat) int32 { return s.Idle },
		"total":    func(s PoolStat) int32 { return s.Total },
	}

	for state, pick := range gauges {
		promauto.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   "tour_booking",
			Name:        "db_pool_connections",
			Help:        "Database pool connections by state.",
			ConstLabels: prometheus.Labels{"state": state},
		}, func() float64 { return float64(pick(stat())) })
	}
}

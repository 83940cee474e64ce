// Package metrics exposes prometheus instrumentation for the venue registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	VenueUpsertsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sailing_venues_upserts_total",
			Help: "Total number of venue upsert statements applied",
		},
		[]string{"source"},
	)

	VenueCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sailing_venues_rows",
			Help: "Current number of rows in the sailing_venues table",
		},
	)

	DumpApplyDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sailing_venues_dump_apply_duration_seconds",
			Help:    "Dump load duration in seconds",
			Buckets: []float64{0.1, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0, 60.0},
		},
	)

	RefreshRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sailing_venues_refresh_runs_total",
			Help: "Total number of coordinate refresh runs",
		},
		[]string{"status"},
	)

	RefreshedCoordinatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sailing_venues_refreshed_coordinates_total",
			Help: "Total number of venues whose coordinates were refreshed from OSM",
		},
	)

	OverpassRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sailing_venues_overpass_requests_total",
			Help: "Total number of Overpass API requests",
		},
		[]string{"status"},
	)

	OverpassRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sailing_venues_overpass_request_duration_seconds",
			Help:    "Overpass API request duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0, 60.0},
		},
	)

	OverpassCacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sailing_venues_overpass_cache_total",
			Help: "Overpass response cache lookups",
		},
		[]string{"result"},
	)

	QualityIssues = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sailing_venues_quality_issues",
			Help: "Issues found by the latest data quality run",
		},
		[]string{"check"},
	)
)

// ObserveOverpassRequest records one Overpass round trip.
func ObserveOverpassRequest(status string, started time.Time) {
	OverpassRequestsTotal.WithLabelValues(status).Inc()
	OverpassRequestDuration.Observe(time.Since(started).Seconds())
}

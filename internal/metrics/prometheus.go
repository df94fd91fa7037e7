// Package metrics provides Prometheus metrics for the analyzer service
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysesTotal counts analyzer runs by entry point and outcome
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gerber_analyses_total",
			Help: "Total number of analyzer runs",
		},
		[]string{"source", "status"},
	)

	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gerber_analysis_duration_seconds",
			Help:    "Time taken to analyze one upload set",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"source"},
	)

	FilesScanned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gerber_files_scanned_total",
			Help: "Total number of input files classified, by layer",
		},
		[]string{"layer"},
	)

	DimensionsDetected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gerber_dimensions_detected_total",
			Help: "Analyses that produced a bounding box, by resolved units",
		},
		[]string{"units"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gerber_http_requests_total",
			Help: "Total HTTP requests by route and status code",
		},
		[]string{"method", "path", "code"},
	)
)

// RecordAnalysis records the outcome of one analyzer run
func RecordAnalysis(source, status string, duration time.Duration) {
	AnalysesTotal.WithLabelValues(source, status).Inc()
	AnalysisDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordFile records one classified file
func RecordFile(layer string) {
	FilesScanned.WithLabelValues(layer).Inc()
}

// RecordDimensions records a detected outline
func RecordDimensions(units string) {
	DimensionsDetected.WithLabelValues(units).Inc()
}

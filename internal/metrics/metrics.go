// Package metrics exports Prometheus collectors for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration measures handler latency per endpoint.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "diabetes_request_duration_seconds",
			Help:    "Request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"endpoint", "method"},
	)

	// RequestsTotal counts processed requests by endpoint and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diabetes_requests_total",
			Help: "Total number of requests processed",
		},
		[]string{"endpoint", "method", "status"},
	)

	// PredictionsTotal counts successful predictions by risk level.
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diabetes_predictions_total",
			Help: "Total number of predictions served",
		},
		[]string{"risk_level"},
	)

	// PredictionErrors counts failed prediction requests by error kind.
	PredictionErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diabetes_prediction_errors_total",
			Help: "Total number of failed prediction requests",
		},
		[]string{"kind"},
	)

	// ModelLoaded is 1 when both model artifacts loaded at startup.
	ModelLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "diabetes_model_loaded",
			Help: "Whether the scaler and classifier artifacts are loaded",
		},
	)
)

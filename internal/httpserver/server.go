package httpserver

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PratikDhanave/diabetes-risk-service/internal/handlers"
	"github.com/PratikDhanave/diabetes-risk-service/internal/metrics"
	"github.com/PratikDhanave/diabetes-risk-service/internal/predict"
	"github.com/PratikDhanave/diabetes-risk-service/internal/store"
)

// NewRouter wires the public endpoints.
// Health:    /health, /api/health
// API:       /api/predict, /api/analytics/*, /api/features, /api/sample-data
// Telemetry: /metrics (Prometheus exposition)
func NewRouter(scorer *predict.Scorer, st store.Store, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(instrument())

	// Liveness plus artifact state, so a failed model load is visible
	// without firing a prediction.
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":        "healthy",
			"model_loaded":  scorer.ClassifierLoaded(),
			"scaler_loaded": scorer.ScalerLoaded(),
			"timestamp":     time.Now().UTC().Format(time.RFC3339),
		})
	}
	r.GET("/health", health)
	r.GET("/api/health", health)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterPredictRoutes(r, scorer, st, logger)
	handlers.RegisterAnalyticsRoutes(r, st)
	handlers.RegisterFeatureRoutes(r)

	return r
}

// instrument records request counts and latency per route.
func instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.RequestDuration.WithLabelValues(endpoint, c.Request.Method).
			Observe(time.Since(start).Seconds())
		metrics.RequestsTotal.WithLabelValues(endpoint, c.Request.Method,
			strconv.Itoa(c.Writer.Status())).Inc()
	}
}

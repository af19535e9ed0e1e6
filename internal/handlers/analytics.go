package handlers

import (
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/diabetes-risk-service/internal/models"
	"github.com/PratikDhanave/diabetes-risk-service/internal/store"
)

// Fixed dashboard figures from the offline model evaluation. They are part
// of the response shape and intentionally not derived from live data.
const (
	modelAccuracy   = 94.2
	avgResponseTime = 0.3
)

const timelineSize = 10

// staticFeatureDistribution is an illustrative summary block, kept static.
func staticFeatureDistribution() models.FeatureDistribution {
	return models.FeatureDistribution{
		AgeGroups:     map[string]int{"<30": 25, "30-50": 45, ">50": 30},
		BMICategories: map[string]int{"Underweight": 15, "Normal": 35, "Overweight": 30, "Obese": 20},
		GlucoseLevels: map[string]int{"Normal": 40, "Prediabetic": 35, "Diabetic": 25},
	}
}

// staticPerformanceMetrics reports the offline evaluation scores.
func staticPerformanceMetrics() models.PerformanceMetrics {
	return models.PerformanceMetrics{
		Precision: 0.92,
		Recall:    0.89,
		F1Score:   0.90,
		AUCScore:  0.94,
	}
}

// RegisterAnalyticsRoutes registers the dashboard and feed endpoints.
//
// GET /api/analytics/dashboard
// GET /api/analytics/predictions?limit=N
func RegisterAnalyticsRoutes(r gin.IRoutes, st store.Store) {
	r.GET("/api/analytics/dashboard", func(c *gin.Context) {
		now := time.Now()

		// Events of the last 24 hours, oldest first.
		var recent []store.Event
		for e := range st.RecentWithinWindow(24 * time.Hour) {
			recent = append(recent, e)
		}

		// The store keeps trend buckets newest-first; the dashboard
		// exposes them oldest-to-newest.
		labels, counts := st.HourlyTrend(now)
		slices.Reverse(labels)
		slices.Reverse(counts)

		timeline := recent
		if len(timeline) > timelineSize {
			timeline = timeline[len(timeline)-timelineSize:]
		}
		if timeline == nil {
			timeline = []store.Event{}
		}

		totals := st.Snapshot()

		c.JSON(http.StatusOK, models.DashboardResponse{
			Overview: models.Overview{
				TotalPredictions:  totals.TotalPredictions,
				RecentPredictions: len(recent),
				ModelAccuracy:     modelAccuracy,
				AvgResponseTime:   avgResponseTime,
			},
			RiskDistribution: totals.RiskDistribution,
			HourlyTrend: models.HourlyTrend{
				Labels: labels,
				Data:   counts,
			},
			FeatureDistribution: staticFeatureDistribution(),
			PredictionsTimeline: timeline,
			PerformanceMetrics:  staticPerformanceMetrics(),
		})
	})

	r.GET("/api/analytics/predictions", func(c *gin.Context) {
		limit := timelineSize
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
				return
			}
			limit = n
		}

		feed := st.RecentFeed(limit)
		if feed == nil {
			feed = []store.Event{}
		}
		c.JSON(http.StatusOK, models.FeedResponse{Predictions: feed})
	})
}

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PratikDhanave/diabetes-risk-service/internal/features"
	"github.com/PratikDhanave/diabetes-risk-service/internal/metrics"
	"github.com/PratikDhanave/diabetes-risk-service/internal/model"
	"github.com/PratikDhanave/diabetes-risk-service/internal/models"
	"github.com/PratikDhanave/diabetes-risk-service/internal/predict"
	"github.com/PratikDhanave/diabetes-risk-service/internal/store"
)

// round2 rounds to two decimal places for the confidence percentages.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RegisterPredictRoutes registers the prediction endpoint.
//
// POST /api/predict
// - Required fields (canonical or lowercase key): Glucose, BMI, Age
// - Everything else falls back to documented defaults
// - Fails fast with 503 when the model artifacts never loaded
func RegisterPredictRoutes(r gin.IRoutes, scorer *predict.Scorer, st store.Store, logger *slog.Logger) {
	r.POST("/api/predict", func(c *gin.Context) {
		var raw map[string]interface{}
		if err := c.ShouldBindJSON(&raw); err != nil || len(raw) == 0 {
			metrics.PredictionErrors.WithLabelValues("invalid_request").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "no data provided", "status": "error"})
			return
		}

		// Required-field check runs before normalization; only these three
		// must be present, the rest are defaulted.
		if missing := features.MissingRequired(raw); len(missing) > 0 {
			metrics.PredictionErrors.WithLabelValues("invalid_request").Inc()
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  fmt.Sprintf("missing required fields: %v", missing),
				"status": "error",
			})
			return
		}

		vec, err := features.Normalize(raw)
		if err != nil {
			var ive *features.InvalidValueError
			if errors.As(err, &ive) {
				metrics.PredictionErrors.WithLabelValues("invalid_feature").Inc()
				c.JSON(http.StatusBadRequest, gin.H{
					"error":  fmt.Sprintf("invalid value for field %s", ive.Field),
					"status": "error",
				})
				return
			}
			metrics.PredictionErrors.WithLabelValues("internal").Inc()
			logger.Error("normalization failed", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed", "status": "error"})
			return
		}

		result, err := scorer.Score(vec)
		if err != nil {
			if errors.Is(err, model.ErrUnavailable) {
				metrics.PredictionErrors.WithLabelValues("model_unavailable").Inc()
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model not loaded", "status": "error"})
				return
			}
			metrics.PredictionErrors.WithLabelValues("internal").Inc()
			logger.Error("scoring failed", "err", err, "input", raw)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed", "status": "error"})
			return
		}

		advice := predict.Advise(result, vec)

		userAgent := c.Request.UserAgent()
		if userAgent == "" {
			userAgent = "Unknown"
		}

		now := time.Now().UTC()
		st.Record(store.Event{
			ID:         uuid.New().String(),
			Timestamp:  now,
			Input:      raw,
			RiskLevel:  result.RiskLevel,
			Confidence: result.DiabeticProb,
			UserAgent:  userAgent,
		})
		metrics.PredictionsTotal.WithLabelValues(result.RiskLevel).Inc()

		c.JSON(http.StatusOK, models.PredictionResponse{
			Prediction:      result.Class,
			PredictionLabel: result.Label,
			Confidence: models.Confidence{
				NonDiabetic: round2(result.NonDiabeticProb),
				Diabetic:    round2(result.DiabeticProb),
			},
			RiskLevel:    result.RiskLevel,
			HealthAdvice: advice,
			Timestamp:    now.Format(time.RFC3339),
			Status:       "success",
		})
	})
}
